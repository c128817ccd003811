package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add daily reports", "add_daily_reports"},
		{"Add-Medicine-Index", "add_medicine_index"},
		{"ADD_FARMS", "add_farms"},
		{"add__batch__status", "add_batch_status"},
		{"Egg Counts 2", "egg_counts_2"},
		{"   spaces   ", "spaces"},
		{"weird!@#$chars", "weirdchars"},
		{"trailing_", "trailing"},
		{"_leading", "leading"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "add egg grades", "Split egg counts by grade")
	require.NoError(t, err)
	assert.Equal(t, "000001", mf.Version)
	assert.Equal(t, filepath.Join(dir, "000001_add_egg_grades.up.sql"), mf.UpPath)
	assert.Equal(t, filepath.Join(dir, "000001_add_egg_grades.down.sql"), mf.DownPath)

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "-- add egg grades")
	assert.Contains(t, string(up), "-- Split egg counts by grade")
	assert.Contains(t, string(up), "BEGIN;")

	down, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(down), "(rollback)")
}

func TestCreateMigration_NextVersion(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "000007_init.up.sql"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "000007_init.down.sql"), nil, 0o644))

	mf, err := CreateMigration(dir, "next", "")
	require.NoError(t, err)
	assert.Equal(t, "000008", mf.Version)
}

func TestCreateMigration_RejectsEmptyName(t *testing.T) {
	_, err := CreateMigration(t.TempDir(), "!!!", "")
	assert.Error(t, err)
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"000002_b.up.sql", "000002_b.down.sql",
		"000001_a.up.sql", "000001_a.down.sql",
		"README.md",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "000003_dir.up.sql"), 0o755))

	got, err := ListMigrations(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"000001_a", "000002_b"}, got)
}

func TestListMigrations_MissingDir(t *testing.T) {
	got, err := ListMigrations(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEmbeddedFiles(t *testing.T) {
	got, err := EmbeddedFiles()
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "000001_init_schema", got[0])
}
