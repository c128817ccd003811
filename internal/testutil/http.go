package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Result mirrors the tagged JSON body every action returns.
type Result struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// Do sends a request through engine and returns the recorder.
func Do(t *testing.T, engine *gin.Engine, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		reader = ToJSONReader(t, body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// DecodeResult parses a tagged result body.
func DecodeResult(t *testing.T, w *httptest.ResponseRecorder) Result {
	t.Helper()

	var r Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &r), "Failed to parse result: %s", w.Body.String())
	return r
}

// DecodeData parses the data field of a successful result into T.
func DecodeData[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	r := DecodeResult(t, w)
	require.True(t, r.Success, "expected success, got error %q", r.Error)
	var out T
	require.NoError(t, json.Unmarshal(r.Data, &out))
	return out
}

// AssertFailure checks the status and that the body is a failed result.
func AssertFailure(t *testing.T, w *httptest.ResponseRecorder, status int) Result {
	t.Helper()

	assert.Equal(t, status, w.Code, "unexpected status, body: %s", w.Body.String())
	r := DecodeResult(t, w)
	assert.False(t, r.Success)
	assert.NotEmpty(t, r.Error)
	return r
}

// ToJSONReader marshals v into a reader.
func ToJSONReader(t *testing.T, v any) io.Reader {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err, "Failed to marshal to JSON")
	return bytes.NewReader(data)
}
