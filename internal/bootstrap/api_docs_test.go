package bootstrap

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/kdirani/farms/docs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag/v2"
)

var ginParam = regexp.MustCompile(`:(\w+)`)

// Every route under /api/v1 must be described in the served OpenAPI document.
func TestAPI_RoutesDocumented(t *testing.T) {
	api := newTestAPI(t)

	raw, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	require.NotEmpty(t, doc.Paths)

	const base = "/api/v1"
	for _, route := range api.engine.Routes() {
		if !strings.HasPrefix(route.Path, base+"/") {
			continue
		}
		path := ginParam.ReplaceAllString(strings.TrimPrefix(route.Path, base), "{$1}")
		ops, ok := doc.Paths[path]
		if !assert.True(t, ok, "undocumented path %s", path) {
			continue
		}
		assert.Contains(t, ops, strings.ToLower(route.Method), "undocumented operation %s %s", route.Method, path)
	}
}
