package middleware

import (
	"net/http"
	"net/http/httptest"
	"runtime/pprof"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestProfilingWithConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		cfg          ProfilingConfig
		path         string
		wantRoute    string
		wantResource string
	}{
		{"labels api route", DefaultProfilingConfig(), "/api/v1/invoices/42/items", "/api/v1/invoices/:id/items", "invoices"},
		{"skips health", DefaultProfilingConfig(), "/health", "", ""},
		{"disabled", ProfilingConfig{Enabled: false}, "/api/v1/invoices/42/items", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var route, resource string
			capture := func(c *gin.Context) {
				route, _ = pprof.Label(c.Request.Context(), "route")
				resource, _ = pprof.Label(c.Request.Context(), "resource")
				c.Status(http.StatusOK)
			}

			router := gin.New()
			router.Use(ProfilingWithConfig(tt.cfg))
			router.GET("/api/v1/invoices/:id/items", capture)
			router.GET("/health", capture)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantRoute, route)
			assert.Equal(t, tt.wantResource, resource)
		})
	}
}

func TestResourceFromRoute(t *testing.T) {
	assert.Equal(t, "farms", resourceFromRoute("/api/v1/farms"))
	assert.Equal(t, "materials", resourceFromRoute("/api/v1/materials/units/:id"))
	assert.Equal(t, "health", resourceFromRoute("/health"))
	assert.Equal(t, "", resourceFromRoute(""))
}
