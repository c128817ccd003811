package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/kdirani/farms/internal/infrastructure/telemetry"
)

// ProfilingConfig holds configuration for the profiling labels middleware.
type ProfilingConfig struct {
	Enabled          bool
	SkipPaths        []string
	SkipPathPrefixes []string
}

// DefaultProfilingConfig skips health checks and the API docs.
func DefaultProfilingConfig() ProfilingConfig {
	return ProfilingConfig{
		Enabled:          true,
		SkipPaths:        []string{"/health", "/api/v1/health"},
		SkipPathPrefixes: []string{"/swagger"},
	}
}

// ProfilingWithConfig labels the CPU samples taken while serving a request
// with its method, route and resource, e.g. "invoices".
func ProfilingWithConfig(cfg ProfilingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range cfg.SkipPaths {
			if path == p {
				c.Next()
				return
			}
		}
		for _, prefix := range cfg.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		route := c.FullPath()
		labels := map[string]string{
			telemetry.ProfilingLabelMethod:   c.Request.Method,
			telemetry.ProfilingLabelRoute:    route,
			telemetry.ProfilingLabelResource: resourceFromRoute(route),
		}
		telemetry.WithProfilingLabels(c.Request.Context(), labels, func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}

// resourceFromRoute returns the first static segment after the API prefix.
// "/api/v1/invoices/:id/items" gives "invoices".
func resourceFromRoute(route string) string {
	for _, part := range strings.Split(strings.TrimPrefix(route, "/api/v1"), "/") {
		if part == "" || strings.HasPrefix(part, ":") || strings.HasPrefix(part, "*") {
			continue
		}
		return part
	}
	return ""
}
