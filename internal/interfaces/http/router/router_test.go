package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubRegistrar struct {
	path string
	body string
}

func (s stubRegistrar) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET(s.path, func(c *gin.Context) {
		c.String(http.StatusOK, s.body)
	})
}

func serve(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNewRouter(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	assert.NotNil(t, r)
	assert.Equal(t, "v1", r.apiVersion)
	assert.Equal(t, "/api/v1", r.BasePath())
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	r := NewRouter(gin.New(), WithAPIVersion("v2"))
	assert.Equal(t, "/api/v2", r.BasePath())
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithMiddleware(func(c *gin.Context) {
		c.Header("X-API", "yes")
		c.Next()
	}))

	group := NewDomainGroup("test", "/test")
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	r.Register(group).Setup()

	w := serve(engine, http.MethodGet, "/api/v1/test/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
	assert.Equal(t, "yes", w.Header().Get("X-API"))
}

func TestDomainGroup(t *testing.T) {
	t.Run("creates group with name and prefix", func(t *testing.T) {
		g := NewDomainGroup("farms", "/farms")
		assert.Equal(t, "farms", g.Name())
		assert.Equal(t, "/farms", g.Prefix())
	})

	t.Run("registers routes by method", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test").
			Handle(http.MethodPatch, "/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) }).
			Handle(http.MethodDelete, "/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
		g.RegisterRoutes(engine.Group("/api/v1"))

		assert.Equal(t, http.StatusOK, serve(engine, http.MethodPatch, "/api/v1/test/items/1").Code)
		assert.Equal(t, http.StatusNoContent, serve(engine, http.MethodDelete, "/api/v1/test/items/1").Code)
	})

	t.Run("mounts registrars under the prefix", func(t *testing.T) {
		engine := gin.New()
		NewDomainGroup("invoices", "/invoices").
			Mount(stubRegistrar{path: "", body: "list"}, stubRegistrar{path: "/:id/expenses", body: "expenses"}).
			RegisterRoutes(engine.Group("/api/v1"))

		assert.Equal(t, "list", serve(engine, http.MethodGet, "/api/v1/invoices").Body.String())
		assert.Equal(t, "expenses", serve(engine, http.MethodGet, "/api/v1/invoices/42/expenses").Body.String())
	})

	t.Run("applies middleware to mounted routes only", func(t *testing.T) {
		engine := gin.New()
		api := engine.Group("/api/v1")
		NewDomainGroup("admin", "/admin").
			Use(func(c *gin.Context) {
				c.AbortWithStatus(http.StatusForbidden)
			}).
			Mount(stubRegistrar{path: "/users", body: "users"}).
			RegisterRoutes(api)
		NewDomainGroup("farms", "/farms").
			Mount(stubRegistrar{path: "", body: "farms"}).
			RegisterRoutes(api)

		assert.Equal(t, http.StatusForbidden, serve(engine, http.MethodGet, "/api/v1/admin/users").Code)
		assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/api/v1/farms").Code)
	})
}

func TestMultipleDomainGroups(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	farms := NewDomainGroup("farms", "/farms").GET("", func(c *gin.Context) {
		c.String(http.StatusOK, "farms")
	})
	reports := NewDomainGroup("reports", "/daily-reports").GET("", func(c *gin.Context) {
		c.String(http.StatusOK, "reports")
	})
	r.Register(farms).Register(reports).Setup()

	assert.Equal(t, "farms", serve(engine, http.MethodGet, "/api/v1/farms").Body.String())
	assert.Equal(t, "reports", serve(engine, http.MethodGet, "/api/v1/daily-reports").Body.String())
}
