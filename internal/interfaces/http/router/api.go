package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/infrastructure/cache"
	"github.com/kdirani/farms/internal/interfaces/http/handler"
	"github.com/kdirani/farms/internal/interfaces/http/middleware"
)

// Handlers groups every handler served under the versioned API
type Handlers struct {
	Farm          *handler.FarmHandler
	Inventory     *handler.InventoryHandler
	Catalog       *handler.CatalogHandler
	Invoice       *handler.InvoiceHandler
	Manufacturing *handler.ManufacturingHandler
	Medication    *handler.MedicationHandler
	Report        *handler.ReportHandler
	User          *handler.UserHandler
	System        *handler.SystemHandler

	// Expenses and Attachments are keyed by the record kind they serve
	Expenses    map[document.Kind]*handler.ExpenseHandler
	Attachments map[document.Kind]*handler.AttachmentHandler
}

// APIConfig holds what the API groups need besides handlers
type APIConfig struct {
	Verifier middleware.TokenVerifier
	Roles    middleware.RoleLookup
	Pages    cache.PageCache
	PageTTL  time.Duration
}

// RegisterAPI mounts the health checks and the authenticated API on engine.
// Every domain group reads through the page cache. The admin group checks
// the stored role before the cache so cached admin pages are never served
// to other users.
func RegisterAPI(engine *gin.Engine, h Handlers, cfg APIConfig) *Router {
	engine.GET("/health", h.System.Health)
	engine.GET("/api/v1/health", h.System.Health)

	r := NewRouter(engine,
		WithAPIVersion("v1"),
		WithMiddleware(
			middleware.JWTAuthMiddleware(cfg.Verifier),
			middleware.TracingAttributeInjector(),
			middleware.Secure(),
		),
	)

	pageCache := middleware.PageCache(middleware.PageCacheConfig{
		Cache:    cfg.Pages,
		TTL:      cfg.PageTTL,
		BasePath: r.BasePath(),
	})

	records := func(name, prefix string, kind document.Kind, main RouteRegistrar) *DomainGroup {
		g := NewDomainGroup(name, prefix).Use(pageCache).Mount(main)
		if e, ok := h.Expenses[kind]; ok {
			g.Mount(e)
		}
		if a, ok := h.Attachments[kind]; ok {
			g.Mount(a)
		}
		return g
	}

	r.Register(NewDomainGroup("reference", "").Use(pageCache).Mount(h.Farm, h.Inventory, h.Catalog))
	r.Register(records("invoices", "/invoices", document.KindInvoice, h.Invoice))
	r.Register(records("manufacturing", "/manufacturing", document.KindManufacturing, h.Manufacturing))
	r.Register(records("medicine-consumption", "/medicine-consumption", document.KindMedicineConsumption, h.Medication))
	r.Register(records("daily-reports", "/daily-reports", document.KindDailyReport, h.Report))
	r.Register(NewDomainGroup("admin", "/admin").
		Use(middleware.RequireAdmin(cfg.Roles), pageCache).
		Mount(h.User))
	r.Register(NewDomainGroup("system", "/system").GET("/info", h.System.GetSystemInfo))

	r.Setup()
	return r
}
