package bootstrap

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	invoiceapp "github.com/kdirani/farms/internal/application/invoice"
	"github.com/kdirani/farms/internal/application/ledger"
	"github.com/kdirani/farms/internal/domain/identity"
	"github.com/kdirani/farms/internal/infrastructure/auth"
	"github.com/kdirani/farms/internal/infrastructure/cache"
	"github.com/kdirani/farms/internal/infrastructure/config"
	"github.com/kdirani/farms/internal/infrastructure/persistence"
	"github.com/kdirani/farms/internal/infrastructure/storage"
	"github.com/kdirani/farms/internal/interfaces/http/middleware"
	"github.com/kdirani/farms/internal/interfaces/http/router"
	"github.com/kdirani/farms/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret-key-at-least-32-chars"

type idData struct {
	ID uuid.UUID `json:"id"`
}

type testAPI struct {
	t      *testing.T
	engine *gin.Engine
	db     *gorm.DB
	blobs  *storage.MemoryBlobStore
	pages  *cache.MemoryPageCache
	admin  uuid.UUID
	token  string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	middleware.SetupValidator()

	db := testutil.NewSQLiteDB(t, persistence.AutoMigrate)
	blobs := storage.NewMemoryBlobStore("")
	pages := cache.NewMemoryPageCache()

	deps := Deps{
		DB:          db,
		Blobs:       blobs,
		Pages:       pages,
		MaxFileSize: 1 << 20,
		AppName:     "farms-test",
		Version:     "test",
	}
	services := NewServices(deps)

	engine := gin.New()
	router.RegisterAPI(engine, NewHandlers(services, deps), router.APIConfig{
		Verifier: auth.NewVerifier(config.JWTConfig{Secret: testSecret, RoleClaim: "user_role"}),
		Roles:    services.Profiles,
		Pages:    pages,
		PageTTL:  time.Minute,
	})

	api := &testAPI{t: t, engine: engine, db: db, blobs: blobs, pages: pages}
	api.admin = api.seedProfile("admin@farms.test", identity.RoleAdmin)
	api.token = api.tokenFor(api.admin, "admin")
	return api
}

func (a *testAPI) seedProfile(email string, role identity.Role) uuid.UUID {
	a.t.Helper()
	p, err := identity.NewProfile(uuid.New(), email, "Test User", role)
	require.NoError(a.t, err)
	require.NoError(a.t, persistence.NewGormProfileRepository(a.db).Save(context.Background(), p))
	return p.ID
}

func (a *testAPI) tokenFor(userID uuid.UUID, role string) string {
	a.t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":       userID.String(),
		"user_role": role,
		"exp":       time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(a.t, err)
	return token
}

func (a *testAPI) do(method, path string, body any) *httptest.ResponseRecorder {
	return a.doAs(a.token, method, path, body)
}

func (a *testAPI) doAs(token, method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	return testutil.Do(a.t, a.engine, method, path, body, "Authorization", "Bearer "+token)
}

// create posts body and returns the id of the created row
func (a *testAPI) create(path string, body any) uuid.UUID {
	a.t.Helper()
	w := a.do(http.MethodPost, path, body)
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	return testutil.DecodeData[idData](a.t, w).ID
}

type fixture struct {
	farm, warehouse, batch uuid.UUID
	feed, kg, transport    uuid.UUID
}

func (a *testAPI) seedReferences() fixture {
	var f fixture
	f.farm = a.create("/api/v1/farms", gin.H{"name": "North Farm", "location": "Hama"})
	f.warehouse = a.create("/api/v1/warehouses", gin.H{"farm_id": f.farm, "name": "Main Store"})
	f.batch = a.create("/api/v1/poultry", gin.H{"farm_id": f.farm, "batch_name": "Batch 7", "opening_chicks": 5000})
	f.feed = a.create("/api/v1/materials/names", gin.H{"name": "Layer feed"})
	f.kg = a.create("/api/v1/materials/units", gin.H{"name": "kg"})
	f.transport = a.create("/api/v1/expense-types", gin.H{"name": "Transport"})
	return f
}

func TestAPI_Health(t *testing.T) {
	api := newTestAPI(t)

	w := testutil.Do(t, api.engine, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, testutil.DecodeResult(t, w).Success)
}

func TestAPI_RequiresAuthentication(t *testing.T) {
	api := newTestAPI(t)

	w := testutil.Do(t, api.engine, http.MethodGet, "/api/v1/farms", nil)
	testutil.AssertFailure(t, w, http.StatusUnauthorized)
}

func TestAPI_InvoiceLifecycle(t *testing.T) {
	api := newTestAPI(t)
	f := api.seedReferences()

	w := api.do(http.MethodPost, "/api/v1/invoices", gin.H{
		"invoice_type":      "buy",
		"invoice_number":    "B-1001",
		"invoice_date":      "2026-03-01",
		"warehouse_id":      f.warehouse,
		"poultry_status_id": f.batch,
		"items": []gin.H{
			{"material_name_id": f.feed, "unit_id": f.kg, "quantity": "10", "price": "2.5"},
			{"material_name_id": f.feed, "unit_id": f.kg, "quantity": "1", "price": "1", "value": "4"},
		},
		"expenses": []gin.H{
			{"expense_type_id": f.transport, "amount": "5"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := testutil.DecodeData[invoiceapp.InvoiceResponse](t, w)
	assert.True(t, decimal.RequireFromString("34").Equal(created.TotalValue), created.TotalValue.String())
	require.Len(t, created.Items, 2)
	require.Len(t, created.Expenses, 1)

	t.Run("get returns the referenced names", func(t *testing.T) {
		got := testutil.DecodeData[invoiceapp.InvoiceResponse](t, api.do(http.MethodGet, "/api/v1/invoices/"+created.ID.String(), nil))
		assert.Equal(t, "Main Store", got.WarehouseName)
		assert.Equal(t, "North Farm", got.FarmName)
		assert.Equal(t, "Batch 7", got.PoultryBatchName)
	})

	t.Run("adding an item recomputes the total", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/v1/invoices/"+created.ID.String()+"/items", gin.H{
			"material_name_id": f.feed, "quantity": "2", "price": "3",
		})
		change := testutil.DecodeData[ledger.LineChange](t, w)
		assert.True(t, decimal.RequireFromString("40").Equal(change.TotalValue), change.TotalValue.String())
	})

	t.Run("lines are only reachable through their own invoice", func(t *testing.T) {
		other := uuid.NewString()
		w := api.do(http.MethodDelete, "/api/v1/invoices/"+other+"/items/"+created.Items[0].ID.String(), nil)
		testutil.AssertFailure(t, w, http.StatusNotFound)
		w = api.do(http.MethodDelete, "/api/v1/invoices/"+other+"/expenses/"+created.Expenses[0].ID.String(), nil)
		testutil.AssertFailure(t, w, http.StatusNotFound)

		got := testutil.DecodeData[invoiceapp.InvoiceResponse](t, api.do(http.MethodGet, "/api/v1/invoices/"+created.ID.String(), nil))
		assert.Len(t, got.Items, 3)
		assert.Len(t, got.Expenses, 1)
	})

	t.Run("deleting an expense recomputes the total", func(t *testing.T) {
		path := "/api/v1/invoices/" + created.ID.String() + "/expenses/" + created.Expenses[0].ID.String()
		change := testutil.DecodeData[ledger.LineChange](t, api.do(http.MethodDelete, path, nil))
		assert.True(t, decimal.RequireFromString("35").Equal(change.TotalValue), change.TotalValue.String())
	})

	t.Run("list filters by warehouse", func(t *testing.T) {
		list := testutil.DecodeData[[]invoiceapp.SummaryResponse](t,
			api.do(http.MethodGet, "/api/v1/invoices?warehouse_id="+f.warehouse.String(), nil))
		require.Len(t, list, 1)
		assert.Equal(t, "B-1001", list[0].InvoiceNumber)

		empty := testutil.DecodeData[[]invoiceapp.SummaryResponse](t,
			api.do(http.MethodGet, "/api/v1/invoices?warehouse_id="+uuid.NewString(), nil))
		assert.Empty(t, empty)
	})

	t.Run("duplicate number is rejected", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/v1/invoices", gin.H{
			"invoice_type":   "buy",
			"invoice_number": "B-1001",
			"invoice_date":   "2026-03-02",
			"warehouse_id":   f.warehouse,
		})
		testutil.AssertFailure(t, w, http.StatusConflict)
	})

	t.Run("checked flag", func(t *testing.T) {
		w := api.do(http.MethodPatch, "/api/v1/invoices/"+created.ID.String()+"/checked", gin.H{"checked": true})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		got := testutil.DecodeData[invoiceapp.InvoiceResponse](t, api.do(http.MethodGet, "/api/v1/invoices/"+created.ID.String(), nil))
		assert.True(t, got.Checked)
	})

	t.Run("delete", func(t *testing.T) {
		w := api.do(http.MethodDelete, "/api/v1/invoices/"+created.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		testutil.AssertFailure(t, api.do(http.MethodGet, "/api/v1/invoices/"+created.ID.String(), nil), http.StatusNotFound)
	})
}

func TestAPI_ValidationErrors(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name string
		path string
		body any
	}{
		{"missing farm name", "/api/v1/farms", gin.H{"location": "nowhere"}},
		{"unknown invoice type", "/api/v1/invoices", gin.H{
			"invoice_type": "gift", "invoice_number": "X", "invoice_date": "2026-01-01", "warehouse_id": uuid.New(),
		}},
		{"bad date", "/api/v1/invoices", gin.H{
			"invoice_type": "sell", "invoice_number": "X", "invoice_date": "01/02/2026", "warehouse_id": uuid.New(),
		}},
		{"negative quantity", "/api/v1/invoices", gin.H{
			"invoice_type": "sell", "invoice_number": "X", "invoice_date": "2026-01-01", "warehouse_id": uuid.New(),
			"items": []gin.H{{"quantity": "-1", "price": "1"}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertFailure(t, api.do(http.MethodPost, tt.path, tt.body), http.StatusBadRequest)
		})
	}

	t.Run("malformed id", func(t *testing.T) {
		testutil.AssertFailure(t, api.do(http.MethodGet, "/api/v1/farms/not-a-uuid", nil), http.StatusBadRequest)
	})
}

func TestAPI_PageCacheInvalidation(t *testing.T) {
	api := newTestAPI(t)
	api.create("/api/v1/farms", gin.H{"name": "First"})

	first := api.do(http.MethodGet, "/api/v1/farms", nil)
	assert.Equal(t, "MISS", first.Header().Get(middleware.CacheStatusHeader))
	second := api.do(http.MethodGet, "/api/v1/farms", nil)
	assert.Equal(t, "HIT", second.Header().Get(middleware.CacheStatusHeader))
	assert.Equal(t, first.Body.String(), second.Body.String())

	api.create("/api/v1/farms", gin.H{"name": "Second"})

	third := api.do(http.MethodGet, "/api/v1/farms", nil)
	assert.Equal(t, "MISS", third.Header().Get(middleware.CacheStatusHeader))
	farms := testutil.DecodeData[[]idData](t, third)
	assert.Len(t, farms, 2)
}

func TestAPI_AdminRoutes(t *testing.T) {
	api := newTestAPI(t)
	farmer := api.seedProfile("farmer@farms.test", identity.RoleFarmer)

	t.Run("admin lists users", func(t *testing.T) {
		users := testutil.DecodeData[[]idData](t, api.do(http.MethodGet, "/api/v1/admin/users", nil))
		assert.Len(t, users, 2)
	})

	t.Run("farmer is forbidden even with a forged admin claim", func(t *testing.T) {
		w := api.doAs(api.tokenFor(farmer, "admin"), http.MethodGet, "/api/v1/admin/users", nil)
		testutil.AssertFailure(t, w, http.StatusForbidden)
	})

	t.Run("cached admin page is not served to a farmer", func(t *testing.T) {
		require.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/v1/admin/users", nil).Code)
		w := api.doAs(api.tokenFor(farmer, "farmer"), http.MethodGet, "/api/v1/admin/users", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin cannot delete itself", func(t *testing.T) {
		w := api.do(http.MethodDelete, "/api/v1/admin/users/"+api.admin.String(), nil)
		assert.False(t, testutil.DecodeResult(t, w).Success)
	})

	t.Run("role change takes effect on the next request", func(t *testing.T) {
		w := api.do(http.MethodPatch, "/api/v1/admin/users/"+farmer.String()+"/role", gin.H{"user_role": "admin"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = api.doAs(api.tokenFor(farmer, "farmer"), http.MethodGet, "/api/v1/admin/users", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAPI_Attachments(t *testing.T) {
	api := newTestAPI(t)
	f := api.seedReferences()
	invoiceID := api.create("/api/v1/invoices", gin.H{
		"invoice_type":   "sell",
		"invoice_number": "S-1",
		"invoice_date":   "2026-03-01",
		"warehouse_id":   f.warehouse,
	})

	upload := func(contentType string) *httptest.ResponseRecorder {
		var body bytes.Buffer
		mw := multipart.NewWriter(&body)
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="file"; filename="receipt.pdf"`)
		header.Set("Content-Type", contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 receipt"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/"+invoiceID.String()+"/attachments", &body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("Authorization", "Bearer "+api.token)
		w := httptest.NewRecorder()
		api.engine.ServeHTTP(w, req)
		return w
	}

	w := upload("application/pdf")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 1, api.blobs.Len())

	list := testutil.DecodeData[[]idData](t, api.do(http.MethodGet, "/api/v1/invoices/"+invoiceID.String()+"/attachments", nil))
	assert.Len(t, list, 1)

	t.Run("disallowed content type", func(t *testing.T) {
		testutil.AssertFailure(t, upload("application/x-msdownload"), http.StatusBadRequest)
		assert.Equal(t, 1, api.blobs.Len())
	})

	t.Run("deleting the invoice removes its blobs", func(t *testing.T) {
		require.Equal(t, http.StatusOK, api.do(http.MethodDelete, "/api/v1/invoices/"+invoiceID.String(), nil).Code)
		assert.Equal(t, 0, api.blobs.Len())
	})
}

func TestAPI_PrintingDisabled(t *testing.T) {
	api := newTestAPI(t)
	f := api.seedReferences()
	invoiceID := api.create("/api/v1/invoices", gin.H{
		"invoice_type":   "buy",
		"invoice_number": "B-9",
		"invoice_date":   "2026-03-01",
		"warehouse_id":   f.warehouse,
	})

	w := api.do(http.MethodGet, "/api/v1/invoices/"+invoiceID.String()+"/pdf", nil)
	testutil.AssertFailure(t, w, http.StatusUnprocessableEntity)
}
