package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/oldenfyre/inventory-console/internal/http/handlers"
	"github.com/oldenfyre/inventory-console/internal/models"
	"github.com/oldenfyre/inventory-console/internal/remote"
	"github.com/oldenfyre/inventory-console/internal/session"
)

const testPassword = "secret123"

// setupConsole points the handlers at a fake backend and a fresh gate,
// returning the wired router.
func setupConsole(t *testing.T, upstream http.Handler) http.Handler {
	t.Helper()

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)
	handlers.SetClient(remote.New(srv.URL, 2*time.Second))

	store := session.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	g := session.New(store, testPassword, time.Hour, time.Minute)
	handlers.SetGate(g)
	SetGate(g)

	return NewRouter()
}

func envelope(w http.ResponseWriter, data any) {
	json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"message": "ok",
		"data":    data,
	})
}

func envelopeFail(w http.ResponseWriter, message string) {
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}

func login(t *testing.T, r http.Handler) {
	t.Helper()
	w := postJSON(r, "/auth/login", map[string]string{"password": testPassword})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", w.Code, w.Body.String())
	}
}

func postJSON(r http.Handler, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	var resp struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success response, got message %q", resp.Message)
	}
	if out != nil {
		if err := json.Unmarshal(resp.Data, out); err != nil {
			t.Fatalf("error decoding data: %v", err)
		}
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	r := setupConsole(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {}))

	tests := []struct {
		name     string
		password string
	}{
		{"wrong password", "nope"},
		{"empty password", ""},
		{"wrong case", "Secret123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/auth/login", map[string]string{"password": tt.password})
			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", w.Code)
			}
		})
	}

	// The failed attempts must not have opened a session.
	w := get(r, "/auth/session")
	var sess handlers.SessionResult
	decodeData(t, w, &sess)
	if sess.Authenticated {
		t.Error("failed logins must leave the gate unauthenticated")
	}
}

func TestLoginLogoutFlow(t *testing.T) {
	r := setupConsole(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		envelope(w, []models.Product{})
	}))

	// Protected routes are closed before login.
	if w := get(r, "/console/products"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 before login, got %d", w.Code)
	}

	login(t, r)

	if w := get(r, "/console/products"); w.Code != http.StatusOK {
		t.Fatalf("expected 200 after login, got %d", w.Code)
	}

	if w := postJSON(r, "/auth/logout", nil); w.Code != http.StatusOK {
		t.Fatalf("logout failed with %d", w.Code)
	}
	if w := get(r, "/console/products"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", w.Code)
	}
}

func TestRequireSessionPanicsWithoutGate(t *testing.T) {
	r := setupConsole(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {}))
	SetGate(nil)

	defer func() {
		if recover() == nil {
			t.Error("expected a panic when the middleware has no gate")
		}
	}()
	get(r, "/console/products")
}

func TestGetProductsFiltersAndFormats(t *testing.T) {
	discount := 10.0
	r := setupConsole(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		envelope(w, []models.Product{
			{Code: "P-001", Name: "Widget", Category: "Tools", Status: models.ProductActive, Quantity: 7,
				Pricing: models.Pricing{Buy: 1000, Sell: 1500, Discount: &discount}},
			{Code: "P-002", Name: "Gadget", Category: "Tools", Status: models.ProductInactive, Quantity: 0,
				Pricing: models.Pricing{Buy: 10, Sell: 20}},
		})
	}))
	login(t, r)

	w := get(r, "/console/products?search=widget&status=active")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var rows []handlers.ProductRow
	decodeData(t, w, &rows)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.Code != "P-001" {
		t.Errorf("expected P-001, got %s", row.Code)
	}
	if row.Price != "৳1,500.00" {
		t.Errorf("unexpected formatted price: %q", row.Price)
	}
	if row.Stock != "in_stock" || row.StockColor != "green" {
		t.Errorf("unexpected stock derivation: %+v", row)
	}
	if row.Discount != "10.0%" {
		t.Errorf("unexpected discount: %q", row.Discount)
	}

	// The inactive product is reachable with the right filter.
	w = get(r, "/console/products?status=inactive")
	decodeData(t, w, &rows)
	if len(rows) != 1 || rows[0].Stock != "out_of_stock" {
		t.Fatalf("expected the out-of-stock inactive product, got %+v", rows)
	}
}

func TestUpstreamFailurePassesMessageThrough(t *testing.T) {
	r := setupConsole(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		envelopeFail(w, "Product not found")
	}))
	login(t, r)

	w := get(r, "/console/products/NOPE")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var resp handlers.Response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Success {
		t.Error("expected a failure envelope")
	}
	if resp.Message != "Product not found" {
		t.Errorf("expected the upstream message verbatim, got %q", resp.Message)
	}
}

func TestCreateProductValidation(t *testing.T) {
	r := setupConsole(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		t.Error("invalid product must not reach the backend")
	}))
	login(t, r)

	w := postJSON(r, "/console/products", models.CreateProductRequest{Name: "", Category: "Tools"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var errs []handlers.ValidationError
	if err := json.NewDecoder(w.Body).Decode(&errs); err != nil {
		t.Fatalf("error decoding validation errors: %v", err)
	}
	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
	}
	if !fields["Name"] || !fields["Pricing.Sell"] {
		t.Errorf("expected Name and Pricing.Sell errors, got %+v", errs)
	}
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	r := setupConsole(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		t.Error("invalid status must not reach the backend")
	}))
	login(t, r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/console/orders/ORD-1/status",
		bytes.NewBufferString(`{"status":"teleported"}`))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPreviewOrderTotals(t *testing.T) {
	r := setupConsole(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {}))
	login(t, r)

	w := postJSON(r, "/console/orders/preview", handlers.PreviewRequest{
		Items: []models.OrderItem{
			{ProductCode: "P-1", Quantity: 3, Price: 100},
		},
		Discount: 50,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var preview handlers.PreviewResult
	decodeData(t, w, &preview)
	if preview.Subtotal != 300 || preview.Final != 250 {
		t.Errorf("unexpected totals: %+v", preview)
	}
	if preview.FinalFormatted != "৳250.00" {
		t.Errorf("unexpected formatted final: %q", preview.FinalFormatted)
	}

	// Discount larger than the subtotal clamps at zero.
	w = postJSON(r, "/console/orders/preview", handlers.PreviewRequest{
		Items:    []models.OrderItem{{ProductCode: "P-1", Quantity: 1, Price: 10}},
		Discount: 50,
	})
	decodeData(t, w, &preview)
	if preview.Final != 0 {
		t.Errorf("expected final clamped to 0, got %v", preview.Final)
	}
}

func TestInventoryDerivesAndSorts(t *testing.T) {
	r := setupConsole(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/dashboard/inventory-alerts" {
			t.Errorf("unexpected path %s", req.URL.Path)
		}
		envelope(w, models.InventoryAlerts{
			LowStock: models.AlertBucket{Count: 1, Products: []models.AlertProduct{
				{Code: "P-2", Name: "Nut", Quantity: 2, Status: models.ProductActive, Category: "Parts"},
			}},
			OutOfStock: models.AlertBucket{Count: 1, Products: []models.AlertProduct{
				{Code: "P-1", Name: "Bolt", Quantity: 0, Status: models.ProductActive, Category: "Parts"},
			}},
		})
	}))
	login(t, r)

	w := get(r, "/console/inventory")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var result handlers.InventoryResult
	decodeData(t, w, &result)
	if len(result.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(result.Items))
	}
	// Out-of-stock sorts ahead of low-stock regardless of bucket order.
	if result.Items[0].Code != "P-1" || result.Items[0].Status != "out_of_stock" {
		t.Errorf("expected P-1 out_of_stock first, got %+v", result.Items[0])
	}
	if result.Items[1].StockPercent != 40 {
		t.Errorf("expected 40%% stock for 2/5, got %v", result.Items[1].StockPercent)
	}
	if result.Alerts.LowStock.Count != 1 {
		t.Errorf("expected raw buckets passed through, got %+v", result.Alerts)
	}
}

func TestDashboardToleratesPartialFailure(t *testing.T) {
	r := setupConsole(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/dashboard/stats":
			envelope(w, models.DashboardStats{
				Products: models.ProductCounts{Total: 12, LowStock: 3},
			})
		case "/dashboard/recent-orders":
			if got := req.URL.Query().Get("limit"); got != "5" {
				t.Errorf("expected default limit 5, got %q", got)
			}
			envelope(w, map[string]any{"orders": []models.Order{{Code: "ORD-1", Status: models.OrderPending}}})
		case "/dashboard/inventory-alerts":
			envelopeFail(w, "alerts unavailable")
		default:
			t.Errorf("unexpected path %s", req.URL.Path)
		}
	}))
	login(t, r)

	w := get(r, "/console/dashboard")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var data handlers.DashboardData
	decodeData(t, w, &data)

	if data.Stats == nil || data.Stats.Products.Total != 12 {
		t.Errorf("expected stats despite the alerts failure, got %+v", data.Stats)
	}
	if len(data.Recent) != 1 || data.Recent[0].Code != "ORD-1" {
		t.Errorf("expected one recent order, got %+v", data.Recent)
	}
	if data.AlertsError != "alerts unavailable" {
		t.Errorf("expected the alerts slot error, got %q", data.AlertsError)
	}
	if data.Alerts != nil {
		t.Error("failed slot must not carry data")
	}
}

func TestDashboardConnectivityFailureSkipsRemainingFetches(t *testing.T) {
	recentServed := make(chan struct{})
	r := setupConsole(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/dashboard/recent-orders":
			envelope(w, map[string]any{"orders": []models.Order{{Code: "ORD-9", Status: models.OrderPending}}})
			close(recentServed)
		case "/dashboard/stats":
			// Fail at the transport level, but only after the recent
			// orders response is on the wire.
			<-recentServed
			time.Sleep(50 * time.Millisecond)
			panic(http.ErrAbortHandler)
		case "/dashboard/inventory-alerts":
			// Never answers; only the fan-out cancellation ends it.
			<-req.Context().Done()
		}
	}))
	login(t, r)

	w := get(r, "/console/dashboard")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var data handlers.DashboardData
	decodeData(t, w, &data)

	if len(data.Recent) != 1 || data.Recent[0].Code != "ORD-9" {
		t.Errorf("expected the recent orders that completed, got %+v", data.Recent)
	}
	if data.StatsError != "Unable to connect to the server. Please check your connection." {
		t.Errorf("expected the connectivity message on the failing slot, got %q", data.StatsError)
	}
	if data.AlertsError != "Skipped: the backend is unreachable." {
		t.Errorf("expected the cancelled slot marked skipped, got %q", data.AlertsError)
	}
	if data.Stats != nil || data.Alerts != nil {
		t.Error("failed slots must not carry data")
	}
}

func TestDashboardServesCachedSnapshotWhenEverythingFails(t *testing.T) {
	var mu sync.Mutex
	broken := false
	r := setupConsole(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		mu.Lock()
		down := broken
		mu.Unlock()
		if down {
			envelopeFail(w, "maintenance")
			return
		}
		switch req.URL.Path {
		case "/dashboard/stats":
			envelope(w, models.DashboardStats{Products: models.ProductCounts{Total: 42}})
		case "/dashboard/recent-orders":
			envelope(w, map[string]any{"orders": []models.Order{}})
		case "/dashboard/inventory-alerts":
			envelope(w, models.InventoryAlerts{})
		}
	}))
	login(t, r)

	if w := get(r, "/console/dashboard"); w.Code != http.StatusOK {
		t.Fatalf("priming fetch failed with %d", w.Code)
	}

	mu.Lock()
	broken = true
	mu.Unlock()

	w := get(r, "/console/dashboard")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		Success bool                   `json:"success"`
		Message string                 `json:"message"`
		Data    handlers.DashboardData `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	// Every slot failed with an application envelope, so the message
	// must not claim the backend is down.
	if resp.Message != "Showing the last loaded dashboard; the backend rejected every request." {
		t.Errorf("unexpected cached-snapshot message: %q", resp.Message)
	}
	if resp.Data.Stats == nil || resp.Data.Stats.Products.Total != 42 {
		t.Errorf("expected the cached stats, got %+v", resp.Data.Stats)
	}
}

func TestDashboardHonorsLimitParam(t *testing.T) {
	var mu sync.Mutex
	var gotLimit string
	r := setupConsole(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.Path {
		case "/dashboard/stats":
			envelope(w, models.DashboardStats{})
		case "/dashboard/recent-orders":
			mu.Lock()
			gotLimit = req.URL.Query().Get("limit")
			mu.Unlock()
			envelope(w, map[string]any{"orders": []models.Order{}})
		case "/dashboard/inventory-alerts":
			envelope(w, models.InventoryAlerts{})
		}
	}))
	login(t, r)

	if w := get(r, "/console/dashboard?limit=10"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	mu.Lock()
	defer mu.Unlock()
	if gotLimit != "10" {
		t.Errorf("expected limit=10 passed upstream, got %q", gotLimit)
	}
}
