package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/FlavioOdas/store-graphql/internal/payments"
	"github.com/FlavioOdas/store-graphql/internal/platform"
)

// ---------------------------------------------------------------------------
// Mock-server helpers
// ---------------------------------------------------------------------------

type routeEntry struct {
	method  string // "" matches any method
	keyword string // substring searched in the request path
	status  int    // 0 means 200
	data    any    // JSON response body
}

// routingServer dispatches each incoming request to the first route whose
// keyword is found in the request path (and whose method matches, if set).
// Routes are evaluated in order; the first match wins. Hits per keyword are
// counted so tests can assert how many upstream calls a flow produced.
type routingServer struct {
	*httptest.Server

	mu   sync.Mutex
	hits map[string]int
}

func newRoutingServer(t *testing.T, routes []routeEntry) *routingServer {
	t.Helper()
	rs := &routingServer{hits: make(map[string]int)}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, route := range routes {
			if route.method != "" && route.method != r.Method {
				continue
			}
			if !strings.Contains(r.URL.Path, route.keyword) {
				continue
			}
			rs.mu.Lock()
			rs.hits[route.keyword]++
			rs.mu.Unlock()

			status := route.status
			if status == 0 {
				status = http.StatusOK
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_ = json.NewEncoder(w).Encode(route.data)
			return
		}
		t.Errorf("routingServer: no route matched %s %s", r.Method, r.URL.Path)
		http.Error(w, "no route", 500)
	}))
	t.Cleanup(rs.Close)
	return rs
}

func (rs *routingServer) Hits(keyword string) int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.hits[keyword]
}

// newSvc creates a real *Service with both clients aimed at srv.URL.
func newSvc(t *testing.T, srv *routingServer) *Service {
	t.Helper()
	pc := platform.NewClient(srv.URL, "test-token")
	gw := payments.NewClient(srv.URL, "gw-token")
	return NewService(pc, gw)
}

// ---------------------------------------------------------------------------
// Canned platform payloads
// ---------------------------------------------------------------------------

func orderFormResp(marketing map[string]any) map[string]any {
	resp := map[string]any{
		"orderFormId":  "OF-1",
		"salesChannel": "1",
		"value":        15000,
		"items": []map[string]any{
			{
				"id":           "sku-1",
				"uniqueId":     "uid-1",
				"quantity":     2,
				"seller":       "1",
				"price":        7500,
				"sellingPrice": 7500,
			},
		},
		"clientPreferencesData": map[string]any{"locale": "pt-BR"},
	}
	if marketing != nil {
		resp["marketingData"] = marketing
	}
	return resp
}

func sessionResp(public map[string]string) map[string]any {
	fields := map[string]any{}
	for k, v := range public {
		fields[k] = map[string]any{"value": v}
	}
	return map[string]any{
		"namespaces": map[string]any{"public": fields},
	}
}

// ---------------------------------------------------------------------------
// OrderForm
// ---------------------------------------------------------------------------

func TestOrderForm_MissingID(t *testing.T) {
	svc := newSvc(t, newRoutingServer(t, nil))

	_, err := svc.OrderForm(context.Background(), "")
	if err == nil {
		t.Fatal("expected input error, got nil")
	}
	if !IsInputError(err) {
		t.Errorf("expected InputError, got %T: %v", err, err)
	}
}

func TestOrderForm_NoSessionChanges_NoMarketingUpdate(t *testing.T) {
	// Session carries the same utm_source the form already stores; the
	// marketingData attachment must not be rewritten.
	srv := newRoutingServer(t, []routeEntry{
		{method: http.MethodGet, keyword: "/api/sessions", data: sessionResp(map[string]string{
			"utm_source": "newsletter",
			"locale":     "pt-BR",
		})},
		{method: http.MethodPost, keyword: "attachments/marketingData", data: orderFormResp(nil)},
		{method: http.MethodGet, keyword: "/orderForm/", data: orderFormResp(map[string]any{
			"utmSource": "newsletter",
		})},
	})
	svc := newSvc(t, srv)

	form, err := svc.OrderForm(context.Background(), "OF-1")
	if err != nil {
		t.Fatalf("OrderForm: %v", err)
	}
	if form.ID != "OF-1" {
		t.Errorf("form.ID: want OF-1, got %q", form.ID)
	}
	if got := srv.Hits("attachments/marketingData"); got != 0 {
		t.Errorf("marketingData updates: want 0, got %d", got)
	}
}

func TestOrderForm_SessionDiffers_MarketingUpdated(t *testing.T) {
	merged := orderFormResp(map[string]any{"utmSource": "social"})
	srv := newRoutingServer(t, []routeEntry{
		{method: http.MethodGet, keyword: "/api/sessions", data: sessionResp(map[string]string{
			"utm_source": "social",
			"locale":     "pt-BR",
		})},
		{method: http.MethodPost, keyword: "attachments/marketingData", data: merged},
		{method: http.MethodGet, keyword: "/orderForm/", data: orderFormResp(map[string]any{
			"utmSource": "newsletter",
		})},
	})
	svc := newSvc(t, srv)

	form, err := svc.OrderForm(context.Background(), "OF-1")
	if err != nil {
		t.Fatalf("OrderForm: %v", err)
	}
	if got := srv.Hits("attachments/marketingData"); got != 1 {
		t.Fatalf("marketingData updates: want 1, got %d", got)
	}
	if form.MarketingData == nil || form.MarketingData.UTMSource != "social" {
		t.Errorf("merged marketing data not returned: %+v", form.MarketingData)
	}
}

func TestOrderForm_SessionFailure_DegradesToEmpty(t *testing.T) {
	srv := newRoutingServer(t, []routeEntry{
		{method: http.MethodGet, keyword: "/api/sessions", status: http.StatusInternalServerError, data: map[string]any{}},
		{method: http.MethodGet, keyword: "/orderForm/", data: orderFormResp(nil)},
	})
	svc := newSvc(t, srv)

	form, err := svc.OrderForm(context.Background(), "OF-1")
	if err != nil {
		t.Fatalf("session failure must not fail the query: %v", err)
	}
	if form.ID != "OF-1" {
		t.Errorf("form.ID: want OF-1, got %q", form.ID)
	}
}

func TestOrderForm_LocaleMismatch_SyncsClientPreferences(t *testing.T) {
	synced := orderFormResp(nil)
	synced["clientPreferencesData"] = map[string]any{"locale": "en-US"}

	srv := newRoutingServer(t, []routeEntry{
		{method: http.MethodGet, keyword: "/api/sessions", data: sessionResp(map[string]string{"locale": "en-US"})},
		{method: http.MethodPost, keyword: "attachments/clientPreferencesData", data: synced},
		{method: http.MethodGet, keyword: "/orderForm/", data: orderFormResp(nil)},
	})
	svc := newSvc(t, srv)

	form, err := svc.OrderForm(context.Background(), "OF-1")
	if err != nil {
		t.Fatalf("OrderForm: %v", err)
	}
	if got := srv.Hits("attachments/clientPreferencesData"); got != 1 {
		t.Fatalf("clientPreferencesData updates: want 1, got %d", got)
	}
	if form.ClientPreferencesData == nil || form.ClientPreferencesData.Locale != "en-US" {
		t.Errorf("locale not synced: %+v", form.ClientPreferencesData)
	}
}

func TestOrderForm_LocaleSyncFailure_ReturnsOriginalForm(t *testing.T) {
	srv := newRoutingServer(t, []routeEntry{
		{method: http.MethodGet, keyword: "/api/sessions", data: sessionResp(map[string]string{"locale": "en-US"})},
		{method: http.MethodPost, keyword: "attachments/clientPreferencesData", status: http.StatusBadGateway, data: map[string]any{}},
		{method: http.MethodGet, keyword: "/orderForm/", data: orderFormResp(nil)},
	})
	svc := newSvc(t, srv)

	form, err := svc.OrderForm(context.Background(), "OF-1")
	if err != nil {
		t.Fatalf("locale sync failure must not fail the query: %v", err)
	}
	if form.ClientPreferencesData == nil || form.ClientPreferencesData.Locale != "pt-BR" {
		t.Errorf("expected original locale pt-BR, got %+v", form.ClientPreferencesData)
	}
}

func TestOrderForm_UpstreamFailurePropagates(t *testing.T) {
	srv := newRoutingServer(t, []routeEntry{
		{method: http.MethodGet, keyword: "/api/sessions", data: sessionResp(nil)},
		{method: http.MethodGet, keyword: "/orderForm/", status: http.StatusNotFound, data: map[string]any{"error": "not found"}},
	})
	svc := newSvc(t, srv)

	_, err := svc.OrderForm(context.Background(), "OF-missing")
	if err == nil {
		t.Fatal("expected upstream error, got nil")
	}
	if IsInputError(err) {
		t.Errorf("upstream failure must not be an InputError: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Orders
// ---------------------------------------------------------------------------

func TestOrders_List(t *testing.T) {
	srv := newRoutingServer(t, []routeEntry{
		{method: http.MethodGet, keyword: "/orders", data: map[string]any{
			"list": []map[string]any{
				{"orderId": "ord-1", "status": "invoiced", "value": 15000},
				{"orderId": "ord-2", "status": "canceled", "value": 2990},
			},
		}},
	})
	svc := newSvc(t, srv)

	orders, err := svc.Orders(context.Background())
	if err != nil {
		t.Fatalf("Orders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].OrderID != "ord-1" || orders[0].Value != 15000 {
		t.Errorf("orders[0] unexpected: %+v", orders[0])
	}
}

func TestCancelOrder(t *testing.T) {
	srv := newRoutingServer(t, []routeEntry{
		{method: http.MethodPost, keyword: "user-cancel-request", data: map[string]any{}},
	})
	svc := newSvc(t, srv)

	ok, err := svc.CancelOrder(context.Background(), "ord-1", "changed my mind")
	if err != nil {
		t.Fatalf("CancelOrder: %v", err)
	}
	if !ok {
		t.Error("expected cancellation accepted")
	}
	if got := srv.Hits("user-cancel-request"); got != 1 {
		t.Errorf("cancel requests: want 1, got %d", got)
	}
}

func TestCancelOrder_MissingID(t *testing.T) {
	svc := newSvc(t, newRoutingServer(t, nil))

	_, err := svc.CancelOrder(context.Background(), "", "reason")
	if !IsInputError(err) {
		t.Errorf("expected InputError, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Attachment setters
// ---------------------------------------------------------------------------

func TestUpdateOrderFormProfile_HitsProfileAttachment(t *testing.T) {
	srv := newRoutingServer(t, []routeEntry{
		{method: http.MethodPost, keyword: "attachments/clientProfileData", data: orderFormResp(nil)},
	})
	svc := newSvc(t, srv)

	form, err := svc.UpdateOrderFormProfile(context.Background(), "OF-1", ClientProfileData{Email: "a@b.com"})
	if err != nil {
		t.Fatalf("UpdateOrderFormProfile: %v", err)
	}
	if form.ID != "OF-1" {
		t.Errorf("form.ID: want OF-1, got %q", form.ID)
	}
	if got := srv.Hits("attachments/clientProfileData"); got != 1 {
		t.Errorf("profile updates: want 1, got %d", got)
	}
}

func TestUpdateOrderFormShipping_HitsShippingAttachment(t *testing.T) {
	srv := newRoutingServer(t, []routeEntry{
		{method: http.MethodPost, keyword: "attachments/shippingData", data: orderFormResp(nil)},
	})
	svc := newSvc(t, srv)

	form, err := svc.UpdateOrderFormShipping(context.Background(), "OF-1", Address{PostalCode: "01310-000"})
	if err != nil {
		t.Fatalf("UpdateOrderFormShipping: %v", err)
	}
	if form.ID != "OF-1" {
		t.Errorf("form.ID: want OF-1, got %q", form.ID)
	}
	if got := srv.Hits("attachments/shippingData"); got != 1 {
		t.Errorf("shipping updates: want 1, got %d", got)
	}
}

func TestUpdateOrderFormPayment_HitsPaymentAttachment(t *testing.T) {
	srv := newRoutingServer(t, []routeEntry{
		{method: http.MethodPost, keyword: "attachments/paymentData", data: orderFormResp(nil)},
	})
	svc := newSvc(t, srv)

	form, err := svc.UpdateOrderFormPayment(context.Background(), "OF-1", []PaymentInput{
		{PaymentSystem: "2", ReferenceValue: 15000, Value: 15000, Installments: 1},
	})
	if err != nil {
		t.Fatalf("UpdateOrderFormPayment: %v", err)
	}
	if form.ID != "OF-1" {
		t.Errorf("form.ID: want OF-1, got %q", form.ID)
	}
	if got := srv.Hits("attachments/paymentData"); got != 1 {
		t.Errorf("payment updates: want 1, got %d", got)
	}
}

func TestUpdateOrderFormCheckin_RefetchesForm(t *testing.T) {
	srv := newRoutingServer(t, []routeEntry{
		{method: http.MethodPost, keyword: "/checkIn", data: map[string]any{}},
		{method: http.MethodGet, keyword: "/orderForm/", data: orderFormResp(nil)},
	})
	svc := newSvc(t, srv)

	form, err := svc.UpdateOrderFormCheckin(context.Background(), "OF-1", CheckinInput{
		IsCheckedIn:   true,
		PickupPointID: "store-42",
	})
	if err != nil {
		t.Fatalf("UpdateOrderFormCheckin: %v", err)
	}
	if form.ID != "OF-1" {
		t.Errorf("form.ID: want OF-1, got %q", form.ID)
	}
	if got := srv.Hits("/checkIn"); got != 1 {
		t.Errorf("checkin calls: want 1, got %d", got)
	}
	if got := srv.Hits("/orderForm/"); got != 1 {
		t.Errorf("re-fetches: want 1, got %d", got)
	}
}

// ---------------------------------------------------------------------------
// Payments
// ---------------------------------------------------------------------------

func TestCreatePaymentSessionAndTokens(t *testing.T) {
	srv := newRoutingServer(t, []routeEntry{
		{method: http.MethodPost, keyword: "/tokens", data: map[string]any{
			"tokens": []map[string]any{
				{"token": "tok-1", "bin": "411111", "lastDigits": "1111"},
			},
		}},
		{method: http.MethodPost, keyword: "/sessions", data: map[string]any{
			"id": "ps-1", "expiresAt": "2026-09-01T00:00:00Z",
		}},
	})
	svc := newSvc(t, srv)

	session, err := svc.CreatePaymentSession(context.Background())
	if err != nil {
		t.Fatalf("CreatePaymentSession: %v", err)
	}
	if session.ID != "ps-1" {
		t.Errorf("session.ID: want ps-1, got %q", session.ID)
	}

	tokens, err := svc.CreatePaymentTokens(context.Background(), session.ID, []PaymentTokenRequest{
		{PaymentSystem: "2", CardHolder: "J Doe", CardNumber: "4111111111111111", CSC: "123", ExpiryDate: "12/30"},
	})
	if err != nil {
		t.Fatalf("CreatePaymentTokens: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Token != "tok-1" {
		t.Errorf("tokens unexpected: %+v", tokens)
	}
}

func TestCreatePaymentTokens_MissingSession(t *testing.T) {
	svc := newSvc(t, newRoutingServer(t, nil))

	_, err := svc.CreatePaymentTokens(context.Background(), "", []PaymentTokenRequest{{PaymentSystem: "2"}})
	if !IsInputError(err) {
		t.Errorf("expected InputError, got %v", err)
	}
}
