package platform

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FlavioOdas/store-graphql/internal/cookies"
)

func TestClient_BearerAuthAndDecode(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"orderFormId":"OF-1"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-token")
	var out struct {
		OrderFormID string `json:"orderFormId"`
	}
	if err := c.Get(context.Background(), "/api/checkout/pub/orderForm/OF-1", &out); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("Authorization: want bearer token, got %q", gotAuth)
	}
	if out.OrderFormID != "OF-1" {
		t.Errorf("decoded orderFormId: want OF-1, got %q", out.OrderFormID)
	}
}

func TestClient_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "order form not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "token")
	err := c.Get(context.Background(), "/api/checkout/pub/orderForm/missing", nil)
	if err == nil {
		t.Fatal("expected error for 404, got nil")
	}
}

func TestClient_ForwardsUpstreamCookies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: cookies.CheckoutCookie, Value: "__ofid=OF-1", Path: "/"})
		http.SetCookie(w, &http.Cookie{Name: "janus_sid", Value: "abc", Path: "/"})
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	rec := httptest.NewRecorder()
	ctx := cookies.WithForwarder(context.Background(), cookies.NewForwarder(rec, "store.example.com"))

	c := NewClient(srv.URL, "token")
	if err := c.Get(ctx, "/api/checkout/pub/orderForm/OF-1", nil); err != nil {
		t.Fatalf("Get: %v", err)
	}

	set := rec.Result().Cookies()
	if len(set) != 1 {
		t.Fatalf("expected 1 sanitized cookie, got %d", len(set))
	}
	if set[0].Name != cookies.CheckoutCookie || set[0].Domain != "store.example.com" {
		t.Errorf("forwarded cookie unexpected: %+v", set[0])
	}
}

func TestClient_PostSendsJSONBody(t *testing.T) {
	var gotContentType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "token")
	err := c.Post(context.Background(), "/api/checkout/pub/orderForm/OF-1/items", map[string]string{"k": "v"}, nil)
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type: want application/json, got %q", gotContentType)
	}
	if string(gotBody) != `{"k":"v"}` {
		t.Errorf("body: want {\"k\":\"v\"}, got %s", gotBody)
	}
}
