package httptransport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FlavioOdas/store-graphql/internal/cookies"
)

func TestCheckoutMiddleware_ExtractsOrderFormID(t *testing.T) {
	var gotID string
	handler := CheckoutMiddleware{Host: "store.example.com"}.Wrap(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID = cookies.OrderFormIDFromContext(r.Context())
		}),
	)

	req := httptest.NewRequest(http.MethodPost, "/query", nil)
	req.AddCookie(&http.Cookie{Name: cookies.CheckoutCookie, Value: "__ofid=OF-1"})
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if gotID != "OF-1" {
		t.Errorf("order-form id: want OF-1, got %q", gotID)
	}
}

func TestCheckoutMiddleware_NoCookie(t *testing.T) {
	var gotID string
	handler := CheckoutMiddleware{Host: "store.example.com"}.Wrap(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID = cookies.OrderFormIDFromContext(r.Context())
		}),
	)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/query", nil))

	if gotID != "" {
		t.Errorf("order-form id: want empty, got %q", gotID)
	}
}

func TestCheckoutMiddleware_InstallsForwarder(t *testing.T) {
	rec := httptest.NewRecorder()
	handler := CheckoutMiddleware{Host: "store.example.com"}.Wrap(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookies.ForwardFromContext(r.Context(), []string{
				"checkout.vtex.com=__ofid=OF-2; Path=/; Domain=platform.example.com",
			})
		}),
	)

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/query", nil))

	set := rec.Result().Cookies()
	if len(set) != 1 {
		t.Fatalf("expected 1 forwarded cookie, got %d", len(set))
	}
	if set[0].Domain != "store.example.com" {
		t.Errorf("cookie domain: want store.example.com, got %q", set[0].Domain)
	}
}
