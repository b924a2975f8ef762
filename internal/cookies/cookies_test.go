package cookies

import (
	"context"
	"net/http/httptest"
	"testing"
)

func TestSanitize_DropsNonWhitelistedCookies(t *testing.T) {
	raw := []string{
		"checkout.vtex.com=__ofid=OF-1; Path=/; Domain=platform.example.com",
		"janus_sid=abc123; Path=/",
		".ASPXAUTH=token; Path=/; HttpOnly",
		"VtexWorkspace=master; Path=/",
	}

	out := Sanitize(raw, "store.example.com")
	if len(out) != 2 {
		t.Fatalf("expected 2 cookies, got %d", len(out))
	}
	if out[0].Name != CheckoutCookie {
		t.Errorf("out[0].Name: want %q, got %q", CheckoutCookie, out[0].Name)
	}
	if out[1].Name != ".ASPXAUTH" {
		t.Errorf("out[1].Name: want .ASPXAUTH, got %q", out[1].Name)
	}
}

func TestSanitize_RewritesDomain(t *testing.T) {
	raw := []string{
		"checkout.vtex.com=__ofid=OF-1; Path=/; Domain=platform.example.com",
		".ASPXAUTH=token; Path=/",
	}

	for _, c := range Sanitize(raw, "store.example.com") {
		if c.Domain != "store.example.com" {
			t.Errorf("%s: domain not rewritten, got %q", c.Name, c.Domain)
		}
	}
}

func TestSanitize_EmptyInput(t *testing.T) {
	if out := Sanitize(nil, "store.example.com"); len(out) != 0 {
		t.Errorf("expected no cookies, got %v", out)
	}
}

func TestOrderFormID(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"__ofid=OF-1", "OF-1"},
		{"sc=1&__ofid=OF-2&other=x", "OF-2"},
		{"sc=1&other=x", ""},
		{"", ""},
		{"__ofid=", ""},
	}
	for _, tt := range tests {
		if got := OrderFormID(tt.value); got != tt.want {
			t.Errorf("OrderFormID(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestForwarder_SetsSanitizedCookiesOnResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	f := NewForwarder(rec, "store.example.com")

	f.Forward([]string{
		"checkout.vtex.com=__ofid=OF-1; Path=/",
		"janus_sid=abc123; Path=/",
	})

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 forwarded cookie, got %d", len(cookies))
	}
	if cookies[0].Name != CheckoutCookie {
		t.Errorf("cookie name: want %q, got %q", CheckoutCookie, cookies[0].Name)
	}
	if cookies[0].Domain != "store.example.com" {
		t.Errorf("cookie domain: want store.example.com, got %q", cookies[0].Domain)
	}
}

func TestForwardFromContext_NoForwarderIsNoOp(t *testing.T) {
	// Must not panic outside an HTTP request.
	ForwardFromContext(context.Background(), []string{"checkout.vtex.com=__ofid=OF-1"})
}

func TestForwardFromContext_UsesInstalledForwarder(t *testing.T) {
	rec := httptest.NewRecorder()
	ctx := WithForwarder(context.Background(), NewForwarder(rec, "store.example.com"))

	ForwardFromContext(ctx, []string{".ASPXAUTH=token; Path=/"})

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != ".ASPXAUTH" {
		t.Fatalf("expected forwarded .ASPXAUTH cookie, got %v", cookies)
	}
}

func TestOrderFormIDContext(t *testing.T) {
	if got := OrderFormIDFromContext(context.Background()); got != "" {
		t.Errorf("empty context: want \"\", got %q", got)
	}
	ctx := WithOrderFormID(context.Background(), "OF-1")
	if got := OrderFormIDFromContext(ctx); got != "OF-1" {
		t.Errorf("want OF-1, got %q", got)
	}
}
