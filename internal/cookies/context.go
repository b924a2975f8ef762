package cookies

import (
	"context"
	"net/http"
	"sync"
)

type forwarderKey struct{}

type orderFormIDKey struct{}

// Forwarder re-emits sanitized upstream cookies on the client response.
// Safe for concurrent use: parallel upstream calls may forward cookies from
// separate goroutines of the same request.
type Forwarder struct {
	mu   sync.Mutex
	w    http.ResponseWriter
	host string
}

func NewForwarder(w http.ResponseWriter, host string) *Forwarder {
	return &Forwarder{w: w, host: host}
}

// Forward sanitizes raw Set-Cookie lines and sets the survivors on the
// outgoing response. Must be called before the response body is written.
func (f *Forwarder) Forward(raw []string) {
	if f == nil || len(raw) == 0 {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range Sanitize(raw, f.host) {
		http.SetCookie(f.w, c)
	}
}

func WithForwarder(ctx context.Context, f *Forwarder) context.Context {
	return context.WithValue(ctx, forwarderKey{}, f)
}

// ForwardFromContext forwards raw Set-Cookie lines through the request's
// Forwarder, if one is installed. Outside an HTTP request (tests, scripts)
// it is a no-op.
func ForwardFromContext(ctx context.Context, raw []string) {
	if f, ok := ctx.Value(forwarderKey{}).(*Forwarder); ok {
		f.Forward(raw)
	}
}

func WithOrderFormID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, orderFormIDKey{}, id)
}

// OrderFormIDFromContext returns the order-form id parsed from the inbound
// checkout cookie, or "" when the request carried none.
func OrderFormIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(orderFormIDKey{}).(string); ok {
		return id
	}
	return ""
}
