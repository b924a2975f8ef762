package httptransport

import (
	"net/http"

	"github.com/FlavioOdas/store-graphql/internal/cookies"
)

// CheckoutMiddleware wires the per-request cookie plumbing: it reads the
// order-form id from the inbound checkout cookie and installs a Forwarder so
// upstream Set-Cookie headers reach the client response sanitized and with
// their domain rewritten to Host.
type CheckoutMiddleware struct {
	// Host is the public host cookies are rewritten to.
	Host string
}

func (m CheckoutMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := cookies.WithForwarder(r.Context(), cookies.NewForwarder(w, m.Host))

		if c, err := r.Cookie(cookies.CheckoutCookie); err == nil {
			if id := cookies.OrderFormID(c.Value); id != "" {
				ctx = cookies.WithOrderFormID(ctx, id)
			}
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
