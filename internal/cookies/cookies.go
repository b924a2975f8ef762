package cookies

import (
	"net/http"
	"strings"
)

// CheckoutCookie is the platform cookie that carries the active order-form
// id in its "__ofid" field.
const CheckoutCookie = "checkout.vtex.com"

// forwarded lists the only upstream cookies re-emitted to the storefront.
// Everything else the platform sets is dropped.
var forwarded = []string{
	CheckoutCookie,
	".ASPXAUTH",
}

func isForwarded(name string) bool {
	for _, n := range forwarded {
		if name == n {
			return true
		}
	}
	return false
}

// Sanitize parses raw Set-Cookie lines received from the platform, keeps
// only the whitelisted cookies and rewrites their domain to host, since the
// storefront talks to this service rather than to the platform directly.
func Sanitize(raw []string, host string) []*http.Cookie {
	header := http.Header{}
	for _, line := range raw {
		header.Add("Set-Cookie", line)
	}
	parsed := (&http.Response{Header: header}).Cookies()

	out := make([]*http.Cookie, 0, len(parsed))
	for _, c := range parsed {
		if !isForwarded(c.Name) {
			continue
		}
		c.Domain = host
		out = append(out, c)
	}
	return out
}

// OrderFormID extracts the order-form id from a checkout cookie value of the
// form "__ofid=<id>" (possibly among other "&"-separated fields).
func OrderFormID(cookieValue string) string {
	for _, field := range strings.Split(cookieValue, "&") {
		if v, ok := strings.CutPrefix(field, "__ofid="); ok {
			return v
		}
	}
	return ""
}
