package httpapi

import (
	"net/http"
	"net/netip"
	"strings"
)

// resolveClientIP prefers the first X-Forwarded-For hop, then X-Real-IP,
// then the socket peer. Unparseable values are skipped.
func resolveClientIP(r *http.Request) string {
	for _, raw := range []string{
		r.Header.Get("X-Forwarded-For"),
		r.Header.Get("X-Real-IP"),
		r.RemoteAddr,
	} {
		if addr, ok := parseClientAddr(raw); ok {
			return addr.String()
		}
	}
	return ""
}

func parseClientAddr(raw string) (netip.Addr, bool) {
	first, _, _ := strings.Cut(raw, ",")
	first = strings.TrimSpace(first)
	if first == "" {
		return netip.Addr{}, false
	}
	if ap, err := netip.ParseAddrPort(first); err == nil {
		return ap.Addr().Unmap(), true
	}
	addr, err := netip.ParseAddr(strings.Trim(first, "[]"))
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap(), true
}
