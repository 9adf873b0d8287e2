package mw

import (
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/floos/floos/internal/logger"
)

// AllowOnlyCIDRS gates a route to clients inside the given CIDR list. An
// empty list does NOT filter (passthrough). Bare IPs are accepted as
// single-address prefixes. trustProxy resolves the client from the first
// X-Forwarded-For hop when set.
func AllowOnlyCIDRS(allowed []string, trustProxy bool, log logger.Logger) func(http.Handler) http.Handler {
	prefixes := make([]netip.Prefix, 0, len(allowed))
	for _, rule := range allowed {
		rule = strings.TrimSpace(rule)
		if p, err := netip.ParsePrefix(rule); err == nil {
			prefixes = append(prefixes, p)
			continue
		}
		if a, err := netip.ParseAddr(rule); err == nil {
			prefixes = append(prefixes, netip.PrefixFrom(a, a.BitLen()))
			continue
		}
		log.Warnf("AllowOnlyCIDRS: ignoring invalid rule %q", rule)
	}

	if len(prefixes) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			addr, err := netip.ParseAddr(clientIP(r, trustProxy))
			if err != nil {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			addr = addr.Unmap()

			for _, p := range prefixes {
				if p.Contains(addr) {
					next.ServeHTTP(w, r)
					return
				}
			}

			log.Debugf("AllowOnlyCIDRS: %s rejected", addr)
			w.WriteHeader(http.StatusForbidden)
		})
	}
}

func clientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			if i := strings.IndexByte(xff, ','); i >= 0 {
				xff = xff[:i]
			}
			return strings.TrimSpace(xff)
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
