package middleware

import (
	"net"
	"net/http"
	"strings"
)

// ClientIP devuelve la dirección del cliente en modo best-effort.
// El router ya aplica chi RealIP (X-Forwarded-For / X-Real-IP), así que
// RemoteAddr puede venir con o sin puerto. Si no hay nada usable => "unknown".
func ClientIP(r *http.Request) string {
	addr := strings.TrimSpace(r.RemoteAddr)
	if addr == "" {
		return "unknown"
	}

	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}

	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "unknown"
	}
	return addr
}
