package middleware

import (
	"net"
	"net/http"
	"strings"
)

// AllowList restringe el acceso por IP de cliente.
// Lista vacía = chequeo deshabilitado: la whitelist del diseño original
// quedó siempre vacía (un stub apagado que negaba todo); acá se modela
// como configuración explícita en vez de estado global.
// Corre después de chi RealIP, así r.RemoteAddr ya viene resuelto.
func AllowList(allowed []string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, ip := range allowed {
		if ip = strings.TrimSpace(ip); ip != "" {
			set[ip] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(set) == 0 {
				next.ServeHTTP(w, r)
				return
			}

			if _, ok := set[clientIP(r)]; !ok {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":"Access denied"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return host
}
