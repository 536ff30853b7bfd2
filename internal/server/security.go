package server

import (
	"net/http"
	"strconv"
)

// SecurityConfig controls the headers and CORS policy the benchmark
// server's HTTP endpoints apply to every response.
type SecurityConfig struct {
	EnableCORS     bool
	AllowedOrigins []string
	AllowedMethods []string
}

// DefaultSecurityConfig is permissive enough for local benchmarking: CORS
// open to any origin, GET/OPTIONS only.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}
}

// SecurityMiddleware sets baseline security headers on every response,
// applies config's CORS policy, and short-circuits OPTIONS preflight
// requests with 204 No Content.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin, ok := allowedOrigin(config, r.Header.Get("Origin")); ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Methods", joinComma(config.AllowedMethods))
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(86400))
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

// allowedOrigin reports the Access-Control-Allow-Origin value to send, if
// any. A wildcard entry matches unconditionally, including a request with
// no Origin header at all.
func allowedOrigin(config SecurityConfig, origin string) (string, bool) {
	for _, allowed := range config.AllowedOrigins {
		if allowed == "*" {
			return "*", true
		}
		if allowed == origin && origin != "" {
			return origin, true
		}
	}
	return "", false
}

func joinComma(items []string) string {
	out := ""
	for i, s := range items {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}
