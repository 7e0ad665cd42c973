package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS applies the quote form's open cross-origin policy. The form is served
// from the marketing site and from local previews, so any origin may POST.
// Every response also carries a wildcard allow-origin header, matching what
// non-browser clients of the endpoint already rely on.
func CORS() func(http.Handler) http.Handler {
	base := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}).Handler

	return func(next http.Handler) http.Handler {
		return base(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Non-browser clients probe without an Origin header, so the
			// cors handler above leaves these unset.
			if w.Header().Get("Access-Control-Allow-Origin") == "" {
				w.Header().Set("Access-Control-Allow-Origin", "*")
				w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type")
			}
			next.ServeHTTP(w, r)
		}))
	}
}
