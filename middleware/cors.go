// ABOUTME: CORS middleware for the browser frontend.
// ABOUTME: Handles preflight OPTIONS and adds the required headers.

package middleware

import "net/http"

// CORS adds CORS headers to responses and answers OPTIONS preflight
// requests directly without calling the wrapped handler.
func CORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}
