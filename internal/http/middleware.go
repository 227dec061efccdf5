package http

import (
	"net/http"

	"github.com/oldenfyre/inventory-console/internal/session"
)

var gate *session.Gate

// SetGate injects the session gate the middleware checks.
func SetGate(g *session.Gate) {
	gate = g
}

// RequireSession rejects requests made without a valid session. Routing
// through it before a gate has been injected is a wiring bug, so it
// panics rather than answering.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gate == nil {
			panic("http: RequireSession used before SetGate")
		}
		if !gate.Authenticated() {
			http.Error(w, "not authenticated", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
