package handlers

import (
	"github.com/oldenfyre/inventory-console/internal/remote"
	"github.com/oldenfyre/inventory-console/internal/session"
	"github.com/oldenfyre/inventory-console/internal/view"
)

var (
	client            *remote.Client
	gate              *session.Gate
	lowStockThreshold = view.DefaultLowStockThreshold
)

// SetClient injects the remote API client.
func SetClient(c *remote.Client) {
	client = c
}

// SetGate injects the session gate used by the auth handlers.
func SetGate(g *session.Gate) {
	gate = g
}

// SetLowStockThreshold overrides the default low-stock threshold.
func SetLowStockThreshold(n int) {
	if n > 0 {
		lowStockThreshold = n
	}
}

// requireGate returns the gate or panics. Handling an auth request with
// no gate wired is a programming error, not a runtime condition.
func requireGate() *session.Gate {
	if gate == nil {
		panic("handlers: auth handler used before SetGate")
	}
	return gate
}
