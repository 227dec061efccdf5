package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oldenfyre/inventory-console/internal/http/handlers"
)

// NewRouter wires the console's routes. Everything under /console
// requires a live session; the auth routes are open so the operator can
// get one.
func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Post("/auth/login", handlers.LoginHandler)
	r.Post("/auth/logout", handlers.LogoutHandler)
	r.Get("/auth/session", handlers.SessionHandler)

	r.Route("/console", func(r chi.Router) {
		r.Use(RequireSession)

		r.Get("/products", handlers.GetProductsHandler)
		r.Post("/products", handlers.CreateProductHandler)
		r.Get("/products/{code}", handlers.GetProductByCodeHandler)
		r.Put("/products/{code}", handlers.UpdateProductHandler)
		r.Delete("/products/{code}", handlers.DeleteProductHandler)

		r.Get("/orders", handlers.GetOrdersHandler)
		r.Post("/orders", handlers.CreateOrderHandler)
		r.Post("/orders/preview", handlers.PreviewOrderHandler)
		r.Get("/orders/{code}", handlers.GetOrderByCodeHandler)
		r.Put("/orders/{code}", handlers.UpdateOrderHandler)
		r.Delete("/orders/{code}", handlers.DeleteOrderHandler)
		r.Patch("/orders/{code}/status", handlers.UpdateOrderStatusHandler)

		r.Get("/inventory", handlers.GetInventoryHandler)
		r.Get("/dashboard", handlers.GetDashboardHandler)
	})

	return r
}
