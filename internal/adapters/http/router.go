// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-tracker/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Resource paths carry a
// trailing slash.
func NewRouter(
	todoHandler *handlers.TodoHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints.
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// Todo CRUD.
	r.Get("/todos/", todoHandler.ListTodos)
	r.Post("/todos/", todoHandler.CreateTodo)
	r.Get("/todos/{todoId}/", todoHandler.GetTodo)
	r.Put("/todos/{todoId}/", todoHandler.UpdateTodo)
	r.Delete("/todos/{todoId}/", todoHandler.DeleteTodo)

	// Agenda view over due dates.
	r.Get("/agenda/", todoHandler.Agenda)

	return r
}
