package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-tracker/internal/domain/todo"
)

// TodoService defines the service port for todo operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type TodoService interface {
	// List returns todos matching the given filter criteria in store-native
	// order. Pass a zero-value Filter to list all todos.
	List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)

	// Get returns a single todo by ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	Get(ctx context.Context, id int64) (*todo.Todo, error)

	// Agenda returns the todos whose due date exactly equals the given
	// normalized date. An absent (zero) date matches nothing.
	Agenda(ctx context.Context, date todo.Date) ([]todo.Todo, error)

	// Create inserts a new todo with its caller-assigned ID and returns the
	// stored entity.
	// Returns domain.ErrValidation if the todo fails validation and
	// domain.ErrConflict if the ID is already taken.
	Create(ctx context.Context, t *todo.Todo) (*todo.Todo, error)

	// Update merges the patch over the stored todo identified by id, persists
	// the result, and returns it together with the label of the field the
	// confirmation should name ("Todo", "Status", "Category", "Due Date",
	// or "Priority").
	// Returns domain.ErrNotFound if the todo does not exist.
	Update(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, string, error)

	// Delete removes the todo with the given ID.
	// Returns domain.ErrNotFound if the todo does not exist.
	Delete(ctx context.Context, id int64) error
}
