package ports

import (
	"context"

	"github.com/jsamuelsen11/todo-tracker/internal/domain/todo"
)

// TodoRepository defines the storage port for todo persistence.
// Implemented by the postgres and sqlite adapters; called by the application
// layer. Each method issues a single statement against the store and relies
// on the store's own concurrency control.
type TodoRepository interface {
	// List returns todos whose fields each contain the corresponding filter
	// value as a substring, in store-native order. Empty filter values match
	// every row, including rows with no due date.
	List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)

	// GetByID returns the todo with the given ID.
	// Returns domain.ErrNotFound if no row matches.
	GetByID(ctx context.Context, id int64) (*todo.Todo, error)

	// ListByDueDate returns todos whose due date exactly equals date.
	// A zero date matches no rows.
	ListByDueDate(ctx context.Context, date todo.Date) ([]todo.Todo, error)

	// Create inserts a new row with the todo's caller-assigned ID.
	// Returns domain.ErrConflict when the primary-key constraint rejects
	// a duplicate ID.
	Create(ctx context.Context, t *todo.Todo) error

	// Update replaces the full row identified by id with t (whose ID may
	// differ when the caller reassigns it).
	// Returns domain.ErrNotFound if no row matches id.
	Update(ctx context.Context, id int64, t *todo.Todo) error

	// Delete removes the row with the given ID.
	// Returns domain.ErrNotFound if no row matches.
	Delete(ctx context.Context, id int64) error
}
