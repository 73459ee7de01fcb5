// Package postgres provides the pgx-backed todo repository adapter. A single
// pgxpool.Pool is opened at process start and shared by every request for the
// process lifetime; each repository method issues one parameterized statement
// and relies on Postgres's own concurrency control.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsamuelsen11/todo-tracker/internal/domain"
	"github.com/jsamuelsen11/todo-tracker/internal/domain/todo"
	"github.com/jsamuelsen11/todo-tracker/internal/ports"
)

// Compile-time checks against the ports.
var (
	_ ports.TodoRepository = (*Repository)(nil)
	_ ports.HealthChecker  = (*Repository)(nil)
)

// uniqueViolation is the SQLSTATE code Postgres reports when an insert hits
// the primary-key constraint.
const uniqueViolation = "23505"

const schema = `
CREATE TABLE IF NOT EXISTS todo (
	id       BIGINT PRIMARY KEY,
	todo     TEXT NOT NULL,
	priority TEXT NOT NULL,
	status   TEXT NOT NULL,
	category TEXT NOT NULL,
	due_date TEXT
)`

// Repository implements ports.TodoRepository over a pgx connection pool.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a Repository over an already-opened pool and ensures
// the todo table exists.
func NewRepository(ctx context.Context, pool *pgxpool.Pool) (*Repository, error) {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("ensuring todo table: %w", err)
	}
	return &Repository{pool: pool}, nil
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string {
	return "postgres"
}

// HealthCheck implements ports.HealthChecker by pinging the pool.
func (r *Repository) HealthCheck(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres ping: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (r *Repository) Close() {
	r.pool.Close()
}

const selectColumns = "id, todo, priority, status, category, due_date"

// List implements ports.TodoRepository. Every filter dimension is a substring
// predicate; COALESCE keeps rows with no due date visible when the date
// filter is empty.
func (r *Repository) List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	query := `SELECT ` + selectColumns + ` FROM todo
		WHERE status LIKE '%' || $1 || '%'
		  AND priority LIKE '%' || $2 || '%'
		  AND category LIKE '%' || $3 || '%'
		  AND todo LIKE '%' || $4 || '%'
		  AND COALESCE(due_date, '') LIKE '%' || $5 || '%'`

	rows, err := r.pool.Query(ctx, query,
		filter.Status, filter.Priority, filter.Category, filter.Search, filter.DueDate)
	if err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}
	defer rows.Close()

	return scanTodos(rows)
}

// GetByID implements ports.TodoRepository.
func (r *Repository) GetByID(ctx context.Context, id int64) (*todo.Todo, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+selectColumns+` FROM todo WHERE id = $1`, id)

	t, err := scanTodo(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("fetching todo %d: %w", id, err)
	}
	return t, nil
}

// ListByDueDate implements ports.TodoRepository. The match is exact; a zero
// date compares against the empty string and matches no stored row.
func (r *Repository) ListByDueDate(ctx context.Context, date todo.Date) ([]todo.Todo, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+selectColumns+` FROM todo WHERE due_date = $1`, date.String())
	if err != nil {
		return nil, fmt.Errorf("listing todos by due date: %w", err)
	}
	defer rows.Close()

	return scanTodos(rows)
}

// Create implements ports.TodoRepository.
func (r *Repository) Create(ctx context.Context, t *todo.Todo) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO todo (id, todo, priority, status, category, due_date)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.Text, t.Priority.String(), t.Status.String(), t.Category.String(), dueDateParam(t.DueDate))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("todo %d: %w", t.ID, domain.ErrConflict)
		}
		return fmt.Errorf("inserting todo %d: %w", t.ID, err)
	}
	return nil
}

// Update implements ports.TodoRepository as a full-row replacement. The row
// is addressed by the caller-supplied id, which may differ from t.ID when the
// update reassigns the primary key.
func (r *Repository) Update(ctx context.Context, id int64, t *todo.Todo) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE todo
		 SET id = $1, todo = $2, priority = $3, status = $4, category = $5, due_date = $6
		 WHERE id = $7`,
		t.ID, t.Text, t.Priority.String(), t.Status.String(), t.Category.String(), dueDateParam(t.DueDate), id)
	if err != nil {
		return fmt.Errorf("updating todo %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete implements ports.TodoRepository.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM todo WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting todo %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// dueDateParam maps an absent due date to NULL.
func dueDateParam(d todo.Date) *string {
	if d.IsZero() {
		return nil
	}
	s := d.String()
	return &s
}

func scanTodo(row pgx.Row) (*todo.Todo, error) {
	var (
		t       todo.Todo
		text    string
		prio    string
		status  string
		cat     string
		dueDate *string
	)
	if err := row.Scan(&t.ID, &text, &prio, &status, &cat, &dueDate); err != nil {
		return nil, err
	}
	t.Text = text
	t.Priority = todo.Priority(prio)
	t.Status = todo.Status(status)
	t.Category = todo.Category(cat)
	if dueDate != nil {
		t.DueDate = todo.Date(*dueDate)
	}
	return &t, nil
}

func scanTodos(rows pgx.Rows) ([]todo.Todo, error) {
	todos := make([]todo.Todo, 0)
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning todo row: %w", err)
		}
		todos = append(todos, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating todo rows: %w", err)
	}
	return todos, nil
}
