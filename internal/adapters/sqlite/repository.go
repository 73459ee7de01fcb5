// Package sqlite provides the gorm-backed sqlite todo repository adapter.
// It is the default driver (the service is deployable as a single binary with
// a file-backed store) and doubles as the isolated in-memory store for tests.
package sqlite

import (
	"context"
	"errors"
	"fmt"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jsamuelsen11/todo-tracker/internal/domain"
	"github.com/jsamuelsen11/todo-tracker/internal/domain/todo"
	"github.com/jsamuelsen11/todo-tracker/internal/ports"
)

// Compile-time checks against the ports.
var (
	_ ports.TodoRepository = (*Repository)(nil)
	_ ports.HealthChecker  = (*Repository)(nil)
)

// todoRow is the persisted shape of a Todo. Column names are snake_case per
// the store schema; the caller-assigned primary key disables auto-increment.
type todoRow struct {
	ID       int64   `gorm:"column:id;primaryKey;autoIncrement:false"`
	Todo     string  `gorm:"column:todo;not null"`
	Priority string  `gorm:"column:priority;not null"`
	Status   string  `gorm:"column:status;not null"`
	Category string  `gorm:"column:category;not null"`
	DueDate  *string `gorm:"column:due_date"`
}

// TableName returns the table name for the todo model.
func (todoRow) TableName() string {
	return "todo"
}

// Repository implements ports.TodoRepository over a gorm sqlite handle.
type Repository struct {
	db *gorm.DB
}

// Open opens (or creates) the sqlite database at path and ensures the todo
// table exists. Use ":memory:" for an isolated in-process store.
func Open(path string) (*Repository, error) {
	db, err := gorm.Open(gormsqlite.Open(path), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database %s: %w", path, err)
	}

	if err := db.AutoMigrate(&todoRow{}); err != nil {
		return nil, fmt.Errorf("migrating todo table: %w", err)
	}

	return &Repository{db: db}, nil
}

// NewRepository wraps an already-opened gorm handle. The todo table must
// exist.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string {
	return "sqlite"
}

// HealthCheck implements ports.HealthChecker by pinging the underlying
// connection.
func (r *Repository) HealthCheck(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("sqlite handle: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite ping: %w", err)
	}
	return nil
}

// Close releases the underlying connection.
func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("sqlite handle: %w", err)
	}
	return sqlDB.Close()
}

// like builds a substring LIKE pattern; an empty value matches everything.
func like(value string) string {
	return "%" + value + "%"
}

// List implements ports.TodoRepository. IFNULL keeps rows with no due date
// visible when the date filter is empty.
func (r *Repository) List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	var rows []todoRow
	err := r.db.WithContext(ctx).
		Where("status LIKE ?", like(filter.Status)).
		Where("priority LIKE ?", like(filter.Priority)).
		Where("category LIKE ?", like(filter.Category)).
		Where("todo LIKE ?", like(filter.Search)).
		Where("IFNULL(due_date, '') LIKE ?", like(filter.DueDate)).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing todos: %w", err)
	}
	return toDomainList(rows), nil
}

// GetByID implements ports.TodoRepository.
func (r *Repository) GetByID(ctx context.Context, id int64) (*todo.Todo, error) {
	var row todoRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("fetching todo %d: %w", id, err)
	}
	t := toDomain(row)
	return &t, nil
}

// ListByDueDate implements ports.TodoRepository. The match is exact; a zero
// date compares against the empty string and matches no stored row.
func (r *Repository) ListByDueDate(ctx context.Context, date todo.Date) ([]todo.Todo, error) {
	var rows []todoRow
	err := r.db.WithContext(ctx).
		Where("due_date = ?", date.String()).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listing todos by due date: %w", err)
	}
	return toDomainList(rows), nil
}

// Create implements ports.TodoRepository.
func (r *Repository) Create(ctx context.Context, t *todo.Todo) error {
	row := toRow(*t)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("todo %d: %w", t.ID, domain.ErrConflict)
		}
		return fmt.Errorf("inserting todo %d: %w", t.ID, err)
	}
	return nil
}

// Update implements ports.TodoRepository as a full-row replacement. A column
// map is used so a cleared due date persists as NULL and an id reassignment
// takes effect.
func (r *Repository) Update(ctx context.Context, id int64, t *todo.Todo) error {
	row := toRow(*t)
	result := r.db.WithContext(ctx).Model(&todoRow{}).Where("id = ?", id).
		Updates(map[string]any{
			"id":       row.ID,
			"todo":     row.Todo,
			"priority": row.Priority,
			"status":   row.Status,
			"category": row.Category,
			"due_date": row.DueDate,
		})
	if err := result.Error; err != nil {
		return fmt.Errorf("updating todo %d: %w", id, err)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete implements ports.TodoRepository.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&todoRow{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("deleting todo %d: %w", id, err)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toRow(t todo.Todo) todoRow {
	row := todoRow{
		ID:       t.ID,
		Todo:     t.Text,
		Priority: t.Priority.String(),
		Status:   t.Status.String(),
		Category: t.Category.String(),
	}
	if !t.DueDate.IsZero() {
		s := t.DueDate.String()
		row.DueDate = &s
	}
	return row
}

func toDomain(row todoRow) todo.Todo {
	t := todo.Todo{
		ID:       row.ID,
		Text:     row.Todo,
		Priority: todo.Priority(row.Priority),
		Status:   todo.Status(row.Status),
		Category: todo.Category(row.Category),
	}
	if row.DueDate != nil {
		t.DueDate = todo.Date(*row.DueDate)
	}
	return t
}

func toDomainList(rows []todoRow) []todo.Todo {
	todos := make([]todo.Todo, len(rows))
	for i, row := range rows {
		todos[i] = toDomain(row)
	}
	return todos
}
