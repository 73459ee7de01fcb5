// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/todo-tracker/internal/domain/todo"
	"github.com/jsamuelsen11/todo-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-tracker/internal/ports"
)

// Compile-time check that TodoService implements ports.TodoService.
var _ ports.TodoService = (*TodoService)(nil)

// TodoService implements ports.TodoService by orchestrating calls to the
// todo repository. It handles validation, the partial-merge update rule, and
// structured logging, but contains no storage logic.
type TodoService struct {
	repo    ports.TodoRepository
	logger  *slog.Logger
	metrics *telemetry.Metrics
}

// NewTodoService creates a TodoService. The repository port provides access
// to the relational store. The logger is used for structured request/error
// logging. A nil metrics disables store operation metrics.
func NewTodoService(repo ports.TodoRepository, logger *slog.Logger, metrics *telemetry.Metrics) *TodoService {
	return &TodoService{
		repo:    repo,
		logger:  logger,
		metrics: metrics,
	}
}

// recordStoreOp records duration and count metrics for one repository call.
// Safe to call with nil metrics.
func (s *TodoService) recordStoreOp(ctx context.Context, op string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}

	result := "success"
	if err != nil {
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBOperation.String(op),
		telemetry.AttrResult.String(result),
	)

	s.metrics.StorageOpDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	s.metrics.StorageOpTotal.Add(ctx, 1, attrs)
}

// List returns all todos matching the filter in store-native order.
func (s *TodoService) List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	s.logger.InfoContext(ctx, "listing todos",
		slog.String("status", filter.Status),
		slog.String("priority", filter.Priority),
		slog.String("category", filter.Category),
	)

	start := time.Now()
	todos, err := s.repo.List(ctx, filter)
	s.recordStoreOp(ctx, "select", start, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list todos",
			slog.String("operation", "List"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return todos, nil
}

// Get returns a single todo by ID.
func (s *TodoService) Get(ctx context.Context, id int64) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "fetching todo", slog.Int64("id", id))

	start := time.Now()
	t, err := s.repo.GetByID(ctx, id)
	s.recordStoreOp(ctx, "select", start, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch todo",
			slog.String("operation", "Get"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return t, nil
}

// Agenda returns the todos due on the given normalized date. An absent date
// matches nothing.
func (s *TodoService) Agenda(ctx context.Context, date todo.Date) ([]todo.Todo, error) {
	s.logger.InfoContext(ctx, "listing agenda", slog.String("date", date.String()))

	start := time.Now()
	todos, err := s.repo.ListByDueDate(ctx, date)
	s.recordStoreOp(ctx, "select", start, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list agenda",
			slog.String("operation", "Agenda"),
			slog.String("date", date.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	return todos, nil
}

// Create validates and inserts a new todo with its caller-assigned ID.
func (s *TodoService) Create(ctx context.Context, t *todo.Todo) (*todo.Todo, error) {
	s.logger.InfoContext(ctx, "creating todo", slog.Int64("id", t.ID))

	if err := t.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	err := s.repo.Create(ctx, t)
	s.recordStoreOp(ctx, "insert", start, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create todo",
			slog.String("operation", "Create"),
			slog.Int64("id", t.ID),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("creating todo: %w", err)
	}

	return t, nil
}

// Update loads the stored todo, merges the patch over it, and persists the
// result as a full row update. The returned label names the single field the
// confirmation message reports, chosen by the fixed rule order.
func (s *TodoService) Update(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, string, error) {
	s.logger.InfoContext(ctx, "updating todo", slog.Int64("id", id))

	start := time.Now()
	existing, err := s.repo.GetByID(ctx, id)
	s.recordStoreOp(ctx, "select", start, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load todo for update",
			slog.String("operation", "Update"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, "", err
	}

	merged := patch.Apply(*existing)
	if err := merged.Validate(); err != nil {
		return nil, "", err
	}

	start = time.Now()
	err = s.repo.Update(ctx, id, &merged)
	s.recordStoreOp(ctx, "update", start, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update todo",
			slog.String("operation", "Update"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, "", fmt.Errorf("updating todo: %w", err)
	}

	return &merged, patch.ReportedField(), nil
}

// Delete removes the todo with the given ID.
func (s *TodoService) Delete(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting todo", slog.Int64("id", id))

	start := time.Now()
	err := s.repo.Delete(ctx, id)
	s.recordStoreOp(ctx, "delete", start, err)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete todo",
			slog.String("operation", "Delete"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}
