// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/todo-tracker/internal/domain/todo"
)

// Confirmation messages returned by the write endpoints.
const (
	MsgTodoAdded   = "Todo Successfully Added"
	MsgTodoDeleted = "Todo Deleted"
)

// TodoResponse represents a single todo in HTTP responses. The dueDate field
// is omitted when the todo has none.
type TodoResponse struct {
	ID       int64  `json:"id"`
	Text     string `json:"todo"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
	Category string `json:"category"`
	DueDate  string `json:"dueDate,omitempty"`
}

// ToTodoResponse converts a domain Todo entity to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo) TodoResponse {
	return TodoResponse{
		ID:       t.ID,
		Text:     t.Text,
		Priority: t.Priority.String(),
		Status:   t.Status.String(),
		Category: t.Category.String(),
		DueDate:  t.DueDate.String(),
	}
}

// ToTodoListResponse converts a slice of domain Todo entities to the bare
// JSON array the list and agenda endpoints return.
func ToTodoListResponse(todos []todo.Todo) []TodoResponse {
	items := make([]TodoResponse, len(todos))
	for i := range todos {
		items[i] = ToTodoResponse(&todos[i])
	}
	return items
}

// MessageResponse wraps a human-readable confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateTodoResponse represents the body returned after a successful create:
// the confirmation message plus the stored record.
type CreateTodoResponse struct {
	Message string       `json:"message"`
	Todo    TodoResponse `json:"todo"`
}

// ToCreateTodoResponse builds the create confirmation for the stored todo.
func ToCreateTodoResponse(t *todo.Todo) CreateTodoResponse {
	return CreateTodoResponse{
		Message: MsgTodoAdded,
		Todo:    ToTodoResponse(t),
	}
}

// UpdateTodoResponse represents the body returned after a successful update:
// the confirmation message naming the updated field plus the merged record.
type UpdateTodoResponse struct {
	Message string       `json:"message"`
	Todo    TodoResponse `json:"todo"`
}

// ToUpdateTodoResponse builds the update confirmation. The field parameter is
// the label of the single field reported as updated; an empty label yields
// the bare message "Updated".
func ToUpdateTodoResponse(t *todo.Todo, field string) UpdateTodoResponse {
	msg := "Updated"
	if field != "" {
		msg = field + " Updated"
	}
	return UpdateTodoResponse{
		Message: msg,
		Todo:    ToTodoResponse(t),
	}
}
