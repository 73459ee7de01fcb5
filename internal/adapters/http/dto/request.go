package dto

import (
	"github.com/jsamuelsen11/todo-tracker/internal/domain/todo"
)

// CreateTodoRequest represents the JSON body for creating a new todo. The
// caller assigns the id. Status, priority, and category are required
// enumeration members; an absent value fails with the same fixed message as
// an invalid one. The due date is optional and stored absent when omitted.
type CreateTodoRequest struct {
	ID       int64  `json:"id"`
	Text     string `json:"todo"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
	Category string `json:"category"`
	DueDate  string `json:"dueDate"`
}

// ToTodo validates the request fields in order (status, priority, category,
// due date) and converts them to a domain Todo. The first failing field is
// returned as a *domain.ValidationError carrying its fixed message.
func (r *CreateTodoRequest) ToTodo() (*todo.Todo, error) {
	status, err := todo.ParseStatus(r.Status)
	if err != nil {
		return nil, err
	}
	priority, err := todo.ParsePriority(r.Priority)
	if err != nil {
		return nil, err
	}
	category, err := todo.ParseCategory(r.Category)
	if err != nil {
		return nil, err
	}

	var due todo.Date
	if r.DueDate != "" {
		due, err = todo.ParseDate("dueDate", r.DueDate)
		if err != nil {
			return nil, err
		}
	}

	return &todo.Todo{
		ID:       r.ID,
		Text:     r.Text,
		Priority: priority,
		Status:   status,
		Category: category,
		DueDate:  due,
	}, nil
}

// UpdateTodoRequest represents the JSON body for a partial update. All fields
// are optional; nil means "keep the stored value". The id may be supplied to
// reassign the record's key.
type UpdateTodoRequest struct {
	ID       *int64  `json:"id,omitempty"`
	Text     *string `json:"todo,omitempty"`
	Status   *string `json:"status,omitempty"`
	Category *string `json:"category,omitempty"`
	DueDate  *string `json:"dueDate,omitempty"`
	Priority *string `json:"priority,omitempty"`
}

// ToPatch validates any supplied fields in order (status, priority, category,
// due date) and converts them to a domain Patch. The first failing field is
// returned as a *domain.ValidationError carrying its fixed message.
func (r *UpdateTodoRequest) ToPatch() (*todo.Patch, error) {
	patch := &todo.Patch{ID: r.ID, Text: r.Text}

	if r.Status != nil {
		status, err := todo.ParseStatus(*r.Status)
		if err != nil {
			return nil, err
		}
		patch.Status = &status
	}
	if r.Priority != nil {
		priority, err := todo.ParsePriority(*r.Priority)
		if err != nil {
			return nil, err
		}
		patch.Priority = &priority
	}
	if r.Category != nil {
		category, err := todo.ParseCategory(*r.Category)
		if err != nil {
			return nil, err
		}
		patch.Category = &category
	}
	if r.DueDate != nil {
		due, err := todo.ParseDate("dueDate", *r.DueDate)
		if err != nil {
			return nil, err
		}
		patch.DueDate = &due
	}

	return patch, nil
}
