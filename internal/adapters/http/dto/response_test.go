package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/jsamuelsen11/todo-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-tracker/internal/domain/todo"
)

func sampleTodo() todo.Todo {
	return todo.Todo{
		ID:       42,
		Text:     "write report",
		Priority: todo.PriorityHigh,
		Status:   todo.StatusToDo,
		Category: todo.CategoryWork,
		DueDate:  todo.Date("2024-03-15"),
	}
}

func TestToTodoResponse(t *testing.T) {
	t.Parallel()

	td := sampleTodo()
	got := dto.ToTodoResponse(&td)

	want := dto.TodoResponse{
		ID:       42,
		Text:     "write report",
		Priority: "HIGH",
		Status:   "TO DO",
		Category: "WORK",
		DueDate:  "2024-03-15",
	}
	if got != want {
		t.Errorf("ToTodoResponse() = %+v, want %+v", got, want)
	}
}

func TestTodoResponse_JSONKeys(t *testing.T) {
	t.Parallel()

	td := sampleTodo()
	data, err := json.Marshal(dto.ToTodoResponse(&td))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	for _, key := range []string{"id", "todo", "priority", "status", "category", "dueDate"} {
		if _, ok := m[key]; !ok {
			t.Errorf("marshaled response missing key %q: %s", key, data)
		}
	}
}

func TestTodoResponse_OmitsEmptyDueDate(t *testing.T) {
	t.Parallel()

	td := sampleTodo()
	td.DueDate = ""

	data, err := json.Marshal(dto.ToTodoResponse(&td))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if _, ok := m["dueDate"]; ok {
		t.Errorf("dueDate present for todo without one: %s", data)
	}
}

func TestToTodoListResponse(t *testing.T) {
	t.Parallel()

	todos := []todo.Todo{sampleTodo(), {ID: 2, Text: "b", Priority: todo.PriorityLow, Status: todo.StatusDone, Category: todo.CategoryHome}}

	got := dto.ToTodoListResponse(todos)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != 42 || got[1].ID != 2 {
		t.Errorf("ids = %d, %d, want 42, 2", got[0].ID, got[1].ID)
	}
}

func TestToTodoListResponse_EmptyIsArray(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(dto.ToTodoListResponse(nil))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("marshaled empty list = %s, want []", data)
	}
}

func TestToCreateTodoResponse(t *testing.T) {
	t.Parallel()

	td := sampleTodo()
	got := dto.ToCreateTodoResponse(&td)

	if got.Message != "Todo Successfully Added" {
		t.Errorf("Message = %q, want %q", got.Message, "Todo Successfully Added")
	}
	if got.Todo.ID != 42 {
		t.Errorf("Todo.ID = %d, want 42", got.Todo.ID)
	}
}

func TestToUpdateTodoResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		field   string
		wantMsg string
	}{
		{"text field", "Todo", "Todo Updated"},
		{"status field", "Status", "Status Updated"},
		{"due date field", "Due Date", "Due Date Updated"},
		{"no field", "", "Updated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			td := sampleTodo()
			got := dto.ToUpdateTodoResponse(&td, tt.field)

			if got.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", got.Message, tt.wantMsg)
			}
			if got.Todo.ID != td.ID {
				t.Errorf("Todo.ID = %d, want %d", got.Todo.ID, td.ID)
			}
		})
	}
}
