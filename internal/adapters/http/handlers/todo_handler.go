package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/todo-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-tracker/internal/ports"
)

// TodoHandler handles HTTP requests for todo CRUD and agenda operations.
type TodoHandler struct {
	service ports.TodoService
}

// NewTodoHandler creates a new TodoHandler with the given service port.
func NewTodoHandler(service ports.TodoService) *TodoHandler {
	return &TodoHandler{service: service}
}

// ListTodos handles GET /todos/. Query parameters narrow the result by
// substring match; an omitted parameter matches everything.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTodoFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	todos, err := h.service.List(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoListResponse(todos))
}

// GetTodo handles GET /todos/{todoId}/. The list filters are accepted and
// validated for parity with ListTodos but the lookup is strictly by id.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	if _, err := parseTodoFilter(r); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	id, err := parseID(r, "todoId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.service.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(t))
}

// Agenda handles GET /agenda/. Returns the todos due exactly on the given
// date; without a date parameter the agenda is empty.
func (h *TodoHandler) Agenda(w http.ResponseWriter, r *http.Request) {
	date, err := parseAgendaDate(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	todos, err := h.service.Agenda(r.Context(), date)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoListResponse(todos))
}

// CreateTodo handles POST /todos/.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTodoRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	t, err := req.ToTodo()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	created, err := h.service.Create(r.Context(), t)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToCreateTodoResponse(created))
}

// UpdateTodo handles PUT /todos/{todoId}/. Fields absent from the body keep
// their stored values; the confirmation names the single highest-priority
// field supplied.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "todoId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTodoRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	updated, field, err := h.service.Update(r.Context(), id, *patch)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUpdateTodoResponse(updated, field))
}

// DeleteTodo handles DELETE /todos/{todoId}/.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "todoId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.MessageResponse{Message: dto.MsgTodoDeleted})
}
