package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/todo-tracker/internal/domain/todo"
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validTodo() todo.Todo {
	return todo.Todo{
		ID:       1,
		Text:     "Buy groceries",
		Priority: todo.PriorityMedium,
		Status:   todo.StatusToDo,
		Category: todo.CategoryHome,
		DueDate:  todo.Date("2024-03-15"),
	}
}

// fakeTodoService implements ports.TodoService with per-method function
// fields. Unset methods fail the test if called.
type fakeTodoService struct {
	t        *testing.T
	listFn   func(ctx context.Context, filter todo.Filter) ([]todo.Todo, error)
	getFn    func(ctx context.Context, id int64) (*todo.Todo, error)
	agendaFn func(ctx context.Context, date todo.Date) ([]todo.Todo, error)
	createFn func(ctx context.Context, item *todo.Todo) (*todo.Todo, error)
	updateFn func(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, string, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (f *fakeTodoService) List(ctx context.Context, filter todo.Filter) ([]todo.Todo, error) {
	if f.listFn == nil {
		f.t.Fatal("unexpected call to List")
	}
	return f.listFn(ctx, filter)
}

func (f *fakeTodoService) Get(ctx context.Context, id int64) (*todo.Todo, error) {
	if f.getFn == nil {
		f.t.Fatal("unexpected call to Get")
	}
	return f.getFn(ctx, id)
}

func (f *fakeTodoService) Agenda(ctx context.Context, date todo.Date) ([]todo.Todo, error) {
	if f.agendaFn == nil {
		f.t.Fatal("unexpected call to Agenda")
	}
	return f.agendaFn(ctx, date)
}

func (f *fakeTodoService) Create(ctx context.Context, item *todo.Todo) (*todo.Todo, error) {
	if f.createFn == nil {
		f.t.Fatal("unexpected call to Create")
	}
	return f.createFn(ctx, item)
}

func (f *fakeTodoService) Update(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, string, error) {
	if f.updateFn == nil {
		f.t.Fatal("unexpected call to Update")
	}
	return f.updateFn(ctx, id, patch)
}

func (f *fakeTodoService) Delete(ctx context.Context, id int64) error {
	if f.deleteFn == nil {
		f.t.Fatal("unexpected call to Delete")
	}
	return f.deleteFn(ctx, id)
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "body = %s", rec.Body.String())
}
