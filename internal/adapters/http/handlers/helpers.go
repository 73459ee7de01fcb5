package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-tracker/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-tracker/internal/domain"
	"github.com/jsamuelsen11/todo-tracker/internal/domain/todo"
)

// parseID extracts an int64 path parameter from the chi URL params.
func parseID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		verr := domain.NewValidationError(param, "must be a valid integer")
		return 0, domain.LocateValidation(verr, "path")
	}
	return id, nil
}

// parseTodoFilter validates the list query parameters in order (status,
// priority, category, date) and builds the filter. Absent parameters pass;
// present ones must be full enumeration members or a parseable date. The
// search_q parameter is a free-text substring and is never validated. The
// date value is normalized before use.
func parseTodoFilter(r *http.Request) (todo.Filter, error) {
	q := r.URL.Query()
	filter := todo.Filter{Search: q.Get("search_q")}

	if raw := q.Get("status"); raw != "" {
		status, err := todo.ParseStatus(raw)
		if err != nil {
			return todo.Filter{}, domain.LocateValidation(err, "query")
		}
		filter.Status = status.String()
	}
	if raw := q.Get("priority"); raw != "" {
		priority, err := todo.ParsePriority(raw)
		if err != nil {
			return todo.Filter{}, domain.LocateValidation(err, "query")
		}
		filter.Priority = priority.String()
	}
	if raw := q.Get("category"); raw != "" {
		category, err := todo.ParseCategory(raw)
		if err != nil {
			return todo.Filter{}, domain.LocateValidation(err, "query")
		}
		filter.Category = category.String()
	}
	if raw := q.Get("date"); raw != "" {
		date, err := todo.ParseDate("date", raw)
		if err != nil {
			return todo.Filter{}, domain.LocateValidation(err, "query")
		}
		filter.DueDate = date.String()
	}

	return filter, nil
}

// parseAgendaDate validates the agenda query parameters. The enum filters
// are accepted and validated for parity with the list route but only the
// date is used; an absent date yields the zero Date, which matches nothing.
func parseAgendaDate(r *http.Request) (todo.Date, error) {
	if _, err := parseTodoFilter(r); err != nil {
		return "", err
	}
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return "", nil
	}

	date, err := todo.ParseDate("date", raw)
	if err != nil {
		return "", domain.LocateValidation(err, "query")
	}

	return date, nil
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, domain.NewValidationError("", "invalid JSON"))
		return false
	}
	return true
}
