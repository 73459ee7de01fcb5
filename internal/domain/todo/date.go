package todo

import (
	"time"

	"github.com/jsamuelsen11/todo-tracker/internal/domain"
)

// Layout is the canonical form for due dates: four-digit year, two-digit
// month, two-digit day.
const Layout = "2006-01-02"

// MsgInvalidDueDate is the fixed client-facing message for a rejected date.
const MsgInvalidDueDate = "Invalid Due Date"

// dateLayouts are the input forms accepted by ParseDate, tried in order.
// The canonical layout comes first so already-normalized dates short-circuit.
var dateLayouts = []string{
	Layout,
	"2006-1-2",
	"2006/01/02",
	"2006/1/2",
	"January 2 2006",
	"January 2, 2006",
	time.RFC3339,
}

// Date is a calendar date normalized to Layout ("YYYY-MM-DD"). The zero value
// means "no due date".
type Date string

// IsZero reports whether the date is absent.
func (d Date) IsZero() bool {
	return d == ""
}

// String implements fmt.Stringer.
func (d Date) String() string {
	return string(d)
}

// Time returns the date as a time.Time at midnight UTC. Returns the zero
// time for an absent date.
func (d Date) Time() time.Time {
	if d.IsZero() {
		return time.Time{}
	}
	t, _ := time.Parse(Layout, string(d))
	return t
}

// ParseDate converts a raw string into a normalized Date. Accepted inputs
// are tried against dateLayouts in order; the first parseable layout wins
// and the result is rewritten in canonical form, so normalization is
// idempotent. The field parameter names the request field for the error
// ("date" for query filters, "dueDate" for body fields).
//
// Returns a ValidationError carrying MsgInvalidDueDate when no layout
// matches.
func ParseDate(field, raw string) (Date, error) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return Date(t.Format(Layout)), nil
		}
	}
	return "", domain.NewValidationError(field, MsgInvalidDueDate)
}
