package todo

import "github.com/jsamuelsen11/todo-tracker/internal/domain"

// Priority represents the urgency of a Todo.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// MsgInvalidPriority is the fixed client-facing message for a rejected priority.
const MsgInvalidPriority = "Invalid Todo Priority"

// IsValid returns true if the priority is one of the defined constants.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (p Priority) String() string {
	return string(p)
}

// ParsePriority converts a raw string into a Priority. The match is exact and
// case-sensitive. Returns a ValidationError carrying MsgInvalidPriority when
// the value is not a member of the enumeration.
func ParsePriority(raw string) (Priority, error) {
	p := Priority(raw)
	if !p.IsValid() {
		return "", domain.NewValidationError("priority", MsgInvalidPriority)
	}
	return p, nil
}
