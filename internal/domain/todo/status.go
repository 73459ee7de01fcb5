package todo

import "github.com/jsamuelsen11/todo-tracker/internal/domain"

// Status represents the completion state of a Todo.
type Status string

const (
	StatusToDo       Status = "TO DO"
	StatusInProgress Status = "IN PROGRESS"
	StatusDone       Status = "DONE"
)

// MsgInvalidStatus is the fixed client-facing message for a rejected status.
const MsgInvalidStatus = "Invalid Todo Status"

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a raw string into a Status. The match is exact and
// case-sensitive. Returns a ValidationError carrying MsgInvalidStatus when the
// value is not a member of the enumeration.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", domain.NewValidationError("status", MsgInvalidStatus)
	}
	return s, nil
}
