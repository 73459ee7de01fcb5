package todo

import "github.com/jsamuelsen11/todo-tracker/internal/domain"

// Category represents the categorization of a Todo item.
type Category string

const (
	CategoryWork     Category = "WORK"
	CategoryHome     Category = "HOME"
	CategoryLearning Category = "LEARNING"
)

// MsgInvalidCategory is the fixed client-facing message for a rejected category.
const MsgInvalidCategory = "Invalid Todo Category"

// IsValid returns true if the category is one of the defined constants.
func (c Category) IsValid() bool {
	switch c {
	case CategoryWork, CategoryHome, CategoryLearning:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// ParseCategory converts a raw string into a Category. The match is exact and
// case-sensitive. Returns a ValidationError carrying MsgInvalidCategory when
// the value is not a member of the enumeration.
func ParseCategory(raw string) (Category, error) {
	c := Category(raw)
	if !c.IsValid() {
		return "", domain.NewValidationError("category", MsgInvalidCategory)
	}
	return c, nil
}
