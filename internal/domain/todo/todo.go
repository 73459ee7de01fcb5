package todo

// Todo represents one tracked task. The ID is caller-assigned on create;
// uniqueness is enforced only by the store's primary-key constraint. DueDate
// is absent (zero Date) when the caller never supplied one.
type Todo struct {
	ID       int64
	Text     string
	Priority Priority
	Status   Status
	Category Category
	DueDate  Date
}

// Validate checks that the enumeration fields hold valid members. It returns
// the first failure in validator order (status, priority, category) as a
// *domain.ValidationError, or nil if all rules pass.
func (t *Todo) Validate() error {
	if _, err := ParseStatus(string(t.Status)); err != nil {
		return err
	}
	if _, err := ParsePriority(string(t.Priority)); err != nil {
		return err
	}
	if _, err := ParseCategory(string(t.Category)); err != nil {
		return err
	}
	return nil
}
