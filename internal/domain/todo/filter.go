package todo

// Filter holds optional filter criteria for listing todos. Each field is a
// substring predicate against the corresponding stored column; the zero value
// (empty string) matches every row for that dimension. Enum-valued fields are
// validated before a Filter is built, so a non-empty Status, Priority, or
// Category is always a full enumeration member, and DueDate is always in
// canonical form.
type Filter struct {
	Status   string
	Priority string
	Category string
	Search   string
	DueDate  string
}
