package todo

// Patch carries the optional fields of a partial update. Nil means "keep the
// stored value". Values are validated and (for DueDate) normalized before a
// Patch is built.
type Patch struct {
	ID       *int64
	Text     *string
	Status   *Status
	Category *Category
	DueDate  *Date
	Priority *Priority
}

// IsZero reports whether the patch carries no fields at all.
func (p *Patch) IsZero() bool {
	return p.ID == nil && p.Text == nil && p.Status == nil &&
		p.Category == nil && p.DueDate == nil && p.Priority == nil
}

// Apply merges the patch over an existing Todo and returns the result.
// Fields absent from the patch retain the stored value.
func (p *Patch) Apply(existing Todo) Todo {
	merged := existing
	if p.ID != nil {
		merged.ID = *p.ID
	}
	if p.Text != nil {
		merged.Text = *p.Text
	}
	if p.Status != nil {
		merged.Status = *p.Status
	}
	if p.Category != nil {
		merged.Category = *p.Category
	}
	if p.DueDate != nil {
		merged.DueDate = *p.DueDate
	}
	if p.Priority != nil {
		merged.Priority = *p.Priority
	}
	return merged
}

// reportRule pairs a human-readable field label with a presence predicate.
type reportRule struct {
	label   string
	present func(*Patch) bool
}

// reportRules is the fixed priority order for naming the updated field in the
// confirmation message. When several fields are supplied, the first present
// rule wins. The ID field is intentionally absent: an id change is never
// reported.
var reportRules = []reportRule{
	{"Todo", func(p *Patch) bool { return p.Text != nil }},
	{"Status", func(p *Patch) bool { return p.Status != nil }},
	{"Category", func(p *Patch) bool { return p.Category != nil }},
	{"Due Date", func(p *Patch) bool { return p.DueDate != nil }},
	{"Priority", func(p *Patch) bool { return p.Priority != nil }},
}

// ReportedField returns the label of the field the update confirmation should
// name, evaluated against reportRules in order. Returns "" when no reportable
// field is present.
func (p *Patch) ReportedField() string {
	for _, rule := range reportRules {
		if rule.present(p) {
			return rule.label
		}
	}
	return ""
}
