package types

import "strings"

// NameFilter is a case-sensitive predicate over package names.
type NameFilter struct {
	Pattern string
	Exact   bool
}

// Empty reports whether the filter accepts everything.
func (f NameFilter) Empty() bool {
	return f.Pattern == ""
}

// Matches reports whether name satisfies the filter.
func (f NameFilter) Matches(name string) bool {
	if f.Empty() {
		return true
	}
	if f.Exact {
		return name == f.Pattern
	}
	return strings.Contains(name, f.Pattern)
}
