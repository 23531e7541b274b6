package adapters

import (
	"strings"

	"colcon-ls/internal/ports"
)

// DefaultPathPolicy implements the usual Unix conventions: dot-prefixed
// entries are hidden, and a small set of tooling directories is never
// worth descending into.
type DefaultPathPolicy struct{}

func NewDefaultPathPolicy() DefaultPathPolicy {
	return DefaultPathPolicy{}
}

func (DefaultPathPolicy) Hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func (DefaultPathPolicy) Skip(name string) bool {
	switch name {
	case "CVS", "__pycache__":
		return true
	default:
		return false
	}
}

var _ ports.PathPolicy = DefaultPathPolicy{}
