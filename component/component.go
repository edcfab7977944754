/*
Package component defines the Component record that makes up an
inventory, together with the total orders used to sort and search
collections of components.
*/
package component

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	// MaxNameLen is the maximum length of a component name, in bytes.
	MaxNameLen = 29

	// MaxTypeLen is the maximum length of a component type, in bytes.
	MaxTypeLen = 19

	// MinPriority and MaxPriority bound the priority of a component.
	MinPriority = 1
	MaxPriority = 10
)

var (
	// ErrPriorityRange is returned by New when the priority is outside
	// of [MinPriority, MaxPriority].
	ErrPriorityRange = errors.New("priority out of range")

	// ErrNameTooLong is returned by New when the name exceeds MaxNameLen.
	ErrNameTooLong = errors.New("name too long")

	// ErrTypeTooLong is returned by New when the type exceeds MaxTypeLen.
	ErrTypeTooLong = errors.New("type too long")
)

// A Component is one part of the inventory. Two components may have
// identical fields; a component has no identity beyond its position
// in a collection.
type Component struct {
	Name     string `yaml:"name" toml:"name"`
	Type     string `yaml:"type" toml:"type"`
	Priority int    `yaml:"priority" toml:"priority"`
}

/*
New returns a component with the given fields, or an error if the
priority is outside of [MinPriority, MaxPriority] or if the name or
type exceed their length bounds.

Components that are obtained through New (or that pass Validate)
satisfy the invariants assumed by the sort and search engines.
*/
func New(name, typ string, priority int) (Component, error) {
	c := Component{Name: name, Type: typ, Priority: priority}
	if err := c.Validate(); err != nil {
		return Component{}, err
	}
	return c, nil
}

// Validate checks the length bounds of the name and type fields and
// the range of the priority.
func (c Component) Validate() error {
	switch {
	case len(c.Name) > MaxNameLen:
		return fmt.Errorf("%w: %q has %d bytes, maximum is %d", ErrNameTooLong, c.Name, len(c.Name), MaxNameLen)
	case len(c.Type) > MaxTypeLen:
		return fmt.Errorf("%w: %q has %d bytes, maximum is %d", ErrTypeTooLong, c.Type, len(c.Type), MaxTypeLen)
	case c.Priority < MinPriority || c.Priority > MaxPriority:
		return fmt.Errorf("%w: %d is not in [%d, %d]", ErrPriorityRange, c.Priority, MinPriority, MaxPriority)
	}
	return nil
}

func (c Component) String() string {
	return fmt.Sprintf("%s (%s): %d", c.Name, c.Type, c.Priority)
}

// Truncate cuts s to at most max bytes without splitting a UTF-8
// encoded rune.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
