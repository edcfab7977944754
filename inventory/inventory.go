/*
Package inventory provides the fixed-capacity collection of components
that the sort and search engines operate on.

A Collection remembers which key it is currently ordered by. Every
operation that changes the order of its elements updates that tag, and
SearchByName refuses to run unless the collection is known to be
sorted by name, so the precondition of binary search cannot be
violated silently.

A Collection is not safe for concurrent use.
*/
package inventory

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/exascience/torre/component"
	"github.com/exascience/torre/sort"
)

// Capacity is the maximum number of components a Collection can hold.
const Capacity = 20

// NotFound is returned by SearchByName when no component has the key
// as its name.
const NotFound = sort.NotFound

var (
	// ErrCapacity is returned by Register when more than Capacity
	// components are given.
	ErrCapacity = errors.New("inventory capacity exceeded")

	// ErrNotSortedByName is returned by SearchByName when the
	// collection is not sorted by name.
	ErrNotSortedByName = errors.New("inventory is not sorted by name")
)

// An Ordering identifies the key a Collection is currently sorted by.
type Ordering int

const (
	// Unordered means the collection is in registration order.
	Unordered Ordering = iota
	ByName
	ByType
	ByPriority
)

func (o Ordering) String() string {
	switch o {
	case Unordered:
		return "unordered"
	case ByName:
		return "name"
	case ByType:
		return "type"
	case ByPriority:
		return "priority"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

/*
A Collection is an ordered sequence of at most Capacity components.

The zero Collection is empty and ready to use.
*/
type Collection struct {
	items    [Capacity]component.Component
	n        int
	ordering Ordering
}

/*
Register replaces the contents of the collection with the given
components, in the given order, and marks the collection as
unordered.

Every component is validated. If any of them is invalid, or if more
than Capacity components are given, Register returns the combined
errors and leaves the collection unchanged.
*/
func (c *Collection) Register(components ...component.Component) (err error) {
	if len(components) > Capacity {
		err = multierr.Append(err, fmt.Errorf("%w: %d components, maximum is %d", ErrCapacity, len(components), Capacity))
	}
	for i, comp := range components {
		if verr := comp.Validate(); verr != nil {
			err = multierr.Append(err, fmt.Errorf("component #%d: %w", i+1, verr))
		}
	}
	if err != nil {
		return
	}
	c.n = copy(c.items[:], components)
	clear(c.items[c.n:])
	c.ordering = Unordered
	return nil
}

// Len returns the number of components in the collection.
func (c *Collection) Len() int {
	return c.n
}

// At returns the component at index i. At panics if i is not in [0, Len()).
func (c *Collection) At(i int) component.Component {
	if i < 0 || i >= c.n {
		panic(fmt.Sprintf("index out of range: %v with length %v", i, c.n))
	}
	return c.items[i]
}

// Components returns a copy of the components in the collection, in
// their current order.
func (c *Collection) Components() []component.Component {
	result := make([]component.Component, c.n)
	copy(result, c.items[:c.n])
	return result
}

// Ordering returns the key the collection is currently sorted by.
func (c *Collection) Ordering() Ordering {
	return c.ordering
}

func (c *Collection) occupied() []component.Component {
	return c.items[:c.n]
}
