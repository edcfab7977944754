package inventory

import (
	"github.com/exascience/torre/component"
	"github.com/exascience/torre/sort"
)

// An Algorithm names the sort used for one of the sortable keys.
type Algorithm string

const (
	BubbleSort    Algorithm = "bubble sort"
	InsertionSort Algorithm = "insertion sort"
	SelectionSort Algorithm = "selection sort"
)

// Algorithm returns the sort used when ordering a collection by o, or
// the empty string for Unordered.
func (o Ordering) Algorithm() Algorithm {
	switch o {
	case ByName:
		return BubbleSort
	case ByType:
		return InsertionSort
	case ByPriority:
		return SelectionSort
	default:
		return ""
	}
}

/*
SortByName sorts the collection by name with bubble sort, marks it as
sorted by name, and returns the number of comparisons performed,
which is always n(n-1)/2.
*/
func (c *Collection) SortByName() (comparisons uint64) {
	comparisons = sort.Bubble(c.occupied(), component.CompareByName)
	c.ordering = ByName
	return
}

/*
SortByType sorts the collection by type with insertion sort, and
returns the number of comparisons performed. The collection is no
longer considered sorted by name afterwards.
*/
func (c *Collection) SortByType() (comparisons uint64) {
	comparisons = sort.Insertion(c.occupied(), component.CompareByType)
	c.ordering = ByType
	return
}

/*
SortByPriority sorts the collection by priority with selection sort,
and returns the number of comparisons performed, which is always
n(n-1)/2. The collection is no longer considered sorted by name
afterwards.
*/
func (c *Collection) SortByPriority() (comparisons uint64) {
	comparisons = sort.Selection(c.occupied(), component.CompareByPriority)
	c.ordering = ByPriority
	return
}

// Sort sorts the collection by o using the algorithm assigned to that
// key. Sort panics if o is Unordered or not a known ordering.
func (c *Collection) Sort(o Ordering) uint64 {
	switch o {
	case ByName:
		return c.SortByName()
	case ByType:
		return c.SortByType()
	case ByPriority:
		return c.SortByPriority()
	default:
		panic("invalid ordering: " + o.String())
	}
}

// SortedByName reports whether SearchByName may be used. Collections
// with fewer than two components are trivially sorted by any key.
func (c *Collection) SortedByName() bool {
	return c.ordering == ByName || c.n < 2
}

/*
SearchByName looks up the component with the given name using binary
search. It returns the index of a matching component, or NotFound,
and the number of comparisons performed.

SearchByName returns ErrNotSortedByName, without comparing, if the
collection is not sorted by name.
*/
func (c *Collection) SearchByName(key string) (index int, comparisons uint64, err error) {
	if !c.SortedByName() {
		return NotFound, 0, ErrNotSortedByName
	}
	index, comparisons = sort.BinarySearch(c.occupied(), key, component.CompareName)
	return index, comparisons, nil
}
