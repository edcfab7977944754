/*
Package sort provides instrumented implementations of the classic
quadratic comparison sorts, and of binary search.

Every function in this package counts the elementary comparisons it
performs and returns that count to the caller. The count is scoped to
a single call; there is no package-level state, so independent slices
can be sorted from different goroutines at the same time.

All sorts work in place and need only a constant amount of additional
memory.
*/
package sort

/*
NotFound is returned by BinarySearch when the key does not occur in
the searched slice.
*/
const NotFound = -1

// swap exchanges the elements with indices i and j.
func swap[E any](s []E, i, j int) {
	s[i], s[j] = s[j], s[i]
}

/*
IsSorted reports whether s is sorted in non-decreasing order
according to cmp. Comparisons performed by IsSorted are not counted.
*/
func IsSorted[E any](s []E, cmp func(a, b E) int) bool {
	for i := len(s) - 1; i > 0; i-- {
		if cmp(s[i-1], s[i]) > 0 {
			return false
		}
	}
	return true
}
