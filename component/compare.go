package component

import "strings"

/*
A Comparator is a total order over components. It returns a negative
number when a sorts before b, a positive number when a sorts after b,
and zero when both are equivalent under the order.
*/
type Comparator func(a, b Component) int

// CompareByName compares the names of a and b byte-wise.
func CompareByName(a, b Component) int {
	return strings.Compare(a.Name, b.Name)
}

// CompareByType compares the types of a and b byte-wise.
func CompareByType(a, b Component) int {
	return strings.Compare(a.Type, b.Type)
}

// CompareByPriority returns the difference of the priorities of a and b.
func CompareByPriority(a, b Component) int {
	return a.Priority - b.Priority
}

// CompareName compares the name of c against key. It is the
// asymmetric form of CompareByName used for searching.
func CompareName(c Component, key string) int {
	return strings.Compare(c.Name, key)
}
