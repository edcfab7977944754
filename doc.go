// Package torre provides the engine of an interactive inventory and
// assembly organizer. A user registers a small, bounded set of
// components (name, type, priority), sorts them with one of three
// classic comparison sorts, and, once they are sorted by name, locates
// the key component with binary search. Every sort and search reports
// the number of comparisons it performed.
//
// Torre provides the following subpackages:
//
// torre/component defines the Component record and the total orders over
// its name, type, and priority fields.
//
// torre/sort provides instrumented bubble, insertion, and selection sorts
// and binary search over slices, parameterized by a comparison function.
//
// torre/inventory provides the fixed-capacity Collection that remembers
// which key it is sorted by, so that searching an inventory that is not
// sorted by name is reported instead of silently returning a wrong
// result.
//
// torre/parallel provides Range, which splits a range into batches and
// runs them in parallel.
//
// torre/analysis measures the comparison counts of the sorts over many
// random inventories, concurrently, and summarizes them.
//
// The command in cmd/torre wraps these packages in a text menu.
package torre
