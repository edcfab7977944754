package sort

/*
Bubble sorts s in non-decreasing order according to cmp, and returns
the number of comparisons performed.

Each pass compares every adjacent pair of the unsorted prefix and
swaps the pair if it is out of order, which moves the largest element
of the prefix to its end. Bubble has no early exit: it always performs
exactly n(n-1)/2 comparisons for a slice of length n, even if s is
already sorted.

Bubble is stable.
*/
func Bubble[E any](s []E, cmp func(a, b E) int) (comparisons uint64) {
	n := len(s)
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1-i; j++ {
			comparisons++
			if cmp(s[j], s[j+1]) > 0 {
				swap(s, j, j+1)
			}
		}
	}
	return
}

/*
Insertion sorts s in non-decreasing order according to cmp, and
returns the number of comparisons performed.

Each element from the second one onward is taken out of the slice,
and the sorted prefix before it is scanned backwards, shifting
greater elements one slot to the right, until an element that is not
greater is found or the prefix is exhausted. The scan counts one
comparison per step, so Insertion performs between n-1 (sorted input)
and n(n-1)/2 (reverse sorted input) comparisons.

Insertion is stable.
*/
func Insertion[E any](s []E, cmp func(a, b E) int) (comparisons uint64) {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 {
			comparisons++
			if cmp(s[j], key) <= 0 {
				break
			}
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
	return
}

/*
Selection sorts s in non-decreasing order according to cmp, and
returns the number of comparisons performed.

For each position but the last, the remaining suffix is scanned for
its minimum, which is then swapped into place unless it is already
there. Selection always performs exactly n(n-1)/2 comparisons for a
slice of length n.

Selection is not stable.
*/
func Selection[E any](s []E, cmp func(a, b E) int) (comparisons uint64) {
	n := len(s)
	for i := 0; i < n-1; i++ {
		min := i
		for j := i + 1; j < n; j++ {
			comparisons++
			if cmp(s[j], s[min]) < 0 {
				min = j
			}
		}
		if min != i {
			swap(s, i, min)
		}
	}
	return
}
