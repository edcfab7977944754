package sort

/*
BinarySearch searches for key in s, which must be sorted in
ascending order according to cmp. It returns the index of an element
for which cmp returns zero, or NotFound, together with the number of
comparisons performed.

cmp compares an element of s with the key, and returns a negative
number, zero, or a positive number when the element sorts before, is
equivalent to, or sorts after the key.

BinarySearch does not check that s is sorted. If it is not, the result
is unspecified. At most ceil(log2(len(s)+1)) comparisons are performed.
*/
func BinarySearch[E, K any](s []E, key K, cmp func(e E, key K) int) (index int, comparisons uint64) {
	low, high := 0, len(s)-1
	for low <= high {
		mid := low + (high-low)/2
		comparisons++
		switch c := cmp(s[mid], key); {
		case c == 0:
			return mid, comparisons
		case c < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}
	return NotFound, comparisons
}
