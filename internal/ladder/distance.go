package ladder

// Distance returns the Hamming distance between a and b: the number of
// positions holding different bytes. Words of unequal length never appear
// after validation; for them the length difference is added so the result
// stays symmetric and non-zero.
func Distance(a, b string) int {
	n := min(len(a), len(b))
	diff := len(a) + len(b) - 2*n
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			diff++
		}
	}
	return diff
}
