package reconcile

// SplitFunc decides, given the number of items a mismatched fingerprint
// range covers, how many sub-buckets to split it into and how large each
// one should be. Respond calls it only once a range's fingerprint has
// failed to match and its item count has cleared the shipping threshold.
type SplitFunc func(n int) []int

// UniformSplit returns a SplitFunc that divides a range into up to
// branches buckets of as equal a size as possible, front-loading the
// remainder. A range with fewer items than branches gets one bucket per
// item instead of padding out empty ones.
func UniformSplit(branches int) SplitFunc {
	if branches < 1 {
		branches = 1
	}
	return func(n int) []int {
		if n == 0 {
			return nil
		}
		b := branches
		if b > n {
			b = n
		}
		sizes := make([]int, b)
		base, rem := n/b, n%b
		for i := range sizes {
			sizes[i] = base
			if i < rem {
				sizes[i]++
			}
		}
		return sizes
	}
}

// DefaultSplit is the split policy Respond uses when the embedder does not
// supply one: up to 16 buckets per mismatched range, so a mismatch
// recursion tends to bottom out in a couple of rounds rather than a long
// chain of two-way splits.
var DefaultSplit = UniformSplit(16)
