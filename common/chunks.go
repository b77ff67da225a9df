package common

// Chunks splits s into consecutive groups of n elements; the last group
// may be short. n below 1 yields a single group holding all of s.
func Chunks[T any](s []T, n int) [][]T {
	if len(s) == 0 {
		return nil
	}
	if n < 1 {
		return [][]T{s}
	}
	out := make([][]T, 0, (len(s)+n-1)/n)
	for start := 0; start < len(s); start += n {
		end := min(start+n, len(s))
		out = append(out, s[start:end])
	}
	return out
}
