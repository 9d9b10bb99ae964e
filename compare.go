package securetypes

import "crypto/subtle"

// constantTimeEqual reports whether a and b hold identical content. Execution
// time depends only on the aggregate lengths: mismatched lengths fail
// immediately, equal lengths always cost a full XOR-accumulating scan
// regardless of where the first difference sits. crypto/subtle provides the
// non-short-circuiting accumulation. Sound because Plain rules out padding
// bytes in the element representation.
func constantTimeEqual[T Plain](a, b []T) bool {
	return subtle.ConstantTimeCompare(liveBytes(a), liveBytes(b)) == 1
}
