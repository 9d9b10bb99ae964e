package securetypes

import (
	"crypto/subtle"
	"fmt"
	"io"
	"runtime"
	"unsafe"

	"github.com/systmms/securetypes/internal/memlock"
)

// SecureScalar guards exactly one heap-allocated value. Unlike the sequence
// containers, T is not constrained to Plain: any copyable value type is
// allowed, including types with no valid all-zero representation, because
// destruction never reads the stored bytes back as a T. Operations that do
// interpret the bytes (Equal, ZeroOut) carry documented caller obligations
// instead.
//
// T must not own other memory (no pointers, slices, maps or channels);
// zeroing the value's own bytes is the only cleanup that happens.
type SecureScalar[T any] struct {
	content   *T
	destroyed bool
}

// NewScalar moves value into locked heap storage.
func NewScalar[T any](value T) *SecureScalar[T] {
	content := new(T)
	*content = value
	s := &SecureScalar[T]{content: content}
	memlock.Lock(scalarBytes(content))
	runtime.SetFinalizer(s, (*SecureScalar[T]).Destroy)
	return s
}

// scalarBytes reinterprets the allocation behind p as raw bytes.
func scalarBytes[T any](p *T) []byte {
	size := int(unsafe.Sizeof(*p))
	if size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), size)
}

// Unsecure returns a pointer to the guarded value, valid until Destroy. Reads
// and writes both go through it.
func (s *SecureScalar[T]) Unsecure() *T { return s.content }

// Clone deep-copies the value into freshly locked storage.
func (s *SecureScalar[T]) Clone() *SecureScalar[T] {
	return NewScalar(*s.content)
}

// Equal compares the two values' raw bytes in constant time. Only meaningful
// when T has no padding bytes; padding carries indeterminate content and its
// comparison is unspecified.
func (s *SecureScalar[T]) Equal(other *SecureScalar[T]) bool {
	return subtle.ConstantTimeCompare(scalarBytes(s.content), scalarBytes(other.content)) == 1
}

// ZeroOut overwrites the value's bytes with zero. The scalar stays usable.
//
// The caller asserts, as a precondition this package cannot check, that the
// all-zero bit pattern is a valid value of T. Reading the value afterwards
// when it is not is undefined. Destroy carries no such obligation: nothing
// observes the bytes it zeroes.
func (s *SecureScalar[T]) ZeroOut() {
	wipe(scalarBytes(s.content))
}

// Destroy zeroes the allocation through an untyped byte view, unlocks it and
// drops the only reference. No value of T is ever constructed from or read
// out of the zeroed memory, so types without a valid all-zero representation
// are safe here. Idempotent, with the same finalizer backstop as
// SecureBuffer.
func (s *SecureScalar[T]) Destroy() {
	if s.destroyed {
		return
	}
	view := scalarBytes(s.content)
	wipe(view)
	memlock.Unlock(view)
	s.content = nil
	s.destroyed = true
	runtime.SetFinalizer(s, nil)
}

func (s *SecureScalar[T]) String() string { return Redacted }

// Format emits the redaction marker for every verb and flag combination.
func (s *SecureScalar[T]) Format(f fmt.State, _ rune) { io.WriteString(f, Redacted) }
