package securetypes

import (
	"fmt"
	"io"
	"runtime"

	"github.com/systmms/securetypes/internal/memlock"
)

// SecureArray owns a fixed-length sequence of plain elements. The length is
// fixed when the array is constructed and every variable-length entry point
// (construction from a slice or string, codec decoding) enforces it. There is
// no capacity/length distinction and no resizing; the lock spans the whole
// region for the array's lifetime.
//
// An array has a single owner and no internal locking.
type SecureArray[T Plain] struct {
	content   []T
	destroyed bool
}

// NewArray takes ownership of content and locks it; len(content) becomes the
// array's fixed length. The caller must not keep using the slice afterwards.
func NewArray[T Plain](content []T) *SecureArray[T] {
	a := &SecureArray[T]{content: content}
	memlock.Lock(capBytes(content))
	runtime.SetFinalizer(a, (*SecureArray[T]).Destroy)
	return a
}

// NewArrayFrom adopts src as an array of the given fixed length. It fails
// with a *LengthMismatchError when len(src) differs from length.
func NewArrayFrom[T Plain](length int, src []T) (*SecureArray[T], error) {
	if len(src) != length {
		return nil, &LengthMismatchError{Expected: length, Actual: len(src)}
	}
	return NewArray(src), nil
}

// ArrayFromString copies s into a locked byte array of the given fixed
// length, failing with a *LengthMismatchError when the lengths differ.
func ArrayFromString(length int, s string) (*SecureArray[byte], error) {
	return NewArrayFrom(length, []byte(s))
}

// Unsecure returns a view of the elements without copying. The view is valid
// until Destroy; mutating it mutates the array.
func (a *SecureArray[T]) Unsecure() []T { return a.content }

// Len returns the fixed length.
func (a *SecureArray[T]) Len() int { return len(a.content) }

// ZeroOut overwrites every element with zero bytes. The length is fixed and
// stays unchanged.
func (a *SecureArray[T]) ZeroOut() {
	wipe(liveBytes(a.content))
}

// Clone deep-copies the content into a freshly locked array of the same
// length.
func (a *SecureArray[T]) Clone() *SecureArray[T] {
	dup := make([]T, len(a.content))
	copy(dup, a.content)
	return NewArray(dup)
}

// Equal reports whether both arrays hold identical content, in constant time
// with respect to content. Arrays of different lengths are never equal.
func (a *SecureArray[T]) Equal(other *SecureArray[T]) bool {
	return constantTimeEqual(a.content, other.content)
}

// Destroy zeroes the region, unlocks it and releases the backing store.
// Idempotent, with the same finalizer backstop as SecureBuffer.
func (a *SecureArray[T]) Destroy() {
	if a.destroyed {
		return
	}
	wipe(capBytes(a.content))
	memlock.Unlock(capBytes(a.content))
	a.content = nil
	a.destroyed = true
	runtime.SetFinalizer(a, nil)
}

// adopt installs content, enforcing the fixed length when one has been
// established. A fresh zero-value array has no length yet and takes the
// source's.
func (a *SecureArray[T]) adopt(content []T) error {
	if a.content != nil && len(content) != len(a.content) {
		return &LengthMismatchError{Expected: len(a.content), Actual: len(content)}
	}
	if a.content != nil {
		wipe(capBytes(a.content))
		memlock.Unlock(capBytes(a.content))
	}
	memlock.Lock(capBytes(content))
	a.content = content
	a.destroyed = false
	runtime.SetFinalizer(a, (*SecureArray[T]).Destroy)
	return nil
}

func (a *SecureArray[T]) String() string { return Redacted }

// Format emits the redaction marker for every verb and flag combination.
func (a *SecureArray[T]) Format(f fmt.State, _ rune) { io.WriteString(f, Redacted) }
