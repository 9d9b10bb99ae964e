package securetypes

import (
	"fmt"
	"io"
	"runtime"

	"github.com/systmms/securetypes/internal/memlock"
)

// SecureBuffer owns a growable, heap-backed sequence of plain elements. The
// full capacity of the backing store, not just the live length, stays locked
// for the buffer's whole lifetime; on destruction the allocation is zeroed
// and unlocked.
//
// A buffer has a single owner and no internal locking.
type SecureBuffer[T Plain] struct {
	content   []T
	destroyed bool
}

// NewBuffer takes ownership of content and locks its full capacity. The
// caller must not keep using the slice afterwards.
func NewBuffer[T Plain](content []T) *SecureBuffer[T] {
	b := &SecureBuffer[T]{content: content}
	memlock.Lock(capBytes(content))
	runtime.SetFinalizer(b, (*SecureBuffer[T]).Destroy)
	return b
}

// BufferFromString copies s into a fresh locked byte buffer. The source
// string itself stays in ordinary memory under the caller's control; prefer
// byte-slice input where the data originates as bytes.
func BufferFromString(s string) *SecureBuffer[byte] {
	return NewBuffer([]byte(s))
}

// Unsecure returns a view of the live elements without copying. The view is
// valid until the next Resize or Destroy; mutating it mutates the buffer.
func (b *SecureBuffer[T]) Unsecure() []T { return b.content }

// Len returns the number of live elements.
func (b *SecureBuffer[T]) Len() int { return len(b.content) }

// Cap returns the capacity of the locked backing store, in elements.
func (b *SecureBuffer[T]) Cap() int { return cap(b.content) }

// Resize changes the live length to n.
//
// Shrinking truncates in place: the allocation, and its lock, are untouched.
// Growing always moves to a fresh allocation of exactly n elements filled
// with fill: the new store is locked before the live prefix is copied over,
// and the old store is zeroed and unlocked only after, so secret bytes never
// sit in an unlocked or unzeroed region during the move.
func (b *SecureBuffer[T]) Resize(n int, fill T) {
	if n <= len(b.content) {
		b.content = b.content[:n]
		return
	}

	grown := make([]T, n)
	memlock.Lock(capBytes(grown))
	for i := range grown {
		grown[i] = fill
	}
	copy(grown, b.content)

	wipe(liveBytes(b.content))
	memlock.Unlock(capBytes(b.content))
	b.content = grown
}

// ZeroOut overwrites the live elements with zero bytes and resets the logical
// length to zero. Capacity and the memory lock are unaffected.
func (b *SecureBuffer[T]) ZeroOut() {
	wipe(liveBytes(b.content))
	b.content = b.content[:0]
}

// Clone deep-copies the live content into a freshly locked buffer. The clone
// never shares the backing store with the original.
func (b *SecureBuffer[T]) Clone() *SecureBuffer[T] {
	dup := make([]T, len(b.content))
	copy(dup, b.content)
	return NewBuffer(dup)
}

// Equal reports whether both buffers hold identical live content. The
// comparison runs in constant time with respect to content; only the lengths
// influence how long it takes.
func (b *SecureBuffer[T]) Equal(other *SecureBuffer[T]) bool {
	return constantTimeEqual(b.content, other.content)
}

// Destroy zeroes the full capacity region, unlocks it and releases the
// backing store. Idempotent. A finalizer runs Destroy on buffers the owner
// never destroyed; rely on a deferred call, not the garbage collector.
func (b *SecureBuffer[T]) Destroy() {
	if b.destroyed {
		return
	}
	wipe(capBytes(b.content))
	memlock.Unlock(capBytes(b.content))
	b.content = nil
	b.destroyed = true
	runtime.SetFinalizer(b, nil)
}

// adopt locks content and installs it as the backing store, zeroing and
// unlocking any previous one. Used by the codec Unmarshal paths.
func (b *SecureBuffer[T]) adopt(content []T) {
	if b.content != nil {
		wipe(capBytes(b.content))
		memlock.Unlock(capBytes(b.content))
	}
	memlock.Lock(capBytes(content))
	b.content = content
	b.destroyed = false
	runtime.SetFinalizer(b, (*SecureBuffer[T]).Destroy)
}

// release hands the backing store to the caller without zeroing it, unlocking
// first. Ownership of the bytes moves out of the container; used by
// SecureString.IntoUnsecure.
func (b *SecureBuffer[T]) release() []T {
	content := b.content
	memlock.Unlock(capBytes(content))
	b.content = nil
	b.destroyed = true
	runtime.SetFinalizer(b, nil)
	return content
}

func (b *SecureBuffer[T]) String() string { return Redacted }

// Format emits the redaction marker for every verb and flag combination.
func (b *SecureBuffer[T]) Format(f fmt.State, _ rune) { io.WriteString(f, Redacted) }
