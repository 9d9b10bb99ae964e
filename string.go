package securetypes

import (
	"fmt"
	"io"
	"unicode/utf8"
	"unsafe"
)

// SecureString wraps a byte SecureBuffer and maintains one invariant: the
// content is always valid UTF-8. Every construction path establishes it, no
// exposed operation can break it, and the string-shaped views rely on it
// instead of re-validating.
type SecureString struct {
	buffer *SecureBuffer[byte]
}

// NewString copies s into a locked buffer. Go strings are immutable, so their
// bytes cannot be adopted in place; the source string stays in ordinary
// memory under the caller's control. Use StringFromBytes to adopt without
// copying.
func NewString(s string) *SecureString {
	return &SecureString{buffer: NewBuffer([]byte(s))}
}

// StringFromBytes takes ownership of b and locks it. It fails with
// ErrInvalidUTF8 when b is not valid UTF-8, leaving b untouched and owned by
// the caller.
func StringFromBytes(b []byte) (*SecureString, error) {
	if !utf8.Valid(b) {
		return nil, ErrInvalidUTF8
	}
	return &SecureString{buffer: NewBuffer(b)}, nil
}

// bytes returns the live content. The zero value of SecureString has no
// wrapped buffer yet and reads as empty.
func (s *SecureString) bytes() []byte {
	if s.buffer == nil {
		return nil
	}
	return s.buffer.content
}

// Unsecure returns a string view of the content without copying and without
// re-validating; validity is the invariant, not a per-call check. The view is
// valid until Destroy.
func (s *SecureString) Unsecure() string {
	content := s.bytes()
	if len(content) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(content), len(content))
}

// UnsecureMut returns the content as a mutable byte view. The caller must not
// introduce invalid UTF-8 through it.
func (s *SecureString) UnsecureMut() []byte { return s.bytes() }

// IntoUnsecure consumes the container: the memory is unlocked and the backing
// bytes become an ordinary string without copying. No zeroing happens —
// ownership of the bytes has moved to the returned string. The container must
// not be used afterwards.
func (s *SecureString) IntoUnsecure() string {
	if s.buffer == nil {
		return ""
	}
	content := s.buffer.release()
	if len(content) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(content), len(content))
}

// Len returns the content length in bytes.
func (s *SecureString) Len() int { return len(s.bytes()) }

// ZeroOut overwrites the content with zero bytes and resets the length to
// zero. The empty string is valid UTF-8, so the invariant holds.
func (s *SecureString) ZeroOut() {
	if s.buffer != nil {
		s.buffer.ZeroOut()
	}
}

// Clone deep-copies the content into a freshly locked string.
func (s *SecureString) Clone() *SecureString {
	dup := make([]byte, len(s.bytes()))
	copy(dup, s.bytes())
	return &SecureString{buffer: NewBuffer(dup)}
}

// Equal reports whether both strings hold identical content, in constant time
// with respect to content.
func (s *SecureString) Equal(other *SecureString) bool {
	return constantTimeEqual(s.bytes(), other.bytes())
}

// Destroy zeroes, unlocks and releases the wrapped buffer. Idempotent.
func (s *SecureString) Destroy() {
	if s.buffer != nil {
		s.buffer.Destroy()
	}
}

// adopt installs content, which callers have already validated, reusing the
// wrapped buffer when one exists.
func (s *SecureString) adopt(content []byte) {
	if s.buffer == nil {
		s.buffer = NewBuffer(content)
		return
	}
	s.buffer.adopt(content)
}

func (s *SecureString) String() string { return Redacted }

// Format emits the redaction marker for every verb and flag combination.
func (s *SecureString) Format(f fmt.State, _ rune) { io.WriteString(f, Redacted) }
