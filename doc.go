// Package securetypes provides in-memory containers for secret material such
// as passwords, keys and tokens.
//
// Every container gives its content the same three protections:
//
//   - the backing memory is locked so the OS will not swap it out or include
//     it in core dumps (best-effort, see Platform Behavior)
//   - the memory is overwritten with zeros before it is released
//   - equality checks run in constant time with respect to content, and
//     diagnostic formatting always prints a fixed redaction marker instead of
//     the content
//
// # Containers
//
// SecureBuffer is the base container: a growable, heap-backed sequence of
// plain elements. SecureArray is its fixed-length counterpart; constructing
// one from a source of the wrong length fails with a *LengthMismatchError.
// SecureScalar guards a single value of an arbitrary plain type, including
// types with no valid all-zero representation. SecureString wraps a byte
// buffer and maintains a UTF-8 validity invariant, exposing string-shaped
// views.
//
// # Usage
//
// Construction takes ownership of the plain data and locks it immediately:
//
//	password := securetypes.NewString("hunter2")
//	defer password.Destroy()
//
//	check(password.Unsecure())
//
// Always pair construction with a deferred Destroy. A finalizer destroys
// containers their owner leaked, but the garbage collector gives no timing
// guarantee; the deferred call is what makes cleanup deterministic.
//
// Containers have a single owner and no internal locking. Ownership may move
// between goroutines, but concurrent mutation needs external synchronization.
//
// # Platform Behavior
//
// Memory locking is best-effort and varies by platform:
//
//   - Linux: mlock plus madvise(MADV_DONTDUMP); RLIMIT_MEMLOCK applies
//   - FreeBSD/DragonflyBSD: mlock plus madvise(MADV_NOCORE)
//   - other Unix: mlock only
//   - Windows: VirtualLock
//
// If locking fails the container keeps working and simply loses the
// swap/core-dump protection for that allocation. Locking failure is never
// surfaced as an error; SetLockObserver exposes failures for diagnostics.
//
// # Security Guarantees
//
// This package defends against accidental disclosure through logs and debug
// output, recovery of secrets from swap or core dumps, and timing side
// channels in equality checks.
//
// It does NOT protect against:
//
//   - attackers with arbitrary code execution in the same process
//   - hardware-level attacks (cold boot, DMA)
//   - zeroing being reordered beyond what ordinary memory writes guarantee
//
// Serializing a container (CBOR, JSON, YAML) deliberately discloses the
// secret; that is the point of the codec integration. Redaction applies only
// to fmt-style formatting.
package securetypes
