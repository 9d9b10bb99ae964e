// Package memlock pins memory regions so the operating system will not page
// them to swap or include them in core dumps.
//
// Both operations are best-effort: locking is defense in depth, not a
// correctness requirement, and failures (RLIMIT_MEMLOCK, unsupported
// platforms) must never prevent secret storage from working. Neither call
// returns an error; set Observer to see failures.
//
// Platform behavior:
//
//   - Linux: mlock(2) plus madvise(MADV_DONTDUMP); unlock reverses both
//   - FreeBSD, DragonflyBSD: mlock(2) plus madvise(MADV_NOCORE)
//   - macOS, NetBSD, OpenBSD: mlock(2) only
//   - Windows: VirtualLock / VirtualUnlock
//   - everything else: no-op
package memlock

// Observer, if non-nil, receives every failed lock or unlock syscall together
// with the name of the operation that failed. It exists for diagnostics only;
// callers of Lock and Unlock never see the failure. Set it before creating
// containers and do not change it concurrently with container use.
var Observer func(op string, err error)

func observe(op string, err error) {
	if err != nil && Observer != nil {
		Observer(op, err)
	}
}

// Lock asks the OS to pin b's pages in physical memory and exclude them from
// core dumps. Zero-length regions are ignored.
func Lock(b []byte) {
	if len(b) == 0 {
		return
	}
	lock(b)
}

// Unlock releases a pin previously requested with Lock and makes the pages
// dumpable again. Zero-length regions are ignored.
func Unlock(b []byte) {
	if len(b) == 0 {
		return
	}
	unlock(b)
}
