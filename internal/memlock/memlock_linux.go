//go:build linux

package memlock

import "golang.org/x/sys/unix"

func lock(b []byte) {
	observe("mlock", unix.Mlock(b))
	// madvise wants a page-aligned address and rejects interior pointers
	// with EINVAL; the call is advisory either way.
	observe("madvise", unix.Madvise(b, unix.MADV_DONTDUMP))
}

func unlock(b []byte) {
	observe("madvise", unix.Madvise(b, unix.MADV_DODUMP))
	observe("munlock", unix.Munlock(b))
}
