//go:build darwin || netbsd || openbsd

package memlock

import "golang.org/x/sys/unix"

// No per-region core-dump exclusion on these platforms; mlock still keeps the
// pages out of swap.

func lock(b []byte) {
	observe("mlock", unix.Mlock(b))
}

func unlock(b []byte) {
	observe("munlock", unix.Munlock(b))
}
