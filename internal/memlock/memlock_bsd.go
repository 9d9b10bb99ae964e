//go:build freebsd || dragonfly

package memlock

import "golang.org/x/sys/unix"

func lock(b []byte) {
	observe("mlock", unix.Mlock(b))
	observe("madvise", unix.Madvise(b, unix.MADV_NOCORE))
}

func unlock(b []byte) {
	observe("madvise", unix.Madvise(b, unix.MADV_CORE))
	observe("munlock", unix.Munlock(b))
}
