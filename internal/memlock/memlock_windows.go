//go:build windows

package memlock

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func lock(b []byte) {
	observe("VirtualLock", windows.VirtualLock(uintptr(unsafe.Pointer(&b[0])), uintptr(len(b))))
}

func unlock(b []byte) {
	observe("VirtualUnlock", windows.VirtualUnlock(uintptr(unsafe.Pointer(&b[0])), uintptr(len(b))))
}
