package securetypes

import "github.com/systmms/securetypes/internal/memlock"

// SetLockObserver installs a callback that receives every failed memory-lock
// or unlock syscall together with the name of the operation. Locking is
// best-effort and its failures never reach the caller as errors; the observer
// is the one place they become visible. Pass nil to restore the default
// silent behavior.
//
// Install the observer before creating containers and do not change it while
// containers are in use.
func SetLockObserver(fn func(op string, err error)) {
	memlock.Observer = fn
}
