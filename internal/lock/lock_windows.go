//go:build windows

package lock

import (
	"os"
)

// LockFile attempts to acquire an exclusive lock for the given contacts
// file.
//
// On Windows, this is implemented by atomically creating "<path>.lock".
// If that file already exists, the contacts file is assumed to be owned
// by another process.
func LockFile(path string) (*os.File, error) {
	f, err := os.OpenFile(lockPath(path), os.O_CREATE|os.O_EXCL|os.O_RDWR, 0644)
	if err != nil {
		return nil, ErrLocked
	}

	return f, nil
}

// UnlockFile releases a lock acquired via LockFile.
//
// On Windows, this removes the lock file from disk. UnlockFile should be
// called exactly once for each successful LockFile call.
func UnlockFile(f *os.File) {
	name := f.Name()
	f.Close()
	os.Remove(name)
}
