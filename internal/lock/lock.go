// Package lock guards a contacts file against a second process opening
// it in exclusive mode. It is advisory only; writers that skip the lock
// are not stopped.
package lock

import "errors"

// ErrLocked is returned when another process holds the lock.
var ErrLocked = errors.New("contacts file already in use by another process")

const lockSuffix = ".lock"

func lockPath(path string) string {
	return path + lockSuffix
}
