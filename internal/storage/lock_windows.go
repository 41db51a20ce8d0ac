//go:build windows

package storage

import "os"

// Windows has no flock; the open lock file is all there is.
// TODO: use LockFileEx from golang.org/x/sys/windows.

func lockFile(*os.File) error { return nil }

func unlockFile(*os.File) error { return nil }
