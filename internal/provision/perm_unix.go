//go:build !windows

package provision

import "os"

// restrictOwnerOnly sets owner-only access (0700) on path. On platforms that
// support the mode, a failure here is fatal for the caller.
func restrictOwnerOnly(path string) error {
	return os.Chmod(path, 0o700)
}
