//go:build windows

package provision

// restrictOwnerOnly is a no-op on Windows, which has no POSIX mode bits.
func restrictOwnerOnly(path string) error {
	return nil
}
