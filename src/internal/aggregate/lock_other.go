// FILE: alin/src/internal/aggregate/lock_other.go
//go:build !unix

package aggregate

// lockFile is a no-op where flock is unavailable; concurrent writers fall
// back to last-writer-wins.
func lockFile(path string) (func() error, error) {
	return func() error { return nil }, nil
}
