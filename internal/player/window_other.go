//go:build !linux && !windows

package player

// GetWindowHandle is unsupported here; mpv opens its own window.
func GetWindowHandle() (int64, error) {
	return 0, ErrNoWindow
}
