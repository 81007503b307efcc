//go:build windows

package player

import (
	"fmt"
	"syscall"
)

var procForegroundWindow = syscall.NewLazyDLL("user32.dll").NewProc("GetForegroundWindow")

// GetWindowHandle returns the HWND of the foreground window.
func GetWindowHandle() (int64, error) {
	hwnd, _, _ := procForegroundWindow.Call()
	if hwnd == 0 {
		return 0, fmt.Errorf("%w: no foreground window", ErrNoWindow)
	}
	return int64(hwnd), nil
}
