//go:build linux

package player

/*
#cgo LDFLAGS: -lX11
#include <X11/Xlib.h>

long focusedWindowX11() {
    Display *d = XOpenDisplay(NULL);
    if (!d) return 0;
    Window w;
    int revert;
    XGetInputFocus(d, &w, &revert);
    XCloseDisplay(d);
    return (long)w;
}
*/
import "C"

import "fmt"

// GetWindowHandle returns the X11 window ID of the focused window, which is
// the viewer's own window while it handles input.
func GetWindowHandle() (int64, error) {
	if wid := int64(C.focusedWindowX11()); wid != 0 {
		return wid, nil
	}
	return 0, fmt.Errorf("%w: no focused X11 window", ErrNoWindow)
}
