package player

import "errors"

// ErrNoWindow is returned when no native window handle is available for
// embedding mpv.
var ErrNoWindow = errors.New("no native window")
