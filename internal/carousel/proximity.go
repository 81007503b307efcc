package carousel

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Loading decides when an item's source is resolved.
type Loading int

const (
	// LoadingAuto resolves items that were seen or sit inside the proximity window.
	LoadingAuto Loading = iota
	// LoadingEager always resolves.
	LoadingEager
	// LoadingLazy resolves only items that have been selected at least once.
	LoadingLazy
)

// ErrInvalidLoading is returned by ParseLoading for unknown modes.
var ErrInvalidLoading = errors.New("invalid loading mode")

// ParseLoading parses "auto", "eager" or "lazy". Empty means auto.
func ParseLoading(s string) (Loading, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return LoadingAuto, nil
	case "eager":
		return LoadingEager, nil
	case "lazy":
		return LoadingLazy, nil
	}
	return LoadingAuto, fmt.Errorf("%w: %q", ErrInvalidLoading, s)
}

func (l Loading) String() string {
	switch l {
	case LoadingEager:
		return "eager"
	case LoadingLazy:
		return "lazy"
	default:
		return "auto"
	}
}

// ProximityWindow returns how many items on each side of the selection are
// pre-rendered: half the items visible at once, rounded out, plus one.
// Unmeasured geometry yields 1.
func ProximityWindow(viewport, item float64) int {
	if viewport <= 0 || item <= 0 {
		return 1
	}
	n := int(math.Floor(math.Ceil(viewport/(item+1))/2)) + 1
	if n < 1 {
		return 1
	}
	return n
}

// InProximity reports whether real index lies within window items of
// selected. With looping the distance across the seam counts too.
func InProximity(selected, index, count int, loop bool, window int) bool {
	d := abs(selected - index)
	if d <= window {
		return true
	}
	return loop && abs(d-count) <= window
}

// ShouldResolve applies the loading mode to one item.
func ShouldResolve(mode Loading, seen, inProximity bool) bool {
	switch mode {
	case LoadingEager:
		return true
	case LoadingLazy:
		return seen
	default:
		return seen || inProximity
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
