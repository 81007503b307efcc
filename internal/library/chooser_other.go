//go:build !linux

package library

import "errors"

var ErrCancelled = errors.New("folder selection cancelled")

// ChooseFolder is only available through the linux desktop portal.
func ChooseFolder() (string, error) {
	return "", errors.New("no folder chooser on this platform, pass a path")
}
