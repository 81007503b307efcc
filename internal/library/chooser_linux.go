//go:build linux

package library

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/rymdport/portal/filechooser"
)

var ErrCancelled = errors.New("folder selection cancelled")

// ChooseFolder asks the desktop portal for a folder to open.
func ChooseFolder() (string, error) {
	uris, err := filechooser.OpenFile("", "Open Folder", &filechooser.OpenFileOptions{
		AcceptLabel: "Open",
		Directory:   true,
	})
	if err != nil {
		return "", fmt.Errorf("folder chooser: %w", err)
	}
	if len(uris) == 0 {
		return "", ErrCancelled
	}
	return pathFromURI(uris[0])
}

func pathFromURI(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", err
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("unsupported location %s", uri)
	}
	return u.Path, nil
}
