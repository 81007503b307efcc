package ui

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// InitClipboard prepares the system clipboard. Later calls return the
// result of the first.
func InitClipboard() error {
	clipboardOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			clipboardErr = fmt.Errorf("clipboard: %w", err)
		}
	})
	return clipboardErr
}

// WriteClipboard copies text to the system clipboard.
func WriteClipboard(text string) error {
	if err := InitClipboard(); err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
