// Package clipboard writes generated passwords to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

var (
	ErrEmptyPassword = errors.New("nothing to copy: password is empty")
	ErrUnsupported   = errors.New("system clipboard is unavailable")
)

// Writer is the platform boundary for clipboard writes.
type Writer interface {
	WriteAll(text string) error
}

type systemWriter struct{}

func (systemWriter) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// System returns the host clipboard. On Linux it needs xclip, xsel,
// wl-copy or termux-clipboard-set on PATH.
func System() Writer {
	return systemWriter{}
}

// Copy writes password to w verbatim. Failures are returned, not swallowed.
func Copy(w Writer, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if err := w.WriteAll(password); err != nil {
		return fmt.Errorf("copying password to clipboard: %w", err)
	}
	return nil
}
