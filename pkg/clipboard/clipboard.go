package clipboard

import (
	"errors"
	"fmt"

	"golang.design/x/clipboard"
)

var ErrWriteFailed = errors.New("clipboard write failed")

// Clipboard reads and writes UTF-8 text on the system clipboard.
type Clipboard struct{}

func New() (*Clipboard, error) {
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("init clipboard: %w", err)
	}
	return &Clipboard{}, nil
}

// ReadText reports false when the clipboard holds no text.
func (c *Clipboard) ReadText() (string, bool) {
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return "", false
	}
	return string(data), true
}

func (c *Clipboard) WriteText(text string) error {
	if changed := clipboard.Write(clipboard.FmtText, []byte(text)); changed == nil {
		return ErrWriteFailed
	}
	return nil
}
