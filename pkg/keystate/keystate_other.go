//go:build !windows

package keystate

import (
	"errors"

	"codeberg.org/miketth/numcaps/pkg/numcaps"
)

var ErrUnsupported = errors.New("lock key state is only available on windows")

type Reader struct{}

func NewReader() (*Reader, error) {
	return nil, ErrUnsupported
}

func (r *Reader) IsToggled(numcaps.Key) bool {
	return false
}
