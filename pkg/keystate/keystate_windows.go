//go:build windows

package keystate

import (
	"codeberg.org/miketth/numcaps/pkg/numcaps"
	"github.com/lxn/win"
)

var virtualKeys = map[numcaps.Key]int32{
	numcaps.KeyNum:  win.VK_NUMLOCK,
	numcaps.KeyCaps: win.VK_CAPITAL,
}

// Reader asks Windows for the toggle state of the lock keys.
type Reader struct{}

func NewReader() (*Reader, error) {
	return &Reader{}, nil
}

func (r *Reader) IsToggled(key numcaps.Key) bool {
	vk, ok := virtualKeys[key]
	if !ok {
		return false
	}
	// low-order bit is the toggle state
	return win.GetKeyState(vk)&1 == 1
}
