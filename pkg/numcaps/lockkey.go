package numcaps

import "fmt"

type Key int

const (
	KeyNum Key = iota
	KeyCaps
)

var Keys = []Key{KeyNum, KeyCaps}

const (
	numTitle  = "Numlock"
	capsTitle = "Capslock"
)

func (k Key) Title() string {
	switch k {
	case KeyNum:
		return numTitle
	case KeyCaps:
		return capsTitle
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

type IconID int

const (
	IconNumOff IconID = iota
	IconNumOn
	IconCapsOff
	IconCapsOn
)

var IconIDs = []IconID{IconNumOff, IconNumOn, IconCapsOff, IconCapsOn}

func (k Key) Icons() (on, off IconID) {
	if k == KeyCaps {
		return IconCapsOn, IconCapsOff
	}
	return IconNumOn, IconNumOff
}

// LockKey is the displayed state of one lock key. It is replaced, never
// mutated in place.
type LockKey struct {
	Key Key
	On  bool
}

// Reconcile returns the key with its state set to actual and whether
// anything changed.
func (l LockKey) Reconcile(actual bool) (LockKey, bool) {
	if l.On == actual {
		return l, false
	}
	return LockKey{Key: l.Key, On: actual}, true
}

func (l LockKey) Title() string {
	return l.Key.Title()
}

func (l LockKey) Icon() IconID {
	on, off := l.Key.Icons()
	if l.On {
		return on
	}
	return off
}

func (l LockKey) Tooltip() string {
	return fmt.Sprintf("%s: %s", l.Title(), OnOff(l.On))
}

func OnOff(state bool) string {
	if state {
		return "On"
	}
	return "Off"
}
