package relayout

import "errors"

var (
	ErrLengthMismatch = errors.New("key sequences differ in length")
	ErrEmptyLayout    = errors.New("layout has no keys")
	ErrUnknownLayout  = errors.New("unknown layout")
)

// Layout is the sequence of characters a keyboard layout produces, key by
// key, in a fixed physical order shared by every layout it is paired with.
type Layout struct {
	Name string `yaml:"name"`
	Keys string `yaml:"keys"`
}

// Direction remaps text typed with From active into what it would have
// been with To active.
type Direction struct {
	From Layout
	To   Layout

	index      map[rune]int
	out        []rune
	impossible map[rune]struct{}
}

type Pair struct {
	Forward  Direction
	Backward Direction
}
