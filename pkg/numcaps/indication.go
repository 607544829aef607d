package numcaps

// Indication selects which lock-key icons are shown in the tray.
type Indication int

const (
	IndicateNum  Indication = 1 << 0
	IndicateCaps Indication = 1 << 1
	IndicateBoth            = IndicateNum | IndicateCaps
)

// Indications lists the selectable values in menu order.
var Indications = []Indication{IndicateNum, IndicateCaps, IndicateBoth}

// ParseIndication maps a persisted integer to an Indication. Anything that
// does not name exactly one of the selectable values falls back to
// IndicateBoth.
func ParseIndication(v int) Indication {
	switch i := Indication(v); i {
	case IndicateNum, IndicateCaps, IndicateBoth:
		return i
	}
	return IndicateBoth
}

func (i Indication) Shows(key Key) bool {
	switch key {
	case KeyNum:
		return i&IndicateNum != 0
	case KeyCaps:
		return i&IndicateCaps != 0
	}
	return false
}

func (i Indication) String() string {
	switch i {
	case IndicateNum:
		return numTitle
	case IndicateCaps:
		return capsTitle
	case IndicateBoth:
		return numTitle + " & " + capsTitle
	}
	return "none"
}
