package ast

import "strings"

// Unit represents the unit attached to a numeric term.
type Unit int

const (
	NoUnit Unit = iota
	Percent
	EM
	EX
	PX
	GD
	REM
	VW
	VH
	VM
	CH
	MM
	CM
	IN
	PT
	PC
	DEG
	GRAD
	RAD
	TURN
	MS
	S
	HZ
	KHZ
)

var units = [...]string{
	NoUnit:  "",
	Percent: "%",
	EM:      "em",
	EX:      "ex",
	PX:      "px",
	GD:      "gd",
	REM:     "rem",
	VW:      "vw",
	VH:      "vh",
	VM:      "vm",
	CH:      "ch",
	MM:      "mm",
	CM:      "cm",
	IN:      "in",
	PT:      "pt",
	PC:      "pc",
	DEG:     "deg",
	GRAD:    "grad",
	RAD:     "rad",
	TURN:    "turn",
	MS:      "ms",
	S:       "s",
	HZ:      "Hz",
	KHZ:     "kHz",
}

var unitNames map[string]Unit

func init() {
	unitNames = make(map[string]Unit)
	for u := EM; u < Unit(len(units)); u++ {
		unitNames[strings.ToLower(units[u])] = u
	}
}

// String returns the unit as written after a number.
func (u Unit) String() string {
	if u >= 0 && u < Unit(len(units)) {
		return units[u]
	}
	return ""
}

// LookupUnit returns the unit for an identifier, ignoring case.
// Percentages are not identifiers and are never returned.
func LookupUnit(ident string) (Unit, bool) {
	u, ok := unitNames[strings.ToLower(ident)]
	return u, ok
}
