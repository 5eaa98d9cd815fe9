package interval

import "fmt"

// Topology selects which bounds of an interval are inclusive.
type Topology uint8

const (
	// Closed is [lo, hi].
	Closed Topology = iota
	// OpenLeft is (lo, hi].
	OpenLeft
	// OpenRight is [lo, hi).
	OpenRight
	// Open is (lo, hi).
	Open
)

// Topologies lists every known topology in declaration order.
var Topologies = [...]Topology{Closed, OpenLeft, OpenRight, Open}

// Known reports whether t is one of the four declared topologies.
func (t Topology) Known() bool {
	return t <= Open
}

// LowerInclusive reports whether lo is part of the interval. It panics for an
// unknown topology.
func (t Topology) LowerInclusive() bool {
	t.mustBeKnown()
	return t == Closed || t == OpenRight
}

// UpperInclusive reports whether hi is part of the interval. It panics for an
// unknown topology.
func (t Topology) UpperInclusive() bool {
	t.mustBeKnown()
	return t == Closed || t == OpenLeft
}

func (t Topology) mustBeKnown() {
	if !t.Known() {
		panic(fmt.Errorf("%w: %d", ErrUnknownTopology, uint8(t)))
	}
}

// Brackets returns the opening and closing bracket used in interval notation.
func (t Topology) Brackets() (open, close string) {
	switch t {
	case Closed:
		return "[", "]"
	case OpenLeft:
		return "(", "]"
	case OpenRight:
		return "[", ")"
	case Open:
		return "(", ")"
	}
	return "?", "?"
}

func (t Topology) String() string {
	switch t {
	case Closed:
		return "closed"
	case OpenLeft:
		return "open-left"
	case OpenRight:
		return "open-right"
	case Open:
		return "open"
	}
	return fmt.Sprintf("Topology(%d)", uint8(t))
}

// topologyOf maps a pair of brackets back to a topology.
func topologyOf(open, close byte) (Topology, bool) {
	switch {
	case open == '[' && close == ']':
		return Closed, true
	case open == '(' && close == ']':
		return OpenLeft, true
	case open == '[' && close == ')':
		return OpenRight, true
	case open == '(' && close == ')':
		return Open, true
	}
	return 0, false
}
