package memrange

import "fmt"

// State classifies a (begin, end) pair. Every pair has exactly one state.
type State uint8

const (
	// Uninitialized is begin == end == Null.
	Uninitialized State = iota
	// Empty is begin == end, both non-null.
	Empty
	// HasData is begin < end, both non-null.
	HasData
	// InvalidNullBegin is a null begin with a non-null end.
	InvalidNullBegin
	// InvalidNullEnd is a non-null begin with a null end.
	InvalidNullEnd
	// InvalidDangling is begin > end, both non-null.
	InvalidDangling
)

func StateOf(begin, end Addr) State {
	switch {
	case begin == Null && end == Null:
		return Uninitialized
	case begin == Null:
		return InvalidNullBegin
	case end == Null:
		return InvalidNullEnd
	case begin == end:
		return Empty
	case begin < end:
		return HasData
	default:
		return InvalidDangling
	}
}

// Valid reports whether s is Empty or HasData.
func (s State) Valid() bool {
	return s == Empty || s == HasData
}

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Empty:
		return "empty"
	case HasData:
		return "has-data"
	case InvalidNullBegin:
		return "invalid-null-begin"
	case InvalidNullEnd:
		return "invalid-null-end"
	case InvalidDangling:
		return "invalid-dangling"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}
