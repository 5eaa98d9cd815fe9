package memrange

// Error is a broken precondition of a range or memory operation. Kind names
// the precondition; Op, when set, names the operation that checked it.
// errors.Is matches on Kind, so an Error with an Op still matches the bare
// sentinel of its kind.
type Error struct {
	Op   string
	Kind string
}

// Precondition kinds.
var (
	ErrNullPointer          = &Error{Kind: "null pointer"}
	ErrInvalidMemoryRange   = &Error{Kind: "invalid memory range"}
	ErrOutOfRange           = &Error{Kind: "out of range"}
	ErrZeroElementSize      = &Error{Kind: "zero element size"}
	ErrDifferentElementSize = &Error{Kind: "different element size"}
	ErrNotPowerOfTwo        = &Error{Kind: "not a power of two"}
	ErrOverflow             = &Error{Kind: "address overflow"}
)

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Kind
	}
	return e.Op + ": " + e.Kind
}

func (e *Error) Is(target error) bool {
	kind, ok := target.(*Error)
	return ok && kind.Kind == e.Kind && (kind.Op == "" || kind.Op == e.Op)
}
