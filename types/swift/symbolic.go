package swift

import "fmt"

// SymbolicReferenceKind is the kind of entity a symbolic reference in a mangled name points at.
type SymbolicReferenceKind uint8

const (
	UnknownSymbolicReference SymbolicReferenceKind = iota
	// A symbolic reference to a context descriptor, representing the
	// (unapplied generic) context.
	ContextSymbolicReference
	// A symbolic reference to an accessor function, which can be executed in
	// the process to get a pointer to the referenced entity.
	AccessorFunctionReference
	// A symbolic reference to a unique extended existential type shape.
	UniqueExtendedExistentialTypeShape
	// A symbolic reference to a non-unique extended existential type shape.
	NonUniqueExtendedExistentialTypeShape
	// A symbolic reference to a objective C protocol ref.
	ObjectiveCProtocol
)

func (k SymbolicReferenceKind) String() string {
	switch k {
	case ContextSymbolicReference:
		return "context"
	case AccessorFunctionReference:
		return "accessor function"
	case UniqueExtendedExistentialTypeShape:
		return "unique extended existential type shape"
	case NonUniqueExtendedExistentialTypeShape:
		return "non-unique extended existential type shape"
	case ObjectiveCProtocol:
		return "objc protocol"
	}
	return fmt.Sprintf("SymbolicReferenceKind(%d)", uint8(k))
}

// Directness says whether a symbolic reference points at the entity or at a pointer to it.
type Directness uint8

const (
	Direct Directness = iota
	Indirect
)

func (d Directness) String() string {
	if d == Indirect {
		return "indirect"
	}
	return "direct"
}

const (
	SymbolicTerminator    = 0x00
	SymbolicRelativeFirst = 0x01
	SymbolicRelativeLast  = 0x17
	SymbolicAbsoluteFirst = 0x18
	SymbolicAbsoluteLast  = 0x1F

	SizeOfRelativeSymbolicReference = 4
	SizeOfAbsoluteSymbolicReference = 8
)

// IsRelativeSymbolicControl reports whether b introduces a 4-byte relative reference.
func IsRelativeSymbolicControl(b byte) bool {
	return b >= SymbolicRelativeFirst && b <= SymbolicRelativeLast
}

// IsAbsoluteSymbolicControl reports whether b introduces an 8-byte absolute reference.
func IsAbsoluteSymbolicControl(b byte) bool {
	return b >= SymbolicAbsoluteFirst && b <= SymbolicAbsoluteLast
}

// ParseSymbolicControl maps a control byte to the kind and directness of its reference.
func ParseSymbolicControl(b byte) (SymbolicReferenceKind, Directness) {
	switch b {
	case 0x01:
		return ContextSymbolicReference, Direct
	case 0x02:
		return ContextSymbolicReference, Indirect
	case 0x09:
		return AccessorFunctionReference, Direct
	case 0x0A:
		return UniqueExtendedExistentialTypeShape, Indirect
	case 0x0B:
		return NonUniqueExtendedExistentialTypeShape, Direct
	case 0x0C:
		return ObjectiveCProtocol, Direct
	}
	return UnknownSymbolicReference, Direct
}
