package swift

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	MANGLING_PREFIX       = "$s"
	MANGLING_MODULE_OBJC  = "__C"
	MANGLING_MODULE_SWIFT = "Swift"
)

// ContextDescriptorKind is the kind of a context descriptor.
type ContextDescriptorKind uint8

const (
	// This context descriptor represents a module.
	CDKindModule ContextDescriptorKind = 0 // module

	/// This context descriptor represents an extension.
	CDKindExtension ContextDescriptorKind = 1 // extension

	// This context descriptor represents an anonymous possibly-generic context
	// such as a function body.
	CDKindAnonymous ContextDescriptorKind = 2 // anonymous

	// This context descriptor represents a protocol context.
	CDKindProtocol ContextDescriptorKind = 3 // protocol

	// This context descriptor represents an opaque type alias.
	CDKindOpaqueType ContextDescriptorKind = 4 // opaque_type

	// First kind that represents a type of any sort.
	CDKindTypeFirst = 16 // type_first

	// This context descriptor represents a class.
	CDKindClass ContextDescriptorKind = CDKindTypeFirst // class

	// This context descriptor represents a struct.
	CDKindStruct ContextDescriptorKind = CDKindTypeFirst + 1 // struct

	// This context descriptor represents an enum.
	CDKindEnum ContextDescriptorKind = CDKindTypeFirst + 2 // enum

	// Last kind that represents a type of any sort.
	CDKindTypeLast = 31 // type_last
)

func (k ContextDescriptorKind) String() string {
	switch k {
	case CDKindModule:
		return "module"
	case CDKindExtension:
		return "extension"
	case CDKindAnonymous:
		return "anonymous"
	case CDKindProtocol:
		return "protocol"
	case CDKindOpaqueType:
		return "opaque_type"
	case CDKindClass:
		return "class"
	case CDKindStruct:
		return "struct"
	case CDKindEnum:
		return "enum"
	}
	if k.IsType() {
		return fmt.Sprintf("type(%d)", uint8(k))
	}
	return fmt.Sprintf("ContextDescriptorKind(%d)", uint8(k))
}

// IsType reports whether the kind describes a nominal type.
func (k ContextDescriptorKind) IsType() bool {
	return k >= CDKindTypeFirst && k <= CDKindTypeLast
}

// HasName reports whether descriptors of this kind carry a name field.
func (k ContextDescriptorKind) HasName() bool {
	return k == CDKindModule || k == CDKindProtocol || k.IsType()
}

type ContextDescriptorFlags uint32

func (f ContextDescriptorFlags) Kind() ContextDescriptorKind {
	return ContextDescriptorKind(f & 0x1F)
}
func (f ContextDescriptorFlags) IsGeneric() bool {
	return (f & 0x80) != 0
}
func (f ContextDescriptorFlags) IsUnique() bool {
	return (f & 0x40) != 0
}
func (f ContextDescriptorFlags) Version() uint8 {
	return uint8(f >> 8 & 0xFF)
}
func (f ContextDescriptorFlags) KindSpecific() uint16 {
	return uint16((f >> 16) & 0xFFFF)
}
func (f ContextDescriptorFlags) String() string {
	return fmt.Sprintf("kind: %s, generic: %t, unique: %t, version: %d, kind_flags: %#x",
		f.Kind(),
		f.IsGeneric(),
		f.IsUnique(),
		f.Version(),
		f.KindSpecific())
}

// SizeOfContextDescriptor is the size of the flags and parent fields.
const SizeOfContextDescriptor = 8

// TargetContextDescriptor is the header shared by every context descriptor.
type TargetContextDescriptor struct {
	Flags        ContextDescriptorFlags
	ParentOffset RelativeIndirectablePointer
}

func (cd *TargetContextDescriptor) Read(r io.Reader, bo binary.ByteOrder, addr uint64) error {
	if err := binary.Read(r, bo, &cd.Flags); err != nil {
		return err
	}
	return cd.ParentOffset.Read(r, bo, addr+4)
}

// TargetNamedContextDescriptor is the header of modules, protocols and
// nominal types, which store their name right after the parent.
type TargetNamedContextDescriptor struct {
	TargetContextDescriptor
	NameOffset RelativeDirectPointer
}

func (cd *TargetNamedContextDescriptor) Read(r io.Reader, bo binary.ByteOrder, addr uint64) error {
	if err := cd.TargetContextDescriptor.Read(r, bo, addr); err != nil {
		return err
	}
	if !cd.Flags.Kind().HasName() {
		return nil
	}
	return cd.NameOffset.Read(r, bo, addr+SizeOfContextDescriptor)
}
