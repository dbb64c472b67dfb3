package swift

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestParseSymbolicControl(t *testing.T) {
	tests := []struct {
		b          byte
		kind       SymbolicReferenceKind
		directness Directness
	}{
		{0x01, ContextSymbolicReference, Direct},
		{0x02, ContextSymbolicReference, Indirect},
		{0x09, AccessorFunctionReference, Direct},
		{0x0A, UniqueExtendedExistentialTypeShape, Indirect},
		{0x0B, NonUniqueExtendedExistentialTypeShape, Direct},
		{0x0C, ObjectiveCProtocol, Direct},
		{0x05, UnknownSymbolicReference, Direct},
	}
	for _, tt := range tests {
		kind, directness := ParseSymbolicControl(tt.b)
		if kind != tt.kind || directness != tt.directness {
			t.Errorf("ParseSymbolicControl(%#x) = %s/%s, want %s/%s", tt.b, kind, directness, tt.kind, tt.directness)
		}
	}
	if !IsRelativeSymbolicControl(0x17) || IsRelativeSymbolicControl(0x18) {
		t.Fatal("relative control range mismatch")
	}
	if !IsAbsoluteSymbolicControl(0x18) || !IsAbsoluteSymbolicControl(0x1F) || IsAbsoluteSymbolicControl(0x20) {
		t.Fatal("absolute control range mismatch")
	}
}

func TestLookupMangledType(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Si", "Swift.Int", true},
		{"Sa", "Swift.Array", true},
		{"Sb", "Swift.Bool", true},
		{"Sg", "?", true},
		{"ScT", "Swift.Task", true},
		{"Sc", "", false},
		{"SiSi", "", false},
		{"Qz", "==", true},
	}
	for _, tt := range tests {
		got, ok := LookupMangledType(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("LookupMangledType(%q) = %q, %t; want %q, %t", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRelativePointers(t *testing.T) {
	direct := RelativeDirectPointer{Address: 0x1000, RelOff: -0x10}
	if got, want := direct.GetAddress(), uint64(0xff0); got != want {
		t.Fatalf("GetAddress mismatch: got %#x, want %#x", got, want)
	}

	ind := RelativeIndirectablePointer{Address: 0x1000, RelOff: 0x21}
	if !ind.IsIndirect() {
		t.Fatal("expected indirect pointer")
	}
	got, err := ind.GetAddress(func(slot uint64) (uint64, error) {
		if slot != 0x1020 {
			t.Fatalf("unexpected slot %#x", slot)
		}
		return 0x2000, nil
	})
	if err != nil || got != 0x2000 {
		t.Fatalf("GetAddress = %#x, %v; want 0x2000", got, err)
	}
}

func TestNamedContextDescriptorRead(t *testing.T) {
	for _, bo := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		t.Run(bo.String(), func(t *testing.T) {
			var buf bytes.Buffer
			binary.Write(&buf, bo, uint32(0x40|uint32(CDKindStruct)))
			binary.Write(&buf, bo, int32(-0x20))
			binary.Write(&buf, bo, int32(0x30))

			var cd TargetNamedContextDescriptor
			if err := cd.Read(&buf, bo, 0x4000); err != nil {
				t.Fatalf("Read failed: %v", err)
			}
			if cd.Flags.Kind() != CDKindStruct || !cd.Flags.IsUnique() {
				t.Fatalf("flags mismatch: %s", cd.Flags)
			}
			if got, want := cd.ParentOffset.GetRelPtrAddress(), uint64(0x4004-0x20); got != want {
				t.Fatalf("parent mismatch: got %#x, want %#x", got, want)
			}
			if got, want := cd.NameOffset.GetAddress(), uint64(0x4008+0x30); got != want {
				t.Fatalf("name mismatch: got %#x, want %#x", got, want)
			}
		})
	}
}
