package fixupchains

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/appsworld/swiftsym/pkg/addrspace"
	"github.com/appsworld/swiftsym/types"
)

func TestWalkChain(t *testing.T) {
	data := make([]byte, 0x40)
	// link 0: auth rebase to vm offset 0x4000, next = 2 (16 bytes)
	binary.LittleEndian.PutUint64(data[0x00:], 1<<63|2<<51|0xbeef<<32|0x4000)
	// link 1: bind ordinal 1 with addend 8, next = 1
	binary.LittleEndian.PutUint64(data[0x10:], 1<<62|1<<51|8<<32|1)
	// link 2: plain rebase to vm offset 0x20, end of chain
	binary.LittleEndian.PutUint64(data[0x18:], 0x20)
	img := addrspace.NewFlatImage(addrspace.NewBytesFile("chain", data))

	tbl := NewTable(0x100000000, []string{"_swift_retain", "_$sSiN"})
	if err := tbl.WalkChain(img, types.DYLD_CHAINED_PTR_ARM64E_USERLAND, 0); err != nil {
		t.Fatalf("WalkChain failed: %v", err)
	}
	if got, want := tbl.Len(), 3; got != want {
		t.Fatalf("Len mismatch: got %d, want %d", got, want)
	}

	f, ok := tbl.Lookup(0)
	if !ok || f.IsBind() || f.Target != 0x100004000 || !f.Pointer.Auth || f.Pointer.Diversity != 0xbeef {
		t.Fatalf("unexpected auth rebase fixup: %+v", f)
	}
	f, ok = tbl.Lookup(0x10)
	if !ok || !f.IsBind() || f.Import != "_$sSiN" || f.Addend != 8 {
		t.Fatalf("unexpected bind fixup: %+v", f)
	}
	f, ok = tbl.Lookup(0x18)
	if !ok || f.Target != 0x100000020 {
		t.Fatalf("unexpected rebase fixup: %+v", f)
	}
	if _, ok := tbl.Lookup(0x8); ok {
		t.Fatal("unexpected fixup for slot 0x8")
	}

	var slots []uint64
	for f := range tbl.All() {
		slots = append(slots, f.Slot)
	}
	if len(slots) != 3 || slots[0] != 0 || slots[1] != 0x10 || slots[2] != 0x18 {
		t.Fatalf("All() order mismatch: %#x", slots)
	}
}

func TestWalkChainTruncated(t *testing.T) {
	data := make([]byte, 0x10)
	binary.LittleEndian.PutUint64(data, 4<<51|0x20)
	img := addrspace.NewFlatImage(addrspace.NewBytesFile("short", data))

	err := NewTable(0, nil).WalkChain(img, types.DYLD_CHAINED_PTR_ARM64E_USERLAND, 0)
	if !errors.Is(err, addrspace.ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestAddRawUnknownOrdinal(t *testing.T) {
	tbl := NewTable(0, []string{"_only"})
	f, err := tbl.AddRaw(0x8, types.DYLD_CHAINED_PTR_64, 1<<63|5)
	if err != nil {
		t.Fatalf("AddRaw failed: %v", err)
	}
	if !f.IsBind() || f.Import != "" {
		t.Fatalf("expected unnamed bind, got %+v", f)
	}
	if _, err := tbl.AddRaw(0x10, types.DCPtrKind(4), 0); !errors.Is(err, types.ErrUnsupportedPointerFormat) {
		t.Fatalf("expected ErrUnsupportedPointerFormat, got %v", err)
	}
}

func TestNilTable(t *testing.T) {
	var tbl *Table
	if _, ok := tbl.Lookup(0); ok {
		t.Fatal("nil table must not report fixups")
	}
	if tbl.Len() != 0 {
		t.Fatal("nil table must be empty")
	}
}

func TestDecode(t *testing.T) {
	tbl := NewTable(0x100000000, []string{"_$sSiN"})
	if _, err := tbl.Decode(0x8, 0x40); !errors.Is(err, types.ErrUnsupportedPointerFormat) {
		t.Fatalf("expected ErrUnsupportedPointerFormat without a format, got %v", err)
	}

	tbl.Format = types.DYLD_CHAINED_PTR_64_OFFSET
	f, err := tbl.Decode(0x8, 3<<51|0x40)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if f.IsBind() || f.Target != 0x100000040 || f.Pointer.Next != 3 {
		t.Fatalf("unexpected rebase: %+v", f)
	}
	f, err = tbl.Decode(0x10, 1<<63)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !f.IsBind() || f.Import != "_$sSiN" {
		t.Fatalf("unexpected bind: %+v", f)
	}
	if tbl.Len() != 0 {
		t.Fatalf("Decode must not record fixups, got %d", tbl.Len())
	}

	var nilTable *Table
	if _, err := nilTable.Decode(0x8, 0x40); !errors.Is(err, types.ErrUnsupportedPointerFormat) {
		t.Fatalf("expected ErrUnsupportedPointerFormat from a nil table, got %v", err)
	}
}
