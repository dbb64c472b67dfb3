// Package fixupchains records dyld chained fixups by slot address so that
// indirect references can tell a rebased pointer from a bound import.
package fixupchains

import (
	"fmt"
	"iter"
	"slices"

	"github.com/appsworld/swiftsym/pkg/addrspace"
	"github.com/appsworld/swiftsym/types"
)

// Fixup is the fixup applied to one pointer slot.
type Fixup struct {
	// Slot is the logical address of the pointer slot.
	Slot    uint64
	Pointer types.ChainedPointer
	// Target is the rebase target as a logical address of the image.
	Target uint64
	// Import is the bound symbol name, empty when the ordinal has no import.
	Import string
	Addend int64
}

// IsBind reports whether the slot is bound to an imported symbol.
func (f Fixup) IsBind() bool {
	return f.Pointer.Bind
}

func (f Fixup) String() string {
	if f.IsBind() {
		if f.Addend != 0 {
			return fmt.Sprintf("%#x bind %s + %#x", f.Slot, f.Import, f.Addend)
		}
		return fmt.Sprintf("%#x bind %s", f.Slot, f.Import)
	}
	return fmt.Sprintf("%#x rebase %#x", f.Slot, f.Target)
}

// Table holds the fixups of one image, keyed by slot address.
// It is built once and is then safe for concurrent readers.
type Table struct {
	// Base is the image's preferred load address, added to offset targets.
	Base    uint64
	Imports []string
	// Format is the pointer format of the image's chains, used by Decode.
	// It is zero when unknown.
	Format types.DCPtrKind
	fixups map[uint64]Fixup
}

// NewTable returns an empty table for an image loaded at base.
func NewTable(base uint64, imports []string) *Table {
	return &Table{
		Base:    base,
		Imports: imports,
		fixups:  make(map[uint64]Fixup),
	}
}

// Lookup returns the fixup recorded for slot.
func (t *Table) Lookup(slot uint64) (Fixup, bool) {
	if t == nil {
		return Fixup{}, false
	}
	f, ok := t.fixups[slot]
	return f, ok
}

// Len returns the number of recorded fixups.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.fixups)
}

// All yields the fixups in slot order.
func (t *Table) All() iter.Seq[Fixup] {
	return func(yield func(Fixup) bool) {
		if t == nil {
			return
		}
		slots := make([]uint64, 0, len(t.fixups))
		for slot := range t.fixups {
			slots = append(slots, slot)
		}
		slices.Sort(slots)
		for _, slot := range slots {
			if !yield(t.fixups[slot]) {
				return
			}
		}
	}
}

// AddRebase records a rebase of slot to the logical address target.
func (t *Table) AddRebase(slot, target uint64) {
	t.fixups[slot] = Fixup{Slot: slot, Target: target}
}

// AddBind records slot as bound to the imported symbol name.
func (t *Table) AddBind(slot uint64, name string, addend int64) {
	t.fixups[slot] = Fixup{
		Slot:    slot,
		Pointer: types.ChainedPointer{Bind: true},
		Import:  name,
		Addend:  addend,
	}
}

// AddRaw decodes raw, the on-disk contents of slot, and records it.
func (t *Table) AddRaw(slot uint64, format types.DCPtrKind, raw uint64) (Fixup, error) {
	f, err := t.decode(slot, format, raw)
	if err != nil {
		return Fixup{}, err
	}
	t.fixups[slot] = f
	return f, nil
}

// Decode interprets raw, the contents of a slot that no chain recorded, in
// the table's pointer format. The table is not modified.
func (t *Table) Decode(slot, raw uint64) (Fixup, error) {
	if t == nil {
		return Fixup{}, fmt.Errorf("slot %#x: %w", slot, types.ErrUnsupportedPointerFormat)
	}
	return t.decode(slot, t.Format, raw)
}

func (t *Table) decode(slot uint64, format types.DCPtrKind, raw uint64) (Fixup, error) {
	ptr, err := types.DecodeChainedPointer(format, raw)
	if err != nil {
		return Fixup{}, fmt.Errorf("slot %#x: %w", slot, err)
	}
	f := Fixup{Slot: slot, Pointer: ptr}
	if ptr.Bind {
		f.Addend = ptr.Addend
		if ptr.Ordinal < uint64(len(t.Imports)) {
			f.Import = t.Imports[ptr.Ordinal]
		}
	} else {
		f.Target = ptr.Target
		if ptr.TargetIsOffset {
			f.Target += t.Base
		}
	}
	return f, nil
}

// WalkChain follows one fixup chain starting at the slot start, recording
// every link until a link with a zero next field.
func (t *Table) WalkChain(img addrspace.Image, format types.DCPtrKind, start uint64) error {
	slot := start
	for {
		var raw uint64
		var err error
		if format.PointerSize() == 4 {
			var v uint32
			v, err = addrspace.ReadUint32(img, slot)
			raw = uint64(v)
		} else {
			raw, err = addrspace.ReadUint64(img, slot)
		}
		if err != nil {
			return fmt.Errorf("failed to read chained pointer at %#x: %w", slot, err)
		}
		f, err := t.AddRaw(slot, format, raw)
		if err != nil {
			return err
		}
		if f.Pointer.Next == 0 {
			return nil
		}
		slot += f.Pointer.Next * format.Stride()
	}
}
