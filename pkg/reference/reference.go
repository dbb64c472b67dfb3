// Package reference resolves relative references found in Swift metadata to
// the structure they point at, or to an imported symbol when they go through
// a bound pointer slot.
package reference

import (
	"errors"
	"fmt"
	"strings"

	"github.com/apex/log"

	"github.com/appsworld/swiftsym/pkg/addrspace"
	"github.com/appsworld/swiftsym/pkg/fixupchains"
	"github.com/appsworld/swiftsym/types"
)

var (
	// ErrUnresolvableBind is returned for an indirect reference whose slot is
	// bound but cannot be named, including every unbound slot of an image
	// without fixup metadata.
	ErrUnresolvableBind = errors.New("unresolvable bind")
	// ErrDanglingRebase is matched by *DanglingRebaseError.
	ErrDanglingRebase = errors.New("dangling rebase")
)

// DanglingRebaseError reports a slot whose rebase target is outside every region.
type DanglingRebaseError struct {
	Slot   uint64
	Target uint64
	Err    error
}

func (e *DanglingRebaseError) Error() string {
	return fmt.Sprintf("dangling rebase: slot %#x -> %#x: %v", e.Slot, e.Target, e.Err)
}

func (e *DanglingRebaseError) Is(target error) bool { return target == ErrDanglingRebase }
func (e *DanglingRebaseError) Unwrap() error        { return e.Err }

// Shape is one of the four reference shapes.
type Shape uint8

const (
	Direct        Shape = 0
	Indirect      Shape = 1 << 0
	Authenticated Shape = 1 << 1

	DirectAuth   = Direct | Authenticated
	IndirectAuth = Indirect | Authenticated
)

func (s Shape) IsIndirect() bool      { return s&Indirect != 0 }
func (s Shape) IsAuthenticated() bool { return s&Authenticated != 0 }

func (s Shape) String() string {
	var parts []string
	if s.IsIndirect() {
		parts = append(parts, "indirect")
	} else {
		parts = append(parts, "direct")
	}
	if s.IsAuthenticated() {
		parts = append(parts, "authenticated")
	}
	return strings.Join(parts, "+")
}

// ShapeFromIndirectable returns the shape encoded in the low bit of a relative indirectable offset.
func ShapeFromIndirectable(raw int32) Shape {
	if raw&1 == 1 {
		return Indirect
	}
	return Direct
}

// FixupSource looks up the fixup recorded for a pointer slot, and decodes
// slots that carry a chained pointer no chain walk recorded.
type FixupSource interface {
	Lookup(slot uint64) (fixupchains.Fixup, bool)
	Decode(slot, raw uint64) (fixupchains.Fixup, error)
}

// Context is everything needed to follow a reference out of one image.
type Context struct {
	Image addrspace.Image
	// Fixups is nil for images without fixup metadata, such as images
	// pre-loaded from a shared cache.
	Fixups FixupSource
	Log    log.Interface
}

func (c Context) logger() log.Interface {
	if c.Log == nil {
		return log.Log
	}
	return c.Log
}

// Reference is a signed delta stored at Field.
type Reference struct {
	Shape Shape
	Field uint64
	Delta int64
}

// Target is the address the delta points at: the structure for direct
// references, the pointer slot for indirect ones.
func (r Reference) Target() uint64 {
	t := uint64(int64(r.Field) + r.Delta)
	if r.Shape.IsAuthenticated() {
		t = types.StripPAC(t)
	}
	return t
}

func (r Reference) String() string {
	return fmt.Sprintf("%s %#x%+#x -> %#x", r.Shape, r.Field, r.Delta, r.Target())
}

// Read loads a 32-bit delta stored at field.
func Read(img addrspace.Image, field uint64, shape Shape) (Reference, error) {
	d, err := addrspace.ReadInt32(img, field)
	if err != nil {
		return Reference{}, err
	}
	return Reference{Shape: shape, Field: field, Delta: int64(d)}, nil
}

// ReadIndirectable loads a relative indirectable offset, taking the shape from its low bit.
func ReadIndirectable(img addrspace.Image, field uint64) (Reference, error) {
	d, err := addrspace.ReadInt32(img, field)
	if err != nil {
		return Reference{}, err
	}
	return Reference{Shape: ShapeFromIndirectable(d), Field: field, Delta: int64(d &^ 1)}, nil
}

// Resolved is either an element decoded in place or the name of an imported symbol.
type Resolved[T any] struct {
	Element T
	// Address is the logical address of the element.
	Address  uint64
	Location addrspace.Location
	Symbol   string
	bound    bool
}

// IsSymbol reports whether the reference ended in a bind.
func (r Resolved[T]) IsSymbol() bool { return r.bound }

// Decoder decodes the structure found at a logical address.
type Decoder[T any] func(addr uint64, loc addrspace.Location) (T, error)

// Resolve follows ref and decodes the element it reaches, or returns the
// imported symbol name when it reaches a bind.
func Resolve[T any](ctx Context, ref Reference, decode Decoder[T]) (Resolved[T], error) {
	var res Resolved[T]
	addr, symbol, bound, err := ResolveAddress(ctx, ref)
	if err != nil {
		return res, err
	}
	if bound {
		res.Symbol = symbol
		res.bound = true
		return res, nil
	}
	loc, err := ctx.Image.Resolve(addr)
	if err != nil {
		return res, err
	}
	res.Address = addr
	res.Location = loc
	if decode == nil {
		return res, nil
	}
	res.Element, err = decode(addr, loc)
	return res, err
}

// ResolveAt reads the 32-bit delta at field and resolves it.
func ResolveAt[T any](ctx Context, shape Shape, field uint64, decode Decoder[T]) (Resolved[T], error) {
	ref, err := Read(ctx.Image, field, shape)
	if err != nil {
		return Resolved[T]{}, err
	}
	return Resolve(ctx, ref, decode)
}

// ResolveAddress returns the logical address ref leads to, or the bound symbol name.
func ResolveAddress(ctx Context, ref Reference) (addr uint64, symbol string, bound bool, err error) {
	target := ref.Target()
	if !ref.Shape.IsIndirect() {
		return target, "", false, nil
	}
	slot := target

	if ctx.Fixups != nil {
		if f, ok := ctx.Fixups.Lookup(slot); ok {
			return applyFixup(ctx, ref, f)
		}
	}

	raw, err := addrspace.ReadPointer(ctx.Image, slot)
	if err != nil {
		return 0, "", false, fmt.Errorf("failed to read pointer slot %#x: %w", slot, err)
	}
	if raw == 0 {
		if ctx.Fixups == nil {
			return 0, "", false, fmt.Errorf("%w: slot %#x has no fixup metadata", ErrUnresolvableBind, slot)
		}
		return 0, "", false, &DanglingRebaseError{Slot: slot, Err: errors.New("null pointer")}
	}
	if ctx.Fixups != nil {
		f, err := ctx.Fixups.Decode(slot, raw)
		switch {
		case err == nil:
			return applyFixup(ctx, ref, f)
		case !errors.Is(err, types.ErrUnsupportedPointerFormat):
			return 0, "", false, err
		}
	}
	return rebase(ctx, ref, slot, raw)
}

func applyFixup(ctx Context, ref Reference, f fixupchains.Fixup) (uint64, string, bool, error) {
	if f.IsBind() {
		if f.Import == "" {
			return 0, "", false, fmt.Errorf("%w: slot %#x (ordinal %d)", ErrUnresolvableBind, f.Slot, f.Pointer.Ordinal)
		}
		return 0, f.Import, true, nil
	}
	return rebase(ctx, ref, f.Slot, f.Target)
}

func rebase(ctx Context, ref Reference, slot, value uint64) (uint64, string, bool, error) {
	if ref.Shape.IsAuthenticated() {
		value = types.StripPAC(value)
	}
	if _, err := ctx.Image.Resolve(value); err != nil {
		return 0, "", false, &DanglingRebaseError{Slot: slot, Target: value, Err: err}
	}
	ctx.logger().WithFields(log.Fields{
		"image": ctx.Image.Name(),
		"slot":  fmt.Sprintf("%#x", slot),
	}).Debugf("rebase -> %#x", value)
	return value, "", false, nil
}
