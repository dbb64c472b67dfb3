package reference

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"

	"github.com/appsworld/swiftsym/pkg/addrspace"
	"github.com/appsworld/swiftsym/pkg/fixupchains"
	"github.com/appsworld/swiftsym/types"
)

// synthetic image:
//
//	0x00 direct            -> 0x40 "Elem"
//	0x10 indirect (bind)   -> slot 0x30
//	0x14 indirect (rebase) -> slot 0x38 -> 0x40
//	0x18 indirect auth     -> slot 0x48 (raw signed pointer) -> 0x50 "Auth"
//	0x1c direct auth       -> 0x50
//	0x20 indirect          -> slot 0x60 (rebase out of range)
//	0x24 indirect          -> slot 0x68 (zero)
//	0x28 indirect          -> slot 0x70 (bind without a name)
//	0x2c indirectable      -> slot 0x38
func testImage() *addrspace.FlatImage {
	data := make([]byte, 0x80)
	put := func(off int, v int32) { binary.LittleEndian.PutUint32(data[off:], uint32(v)) }
	put(0x00, 0x40)
	put(0x10, 0x20)
	put(0x14, 0x24)
	put(0x18, 0x30)
	put(0x1c, 0x34)
	put(0x20, 0x40)
	put(0x24, 0x44)
	put(0x28, 0x48)
	put(0x2c, 0x0c|1)
	copy(data[0x40:], "Elem\x00")
	binary.LittleEndian.PutUint64(data[0x48:], 0x8010_0000_0000_0050)
	copy(data[0x50:], "Auth\x00")
	return addrspace.NewFlatImage(addrspace.NewBytesFile("synthetic", data))
}

func testFixups() *fixupchains.Table {
	tbl := fixupchains.NewTable(0, nil)
	tbl.AddBind(0x30, "_$sSiN", 0)
	tbl.AddRebase(0x38, 0x40)
	tbl.AddRebase(0x60, 0x1000)
	tbl.AddBind(0x70, "", 0)
	return tbl
}

func readName(img addrspace.Image) Decoder[string] {
	return func(addr uint64, _ addrspace.Location) (string, error) {
		return addrspace.ReadCString(img, addr)
	}
}

func TestResolveShapes(t *testing.T) {
	img := testImage()
	withFixups := Context{Image: img, Fixups: testFixups()}
	noFixups := Context{Image: img}

	tests := []struct {
		name       string
		ctx        Context
		shape      Shape
		field      uint64
		wantElem   string
		wantSymbol string
	}{
		{"direct", withFixups, Direct, 0x00, "Elem", ""},
		{"indirect bind", withFixups, Indirect, 0x10, "", "_$sSiN"},
		{"indirect rebase", withFixups, Indirect, 0x14, "Elem", ""},
		{"indirect authenticated", noFixups, IndirectAuth, 0x18, "Auth", ""},
		{"direct authenticated", withFixups, DirectAuth, 0x1c, "Auth", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ResolveAt(tt.ctx, tt.shape, tt.field, readName(img))
			if err != nil {
				t.Fatalf("ResolveAt failed: %v", err)
			}
			if tt.wantSymbol != "" {
				if !res.IsSymbol() || res.Symbol != tt.wantSymbol {
					t.Fatalf("expected symbol %q, got %+v", tt.wantSymbol, res)
				}
				return
			}
			if res.IsSymbol() {
				t.Fatalf("unexpected symbol %q", res.Symbol)
			}
			if got, want := res.Element, tt.wantElem; got != want {
				t.Fatalf("element mismatch: got %q, want %q", got, want)
			}
		})
	}
}

func TestResolveErrors(t *testing.T) {
	img := testImage()
	withFixups := Context{Image: img, Fixups: testFixups()}

	_, err := ResolveAt(withFixups, Indirect, 0x20, readName(img))
	if !errors.Is(err, ErrDanglingRebase) {
		t.Fatalf("expected ErrDanglingRebase, got %v", err)
	}
	if !errors.Is(err, addrspace.ErrOutOfRange) {
		t.Fatalf("expected dangling rebase to wrap ErrOutOfRange, got %v", err)
	}
	var dre *DanglingRebaseError
	if !errors.As(err, &dre) || dre.Slot != 0x60 || dre.Target != 0x1000 {
		t.Fatalf("unexpected dangling rebase error: %#v", err)
	}

	_, err = ResolveAt(Context{Image: img}, Indirect, 0x24, readName(img))
	if !errors.Is(err, ErrUnresolvableBind) {
		t.Fatalf("expected ErrUnresolvableBind, got %v", err)
	}

	_, err = ResolveAt(withFixups, Indirect, 0x28, readName(img))
	if !errors.Is(err, ErrUnresolvableBind) {
		t.Fatalf("expected ErrUnresolvableBind for unnamed bind, got %v", err)
	}

	_, err = ResolveAt(withFixups, Direct, 0x7e, readName(img))
	if !errors.Is(err, addrspace.ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestResolveUnrecordedChainedSlot(t *testing.T) {
	data := make([]byte, 0x50)
	le := binary.LittleEndian
	le.PutUint32(data[0x00:], 0x20)
	le.PutUint32(data[0x04:], 0x24)
	// chained rebase to vm offset 0x40, with a next field that is not part of the address
	le.PutUint64(data[0x20:], 3<<51|0x40)
	// chained bind, ordinal 0
	le.PutUint64(data[0x28:], 1<<63)
	copy(data[0x40:], "Elem\x00")
	img := addrspace.NewFlatImage(addrspace.NewBytesFile("chained", data))

	tbl := fixupchains.NewTable(0, []string{"_$sSiN"})
	tbl.Format = types.DYLD_CHAINED_PTR_64_OFFSET
	ctx := Context{Image: img, Fixups: tbl}

	res, err := ResolveAt(ctx, Indirect, 0x00, readName(img))
	if err != nil {
		t.Fatalf("ResolveAt failed: %v", err)
	}
	if res.IsSymbol() || res.Element != "Elem" || res.Address != 0x40 {
		t.Fatalf("unexpected resolution: %+v", res)
	}

	res, err = ResolveAt(ctx, Indirect, 0x04, readName(img))
	if err != nil {
		t.Fatalf("ResolveAt failed: %v", err)
	}
	if !res.IsSymbol() || res.Symbol != "_$sSiN" {
		t.Fatalf("expected bind to _$sSiN, got %+v", res)
	}
	if tbl.Len() != 0 {
		t.Fatalf("resolving must not record fixups, got %d", tbl.Len())
	}

	tbl.Format = 0
	if _, err := ResolveAt(ctx, Indirect, 0x00, readName(img)); !errors.Is(err, ErrDanglingRebase) {
		t.Fatalf("expected the raw pointer to be used without a format, got %v", err)
	}
}

func TestReadIndirectable(t *testing.T) {
	img := testImage()
	ref, err := ReadIndirectable(img, 0x2c)
	if err != nil {
		t.Fatalf("ReadIndirectable failed: %v", err)
	}
	if ref.Shape != Indirect || ref.Target() != 0x38 {
		t.Fatalf("unexpected reference: %s", ref)
	}

	h := memory.New()
	ctx := Context{Image: img, Fixups: testFixups(), Log: &log.Logger{Handler: h, Level: log.DebugLevel}}
	res, err := Resolve(ctx, ref, readName(img))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if res.Element != "Elem" || res.Address != 0x40 {
		t.Fatalf("unexpected element %q at %#x", res.Element, res.Address)
	}
	if len(h.Entries) != 1 || h.Entries[0].Fields.Get("slot") != "0x38" {
		t.Fatalf("expected one rebase debug entry, got %d", len(h.Entries))
	}
}

func TestShapeString(t *testing.T) {
	if got, want := IndirectAuth.String(), "indirect+authenticated"; got != want {
		t.Fatalf("Shape.String mismatch: got %q, want %q", got, want)
	}
	if ShapeFromIndirectable(-3) != Indirect || ShapeFromIndirectable(8) != Direct {
		t.Fatal("ShapeFromIndirectable mismatch")
	}
}
