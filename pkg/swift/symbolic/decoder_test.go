package symbolic

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/google/go-cmp/cmp"

	"github.com/appsworld/swiftsym/pkg/addrspace"
	"github.com/appsworld/swiftsym/pkg/fixupchains"
	"github.com/appsworld/swiftsym/pkg/reference"
	"github.com/appsworld/swiftsym/pkg/swift/node"
)

// synthetic image:
//
//	0x00 "Si"
//	0x10 "Say" <ctx 0x90> "G"
//	0x20 <ctx 0x90> "G"
//	0x30 <indirect ctx -> slot 0x60 (bind _$sSiN)>
//	0x38 <absolute 0xdeadbeef> "Si"
//	0x48 <ctx 0x1000 (out of range)> "Sb"
//	0x50 <accessor 0x51> "Si"
//	0x68 <ctx 0xa0>
//	0x70 slot (rebase -> 0x90)
//	0x80 module "Swift"
//	0x90 struct "Int", parent 0x80
//	0xa0 class "Box", parent indirect through 0x70
//	0xf8 unterminated
func testImage() *addrspace.FlatImage {
	data := make([]byte, 0x100)
	rel := func(at, target int) {
		binary.LittleEndian.PutUint32(data[at:], uint32(int32(target-at)))
	}
	put32 := func(at int, v uint32) { binary.LittleEndian.PutUint32(data[at:], v) }

	copy(data[0x00:], "Si\x00")

	copy(data[0x10:], "Say\x01")
	rel(0x14, 0x90)
	copy(data[0x18:], "G\x00")

	data[0x20] = 0x01
	rel(0x21, 0x90)
	copy(data[0x25:], "G\x00")

	data[0x30] = 0x02
	rel(0x31, 0x60)

	data[0x38] = 0x18
	binary.LittleEndian.PutUint64(data[0x39:], 0xdeadbeef)
	copy(data[0x41:], "Si\x00")

	data[0x48] = 0x01
	rel(0x49, 0x1000)
	copy(data[0x4d:], "Sb\x00")

	data[0x50] = 0x09
	copy(data[0x55:], "Si\x00")

	data[0x68] = 0x01
	rel(0x69, 0xa0)

	// module Swift
	put32(0x80, 0x00)
	rel(0x88, 0xc0)
	// struct Swift.Int
	put32(0x90, 0x51)
	rel(0x94, 0x80)
	rel(0x98, 0xc8)
	// class Box, parent through slot 0x70
	put32(0xa0, 0x50)
	parent := int32(0x70 - 0xa4)
	put32(0xa4, uint32(parent|1))
	rel(0xa8, 0xd0)

	copy(data[0xc0:], "Swift\x00")
	copy(data[0xc8:], "Int\x00")
	copy(data[0xd0:], "Box\x00")
	copy(data[0xf8:], "abcdefgh")
	return addrspace.NewFlatImage(addrspace.NewBytesFile("synthetic", data))
}

func testContext() reference.Context {
	fixups := fixupchains.NewTable(0, nil)
	fixups.AddBind(0x60, "_$sSiN", 0)
	fixups.AddRebase(0x70, 0x90)
	return reference.Context{Image: testImage(), Fixups: fixups}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		start     uint64
		qualified bool
		want      string
	}{
		{"literal only", 0x00, false, "Si"},
		{"bound generic", 0x10, false, "Swift.Array -> Int"},
		{"bound generic qualified", 0x10, true, "Swift.Array -> Swift.Int"},
		{"trailing generic close", 0x20, false, "Int"},
		{"indirect bind", 0x30, false, "_$sSiN"},
		{"absolute reference", 0x38, false, "Swift.Int"},
		{"unresolved reference", 0x48, false, "Swift.Bool"},
		{"accessor reference", 0x50, false, "Swift.Int"},
		{"parent through rebase", 0x68, false, "Box"},
		{"parent through rebase qualified", 0x68, true, "Swift.Int.Box"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := []Option{WithPool(node.NewPool())}
			if tt.qualified {
				opts = append(opts, WithQualifiedNames())
			}
			got, err := New(testContext(), opts...).Decode(tt.start)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Decode mismatch: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeBigEndian(t *testing.T) {
	data := make([]byte, 0x30)
	be := binary.BigEndian
	data[0x00] = 0x01
	be.PutUint32(data[0x01:], 0x10-0x01)
	// struct "Big", no parent
	be.PutUint32(data[0x10:], 0x51)
	be.PutUint32(data[0x18:], 0x20-0x18)
	copy(data[0x20:], "Big\x00")

	img := addrspace.NewFlatImage(addrspace.NewBytesFile("big-endian", data))
	img.Order = binary.BigEndian
	got, err := New(reference.Context{Image: img}, WithExclusivePool()).Decode(0)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got != "Big" {
		t.Fatalf("Decode mismatch: got %q, want %q", got, "Big")
	}
}

func TestReadName(t *testing.T) {
	d := New(testContext(), WithExclusivePool())
	m, err := d.ReadName(0x10)
	if err != nil {
		t.Fatalf("ReadName failed: %v", err)
	}
	if m.Start != 0x10 || m.End != 0x1a {
		t.Fatalf("bounds mismatch: got [%#x, %#x), want [0x10, 0x1a)", m.Start, m.End)
	}
	if len(m.Fragments) != 3 {
		t.Fatalf("expected 3 fragments, got %d", len(m.Fragments))
	}
	ref := m.Fragments[1]
	if ref.IsLiteral() || !ref.Resolved() || ref.Target() != 0x90 || ref.Size() != 5 {
		t.Fatalf("unexpected reference fragment: %s", ref)
	}
	if got, want := ref.Context.Name, "Int"; got != want {
		t.Fatalf("context name mismatch: got %q, want %q", got, want)
	}
	if got, want := m.TypeString(), "Say\x01G"; got != want {
		t.Fatalf("TypeString mismatch: got %q, want %q", got, want)
	}
	if got, want := m.SymbolString(), "$sSay\x01G"; got != want {
		t.Fatalf("SymbolString mismatch: got %q, want %q", got, want)
	}

	abs, err := d.ReadName(0x38)
	if err != nil {
		t.Fatalf("ReadName failed: %v", err)
	}
	if f := abs.Fragments[0]; !f.IsAbsolute() || f.Resolved() || f.Target() != 0xdeadbeef || f.Size() != 9 {
		t.Fatalf("unexpected absolute fragment: %s", f)
	}
	if abs.End != 0x44 {
		t.Fatalf("absolute reference not consumed: end %#x", abs.End)
	}
}

func TestTruncated(t *testing.T) {
	_, err := New(testContext()).Decode(0xf8)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	if !errors.Is(err, addrspace.ErrOutOfRange) {
		t.Fatalf("expected the read error to be wrapped, got %v", err)
	}
}

func TestSkippedReferenceIsLogged(t *testing.T) {
	h := memory.New()
	d := New(testContext(), WithLogger(&log.Logger{Handler: h, Level: log.DebugLevel}))
	m, err := d.ReadName(0x48)
	if err != nil {
		t.Fatalf("ReadName failed: %v", err)
	}
	if f := m.Fragments[0]; f.Resolved() || !errors.Is(f.Err, addrspace.ErrOutOfRange) {
		t.Fatalf("expected an out of range error on the reference, got %s", f)
	}
	if len(h.Entries) != 1 {
		t.Fatalf("expected one log entry, got %d", len(h.Entries))
	}
	if got := h.Entries[0].Fields.Get("offset"); got != "0x48" {
		t.Fatalf("logged offset mismatch: got %v, want 0x48", got)
	}

	h.Entries = nil
	m, err = d.ReadName(0x50)
	if err != nil {
		t.Fatalf("ReadName failed: %v", err)
	}
	if !errors.Is(m.Fragments[0].Err, ErrUnsupportedReference) || len(h.Entries) != 1 {
		t.Fatalf("expected the accessor reference to be skipped and logged, got %s", m.Fragments[0])
	}
}

func TestDecodeNode(t *testing.T) {
	pool := node.NewPool()
	d := New(testContext(), WithPool(pool))

	n, err := d.DecodeNode(0x68)
	if err != nil {
		t.Fatalf("DecodeNode failed: %v", err)
	}
	want := node.New(node.KindTypeMangling, node.None(),
		node.New(node.KindType, node.None(),
			node.New(node.KindClass, node.None(),
				node.New(node.KindStructure, node.None(),
					node.NewText(node.KindModule, "Swift"),
					node.NewText(node.KindIdentifier, "Int"),
				),
				node.NewText(node.KindIdentifier, "Box"),
			),
		),
	)
	if !n.Equal(want) {
		t.Fatalf("tree mismatch:\ngot:\n%s\nwant:\n%s", n, want)
	}
	if !pool.Contains(n.FindKind(node.KindModule)) {
		t.Fatal("leaves should be interned in the decoder's pool")
	}

	n, err = d.DecodeNode(0x38)
	if err != nil {
		t.Fatalf("DecodeNode failed: %v", err)
	}
	var got []node.Kind
	for _, c := range n.Children().All() {
		got = append(got, c.Kind())
	}
	if diff := cmp.Diff([]node.Kind{node.KindTypeSymbolicReference, node.KindIdentifier}, got); diff != "" {
		t.Fatalf("children mismatch (-want +got):\n%s", diff)
	}
	if idx, _ := n.Child(0).Index(); idx != 0xdeadbeef {
		t.Fatalf("absolute reference index mismatch: got %#x", idx)
	}

	n, err = d.DecodeNode(0x48)
	if err != nil {
		t.Fatalf("DecodeNode failed: %v", err)
	}
	if n.NumChildren() != 1 || n.Child(0).Text() != "Sb" {
		t.Fatalf("unresolved reference should be left out:\n%s", n)
	}
}

func TestCollapse(t *testing.T) {
	lit := func(s string) Fragment { return Fragment{Literal: s} }
	ref := func(name string) Fragment {
		return Fragment{Control: 0x01, Context: &Context{Flags: 0x51, Name: name}}
	}
	tests := []struct {
		name  string
		frags []Fragment
		want  string
	}{
		{"empty", nil, ""},
		{"single reference", []Fragment{ref("Foo")}, "Foo"},
		{"final bare G dropped", []Fragment{ref("Foo"), lit("G")}, "Foo"},
		{"y..G wrapper", []Fragment{ref("Foo"), lit("ySiG"), ref("Bar")}, "Foo Swift.Int Bar"},
		{"existential suffix", []Fragment{ref("Foo"), lit("Sb_p")}, "Foo Swift.Bool"},
		{"associated type shortcut", []Fragment{ref("Base"), ref("Assoc"), lit("Qz")}, "Assoc.Base"},
		{"associated type of generic param", []Fragment{ref("Base"), ref("Assoc"), lit("Qy_")}, "Assoc.Base"},
		{"associated type of first generic param", []Fragment{ref("Base"), ref("Assoc"), lit("Qy0_")}, "Assoc.Base"},
		{"associated type needs two names", []Fragment{ref("Base"), lit("Qy_")}, "Base =="},
		{"length prefix", []Fragment{ref("Foo"), lit("3Bar")}, "Foo Bar"},
		{"dispatch queue", []Fragment{ref("Foo"), lit("So17OS_dispatch_queueC")}, "Foo DispatchQueue"},
		{"objc module", []Fragment{ref("Foo"), lit("So8NSObjectC")}, "Foo _$sSo8NSObjectC"},
		{"mangling prefix", []Fragment{ref("Foo"), lit("$s3Foo")}, "Foo _$s3Foo"},
		{"pending label", []Fragment{lit("Fooy"), ref("Bar")}, "Foo -> Bar"},
		{"raw fragment", []Fragment{ref("Foo"), lit("Xq")}, "Foo _$sXq"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := collapse(tt.frags, false); got != tt.want {
				t.Fatalf("collapse mismatch: got %q, want %q", got, tt.want)
			}
		})
	}
}
