// Package symbolic decodes Swift symbolic mangled names: mangled text with
// embedded relative and absolute references to other metadata.
package symbolic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/apex/log"

	"github.com/appsworld/swiftsym/pkg/addrspace"
	"github.com/appsworld/swiftsym/pkg/reference"
	"github.com/appsworld/swiftsym/pkg/swift/node"
	"github.com/appsworld/swiftsym/types/swift"
)

var (
	// ErrTruncated is returned when a mangled name runs past the readable image.
	ErrTruncated = errors.New("truncated symbolic mangled name")
	// ErrUnsupportedReference is recorded on references the decoder does not follow.
	ErrUnsupportedReference = errors.New("unsupported symbolic reference")
)

// Fragment is either a run of literal mangled text or one symbolic reference.
type Fragment struct {
	Literal string
	// Control is the opcode of a reference; zero for literals.
	Control    byte
	Kind       swift.SymbolicReferenceKind
	Directness swift.Directness
	// Offset is the logical address of the opcode.
	Offset uint64
	// Delta is the relative offset of a relative reference or the value of
	// an absolute one.
	Delta int64

	Context *Context
	Symbol  string
	Err     error
}

func (f Fragment) IsLiteral() bool  { return f.Control == 0 }
func (f Fragment) IsAbsolute() bool { return swift.IsAbsoluteSymbolicControl(f.Control) }

// Resolved reports whether the reference was followed to a context or a symbol.
func (f Fragment) Resolved() bool { return f.Context != nil || f.Symbol != "" }

// Target is the address a reference points at.
func (f Fragment) Target() uint64 {
	if f.IsAbsolute() {
		return uint64(f.Delta)
	}
	return uint64(int64(f.Offset) + 1 + f.Delta)
}

// Size is the number of bytes the fragment occupies in the stream.
func (f Fragment) Size() int {
	switch {
	case f.IsLiteral():
		return len(f.Literal)
	case f.IsAbsolute():
		return 1 + swift.SizeOfAbsoluteSymbolicReference
	}
	return 1 + swift.SizeOfRelativeSymbolicReference
}

func (f Fragment) name(qualified bool) string {
	switch {
	case f.IsLiteral():
		return f.Literal
	case f.Symbol != "":
		return f.Symbol
	case f.Context != nil:
		if qualified {
			return f.Context.QualifiedName()
		}
		return f.Context.Name
	}
	return ""
}

func (f Fragment) String() string {
	if f.IsLiteral() {
		return fmt.Sprintf("literal %q", f.Literal)
	}
	var s string
	if f.IsAbsolute() {
		s = fmt.Sprintf("absolute %#02x @ %#x -> %#x", f.Control, f.Offset, f.Target())
	} else {
		s = fmt.Sprintf("%s %s %#02x @ %#x -> %#x", f.Directness, f.Kind, f.Control, f.Offset, f.Target())
	}
	switch {
	case f.Symbol != "":
		s += " symbol " + f.Symbol
	case f.Context != nil:
		s += " " + f.Context.String()
	case f.Err != nil:
		s += " (" + f.Err.Error() + ")"
	}
	return s
}

// MangledName is one scanned symbolic mangled name.
type MangledName struct {
	Fragments []Fragment
	// Start is the address of the first byte, End the address just past the terminator.
	Start uint64
	End   uint64
}

func (m *MangledName) IsEmpty() bool { return len(m.Fragments) == 0 }

// TypeString re-encodes the name with each reference reduced to its opcode byte.
func (m *MangledName) TypeString() string {
	var sb strings.Builder
	for _, f := range m.Fragments {
		if f.IsLiteral() {
			sb.WriteString(f.Literal)
		} else {
			sb.WriteByte(f.Control)
		}
	}
	return sb.String()
}

// SymbolString is TypeString with the Swift mangling prefix.
func (m *MangledName) SymbolString() string {
	if m.IsEmpty() {
		return ""
	}
	s := m.TypeString()
	if strings.HasPrefix(s, swift.MANGLING_PREFIX) || strings.HasPrefix(s, "_"+swift.MANGLING_PREFIX) {
		return s
	}
	return swift.MANGLING_PREFIX + s
}

// Decoder decodes symbolic mangled names found in one image.
type Decoder struct {
	ctx  reference.Context
	opts options
	log  log.Interface
}

// New returns a decoder reading from ctx.Image and following indirect
// references through ctx.Fixups.
func New(ctx reference.Context, opts ...Option) *Decoder {
	cfg := buildOptions(opts...)
	if ctx.Log == nil {
		ctx.Log = cfg.logger
	}
	return &Decoder{ctx: ctx, opts: cfg, log: cfg.logger}
}

// Pool returns the pool decoded trees are interned in.
func (d *Decoder) Pool() *node.Pool { return d.opts.pool }

func (d *Decoder) truncated(start, pos uint64, err error) error {
	return fmt.Errorf("%w: name at %#x, byte %#x: %w", ErrTruncated, start, pos, err)
}

// ReadName reads the mangled name starting at start up to its terminator and
// resolves every context reference in it. References that cannot be
// resolved keep their error in Fragment.Err.
func (d *Decoder) ReadName(start uint64) (*MangledName, error) {
	img := d.ctx.Image
	m := &MangledName{Start: start}
	var text []byte
	flush := func() {
		if len(text) > 0 {
			m.Fragments = append(m.Fragments, Fragment{Literal: string(text)})
			text = text[:0]
		}
	}

	pos := start
	for {
		b, err := addrspace.ReadUint8(img, pos)
		if err != nil {
			return nil, d.truncated(start, pos, err)
		}
		switch {
		case b == swift.SymbolicTerminator:
			flush()
			m.End = pos + 1
			return m, nil
		case swift.IsRelativeSymbolicControl(b):
			flush()
			delta, err := addrspace.ReadInt32(img, pos+1)
			if err != nil {
				return nil, d.truncated(start, pos, err)
			}
			kind, direct := swift.ParseSymbolicControl(b)
			f := Fragment{Control: b, Kind: kind, Directness: direct, Offset: pos, Delta: int64(delta)}
			d.resolve(&f)
			m.Fragments = append(m.Fragments, f)
			pos += 1 + swift.SizeOfRelativeSymbolicReference
		case swift.IsAbsoluteSymbolicControl(b):
			flush()
			val, err := addrspace.ReadUint64(img, pos+1)
			if err != nil {
				return nil, d.truncated(start, pos, err)
			}
			m.Fragments = append(m.Fragments, Fragment{Control: b, Offset: pos, Delta: int64(val)})
			pos += 1 + swift.SizeOfAbsoluteSymbolicReference
		default:
			text = append(text, b)
			pos++
		}
	}
}

func (d *Decoder) resolve(f *Fragment) {
	l := d.log.WithFields(log.Fields{
		"image":   d.ctx.Image.Name(),
		"offset":  fmt.Sprintf("%#x", f.Offset),
		"control": fmt.Sprintf("%#02x", f.Control),
	})
	if f.Kind != swift.ContextSymbolicReference {
		f.Err = fmt.Errorf("%w: %s", ErrUnsupportedReference, f.Kind)
		l.Debugf("skipping %s reference", f.Kind)
		return
	}
	shape := reference.Direct
	if f.Directness == swift.Indirect {
		shape = reference.Indirect
	}
	ref := reference.Reference{Shape: shape, Field: f.Offset + 1, Delta: f.Delta}
	res, err := reference.Resolve(d.ctx, ref, func(addr uint64, _ addrspace.Location) (*Context, error) {
		return d.readContext(addr, 0)
	})
	if err != nil {
		f.Err = err
		l.WithError(err).Debug("skipping unresolved reference")
		return
	}
	if res.IsSymbol() {
		f.Symbol = res.Symbol
		return
	}
	f.Context = res.Element
}

// Decode returns the readable form of the mangled name at start. Unresolved
// references are left out.
func (d *Decoder) Decode(start uint64) (string, error) {
	m, err := d.ReadName(start)
	if err != nil {
		return "", err
	}
	return d.Render(m), nil
}

// Render renders an already scanned name the way Decode does.
func (d *Decoder) Render(m *MangledName) string {
	return collapse(m.Fragments, d.opts.qualified)
}

// DecodeNode returns the mangled name at start as a tree rooted at a
// TypeMangling node with one child per fragment.
func (d *Decoder) DecodeNode(start uint64) (*node.Node, error) {
	m, err := d.ReadName(start)
	if err != nil {
		return nil, err
	}
	return d.Node(m), nil
}

// Node builds the tree for an already scanned name.
func (d *Decoder) Node(m *MangledName) *node.Node {
	kids := make([]*node.Node, 0, len(m.Fragments))
	for _, f := range m.Fragments {
		if n := d.fragmentNode(f); n != nil {
			kids = append(kids, n)
		}
	}
	return node.New(node.KindTypeMangling, node.None(), kids...)
}

func (d *Decoder) leaf(kind node.Kind, contents node.Contents) *node.Node {
	if d.opts.exclusive {
		return d.opts.pool.InternUnsafe(kind, contents)
	}
	return d.opts.pool.Intern(kind, contents)
}

func (d *Decoder) fragmentNode(f Fragment) *node.Node {
	switch {
	case f.IsLiteral():
		return d.leaf(node.KindIdentifier, node.Text(f.Literal))
	case f.Symbol != "":
		return node.New(node.KindType, node.None(), d.leaf(node.KindIdentifier, node.Text(f.Symbol)))
	case f.Context != nil:
		if n := d.contextNode(f.Context); n != nil {
			return node.New(node.KindType, node.None(), n)
		}
		return nil
	case f.Err != nil && !errors.Is(f.Err, ErrUnsupportedReference):
		return nil
	}
	return d.leaf(referenceKind(f), node.Index(f.Target()))
}

func referenceKind(f Fragment) node.Kind {
	if f.IsAbsolute() {
		return node.KindTypeSymbolicReference
	}
	switch f.Kind {
	case swift.AccessorFunctionReference:
		return node.KindAccessorFunctionReference
	case swift.UniqueExtendedExistentialTypeShape:
		return node.KindUniqueExtendedExistentialTypeShapeSymbolicReference
	case swift.NonUniqueExtendedExistentialTypeShape:
		return node.KindNonUniqueExtendedExistentialTypeShapeSymbolicReference
	case swift.ObjectiveCProtocol:
		return node.KindObjectiveCProtocolSymbolicReference
	}
	return node.KindTypeSymbolicReference
}

func nominalKind(k swift.ContextDescriptorKind) node.Kind {
	switch k {
	case swift.CDKindClass:
		return node.KindClass
	case swift.CDKindStruct:
		return node.KindStructure
	case swift.CDKindEnum:
		return node.KindEnum
	case swift.CDKindProtocol:
		return node.KindProtocol
	}
	return node.KindOtherNominalType
}

// contextNode builds the nominal subtree for c: a module leaf, or a nominal
// node holding its parent context and an identifier.
func (d *Decoder) contextNode(c *Context) *node.Node {
	for c != nil && !c.Kind().HasName() {
		c = c.Parent
	}
	if c == nil {
		return nil
	}
	if c.Kind() == swift.CDKindModule {
		return d.leaf(node.KindModule, node.Text(c.Name))
	}
	kind := nominalKind(c.Kind())
	name := d.leaf(node.KindIdentifier, node.Text(c.Name))
	if parent := d.contextNode(c.Parent); parent != nil {
		return node.New(kind, node.None(), parent, name)
	}
	return node.New(kind, node.None(), name)
}
