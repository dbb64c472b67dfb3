// Package node implements the Swift demangling AST: immutable nodes with
// compact child storage, traversals, leaf interning and bottom-up rewriting.
package node

import (
	"encoding/binary"
	"strings"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// Node is one element of a demangled tree. A node never changes after it is
// built; the editing methods return new nodes that share unchanged subtrees.
type Node struct {
	kind     Kind
	contents Contents
	children Children
	// parent is the node this one was most recently attached to. Interned
	// leaves are shared, so for them it is only a hint.
	parent atomic.Pointer[Node]
}

// New builds a fresh node. It never consults an intern pool.
func New(kind Kind, contents Contents, children ...*Node) *Node {
	n := &Node{kind: kind, contents: contents}
	n.children = MakeChildren(children...)
	n.adopt()
	return n
}

// NewText builds a fresh node carrying text.
func NewText(kind Kind, text string, children ...*Node) *Node {
	return New(kind, Text(text), children...)
}

// NewIndex builds a fresh node carrying an index.
func NewIndex(kind Kind, index uint64, children ...*Node) *Node {
	return New(kind, Index(index), children...)
}

func newWithChildren(kind Kind, contents Contents, children Children) *Node {
	n := &Node{kind: kind, contents: contents, children: children}
	n.adopt()
	return n
}

func (n *Node) adopt() {
	for _, c := range n.children.All() {
		if c != nil {
			c.parent.Store(n)
		}
	}
}

func (n *Node) Kind() Kind         { return n.kind }
func (n *Node) Contents() Contents { return n.contents }

// Text returns the text payload, or "" when the node carries none.
func (n *Node) Text() string {
	s, _ := n.contents.Text()
	return s
}

// Index returns the index payload.
func (n *Node) Index() (uint64, bool) {
	return n.contents.Index()
}

// Children returns the child list. Editing the returned value does not affect n.
func (n *Node) Children() Children { return n.children }

// NumChildren returns the number of children.
func (n *Node) NumChildren() int { return n.children.Len() }

// Child returns the child at i, or nil when i is out of range.
func (n *Node) Child(i int) *Node { return n.children.At(i) }

// FirstChild returns the first child or nil.
func (n *Node) FirstChild() *Node { return n.children.First() }

// LastChild returns the last child or nil.
func (n *Node) LastChild() *Node { return n.children.Last() }

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return n.children.Len() == 0 }

// Parent returns the node n was last attached to, or nil. Subtrees are
// shared between trees, so Parent is only a hint: after Rewrite or an edit
// reuses n under a new node, Parent reports that newest owner, including
// when n is reached from the original tree.
func (n *Node) Parent() *Node { return n.parent.Load() }

// Equal reports structural equality. Parents are ignored.
func (n *Node) Equal(o *Node) bool {
	if n == o {
		return true
	}
	if n == nil || o == nil {
		return false
	}
	if n.kind != o.kind || n.contents != o.contents || n.children.Len() != o.children.Len() {
		return false
	}
	for i, c := range n.children.All() {
		if !c.Equal(o.children.At(i)) {
			return false
		}
	}
	return true
}

// Hash returns a structural hash consistent with Equal.
func (n *Node) Hash() uint64 {
	d := xxhash.New()
	n.hashInto(d)
	return d.Sum64()
}

func (n *Node) hashInto(d *xxhash.Digest) {
	var buf [8]byte
	if n == nil {
		d.Write(buf[:1])
		return
	}
	buf[0] = 1
	binary.LittleEndian.PutUint16(buf[1:], uint16(n.kind))
	buf[3] = byte(n.contents.kind)
	d.Write(buf[:4])
	switch n.contents.kind {
	case IndexContents:
		binary.LittleEndian.PutUint64(buf[:], n.contents.index)
		d.Write(buf[:])
	case TextContents:
		binary.LittleEndian.PutUint64(buf[:], uint64(len(n.contents.text)))
		d.Write(buf[:])
		d.WriteString(n.contents.text)
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(n.children.Len()))
	d.Write(buf[:])
	for _, c := range n.children.All() {
		c.hashInto(d)
	}
}

// Copy returns a deep copy of n sharing no nodes with it.
func (n *Node) Copy() *Node {
	if n == nil {
		return nil
	}
	kids := make([]*Node, 0, n.children.Len())
	for _, c := range n.children.All() {
		kids = append(kids, c.Copy())
	}
	return New(n.kind, n.contents, kids...)
}

func (n *Node) withChildren(c Children) *Node {
	return newWithChildren(n.kind, n.contents, c)
}

// WithKind returns a node like n with a different kind.
func (n *Node) WithKind(kind Kind) *Node {
	if kind == n.kind {
		return n
	}
	return newWithChildren(kind, n.contents, n.children)
}

// WithContents returns a node like n with different contents.
func (n *Node) WithContents(contents Contents) *Node {
	if contents == n.contents {
		return n
	}
	return newWithChildren(n.kind, contents, n.children)
}

// WithChild returns a node like n whose child i is replaced by child.
// An out of range index returns n unchanged.
func (n *Node) WithChild(i int, child *Node) *Node {
	c := n.children
	if !c.Set(i, child) {
		return n
	}
	return n.withChildren(c)
}

// WithChildren returns a node like n with the given children.
func (n *Node) WithChildren(children ...*Node) *Node {
	return n.withChildren(MakeChildren(children...))
}

// AddingChild returns a node like n with children appended.
func (n *Node) AddingChild(children ...*Node) *Node {
	if len(children) == 0 {
		return n
	}
	c := n.children
	c.Append(children...)
	return n.withChildren(c)
}

// InsertingChild returns a node like n with child inserted at i.
// An out of range index returns n unchanged.
func (n *Node) InsertingChild(i int, child *Node) *Node {
	c := n.children
	if !c.Insert(i, child) {
		return n
	}
	return n.withChildren(c)
}

// RemovingChild returns a node like n without child i.
// An out of range index returns n unchanged.
func (n *Node) RemovingChild(i int) *Node {
	c := n.children
	if !c.Remove(i) {
		return n
	}
	return n.withChildren(c)
}

// ReversingChildren returns a node like n with its children reversed.
func (n *Node) ReversingChildren() *Node {
	if n.children.Len() < 2 {
		return n
	}
	c := n.children
	c.Reverse()
	return n.withChildren(c)
}

// ReversingFirst returns a node like n with its first count children reversed.
func (n *Node) ReversingFirst(count int) *Node {
	if min(count, n.children.Len()) < 2 {
		return n
	}
	c := n.children
	c.ReverseFirst(count)
	return n.withChildren(c)
}

// ReplacingDescendant returns a tree where every occurrence of old (by
// identity) is replaced by repl. Unaffected subtrees are shared.
func (n *Node) ReplacingDescendant(old, repl *Node) *Node {
	return Rewrite(n, RewriteFunc(func(x *Node) *Node {
		if x == old {
			return repl
		}
		return x
	}))
}

// Find returns the first node in preorder for which match returns true.
func (n *Node) Find(match func(*Node) bool) *Node {
	for x := range n.Preorder() {
		if match(x) {
			return x
		}
	}
	return nil
}

// FindKind returns the first node of the given kind in preorder.
func (n *Node) FindKind(kind Kind) *Node {
	return n.Find(func(x *Node) bool { return x.kind == kind })
}

// Contains reports whether any node of the tree has the given kind.
func (n *Node) Contains(kind Kind) bool {
	return n.FindKind(kind) != nil
}

// String dumps the tree, one node per line.
func (n *Node) String() string {
	var sb strings.Builder
	n.dump(&sb, 0)
	return strings.TrimSuffix(sb.String(), "\n")
}

func (n *Node) dump(sb *strings.Builder, indent int) {
	sb.WriteString(strings.Repeat("  ", indent))
	if n == nil {
		sb.WriteString("- <nil>\n")
		return
	}
	sb.WriteString("- ")
	sb.WriteString(n.kind.String())
	if s := n.contents.String(); s != "" {
		sb.WriteString(" (")
		sb.WriteString(s)
		sb.WriteString(")")
	}
	sb.WriteString("\n")
	for _, c := range n.children.All() {
		c.dump(sb, indent+1)
	}
}
