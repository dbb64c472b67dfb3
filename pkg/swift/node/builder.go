package node

import "sync"

// Builder is a lockable editing surface over a private copy of a tree.
type Builder struct {
	mu   sync.Mutex
	node *Node
}

// NewBuilder deep copies n so later edits never reach the caller's tree.
func NewBuilder(n *Node) *Builder {
	return &Builder{node: n.Copy()}
}

// Node returns the current tree. The returned tree is not affected by later edits.
func (b *Builder) Node() *Node {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.node
}

func (b *Builder) edit(f func(*Node) *Node) *Builder {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.node != nil {
		b.node = f(b.node)
	}
	return b
}

func (b *Builder) AddChild(children ...*Node) *Builder {
	return b.edit(func(n *Node) *Node { return n.AddingChild(children...) })
}

func (b *Builder) InsertChild(i int, child *Node) *Builder {
	return b.edit(func(n *Node) *Node { return n.InsertingChild(i, child) })
}

func (b *Builder) RemoveChild(i int) *Builder {
	return b.edit(func(n *Node) *Node { return n.RemovingChild(i) })
}

func (b *Builder) SetChild(i int, child *Node) *Builder {
	return b.edit(func(n *Node) *Node { return n.WithChild(i, child) })
}

func (b *Builder) ReverseChildren() *Builder {
	return b.edit(func(n *Node) *Node { return n.ReversingChildren() })
}

func (b *Builder) SetKind(kind Kind) *Builder {
	return b.edit(func(n *Node) *Node { return n.WithKind(kind) })
}

func (b *Builder) SetContents(contents Contents) *Builder {
	return b.edit(func(n *Node) *Node { return n.WithContents(contents) })
}

// Rewrite applies r to the whole tree.
func (b *Builder) Rewrite(r Rewriter) *Builder {
	return b.edit(func(n *Node) *Node { return Rewrite(n, r) })
}
