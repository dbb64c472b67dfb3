package node

import (
	"sync"

	"github.com/dolthub/swiss"
)

// Common leaves shared by every pool.
var (
	EmptyList                     = &Node{kind: KindEmptyList}
	FirstElementMarker            = &Node{kind: KindFirstElementMarker}
	LabelList                     = &Node{kind: KindLabelList}
	ThrowsAnnotation              = &Node{kind: KindThrowsAnnotation}
	AsyncAnnotation               = &Node{kind: KindAsyncAnnotation}
	VariadicMarker                = &Node{kind: KindVariadicMarker}
	ConcurrentFunctionType        = &Node{kind: KindConcurrentFunctionType}
	IsolatedAnyFunctionType       = &Node{kind: KindIsolatedAnyFunctionType}
	NonIsolatedCallerFunctionType = &Node{kind: KindNonIsolatedCallerFunctionType}
	SendingResultFunctionType     = &Node{kind: KindSendingResultFunctionType}
	UnknownIndex                  = &Node{kind: KindUnknownIndex}
)

var commonLeaves = []*Node{
	EmptyList,
	FirstElementMarker,
	LabelList,
	ThrowsAnnotation,
	AsyncAnnotation,
	VariadicMarker,
	ConcurrentFunctionType,
	IsolatedAnyFunctionType,
	NonIsolatedCallerFunctionType,
	SendingResultFunctionType,
	UnknownIndex,
}

type leafKey struct {
	kind     Kind
	contents Contents
}

const defaultPoolCapacity = 1024

// Pool deduplicates leaf nodes by kind and contents.
type Pool struct {
	mu     sync.Mutex
	leaves *swiss.Map[leafKey, *Node]
}

// NewPool returns a pool holding only the common leaves.
func NewPool() *Pool {
	p := &Pool{}
	p.reset()
	return p
}

var defaultPool = sync.OnceValue(NewPool)

// Default returns the process wide pool.
func Default() *Pool { return defaultPool() }

func (p *Pool) reset() {
	p.leaves = swiss.NewMap[leafKey, *Node](defaultPoolCapacity)
	for _, n := range commonLeaves {
		p.leaves.Put(leafKey{n.kind, n.contents}, n)
	}
}

// Intern returns the shared leaf for kind and contents, creating it on first use.
func (p *Pool) Intern(kind Kind, contents Contents) *Node {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.InternUnsafe(kind, contents)
}

// InternUnsafe is Intern without locking. The caller must be the only user
// of the pool while it runs.
func (p *Pool) InternUnsafe(kind Kind, contents Contents) *Node {
	key := leafKey{kind, contents}
	if n, ok := p.leaves.Get(key); ok {
		return n
	}
	n := &Node{kind: kind, contents: contents}
	p.leaves.Put(key, n)
	return n
}

func (p *Pool) InternText(kind Kind, text string) *Node {
	return p.Intern(kind, Text(text))
}

func (p *Pool) InternIndex(kind Kind, index uint64) *Node {
	return p.Intern(kind, Index(index))
}

// Make builds a node, taking leaves from the pool. Nodes with children are
// always fresh.
func (p *Pool) Make(kind Kind, contents Contents, children ...*Node) *Node {
	if len(children) == 0 {
		return p.Intern(kind, contents)
	}
	return New(kind, contents, children...)
}

// InternTree replaces every leaf of n with its pooled equivalent. Only the
// ancestors of replaced leaves are rebuilt.
func (p *Pool) InternTree(n *Node) *Node {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.InternTreeUnsafe(n)
}

// InternTreeUnsafe is InternTree without locking.
func (p *Pool) InternTreeUnsafe(n *Node) *Node {
	return Rewrite(n, RewriteFunc(func(x *Node) *Node {
		if !x.IsLeaf() {
			return x
		}
		return p.InternUnsafe(x.kind, x.contents)
	}))
}

// Contains reports whether n is the pooled instance for its key.
func (p *Pool) Contains(n *Node) bool {
	if n == nil || !n.IsLeaf() {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	got, ok := p.leaves.Get(leafKey{n.kind, n.contents})
	return ok && got == n
}

// Len returns the number of pooled leaves, common leaves included.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.leaves.Count()
}

// Clear drops every leaf except the common ones. It must not run while a
// decode using the pool is in flight.
func (p *Pool) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
}
