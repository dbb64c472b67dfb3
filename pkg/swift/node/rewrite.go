package node

// Rewriter transforms a tree bottom up. Visit receives a node whose children
// have already been rewritten and returns its replacement, or the node itself
// to keep it.
type Rewriter interface {
	Visit(n *Node) *Node
}

// RewriteFunc adapts a function to Rewriter.
type RewriteFunc func(n *Node) *Node

func (f RewriteFunc) Visit(n *Node) *Node { return f(n) }

// Rewrite applies r to every node of n, children first. A node is rebuilt
// only when one of its children changed identity, so a rewriter that keeps
// every node returns n itself.
func Rewrite(n *Node, r Rewriter) *Node {
	if n == nil {
		return nil
	}
	var kids []*Node
	for i, c := range n.children.All() {
		rc := Rewrite(c, r)
		if rc != c && kids == nil {
			kids = n.children.Slice()
		}
		if kids != nil {
			kids[i] = rc
		}
	}
	if kids != nil {
		n = New(n.kind, n.contents, kids...)
	}
	if v := r.Visit(n); v != nil {
		return v
	}
	return n
}

// SubstituteGenericParams replaces every dependent generic parameter
// (depth, index) for which lookup returns a node.
func SubstituteGenericParams(n *Node, lookup func(depth, index uint64) *Node) *Node {
	return Rewrite(n, RewriteFunc(func(x *Node) *Node {
		if x.kind != KindDependentGenericParamType || x.NumChildren() < 2 {
			return x
		}
		depth, ok1 := x.Child(0).Index()
		index, ok2 := x.Child(1).Index()
		if !ok1 || !ok2 {
			return x
		}
		if sub := lookup(depth, index); sub != nil {
			return sub
		}
		return x
	}))
}

// ResolveOpaqueTypes replaces opaque return types for which lookup returns
// the underlying type. The key passed to lookup is the opaque node itself.
func ResolveOpaqueTypes(n *Node, lookup func(opaque *Node) *Node) *Node {
	return Rewrite(n, RewriteFunc(func(x *Node) *Node {
		if x.kind != KindOpaqueType && x.kind != KindOpaqueReturnTypeOf {
			return x
		}
		if sub := lookup(x); sub != nil {
			return sub
		}
		return x
	}))
}
