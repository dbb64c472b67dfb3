package node

import (
	"iter"
	"slices"
)

// Children is an ordered child list. Up to two children are stored inline;
// three or more live in a slice. Every edit that brings the count back to two
// or fewer returns to the inline form.
//
// A Children value may share its slice with other values, so edits never
// write to the existing slice.
type Children struct {
	n      int
	inline [2]*Node
	many   []*Node
}

// MakeChildren returns a child list holding nodes.
func MakeChildren(nodes ...*Node) Children {
	var c Children
	c.setAll(nodes)
	return c
}

func (c *Children) setAll(nodes []*Node) {
	c.n = len(nodes)
	if len(nodes) <= 2 {
		c.many = nil
		c.inline = [2]*Node{}
		copy(c.inline[:], nodes)
		return
	}
	c.inline = [2]*Node{}
	c.many = slices.Clone(nodes)
}

// Len returns the number of children.
func (c Children) Len() int { return c.n }

// IsInline reports whether the children are stored without a heap slice.
func (c Children) IsInline() bool { return c.many == nil }

// At returns the child at i, or nil when i is out of range.
func (c Children) At(i int) *Node {
	if i < 0 || i >= c.n {
		return nil
	}
	if c.many != nil {
		return c.many[i]
	}
	return c.inline[i]
}

// First returns the first child or nil.
func (c Children) First() *Node { return c.At(0) }

// Last returns the last child or nil.
func (c Children) Last() *Node { return c.At(c.n - 1) }

// Slice returns a fresh slice holding the children.
func (c Children) Slice() []*Node {
	if c.many != nil {
		return slices.Clone(c.many)
	}
	return slices.Clone(c.inline[:c.n])
}

// All yields the children in order.
func (c Children) All() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		for i := 0; i < c.n; i++ {
			if !yield(i, c.At(i)) {
				return
			}
		}
	}
}

// Append adds nodes at the end.
func (c *Children) Append(nodes ...*Node) {
	if len(nodes) == 0 {
		return
	}
	if c.n+len(nodes) <= 2 {
		copy(c.inline[c.n:], nodes)
		c.n += len(nodes)
		return
	}
	all := make([]*Node, 0, c.n+len(nodes))
	all = append(all, c.Slice()...)
	c.setAll(append(all, nodes...))
}

// Insert places child at i, shifting later children. i may equal Len.
// Out of range indices leave the list unchanged.
func (c *Children) Insert(i int, child *Node) bool {
	if i < 0 || i > c.n {
		return false
	}
	c.setAll(slices.Insert(c.Slice(), i, child))
	return true
}

// Remove deletes the child at i. Out of range indices leave the list unchanged.
func (c *Children) Remove(i int) bool {
	if i < 0 || i >= c.n {
		return false
	}
	c.setAll(slices.Delete(c.Slice(), i, i+1))
	return true
}

// Set replaces the child at i. Out of range indices leave the list unchanged.
func (c *Children) Set(i int, child *Node) bool {
	if i < 0 || i >= c.n {
		return false
	}
	s := c.Slice()
	s[i] = child
	c.setAll(s)
	return true
}

// Reverse reverses the order of all children.
func (c *Children) Reverse() {
	c.ReverseFirst(c.n)
}

// ReverseFirst reverses the order of the first n children. n larger than
// Len reverses everything; n below two is a no-op.
func (c *Children) ReverseFirst(n int) {
	n = min(n, c.n)
	if n < 2 {
		return
	}
	s := c.Slice()
	slices.Reverse(s[:n])
	c.setAll(s)
}
