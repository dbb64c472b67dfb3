package node

import "iter"

// Preorder yields n before its children, left to right.
func (n *Node) Preorder() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if n == nil {
			return
		}
		stack := []*Node{n}
		for len(stack) > 0 {
			x := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(x) {
				return
			}
			for i := x.children.Len() - 1; i >= 0; i-- {
				if c := x.children.At(i); c != nil {
					stack = append(stack, c)
				}
			}
		}
	}
}

// Inorder treats every node as binary: the first child is the left subtree
// and the second child the right one. Children past the second are not
// visited.
func (n *Node) Inorder() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		var stack []*Node
		cur := n
		for cur != nil || len(stack) > 0 {
			for cur != nil {
				stack = append(stack, cur)
				cur = cur.children.At(0)
			}
			x := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(x) {
				return
			}
			cur = x.children.At(1)
		}
	}
}

// Postorder yields every child before its parent.
func (n *Node) Postorder() iter.Seq[*Node] {
	type frame struct {
		node    *Node
		visited bool
	}
	return func(yield func(*Node) bool) {
		if n == nil {
			return
		}
		stack := []frame{{node: n}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.visited {
				x := top.node
				stack = stack[:len(stack)-1]
				if !yield(x) {
					return
				}
				continue
			}
			top.visited = true
			x := top.node
			for i := x.children.Len() - 1; i >= 0; i-- {
				if c := x.children.At(i); c != nil {
					stack = append(stack, frame{node: c})
				}
			}
		}
	}
}

// LevelOrder yields the tree breadth first.
func (n *Node) LevelOrder() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if n == nil {
			return
		}
		queue := []*Node{n}
		for len(queue) > 0 {
			x := queue[0]
			queue = queue[1:]
			if !yield(x) {
				return
			}
			for _, c := range x.children.All() {
				if c != nil {
					queue = append(queue, c)
				}
			}
		}
	}
}
