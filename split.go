package rope

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "fmt"

// Split splits a rope into two new (smaller) ropes right before position i.
// Split(R,i) => split R into R1 and R2, with R1=c0,...,ci-1 and R2=ci,...,cn.
//
// Only the nodes on the path from the root to position i are re-created, all
// other subtrees are shared with node. If i equals the weight of the root,
// the root's children are returned as they are.
//
// If i is negative or greater than the size of node, ErrInvalidPosition is
// returned. Split never returns nil nodes: a missing half is replaced by an
// empty leaf.
func Split(node Node, i int) (Node, Node, error) {
	left, right, err := split(node, i)
	if err != nil {
		return nil, nil, err
	}
	return orEmpty(left), orEmpty(right), nil
}

// split is the structural split. It may return nil halves when node has
// missing children.
func split(node Node, i int) (Node, Node, error) {
	if i < 0 || i > sizeOf(node) {
		return nil, nil, fmt.Errorf("split at %d with size %d: %w", i, sizeOf(node), ErrInvalidPosition)
	}
	switch n := node.(type) {
	case nil:
		return nil, nil, nil
	case *Leaf:
		l, r := n.split(i)
		return l, r, nil
	case *Branch:
		if i == n.weight {
			return n.left, n.right, nil
		}
		if i < n.weight {
			l, r, err := split(n.left, i)
			if err != nil {
				return nil, nil, err
			}
			return l, NewBranch(r, n.right), nil
		}
		l, r, err := split(n.right, i-n.weight)
		if err != nil {
			return nil, nil, err
		}
		return NewBranch(n.left, l), r, nil
	}
	panic(fmt.Sprintf("rope: unknown node type %T", node))
}
