package rope

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Rebalance returns a height-balanced rope with the same content as node.
//
// If node is balanced already, it is returned unchanged. Otherwise all leaves
// are collected and merged into a new tree by recursive bisection. The
// leaves themselves are re-used.
func Rebalance(node Node) Node {
	if balancedOf(node) {
		return node
	}
	leaves := CollectLeaves(node)
	balanced := Merge(leaves)
	tracer().Debugf("rebalance: %d leaves, height %d -> %d", len(leaves),
		heightOf(node), balanced.Height())
	return balanced
}

// Merge builds a balanced tree from a sequence of leaves, keeping their order.
//
// The sequence is bisected recursively; at every branch the leaf counts of the
// two children differ by at most one. An empty sequence results in an empty leaf.
func Merge(leaves []*Leaf) Node {
	switch len(leaves) {
	case 0:
		return NewLeaf("")
	case 1:
		return leaves[0]
	case 2:
		return NewBranch(leaves[0], leaves[1])
	}
	mid := len(leaves) / 2
	return NewBranch(Merge(leaves[:mid]), Merge(leaves[mid:]))
}

// CollectLeaves returns the leaves of a rope in order.
func CollectLeaves(node Node) []*Leaf {
	var leaves []*Leaf
	_ = EachLeaf(node, func(leaf *Leaf, _ int) error {
		leaves = append(leaves, leaf)
		return nil
	})
	return leaves
}
