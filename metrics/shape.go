package metrics

import (
	"fmt"

	"github.com/npillmayer/rope"
)

// ShapeStats holds statistics about the tree structure of a rope.
type ShapeStats struct {
	Size     int  // number of characters
	Leaves   int  // number of leaves, including empty ones
	Branches int  // number of branches
	Absent   int  // number of missing children of branches
	Height   int  // height of the tree, 0 for a nil rope
	Balanced bool // height-balanced at every node
	MinLeaf  int  // size of the smallest leaf
	MaxLeaf  int  // size of the largest leaf
}

// MeanLeaf returns the average leaf size, or 0 for a rope without leaves.
func (s ShapeStats) MeanLeaf() float64 {
	if s.Leaves == 0 {
		return 0
	}
	return float64(s.Size) / float64(s.Leaves)
}

func (s ShapeStats) String() string {
	return fmt.Sprintf("size=%d leaves=%d branches=%d absent=%d height=%d balanced=%v leaf=[%d…%d] mean=%.1f",
		s.Size, s.Leaves, s.Branches, s.Absent, s.Height, s.Balanced, s.MinLeaf, s.MaxLeaf, s.MeanLeaf())
}

// Shape collects statistics about the tree structure of node.
func Shape(node rope.Node) ShapeStats {
	stats := ShapeStats{Balanced: true}
	if node == nil {
		return stats
	}
	stats.Size = node.Size()
	stats.Height = node.Height()
	stats.Balanced = node.IsBalanced()
	stats.MinLeaf = -1
	shape(node, &stats)
	if stats.MinLeaf < 0 {
		stats.MinLeaf = 0
	}
	return stats
}

func shape(node rope.Node, stats *ShapeStats) {
	switch n := node.(type) {
	case *rope.Leaf:
		stats.Leaves++
		if stats.MinLeaf < 0 || n.Size() < stats.MinLeaf {
			stats.MinLeaf = n.Size()
		}
		stats.MaxLeaf = max(stats.MaxLeaf, n.Size())
	case *rope.Branch:
		stats.Branches++
		for _, child := range []rope.Node{n.Left(), n.Right()} {
			if child == nil {
				stats.Absent++
				continue
			}
			shape(child, stats)
		}
	default:
		panic(fmt.Sprintf("metrics: unknown node type %T", node))
	}
}
