package metrics

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/rope"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	node := rope.NewBranch(
		rope.NewBranch(rope.NewLeaf("Hello"), nil),
		rope.NewBranch(rope.NewLeaf(" "), rope.NewLeaf("World")),
	)
	want := ShapeStats{
		Size:     11,
		Leaves:   3,
		Branches: 3,
		Absent:   1,
		Height:   3,
		Balanced: true,
		MinLeaf:  1,
		MaxLeaf:  5,
	}
	stats := Shape(node)
	t.Logf("shape: %s", stats)
	if diff := cmp.Diff(want, stats); diff != "" {
		t.Errorf("shape mismatch (-want +got):\n%s", diff)
	}
	if m := stats.MeanLeaf(); m < 3.66 || m > 3.67 {
		t.Errorf("expected mean leaf size 11/3, have %f", m)
	}
	if empty := Shape(nil); empty.Leaves != 0 || empty.Height != 0 || empty.MeanLeaf() != 0 {
		t.Errorf("unexpected shape of nil rope: %s", empty)
	}
}

func TestShapeAfterRebalance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	var node rope.Node = rope.NewLeaf("")
	var err error
	for i := 0; i < 50; i++ {
		if node, err = rope.Insert(node, "x", 0); err != nil {
			t.Fatal(err)
		}
	}
	before := Shape(node)
	after := Shape(rope.Rebalance(node))
	if before.Balanced || !after.Balanced {
		t.Errorf("expected rebalancing to balance the rope: %s -> %s", before, after)
	}
	if after.Height >= before.Height || after.Size != before.Size {
		t.Errorf("unexpected shape after rebalance: %s -> %s", before, after)
	}
}

func TestWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	// leaf boundaries cut through "quick" and "brown"
	node := rope.Merge([]*rope.Leaf{
		rope.NewLeaf("The qu"),
		rope.NewLeaf("ick br"),
		rope.NewLeaf("own  "),
		rope.NewLeaf("fü"),
		rope.NewLeaf("chse"),
	})
	v, err := Words().Apply(node, 0, node.Size())
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("value = %s", v)
	want := [][]int{{0, 3}, {4, 9}, {10, 15}, {17, 23}}
	if diff := cmp.Diff(want, v.Spans()); diff != "" {
		t.Errorf("word spans mismatch (-want +got):\n%s", diff)
	}
	if v.Count() != 4 || v.Len() != node.Size() {
		t.Errorf("expected 4 words in %d characters, have %d in %d", node.Size(), v.Count(), v.Len())
	}
	v, err = Words().Apply(node, 6, 12)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([][]int{{6, 9}, {10, 12}}, v.Spans()); diff != "" {
		t.Errorf("word spans in range mismatch (-want +got):\n%s", diff)
	}
}

func TestWordsEdgeCases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	node := rope.NewBranch(rope.NewLeaf("  \t"), rope.NewBranch(nil, rope.NewLeaf("\n")))
	v, err := Words().Apply(node, 0, node.Size())
	if err != nil {
		t.Fatal(err)
	}
	if v.Count() != 0 {
		t.Errorf("expected no words in white space, have %d", v.Count())
	}
	if v, _ = Words().Apply(node, 2, 2); v.Count() != 0 || v.Len() != 0 {
		t.Errorf("expected empty value for empty range")
	}
	if _, err = Words().Apply(node, 3, 2); !errors.Is(err, rope.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, have %v", err)
	}
	if _, err = Words().Apply(node, 0, 5); !errors.Is(err, rope.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, have %v", err)
	}
	broken := rope.NewBranch(rope.NewLeaf("a\xffb"), rope.NewLeaf(" c"))
	if v, _ = Words().Apply(broken, 0, broken.Size()); v.Count() != 2 {
		t.Errorf("expected 2 words with invalid byte inside, have %v", v.Spans())
	}
}
