package rope

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// skewed builds the right-leaning chain Branch(t0, Branch(t1, ... Branch(tn-1, tn))).
func skewed(texts ...string) Node {
	var node Node = NewLeaf(texts[len(texts)-1])
	for i := len(texts) - 2; i >= 0; i-- {
		node = NewBranch(NewLeaf(texts[i]), node)
	}
	return node
}

// checkInvariants verifies the cached values of every branch below node.
func checkInvariants(t *testing.T, node Node) {
	t.Helper()
	err := traverse(node, 0, 0, func(n Node, pos int, depth int) error {
		b, ok := n.(*Branch)
		if !ok {
			return nil
		}
		if b.Weight() != sizeOf(b.Left()) {
			t.Errorf("branch @%d: weight %d != size(left) %d", pos, b.Weight(), sizeOf(b.Left()))
		}
		if b.Size() != sizeOf(b.Left())+sizeOf(b.Right()) {
			t.Errorf("branch @%d: size %d is not additive", pos, b.Size())
		}
		if b.Height() != max(heightOf(b.Left()), heightOf(b.Right()))+1 {
			t.Errorf("branch @%d: height %d is wrong", pos, b.Height())
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestLeaf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	leaf := NewLeaf("test")
	if leaf.Size() != 4 {
		t.Errorf("expected size of leaf to be 4, is %d", leaf.Size())
	}
	if leaf.String() != "test" {
		t.Errorf("expected leaf text to be 'test', is %q", leaf.String())
	}
	if leaf.Height() != 1 || !leaf.IsBalanced() || leaf.Weight() != 4 {
		t.Errorf("unexpected leaf metrics: height=%d weight=%d", leaf.Height(), leaf.Weight())
	}
}

func TestLeafCountsCharacters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	leaf := NewLeaf("Grüße, 世界")
	if leaf.Size() != 9 {
		t.Errorf("expected 9 characters, have %d", leaf.Size())
	}
	l, r := leaf.split(3)
	if l.String() != "Grü" || r.String() != "ße, 世界" {
		t.Errorf("unexpected split: %q | %q", l, r)
	}
	if l.Size() != 3 || r.Size() != 6 {
		t.Errorf("unexpected split sizes: %d | %d", l.Size(), r.Size())
	}
}

func TestBranch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	b := NewBranch(NewBranch(NewLeaf("t"), NewLeaf("e")), NewBranch(nil, NewLeaf("st")))
	if b.String() != "test" {
		t.Errorf("expected branch text to be 'test', is %q", b.String())
	}
	if b.Size() != 4 || b.Weight() != 2 {
		t.Errorf("expected size 4 and weight 2, have %d and %d", b.Size(), b.Weight())
	}
	if b.Height() != 3 {
		t.Errorf("expected height 3, have %d", b.Height())
	}
	if !b.IsBalanced() {
		t.Errorf("expected branch to be balanced")
	}
	checkInvariants(t, b)
}

func TestBranchBalance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	chain := skewed("a", "b", "c", "d")
	if chain.Height() != 4 {
		t.Errorf("expected height of chain to be 4, is %d", chain.Height())
	}
	if chain.IsBalanced() {
		t.Errorf("expected chain to be unbalanced")
	}
	// a missing child counts as height 0
	if NewBranch(NewBranch(NewLeaf("x"), NewLeaf("y")), nil).IsBalanced() {
		t.Errorf("expected branch with single deep child to be unbalanced")
	}
	if !NewBranch(NewLeaf("x"), nil).IsBalanced() {
		t.Errorf("expected branch with single leaf child to be balanced")
	}
	// imbalance deep down must propagate
	deep := NewBranch(skewed("a", "b", "c", "d"), NewBranch(skewed("e", "f"), skewed("g", "h")))
	if deep.Height() != 5 {
		t.Errorf("expected height 5, have %d", deep.Height())
	}
	if deep.IsBalanced() {
		t.Errorf("expected unbalanced subtree to make the tree unbalanced")
	}
}

func TestNilRope(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	if Size(nil) != 0 || Text(nil) != "" {
		t.Errorf("expected nil rope to behave like the empty string")
	}
	r, err := Insert(nil, "abc", 0)
	if err != nil {
		t.Fatal(err)
	}
	if r.String() != "abc" {
		t.Errorf("expected 'abc', have %q", r)
	}
}
