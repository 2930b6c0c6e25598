package rope

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestCharCursorNextPrevRoundtrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	s := "a😀ב\nz"
	root := NewBranch(skewed("a😀", "", "ב"), NewBranch(nil, NewLeaf("\nz")))
	cc := NewCharCursor(root)
	var got []rune
	for {
		r, ok := cc.Next()
		if !ok {
			break
		}
		got = append(got, r)
	}
	if string(got) != s {
		t.Fatalf("forward: expected %q, have %q", s, string(got))
	}
	if cc.Pos() != root.Size() {
		t.Errorf("expected cursor at end %d, is at %d", root.Size(), cc.Pos())
	}
	want := []rune(s)
	var back []rune
	for {
		r, ok := cc.Prev()
		if !ok {
			break
		}
		back = append(back, r)
	}
	if len(back) != len(want) {
		t.Fatalf("backward rune count=%d want=%d", len(back), len(want))
	}
	for i := range want {
		if back[i] != want[len(want)-1-i] {
			t.Fatalf("backward rune[%d]=%q want=%q", i, back[i], want[len(want)-1-i])
		}
	}
}

func TestCharCursorSeek(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	root := NewBranch(NewLeaf("a😀"), NewLeaf("bc"))
	cc := NewCharCursor(root)
	for i, want := range []rune("a😀bc") {
		if err := cc.Seek(i); err != nil {
			t.Fatal(err)
		}
		if r, ok := cc.Next(); !ok || r != want {
			t.Errorf("next after seek(%d): expected (%q,true), have (%q,%v)", i, want, r, ok)
		}
	}
	if err := cc.Seek(2); err != nil {
		t.Fatal(err)
	}
	if r, ok := cc.Prev(); !ok || r != '😀' || cc.Pos() != 1 {
		t.Errorf("prev after seek(2): have (%q,%v) at %d", r, ok, cc.Pos())
	}
	if err := cc.Seek(root.Size()); err != nil {
		t.Fatal(err)
	}
	if _, ok := cc.Next(); ok {
		t.Errorf("expected no character at end of rope")
	}
	if err := cc.Seek(5); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("expected ErrInvalidPosition, have %v", err)
	}
}

func TestCharCursorEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope")
	defer teardown()
	//
	for _, node := range []Node{nil, NewLeaf(""), NewBranch(nil, nil)} {
		cc := NewCharCursor(node)
		if _, ok := cc.Next(); ok {
			t.Errorf("expected no character in empty rope")
		}
		if _, ok := cc.Prev(); ok {
			t.Errorf("expected no character before start")
		}
		if err := cc.Seek(0); err != nil {
			t.Errorf("expected seek(0) to succeed, have %v", err)
		}
	}
}
