package rope

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Kinds of nodes in map form.
const (
	KindLeaf   = "leaf"
	KindBranch = "branch"
)

// Map is a tagged, nested representation of a rope tree, mirroring its structure
// node by node. It is meant for inspection and tests, and for reading trees
// from JSON or YAML.
//
// A leaf is {kind: leaf, text}, a branch is {kind: branch, size, left, right}.
// Left and right of a branch may be missing.
type Map struct {
	Kind  string `mapstructure:"kind" json:"kind" yaml:"kind"`
	Text  string `mapstructure:"text" json:"text,omitempty" yaml:"text,omitempty"`
	Size  int    `mapstructure:"size" json:"size,omitempty" yaml:"size,omitempty"`
	Left  *Map   `mapstructure:"left" json:"left,omitempty" yaml:"left,omitempty"`
	Right *Map   `mapstructure:"right" json:"right,omitempty" yaml:"right,omitempty"`
}

// ToMap creates the map form of a rope. A nil rope results in a nil map.
func ToMap(node Node) *Map {
	switch n := node.(type) {
	case nil:
		return nil
	case *Leaf:
		return &Map{Kind: KindLeaf, Text: n.text}
	case *Branch:
		return &Map{
			Kind:  KindBranch,
			Size:  n.size,
			Left:  ToMap(n.left),
			Right: ToMap(n.right),
		}
	}
	panic(fmt.Sprintf("rope: unknown node type %T", node))
}

// FromMap creates a rope from its map form. Sizes in m are ignored and
// recomputed from the leaves. A branch with a missing left or right entry
// yields a branch with a missing child.
//
// Nodes of unknown kind result in ErrIllegalArguments.
func FromMap(m *Map) (Node, error) {
	if m == nil {
		return nil, fmt.Errorf("map is nil: %w", ErrIllegalArguments)
	}
	switch m.Kind {
	case KindLeaf:
		return NewLeaf(m.Text), nil
	case KindBranch:
		var left, right Node // keep missing children untyped nil
		if m.Left != nil {
			l, err := FromMap(m.Left)
			if err != nil {
				return nil, err
			}
			left = l
		}
		if m.Right != nil {
			r, err := FromMap(m.Right)
			if err != nil {
				return nil, err
			}
			right = r
		}
		return NewBranch(left, right), nil
	}
	return nil, fmt.Errorf("unknown node kind %q: %w", m.Kind, ErrIllegalArguments)
}

// FromAny creates a rope from a loosely typed map form, as produced by
// decoding JSON or YAML into map[string]any. Unknown keys are rejected.
func FromAny(raw map[string]any) (Node, error) {
	if raw == nil {
		return nil, fmt.Errorf("map is nil: %w", ErrIllegalArguments)
	}
	var m Map
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &m,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding map form: %v: %w", err, ErrIllegalArguments)
	}
	return FromMap(&m)
}
