package rope

// Builder incrementally stages text fragments and finalizes them into a rope.
//
// Every fragment becomes one leaf. The rope is materialized only when Rope()
// is called, and the result is balanced.
//
// The empty instance is a valid builder, but clients may use NewBuilder.
type Builder struct {
	// front keeps prepended leaves in reverse logical order.
	front []*Leaf
	// back keeps appended leaves in logical order.
	back []*Leaf

	done  bool
	dirty bool
	rope  Node
}

// NewBuilder creates a new and empty rope builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Rope returns the rope built from all staged fragments. A builder without
// fragments produces an empty leaf.
//
// It is illegal to continue adding fragments after Rope has been called, but
// Rope may be called multiple times.
func (b *Builder) Rope() Node {
	if b == nil {
		return NewLeaf("")
	}
	if b.dirty || b.rope == nil {
		b.rope = Merge(b.orderedLeaves())
		b.dirty = false
	}
	if !b.done {
		tracer().Debugf("rope builder: %d fragments, height %d", len(b.front)+len(b.back),
			b.rope.Height())
	}
	b.done = true
	return b.rope
}

// Reset drops the staged build and prepares the builder for a fresh build.
func (b *Builder) Reset() {
	b.front = nil
	b.back = nil
	b.done = false
	b.dirty = false
	b.rope = nil
}

// AppendString appends a text fragment to the staged build.
// Empty fragments are dropped.
func (b *Builder) AppendString(text string) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrRopeCompleted
	}
	if text == "" {
		return nil
	}
	b.back = append(b.back, NewLeaf(text))
	b.dirty = true
	return nil
}

// PrependString prepends a text fragment to the staged build.
// Empty fragments are dropped.
func (b *Builder) PrependString(text string) error {
	if b == nil {
		return ErrIllegalArguments
	}
	if b.done {
		return ErrRopeCompleted
	}
	if text == "" {
		return nil
	}
	b.front = append(b.front, NewLeaf(text))
	b.dirty = true
	return nil
}

// Len returns the number of characters staged so far.
func (b *Builder) Len() int {
	if b == nil {
		return 0
	}
	n := 0
	for _, leaf := range b.front {
		n += leaf.size
	}
	for _, leaf := range b.back {
		n += leaf.size
	}
	return n
}

func (b *Builder) orderedLeaves() []*Leaf {
	leaves := make([]*Leaf, 0, len(b.front)+len(b.back))
	for i := len(b.front) - 1; i >= 0; i-- {
		leaves = append(leaves, b.front[i])
	}
	return append(leaves, b.back...)
}
