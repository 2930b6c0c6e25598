package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/rope"
	"github.com/spf13/cobra"
)

// editOp is a single edit operation from the command line.
type editOp struct {
	insert     bool
	start, end int
	text       string
}

func (op editOp) String() string {
	if op.insert {
		return fmt.Sprintf("insert %q at %d", op.text, op.start)
	}
	return fmt.Sprintf("delete [%d,%d)", op.start, op.end)
}

func (op editOp) apply(node rope.Node) (rope.Node, error) {
	if op.insert {
		return rope.Insert(node, op.text, op.start)
	}
	return rope.DeleteRange(node, op.start, op.end)
}

// opsFlag collects edit operations of both kinds in command line order.
// It implements pflag.Value.
type opsFlag struct {
	ops    *[]editOp
	insert bool
}

func (f opsFlag) String() string {
	return ""
}

func (f opsFlag) Type() string {
	if f.insert {
		return "pos:text"
	}
	return "start:end"
}

func (f opsFlag) Set(s string) error {
	op, err := parseOp(s, f.insert)
	if err != nil {
		return err
	}
	*f.ops = append(*f.ops, op)
	return nil
}

// parseOp parses "pos:text" for insertions and "start:end" for deletions.
func parseOp(s string, insert bool) (editOp, error) {
	head, tail, found := strings.Cut(s, ":")
	if !found {
		return editOp{}, fmt.Errorf("missing ':' in %q", s)
	}
	start, err := strconv.Atoi(head)
	if err != nil {
		return editOp{}, fmt.Errorf("illegal position in %q: %w", s, err)
	}
	if insert {
		return editOp{insert: true, start: start, text: tail}, nil
	}
	end, err := strconv.Atoi(tail)
	if err != nil {
		return editOp{}, fmt.Errorf("illegal end position in %q: %w", s, err)
	}
	return editOp{start: start, end: end}, nil
}

func newEditCmd(opts *rootOptions) *cobra.Command {
	in := &inputOptions{}
	var ops []editOp
	var format string
	var rebalance bool
	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Apply insertions and deletions to a rope",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := in.load(cmd.Context(), opts.conf, args)
			if err != nil {
				return err
			}
			if node, err = applyEdits(node, ops, rebalance); err != nil {
				return err
			}
			return output(node, format, opts.conf, cmd.OutOrStdout())
		},
	}
	in.addFlags(cmd)
	cmd.Flags().Var(opsFlag{ops: &ops, insert: true}, "insert", "insert text at a position (repeatable)")
	cmd.Flags().Var(opsFlag{ops: &ops}, "delete", "delete a range of characters (repeatable)")
	cmd.Flags().BoolVar(&rebalance, "rebalance", false, "rebalance the rope after editing")
	cmd.Flags().StringVar(&format, "format", formatText, "output format: outline, map, dot or text")
	return cmd
}

// applyEdits applies ops in order. Every operation sees the result of its
// predecessor.
func applyEdits(node rope.Node, ops []editOp, rebalance bool) (rope.Node, error) {
	var err error
	for i, op := range ops {
		tracer().Debugf("edit #%d: %s", i+1, op)
		if node, err = op.apply(node); err != nil {
			return nil, fmt.Errorf("edit #%d (%s): %w", i+1, op, err)
		}
	}
	if rebalance {
		node = rope.Rebalance(node)
	}
	return node, nil
}
