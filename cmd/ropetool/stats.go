package main

import (
	"fmt"

	"github.com/npillmayer/rope"
	"github.com/npillmayer/rope/metrics"
	"github.com/spf13/cobra"
)

func newStatsCmd(opts *rootOptions) *cobra.Command {
	in := &inputOptions{}
	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "Print shape statistics and the word count of a rope",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := in.load(cmd.Context(), opts.conf, args)
			if err != nil {
				return err
			}
			words, err := metrics.Words().Apply(node, 0, rope.Size(node))
			if err != nil {
				return err
			}
			shape := metrics.Shape(node)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "characters: %d\n", shape.Size)
			fmt.Fprintf(out, "words:      %d\n", words.Count())
			fmt.Fprintf(out, "leaves:     %d (%d…%d characters, mean %.1f)\n", shape.Leaves,
				shape.MinLeaf, shape.MaxLeaf, shape.MeanLeaf())
			fmt.Fprintf(out, "branches:   %d (%d absent children)\n", shape.Branches, shape.Absent)
			fmt.Fprintf(out, "height:     %d\n", shape.Height)
			_, err = fmt.Fprintf(out, "balanced:   %v\n", shape.Balanced)
			return err
		},
	}
	in.addFlags(cmd)
	return cmd
}
