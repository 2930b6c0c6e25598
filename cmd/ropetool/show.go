package main

import (
	"github.com/spf13/cobra"
)

func newShowCmd(opts *rootOptions) *cobra.Command {
	in := &inputOptions{}
	var format string
	cmd := &cobra.Command{
		Use:   "show [file]",
		Short: "Load a rope and print it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			node, err := in.load(cmd.Context(), opts.conf, args)
			if err != nil {
				return err
			}
			return output(node, format, opts.conf, cmd.OutOrStdout())
		},
	}
	in.addFlags(cmd)
	cmd.Flags().StringVar(&format, "format", formatOutline, "output format: outline, map, dot or text")
	return cmd
}
