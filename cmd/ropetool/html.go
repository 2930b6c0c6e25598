package main

import (
	"os"

	ropehtml "github.com/npillmayer/rope/html"
	"github.com/spf13/cobra"
)

func newHTMLCmd(opts *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "html file",
		Short: "Extract the text of an HTML file into a rope and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			node, err := ropehtml.TextFromHTML(f)
			if err != nil {
				return err
			}
			return output(node, format, opts.conf, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&format, "format", formatText, "output format: outline, map, dot or text")
	return cmd
}
