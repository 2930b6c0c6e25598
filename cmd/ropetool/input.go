package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/rope"
	"github.com/npillmayer/rope/formatter"
	"github.com/npillmayer/rope/textfile"
	"github.com/npillmayer/uax/uax11"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// inputOptions select the source of a rope.
type inputOptions struct {
	text     string // literal text
	tree     string // YAML file with the map form of a tree
	fragSize int    // fragment size for literal text and text files
}

func (in *inputOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&in.text, "text", "", "literal text to load")
	cmd.Flags().StringVar(&in.tree, "tree", "", "YAML file holding the map form of a rope")
	cmd.Flags().IntVar(&in.fragSize, "frag", 0, "fragment size for text input (0: configured default)")
}

// load creates a rope from exactly one source: literal text, a tree file
// or a text file given as the only argument.
func (in *inputOptions) load(ctx context.Context, conf *config, args []string) (rope.Node, error) {
	sources := len(args)
	if in.text != "" {
		sources++
	}
	if in.tree != "" {
		sources++
	}
	if sources != 1 {
		return nil, errors.New("need exactly one of --text, --tree or a file argument")
	}
	fragSize := in.fragSize
	if fragSize <= 0 {
		fragSize = conf.GetInt("textfile.fragsize")
	}
	switch {
	case in.text != "":
		return fromText(in.text, fragSize)
	case in.tree != "":
		return fromTreeFile(in.tree)
	}
	return textfile.LoadContext(ctx, args[0], int64(fragSize))
}

// fromText creates a balanced rope with leaves of fragSize characters.
func fromText(text string, fragSize int) (rope.Node, error) {
	if fragSize <= 0 {
		return rope.NewLeaf(text), nil
	}
	b := rope.NewBuilder()
	runes := []rune(text)
	for i := 0; i < len(runes); i += fragSize {
		if err := b.AppendString(string(runes[i:min(i+fragSize, len(runes))])); err != nil {
			return nil, err
		}
	}
	return b.Rope(), nil
}

func fromTreeFile(path string) (rope.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("tree %s: %w", path, err)
	}
	return rope.FromAny(tree)
}

// --- Output ----------------------------------------------------------------

const (
	formatOutline = "outline"
	formatMap     = "map"
	formatDot     = "dot"
	formatText    = "text"
)

// output writes node to w in the given format.
func output(node rope.Node, format string, conf *config, w io.Writer) error {
	switch format {
	case formatOutline:
		fconf := formatter.ConfigFromTerminal()
		if w != io.Writer(os.Stdout) {
			fconf.Color = false
			fconf.Context = uax11.LatinContext
		}
		if p := conf.GetInt("view.preview"); p > 0 {
			fconf.Preview = p
		}
		if conf.IsSet("view.color") {
			fconf.Color = conf.GetBool("view.color")
		}
		return formatter.NewConsole(fconf).Output(node, w)
	case formatMap:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rope.ToMap(node)); err != nil {
			return err
		}
		return enc.Close()
	case formatDot:
		return rope.ToDot(node, w)
	case formatText:
		_, err := fmt.Fprintln(w, rope.Text(node))
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}
