package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/rope"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for console output.
type Config struct {
	Preview int            // maximum display width of leaf previews, in ‘en’s
	Indent  string         // indentation per tree level
	Color   bool           // use colors for node kinds
	Context *uax11.Context // context for East Asian widths; nil means Latin
}

// ConfigFromTerminal is a simple helper for creating a Config for stdout.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the preview width accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{Indent: "  ", Preview: 24}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Color = true
		if w, _, err := term.GetSize(fd); err == nil {
			if w > 80 {
				config.Preview = w / 2
			} else if w > 40 {
				config.Preview = w - 40
			} else {
				config.Preview = 10
			}
		}
	}
	config.Context = uax11.ContextFromEnvironment()
	tracer().P("format", "console").Debugf("setting preview width to %d en", config.Preview)
	return config
}

// Console is a type for outputting the tree structure of ropes to a console
// with a fixed width font.
type Console struct {
	config *Config
	colors map[string]*color.Color
}

var setupGraphemes sync.Once

// NewConsole creates a console format. If config is nil, a config will be
// created from the properties of stdout.
func NewConsole(config *Config) *Console {
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	if config == nil {
		config = ConfigFromTerminal()
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	if config.Preview <= 0 {
		config.Preview = 24
	}
	return &Console{
		config: config,
		colors: makeDefaultPalette(),
	}
}

const (
	branchStyle = "branch"
	leafStyle   = "leaf"
	absentStyle = "absent"
)

func makeDefaultPalette() map[string]*color.Color {
	palette := map[string]*color.Color{
		branchStyle: color.New(color.FgBlue),
		leafStyle:   color.New(color.FgGreen),
		absentStyle: color.New(color.FgRed),
	}
	return palette
}

// Print outputs the tree structure of node to stdout.
func (c *Console) Print(node rope.Node) error {
	return c.Output(node, os.Stdout)
}

// Output writes the tree structure of node to w.
func (c *Console) Output(node rope.Node, w io.Writer) error {
	return c.outline(node, 0, 0, w)
}

func (c *Console) outline(node rope.Node, pos int, depth int, w io.Writer) error {
	indent := strings.Repeat(c.config.Indent, depth)
	var err error
	switch n := node.(type) {
	case nil:
		err = c.styledLine(w, absentStyle, indent, "∅")
	case *rope.Leaf:
		err = c.styledLine(w, leafStyle, indent, fmt.Sprintf("leaf %d @%d “%s”", n.Size(), pos,
			c.Truncate(n.String())))
	case *rope.Branch:
		s := fmt.Sprintf("branch size=%d weight=%d height=%d", n.Size(), n.Weight(), n.Height())
		if !n.IsBalanced() {
			s += " unbalanced"
		}
		if err = c.styledLine(w, branchStyle, indent, s); err != nil {
			return err
		}
		if err = c.outline(n.Left(), pos, depth+1, w); err != nil {
			return err
		}
		err = c.outline(n.Right(), pos+n.Weight(), depth+1, w)
	default:
		panic(fmt.Sprintf("formatter: unknown node type %T", node))
	}
	return err
}

func (c *Console) styledLine(w io.Writer, style string, indent string, s string) error {
	if _, err := io.WriteString(w, indent); err != nil {
		return err
	}
	if col, ok := c.colors[style]; ok && c.config.Color {
		if _, err := col.Fprint(w, s); err != nil {
			return err
		}
	} else if _, err := io.WriteString(w, s); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Truncate shortens s to fit into the preview width of the console, measured
// in fixed width positions. Control characters are made visible and a
// truncated text is terminated by an ellipsis.
func (c *Console) Truncate(s string) string {
	s = visible(s)
	if width(s, c.config.Context) <= c.config.Preview {
		return s
	}
	// find the longest prefix which leaves room for the ellipsis
	cut, n := 0, 0
	for i := range s {
		if i > 0 && width(s[:i], c.config.Context) > c.config.Preview-1 {
			break
		}
		cut = i
		n++
		if n > 4*c.config.Preview {
			break
		}
	}
	return s[:cut] + "…"
}

func width(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

var controlReplacer = strings.NewReplacer("\n", "⏎", "\r", "␍", "\t", "⇥")

func visible(s string) string {
	s = controlReplacer.Replace(s)
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "�")
	}
	return s
}
