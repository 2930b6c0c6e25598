package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/rope"
)

func TestConfig(t *testing.T) {
	name := filepath.Join(t.TempDir(), "ropetool.yaml")
	err := os.WriteFile(name, []byte(`
tracing:
  adapter: go
tracelevel:
  rope: Debug
textfile:
  fragsize: 128
view:
  color: true
`), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	conf, err := loadConfig(name)
	if err != nil {
		t.Fatal(err)
	}
	if conf.GetString("tracelevel.rope") != "Debug" {
		t.Errorf("expected trace level Debug, have %q", conf.GetString("tracelevel.rope"))
	}
	if conf.GetString("tracelevel.root") != "Error" {
		t.Errorf("expected default root trace level Error, have %q", conf.GetString("tracelevel.root"))
	}
	if conf.GetInt("textfile.fragsize") != 128 {
		t.Errorf("expected fragment size 128, have %d", conf.GetInt("textfile.fragsize"))
	}
	if !conf.GetBool("view.color") || conf.GetBool("tracelevel.rope") {
		t.Errorf("boolean values not read correctly")
	}
	conf.Set("tracelevel.rope", "Info")
	if conf.GetString("tracelevel.rope") != "Info" || conf.GetInt("textfile.fragsize") != 128 {
		t.Errorf("expected override of trace level to keep other values")
	}
	if conf.IsSet("no.such.key") || conf.GetInt("no.such.key") != 0 {
		t.Errorf("expected missing key to be unset")
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing configuration file")
	}
}

func TestConfigDefaults(t *testing.T) {
	conf, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if conf.GetString("tracing.adapter") != "go" || conf.GetInt("view.preview") != 24 {
		t.Errorf("unexpected defaults: adapter=%q preview=%d", conf.GetString("tracing.adapter"),
			conf.GetInt("view.preview"))
	}
	if conf.IsSet("view.color") || conf.GetBool("view.color") {
		t.Errorf("expected color to be unset by default")
	}
}

func TestParseOp(t *testing.T) {
	op, err := parseOp("5:a:b", true)
	if err != nil || !op.insert || op.start != 5 || op.text != "a:b" {
		t.Errorf("unexpected insert op %+v, err=%v", op, err)
	}
	op, err = parseOp("2:7", false)
	if err != nil || op.insert || op.start != 2 || op.end != 7 {
		t.Errorf("unexpected delete op %+v, err=%v", op, err)
	}
	for _, s := range []string{"5", "x:a", "2:y"} {
		if _, err := parseOp(s, s != "2:y"); err == nil {
			t.Errorf("expected error for %q", s)
		}
	}
}

func TestApplyEdits(t *testing.T) {
	node, err := fromText("Hello World", 2)
	if err != nil {
		t.Fatal(err)
	}
	ops := []editOp{
		{insert: true, start: 5, text: ","},
		{start: 0, end: 1},
		{insert: true, start: 0, text: "J"},
	}
	node, err = applyEdits(node, ops, true)
	if err != nil {
		t.Fatal(err)
	}
	if node.String() != "Jello, World" {
		t.Errorf("expected 'Jello, World', have %q", node.String())
	}
	if !node.IsBalanced() {
		t.Errorf("expected rebalanced rope")
	}
	_, err = applyEdits(node, []editOp{{start: 3, end: 99}}, false)
	if !errors.Is(err, rope.ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, have %v", err)
	}
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("ropetool %s: %v\n%s", strings.Join(args, " "), err, out.String())
	}
	return out.String()
}

func TestEditCommand(t *testing.T) {
	out := execute(t, "edit", "--text", "Hello World", "--frag", "3",
		"--delete", "5:6", "--insert", "5:, ", "--rebalance")
	if out != "Hello, World\n" {
		t.Errorf("expected 'Hello, World', have %q", out)
	}
}

func TestShowCommand(t *testing.T) {
	out := execute(t, "show", "--text", "abcdef", "--frag", "3", "--format", "map")
	for _, s := range []string{"kind: branch", "size: 6", "text: abc", "text: def"} {
		if !strings.Contains(out, s) {
			t.Errorf("expected map form to contain %q, have\n%s", s, out)
		}
	}
	tree := filepath.Join(t.TempDir(), "tree.yaml")
	if err := os.WriteFile(tree, []byte(out), 0o644); err != nil {
		t.Fatal(err)
	}
	if text := execute(t, "show", "--tree", tree, "--format", "text"); text != "abcdef\n" {
		t.Errorf("expected tree to read back as 'abcdef', have %q", text)
	}
	outline := execute(t, "show", "--text", "abcdef", "--frag", "3")
	if !strings.HasPrefix(outline, "branch size=6 weight=3 height=2") {
		t.Errorf("unexpected outline\n%s", outline)
	}
}

func TestStatsCommand(t *testing.T) {
	file := filepath.Join(t.TempDir(), "text.txt")
	if err := os.WriteFile(file, []byte("The quick brown fox\njumps over the lazy dog\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := execute(t, "stats", "--frag", "8", file)
	if !strings.Contains(out, "words:      9") || !strings.Contains(out, "balanced:   true") {
		t.Errorf("unexpected statistics\n%s", out)
	}
}

func TestHTMLCommand(t *testing.T) {
	file := filepath.Join(t.TempDir(), "page.html")
	if err := os.WriteFile(file, []byte(`<p>My <b>first</b> paragraph.</p>`), 0o644); err != nil {
		t.Fatal(err)
	}
	if out := execute(t, "html", file); out != "My first paragraph.\n" {
		t.Errorf("expected paragraph text, have %q", out)
	}
}
