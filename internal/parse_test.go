package internal_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/zephyrtronium/lispy"
)

// TestParseTags tests that parse trees are labeled the way the reader
// expects.
func TestParseTags(t *testing.T) {
	n, err := lispy.Parse(strings.NewReader("+ 1 (a {b})"), "TestParseTags")
	if err != nil {
		t.Fatal(err)
	}
	if n.Tag != ">" {
		t.Errorf("root tagged %q", n.Tag)
	}
	want := []string{"regex", "expr|symbol|regex", "expr|number|regex", "expr|sexpr|>", "regex"}
	if len(n.Children) != len(want) {
		t.Fatalf("root has %d children, not %d:\n%s", len(n.Children), len(want), n)
	}
	for i, c := range n.Children {
		if c.Tag != want[i] {
			t.Errorf("child %d tagged %q, not %q", i, c.Tag, want[i])
		}
	}
	sexpr := n.Children[3]
	want = []string{"char", "expr|symbol|regex", "expr|qexpr|>", "char"}
	if len(sexpr.Children) != len(want) {
		t.Fatalf("sexpr has %d children, not %d:\n%s", len(sexpr.Children), len(want), n)
	}
	for i, c := range sexpr.Children {
		if c.Tag != want[i] {
			t.Errorf("sexpr child %d tagged %q, not %q", i, c.Tag, want[i])
		}
	}
	if sexpr.Children[0].Contents != "(" || sexpr.Children[3].Contents != ")" {
		t.Errorf("sexpr delimited by %q and %q", sexpr.Children[0].Contents, sexpr.Children[3].Contents)
	}
	if q := sexpr.Children[2]; q.Children[1].Contents != "b" {
		t.Errorf("qexpr contains %q", q.Children[1].Contents)
	}
}

// TestParseComments tests that comments do not appear in parse trees.
func TestParseComments(t *testing.T) {
	n, err := lispy.Parse(strings.NewReader("1 ; one\n; nothing"), "TestParseComments")
	if err != nil {
		t.Fatal(err)
	}
	if len(n.Children) != 3 {
		t.Errorf("root has %d children:\n%s", len(n.Children), n)
	}
}

// TestParseErrors tests that malformed sources produce positioned errors.
func TestParseErrors(t *testing.T) {
	cases := map[string]struct {
		src  string
		want string
	}{
		"StrayClose":    {"1 )", "x:1:3: unexpected ')'"},
		"StrayBrace":    {"}", "x:1:1: unexpected '}'"},
		"Unclosed":      {"(1 2", "unclosed '(' opened at 1:1"},
		"UnclosedQuote": {"1\n {2", "unclosed '{' opened at 2:2"},
		"Mismatch":      {"(1}", "x:1:3: expected ')', got '}'"},
		"MismatchQuote": {"{1)", "expected '}', got ')'"},
		"BadChar":       {"1 #", "x:1:3: lexer encountered invalid character '#'"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			n, err := lispy.Parse(strings.NewReader(c.src), "x")
			if err == nil {
				t.Fatalf("%q parsed without error:\n%s", c.src, n)
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Errorf("%q gave error %q, want %q", c.src, err, c.want)
			}
		})
	}
}

// TestNodeString tests the indented rendering of parse trees.
func TestNodeString(t *testing.T) {
	n, err := lispy.Parse(strings.NewReader("(x)"), "TestNodeString")
	if err != nil {
		t.Fatal(err)
	}
	want := ">\n" +
		"  regex\n" +
		"  expr|sexpr|>\n" +
		"    char:1:1 '('\n" +
		"    expr|symbol|regex:1:2 'x'\n" +
		"    char:1:3 ')'\n" +
		"  regex\n"
	if got := n.String(); got != want {
		t.Errorf("wrong rendering: got\n%s\nwant\n%s", got, want)
	}
}

// TestParseUnclosed tests that only incomplete input wraps ErrUnclosed.
func TestParseUnclosed(t *testing.T) {
	cases := map[string]struct {
		src  string
		want bool
	}{
		"Open":     {"(+ 1", true},
		"Nested":   {"{(1 2)", true},
		"Complete": {"(+ 1 2)", false},
		"Stray":    {"1)", false},
		"Mismatch": {"(1}", false},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := lispy.Parse(strings.NewReader(c.src), name)
			if got := errors.Is(err, lispy.ErrUnclosed); got != c.want {
				t.Errorf("%q gave %v", c.src, err)
			}
		})
	}
}
