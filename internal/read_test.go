package internal_test

import (
	"strings"
	"testing"

	"github.com/zephyrtronium/lispy"
)

// TestRead tests that parse trees become the values we expect, without
// evaluation.
func TestRead(t *testing.T) {
	cases := map[string]struct {
		src  string
		want lispy.Value
	}{
		"Empty":    {"", lispy.ExprList{}},
		"Number":   {"42", lispy.ExprList{lispy.Number(42)}},
		"Negative": {"-42", lispy.ExprList{lispy.Number(-42)}},
		"Symbol":   {"abc", lispy.ExprList{lispy.Symbol("abc")}},
		"Line": {"+ 1 2", lispy.ExprList{
			lispy.Symbol("+"), lispy.Number(1), lispy.Number(2),
		}},
		"Nested": {"{1 (2 3)} ()", lispy.ExprList{
			lispy.QuoteList{lispy.Number(1), lispy.ExprList{lispy.Number(2), lispy.Number(3)}},
			lispy.ExprList{},
		}},
		"Lambda": {`\ {x} {x}`, lispy.ExprList{
			lispy.Symbol(`\`), lispy.QuoteList{lispy.Symbol("x")}, lispy.QuoteList{lispy.Symbol("x")},
		}},
		"Max": {"9223372036854775807", lispy.ExprList{lispy.Number(1<<63 - 1)}},
		"Min": {"-9223372036854775808", lispy.ExprList{lispy.Number(-1 << 63)}},
		"Overflow": {"9223372036854775808", lispy.ExprList{
			lispy.NewError("Invalid number"),
		}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			n, err := lispy.Parse(strings.NewReader(c.src), name)
			if err != nil {
				t.Fatal(err)
			}
			if r := lispy.Read(n); !lispy.Equal(r, c.want) {
				t.Errorf("%q read as %v, want %v", c.src, r, c.want)
			}
		})
	}
}

// TestReadUnknown tests that nodes with unrecognized tags read as errors.
func TestReadUnknown(t *testing.T) {
	r := lispy.Read(&lispy.Node{Tag: "string", Contents: `"x"`})
	if !lispy.IsError(r) {
		t.Errorf("unknown node read as %v", r)
	}
}

// TestReadForeignTree tests that any tree using the same labels reads the
// same way, regardless of which parser built it.
func TestReadForeignTree(t *testing.T) {
	n := &lispy.Node{
		Tag: ">",
		Children: []*lispy.Node{
			{Tag: "regex"},
			{Tag: "expr|qexpr|>", Children: []*lispy.Node{
				{Tag: "char", Contents: "{"},
				{Tag: "expr|number|regex", Contents: "7"},
				{Tag: "expr|symbol|regex", Contents: "x"},
				{Tag: "char", Contents: "}"},
			}},
			{Tag: "regex"},
		},
	}
	want := lispy.ExprList{lispy.QuoteList{lispy.Number(7), lispy.Symbol("x")}}
	if r := lispy.Read(n); !lispy.Equal(r, want) {
		t.Errorf("read %v, want %v", r, want)
	}
}

// TestReadAllNumbers tests that numeric literals evaluate to themselves.
func TestReadAllNumbers(t *testing.T) {
	vm := lispy.NewVM()
	for _, n := range []lispy.Number{0, 1, -1, 7, 100, -2048, 1<<63 - 1, -1 << 63} {
		if r := vm.DoString(n.String(), "TestReadAllNumbers"); r != n {
			t.Errorf("%d evaluated to %v", n, r)
		}
	}
}
