package internal

/*
This file is for converting lexer tokens into parse trees. The trees use the
same labeling scheme as mpc's abstract syntax trees: each node's tag lists the
grammar rules which produced it, separated by |, and the root is tagged >. The
reader in read.go depends only on that scheme, not on this parser.
*/

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnclosed is wrapped by parse errors caused by input ending inside a
// bracketed expression. Interactive readers can use it to ask for more input.
var ErrUnclosed = errors.New("unclosed")

// A Node is a node of a parse tree.
type Node struct {
	// Tag is the node's label, naming the grammar rules which matched it.
	Tag string
	// Contents is the literal text of a leaf node.
	Contents string
	// Children are the ordered child nodes of an internal node.
	Children []*Node

	// Line and Col are the one-based line and column numbers at which the
	// node begins.
	Line, Col int
}

// Node tags produced by Parse.
const (
	rootTag   = ">"
	numberTag = "expr|number|regex"
	symbolTag = "expr|symbol|regex"
	sexprTag  = "expr|sexpr|>"
	qexprTag  = "expr|qexpr|>"
	charTag   = "char"
	regexTag  = "regex"
)

// Parse converts source code into a parse tree. The root node contains every
// top-level expression between two regex nodes which mark the start and end
// of input. label names the source in errors.
func Parse(source io.Reader, label string) (*Node, error) {
	src := bufio.NewReader(source)
	tokens := make(chan token)
	go lex(src, tokens)
	defer func() {
		// Drain the lexer so it can exit if parsing stopped early.
		for range tokens {
		}
	}()
	root := &Node{Tag: rootTag, Line: 1, Col: 1}
	root.Children = append(root.Children, &Node{Tag: regexTag, Line: 1, Col: 1})
	tok, err := parseRecurse(root, tokens, label)
	if err != nil {
		return nil, err
	}
	if tok.Kind == closeToken {
		return nil, fmt.Errorf("%s:%d:%d: unexpected '%s'", label, tok.Line, tok.Col, tok.Value)
	}
	root.Children = append(root.Children, &Node{Tag: regexTag, Line: tok.Line, Col: tok.Col})
	return root, nil
}

// parseRecurse appends nodes for tokens to parent until reaching a close
// token or the end of input. It returns the close token, or a zero token with
// the position of the end of input.
func parseRecurse(parent *Node, tokens chan token, label string) (tok token, err error) {
	line, col := 1, 1
	for tok = range tokens {
		line, col = tok.Line, tok.Col+len(tok.Value)
		switch tok.Kind {
		case badToken:
			return tok, fmt.Errorf("%s:%d:%d: %w", label, tok.Line, tok.Col, tok.Err)
		case numberToken:
			parent.Children = append(parent.Children, &Node{Tag: numberTag, Contents: tok.Value, Line: tok.Line, Col: tok.Col})
		case symbolToken:
			parent.Children = append(parent.Children, &Node{Tag: symbolTag, Contents: tok.Value, Line: tok.Line, Col: tok.Col})
		case openToken:
			n := &Node{Tag: sexprTag, Line: tok.Line, Col: tok.Col}
			want := ")"
			if tok.Value == "{" {
				n.Tag = qexprTag
				want = "}"
			}
			n.Children = append(n.Children, &Node{Tag: charTag, Contents: tok.Value, Line: tok.Line, Col: tok.Col})
			var end token
			end, err = parseRecurse(n, tokens, label)
			if err != nil {
				return end, err
			}
			// I care about matching brackets, even though mpc would report
			// the same thing less kindly.
			switch end.Kind {
			case closeToken:
				if end.Value != want {
					return end, fmt.Errorf("%s:%d:%d: expected '%s', got '%s'", label, end.Line, end.Col, want, end.Value)
				}
			default:
				return end, fmt.Errorf("%s:%d:%d: %w '%s' opened at %d:%d", label, end.Line, end.Col, ErrUnclosed, tok.Value, tok.Line, tok.Col)
			}
			n.Children = append(n.Children, &Node{Tag: charTag, Contents: end.Value, Line: end.Line, Col: end.Col})
			parent.Children = append(parent.Children, n)
			line, col = end.Line, end.Col+1
		case closeToken:
			return tok, nil
		case commentToken:
			// do nothing
		}
	}
	return token{Line: line, Col: col}, nil
}

// String returns an indented rendering of the tree, one node per line, in the
// style of mpc_ast_print.
func (n *Node) String() string {
	b := strings.Builder{}
	n.stringRecurse(&b, 0)
	return b.String()
}

func (n *Node) stringRecurse(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Tag)
	if n.Contents != "" {
		fmt.Fprintf(b, ":%d:%d '%s'", n.Line, n.Col, n.Contents)
	}
	b.WriteByte('\n')
	for _, c := range n.Children {
		c.stringRecurse(b, depth+1)
	}
}
