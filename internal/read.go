package internal

import (
	"strconv"
	"strings"
)

// Read converts a parse tree into a value. Number and symbol leaves become
// Numbers and Symbols; the root and parenthesized groups become ExprLists;
// brace-delimited groups become QuoteLists. Delimiter characters and regex
// markers are skipped. Read performs no evaluation.
func Read(n *Node) Value {
	switch {
	case strings.Contains(n.Tag, "number"):
		return readNumber(n.Contents)
	case strings.Contains(n.Tag, "symbol"):
		return Symbol(n.Contents)
	case n.Tag == rootTag, strings.Contains(n.Tag, "sexpr"):
		return ExprList(readChildren(n))
	case strings.Contains(n.Tag, "qexpr"):
		return QuoteList(readChildren(n))
	}
	return Errorf("Cannot read node tagged '%s'", n.Tag)
}

// readNumber converts a number literal, producing an Error if it is invalid
// or out of range.
func readNumber(s string) Value {
	x, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return NewError("Invalid number")
	}
	return Number(x)
}

// readChildren reads each child of n which is not a delimiter or marker.
func readChildren(n *Node) []Value {
	l := make([]Value, 0, len(n.Children))
	for _, c := range n.Children {
		switch c.Contents {
		case "(", ")", "{", "}":
			continue
		}
		if c.Tag == regexTag {
			continue
		}
		l = append(l, Read(c))
	}
	return l
}
