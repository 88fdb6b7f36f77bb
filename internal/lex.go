package internal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// A token is a single lexical element.
type token struct {
	Kind  tokenKind
	Value string
	Err   error

	Line, Col int
}

type tokenKind int

const (
	badToken tokenKind = iota

	numberToken  // -?[0-9]+
	symbolToken  // identifier or operator
	openToken    // ( or {
	closeToken   // ) or }
	commentToken // ; to end of line
)

// symbolChars are the non-alphanumeric characters which may appear in a
// symbol.
const symbolChars = `_+-*/\=<>!&%^`

// spaceChars are the characters which separate tokens.
const spaceChars = " \t\r\n\f\v"

// lexFn is a lexer state function. Each lexFn lexes a token, sends it on the
// supplied channel, and returns the next lexFn to use.
type lexFn func(src *bufio.Reader, tokens chan<- token, line, col int) (lexFn, int, int)

// lex converts a source into a stream of tokens.
func lex(src *bufio.Reader, tokens chan<- token) {
	state := eatSpace
	line, col := 1, 1
	for state != nil {
		state, line, col = state(src, tokens, line, col)
	}
	close(tokens)
}

// accept appends the next run of characters in src which satisfy the predicate
// to b. Returns b after appending, the first rune which did not satisfy the
// predicate, and any error that occurred. If there was no such error, the
// last rune is unread.
func accept(src *bufio.Reader, predicate func(rune) bool, b []byte) ([]byte, rune, error) {
	r, _, err := src.ReadRune()
	for {
		if err != nil {
			return b, r, err
		}
		if !predicate(r) {
			break
		}
		b = append(b, string(r)...)
		r, _, err = src.ReadRune()
	}
	src.UnreadRune()
	return b, r, nil
}

// lexsend is a shortcut for sending a token with error checking. It returns
// eatSpace as the default lexing function.
func lexsend(err error, tokens chan<- token, good token) lexFn {
	if err != nil && err != io.EOF {
		good.Kind = badToken
		good.Err = err
	}
	tokens <- good
	if err != nil {
		return nil
	}
	return eatSpace
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isSymbolRune(r rune) bool {
	return 'a' <= r && r <= 'z' ||
		'A' <= r && r <= 'Z' ||
		isDigit(r) ||
		strings.ContainsRune(symbolChars, r)
}

// eatSpace consumes space and decides the next lexFn to use.
func eatSpace(src *bufio.Reader, tokens chan<- token, line, col int) (lexFn, int, int) {
	var r rune
	var err error
	for {
		r, _, err = src.ReadRune()
		if err != nil {
			if err != io.EOF {
				tokens <- token{
					Kind:  badToken,
					Value: string(r),
					Err:   err,
					Line:  line,
					Col:   col,
				}
			}
			return nil, line, col
		}
		if !strings.ContainsRune(spaceChars, r) {
			break
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	src.UnreadRune()
	switch {
	case isDigit(r):
		return lexNumber, line, col
	case r == '-':
		// A minus sign is part of a number if a digit follows it.
		peek, _ := src.Peek(2)
		if len(peek) > 1 && isDigit(rune(peek[1])) {
			return lexNumber, line, col
		}
		return lexSymbol, line, col
	case isSymbolRune(r):
		return lexSymbol, line, col
	case r == '(', r == '{':
		src.ReadRune()
		tokens <- token{
			Kind:  openToken,
			Value: string(r),
			Line:  line,
			Col:   col,
		}
		return eatSpace, line, col + 1
	case r == ')', r == '}':
		src.ReadRune()
		tokens <- token{
			Kind:  closeToken,
			Value: string(r),
			Line:  line,
			Col:   col,
		}
		return eatSpace, line, col + 1
	case r == ';':
		return lexComment, line, col
	}
	src.ReadRune()
	tokens <- token{
		Kind:  badToken,
		Value: string(r),
		Err:   fmt.Errorf("lexer encountered invalid character %q", r),
		Line:  line,
		Col:   col,
	}
	return nil, line, col
}

// lexNumber lexes a number, which is an optional minus sign followed by
// decimal digits. The number ends at the first non-digit, even if that
// character could continue a symbol.
func lexNumber(src *bufio.Reader, tokens chan<- token, line, col int) (lexFn, int, int) {
	var b []byte
	if r, _, _ := src.ReadRune(); r == '-' {
		b = append(b, '-')
	} else {
		src.UnreadRune()
	}
	b, _, err := accept(src, isDigit, b)
	ncol := col + len(b)
	return lexsend(err, tokens, token{Kind: numberToken, Value: string(b), Line: line, Col: col}), line, ncol
}

// lexSymbol lexes a symbol, which consists of a-z, A-Z, 0-9, and
// _+-*/\=<>!&%^.
func lexSymbol(src *bufio.Reader, tokens chan<- token, line, col int) (lexFn, int, int) {
	b, _, err := accept(src, isSymbolRune, nil)
	ncol := col + len(b)
	return lexsend(err, tokens, token{Kind: symbolToken, Value: string(b), Line: line, Col: col}), line, ncol
}

// lexComment lexes a ; comment, which continues to the end of the line.
func lexComment(src *bufio.Reader, tokens chan<- token, line, col int) (lexFn, int, int) {
	b, _, err := accept(src, func(r rune) bool { return r != '\n' }, nil)
	ncol := col + len(b)
	return lexsend(err, tokens, token{Kind: commentToken, Value: string(b), Line: line, Col: col}), line, ncol
}
