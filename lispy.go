package lispy

import (
	"io"

	"github.com/zephyrtronium/lispy/internal"
)

// VM is an interpreter for lispy programs.
type VM = internal.VM

// Value is any datum the interpreter can hold. The set of Value types is
// closed: Number, Symbol, *Error, *Builtin, *Closure, ExprList, and QuoteList.
type Value = internal.Value

// Number is a signed integer value.
type Number = internal.Number

// Symbol is an identifier naming a variable or operator.
type Symbol = internal.Symbol

// An Error is a first-class failure value.
type Error = internal.Error

// A Builtin is a function value wrapping a compiled Fn.
type Builtin = internal.Builtin

// An Fn is a statically compiled function which can be executed in a VM.
type Fn = internal.Fn

// A Closure is a user-defined function.
type Closure = internal.Closure

// A Param is a formal parameter of a closure.
type Param = internal.Param

// An ExprList is an evaluable list, or S-expression.
type ExprList = internal.ExprList

// A QuoteList is a literal list, or Q-expression.
type QuoteList = internal.QuoteList

// Env is a frame of variable bindings with an optional parent.
type Env = internal.Env

// A Node is a node of a parse tree.
type Node = internal.Node

// Version is the interpreter version.
const Version = internal.Version

// ErrUnclosed is wrapped by parse errors caused by input ending inside a
// bracketed expression.
var ErrUnclosed = internal.ErrUnclosed

// NewVM prepares a new VM to interpret lispy code.
func NewVM() *VM {
	return internal.NewVM()
}

// NewBareVM prepares a new VM with builtins but without core extensions such
// as the prelude.
func NewBareVM() *VM {
	return internal.NewBareVM()
}

// NewEnv creates an empty environment frame with the given parent, which may
// be nil.
func NewEnv(parent *Env) *Env {
	return internal.NewEnv(parent)
}

// NewError creates a new Error with the given message.
func NewError(msg string) *Error {
	return internal.NewError(msg)
}

// Errorf creates a new Error with the given formatted message.
func Errorf(format string, args ...interface{}) *Error {
	return internal.Errorf(format, args...)
}

// NewBuiltin creates a new builtin wrapping f.
func NewBuiltin(name string, f Fn) *Builtin {
	return internal.NewBuiltin(name, f)
}

// Parse converts source code into a parse tree.
func Parse(src io.Reader, label string) (*Node, error) {
	return internal.Parse(src, label)
}

// Read converts a parse tree into a value without evaluating it.
func Read(n *Node) Value {
	return internal.Read(n)
}

// Equal reports whether a and b have the same structure.
func Equal(a, b Value) bool {
	return internal.Equal(a, b)
}

// IsError returns whether v is an Error value.
func IsError(v Value) bool {
	return internal.IsError(v)
}
