package internal

// Value is any datum the interpreter can hold. The set of Value types is
// closed: Number, Symbol, *Error, *Builtin, *Closure, ExprList, and QuoteList.
type Value interface {
	// TypeName returns the name of the value's type for use in diagnostics.
	TypeName() string
	// String returns the printed form of the value.
	String() string
	// Copy returns a deep copy of the value. Containers copy their elements,
	// and closures copy their environments.
	Copy() Value

	value()
}

// Type names reported by TypeName.
const (
	numberType   = "Number"
	symbolType   = "Symbol"
	errorType    = "Error"
	functionType = "Function"
	exprType     = "S-Expression"
	quoteType    = "Q-Expression"
)

// Symbol is an identifier naming a variable or operator. Symbols are resolved
// only during evaluation.
type Symbol string

// TypeName returns "Symbol".
func (Symbol) TypeName() string {
	return symbolType
}

// String returns the symbol's name verbatim.
func (s Symbol) String() string {
	return string(s)
}

// Copy returns s.
func (s Symbol) Copy() Value {
	return s
}

func (Symbol) value() {}

// Copy returns a deep copy of v, or nil if v is nil.
func Copy(v Value) Value {
	if v == nil {
		return nil
	}
	return v.Copy()
}

// TypeName returns the name of v's type, or "nil" if v is nil.
func TypeName(v Value) string {
	if v == nil {
		return "nil"
	}
	return v.TypeName()
}

// IsFunction returns whether v is a builtin or a closure.
func IsFunction(v Value) bool {
	switch v.(type) {
	case *Builtin, *Closure:
		return true
	}
	return false
}

// Equal reports whether a and b have the same structure. Numbers compare by
// value, symbols and errors by text, builtins by name, and closures by their
// parameters and bodies. Containers are equal if they are the same kind and
// their elements are pairwise equal.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Number:
		y, ok := b.(Number)
		return ok && x == y
	case Symbol:
		y, ok := b.(Symbol)
		return ok && x == y
	case *Error:
		y, ok := b.(*Error)
		return ok && x.Msg == y.Msg
	case *Builtin:
		y, ok := b.(*Builtin)
		return ok && x.Name == y.Name
	case *Closure:
		y, ok := b.(*Closure)
		if !ok || len(x.Params) != len(y.Params) {
			return false
		}
		for i, p := range x.Params {
			if p != y.Params[i] {
				return false
			}
		}
		return equalElems(x.Body, y.Body)
	case ExprList:
		y, ok := b.(ExprList)
		return ok && equalElems(x, y)
	case QuoteList:
		y, ok := b.(QuoteList)
		return ok && equalElems(x, y)
	}
	return false
}

func equalElems(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if !Equal(v, b[i]) {
			return false
		}
	}
	return true
}
