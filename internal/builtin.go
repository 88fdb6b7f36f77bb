package internal

// An Fn is a statically compiled function which can be executed in a VM. The
// arguments have already been evaluated, and the function owns them. It
// returns exactly one value, which is an *Error if any precondition fails.
type Fn func(vm *VM, env *Env, args ExprList) Value

// A Builtin is a function value wrapping a compiled Fn.
type Builtin struct {
	// Name is the name under which the builtin was registered. It identifies
	// the builtin in diagnostics and comparisons.
	Name string
	// Fn is the wrapped function.
	Fn Fn
}

// NewBuiltin creates a new builtin wrapping f.
func NewBuiltin(name string, f Fn) *Builtin {
	return &Builtin{Name: name, Fn: f}
}

// TypeName returns "Function".
func (*Builtin) TypeName() string {
	return functionType
}

// String returns an opaque marker.
func (*Builtin) String() string {
	return "<builtin>"
}

// Copy returns a new Builtin with the same name and function.
func (b *Builtin) Copy() Value {
	return &Builtin{Name: b.Name, Fn: b.Fn}
}

func (*Builtin) value() {}

// Call invokes the builtin.
func (b *Builtin) Call(vm *VM, env *Env, args ExprList) Value {
	return b.Fn(vm, env, args)
}

// checkArgCount returns an error if args does not have exactly n elements.
func checkArgCount(name string, args ExprList, n int) *Error {
	if len(args) != n {
		return Errorf("Function '%s' passed incorrect number of arguments. Got %d, Expected %d.", name, len(args), n)
	}
	return nil
}

// checkMinArgs returns an error if args has fewer than n elements.
func checkMinArgs(name string, args ExprList, n int) *Error {
	if len(args) < n {
		return Errorf("Function '%s' passed too few arguments. Got %d, Expected at least %d.", name, len(args), n)
	}
	return nil
}

// checkArgType returns an error if the argument at position i does not have
// the type named want.
func checkArgType(name string, args ExprList, i int, want string) *Error {
	if got := TypeName(args[i]); got != want {
		return Errorf("Function '%s' passed incorrect type for argument %d. Got %s, Expected %s.", name, i, got, want)
	}
	return nil
}

// checkAllType returns an error if any argument does not have the type named
// want.
func checkAllType(name string, args ExprList, want string) *Error {
	for i := range args {
		if err := checkArgType(name, args, i, want); err != nil {
			return err
		}
	}
	return nil
}

// checkNotEmpty returns an error if the argument at position i is an empty
// list.
func checkNotEmpty(name string, args ExprList, i int) *Error {
	switch l := args[i].(type) {
	case QuoteList:
		if len(l) == 0 {
			return Errorf("Function '%s' passed {} for argument %d.", name, i)
		}
	case ExprList:
		if len(l) == 0 {
			return Errorf("Function '%s' passed () for argument %d.", name, i)
		}
	}
	return nil
}
