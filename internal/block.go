package internal

import "strings"

// restMarker is the symbol in a formal parameter list which marks the
// following parameter as collecting all remaining arguments.
const restMarker = "&"

// errRestFormat is the message for parameter lists with a misplaced rest
// marker.
const errRestFormat = "Function format invalid: '&' not followed by a single symbol"

// A Param is a formal parameter of a closure.
type Param struct {
	// Name is the name to which the argument is bound.
	Name string
	// Rest indicates that the parameter binds a Q-expression of all arguments
	// not consumed by earlier parameters. Only the last parameter of a closure
	// may be a rest parameter.
	Rest bool
}

// A Closure is a user-defined function. Applying a closure to fewer arguments
// than it has parameters produces a new closure with the given arguments
// already bound.
type Closure struct {
	// Params are the parameters which have not yet been bound.
	Params []Param
	// Body is the expression evaluated once all parameters are bound.
	Body QuoteList
	// Env holds the closure's bound parameters. It has no parent of its own;
	// when the body is evaluated, the caller's environment serves as its
	// parent for that evaluation only. A nil Env is treated as empty.
	Env *Env
}

// NewClosure creates a closure with the given parameters and body and an
// empty environment.
func NewClosure(params []Param, body QuoteList) *Closure {
	return &Closure{
		Params: params,
		Body:   body,
		Env:    NewEnv(nil),
	}
}

// ParseParams converts a formal parameter list to Params. Every element of
// formals must be a Symbol, and the rest marker, if present, must be followed
// by exactly one symbol. A misplaced rest marker is therefore reported when
// the lambda is created rather than when it is applied.
func ParseParams(formals QuoteList) ([]Param, *Error) {
	params := make([]Param, 0, len(formals))
	for _, v := range formals {
		if _, ok := v.(Symbol); !ok {
			return nil, Errorf("Cannot define non-symbol. Got %s, Expected %s.", TypeName(v), symbolType)
		}
	}
	for i := 0; i < len(formals); i++ {
		sym := string(formals[i].(Symbol))
		if sym != restMarker {
			params = append(params, Param{Name: sym})
			continue
		}
		if i != len(formals)-2 || formals[i+1].(Symbol) == restMarker {
			return nil, NewError(errRestFormat)
		}
		params = append(params, Param{Name: string(formals[i+1].(Symbol)), Rest: true})
		break
	}
	return params, nil
}

// checkParams returns an error if any parameter but the last is a rest
// parameter.
func checkParams(params []Param) *Error {
	for i, p := range params {
		if (p.Rest && i != len(params)-1) || p.Name == "" {
			return NewError(errRestFormat)
		}
	}
	return nil
}

// TypeName returns "Function".
func (*Closure) TypeName() string {
	return functionType
}

// String returns the closure as a lambda expression which would create it,
// less its bound parameters.
func (c *Closure) String() string {
	b := strings.Builder{}
	b.WriteString(`(\ {`)
	for i, p := range c.Params {
		if i > 0 {
			b.WriteByte(' ')
		}
		if p.Rest {
			b.WriteString(restMarker + " ")
		}
		b.WriteString(p.Name)
	}
	b.WriteString("} ")
	b.WriteString(c.Body.String())
	b.WriteByte(')')
	return b.String()
}

// Copy returns a deep copy of the closure, including its environment.
func (c *Closure) Copy() Value {
	params := make([]Param, len(c.Params))
	copy(params, c.Params)
	env := NewEnv(nil)
	if c.Env != nil {
		env = c.Env.Copy()
	}
	return &Closure{
		Params: params,
		Body:   QuoteList(copyElems(c.Body)),
		Env:    env,
	}
}

func (*Closure) value() {}

// Apply calls a function with arguments that have already been evaluated.
// env is the environment of the call site.
func (vm *VM) Apply(env *Env, f Value, args ExprList) Value {
	switch f := f.(type) {
	case *Builtin:
		return f.Call(vm, env, args)
	case *Closure:
		// Bind into a copy so the closure value itself stays reusable.
		return f.Copy().(*Closure).call(vm, env, args)
	}
	return NewError("S-expression doesn't begin with a function")
}

// call binds args to the closure's parameters in its own environment. If all
// parameters are then bound, the result is the evaluated body; otherwise, it
// is the closure itself, now partially applied. c must be owned by the
// caller.
func (c *Closure) call(vm *VM, env *Env, args ExprList) Value {
	if err := checkParams(c.Params); err != nil {
		return err
	}
	given, total := len(args), len(c.Params)
	params := c.Params
	for len(args) > 0 {
		if len(params) == 0 {
			return Errorf("Function passed too many arguments: expected %d, got %d", total, given)
		}
		p := params[0]
		params = params[1:]
		if p.Rest {
			c.Env.Put(p.Name, QuoteList(args))
			args = nil
			break
		}
		c.Env.Put(p.Name, args[0])
		args = args[1:]
	}
	// A rest parameter may also bind no arguments at all.
	if len(params) > 0 && params[0].Rest {
		c.Env.Put(params[0].Name, QuoteList{})
		params = params[1:]
	}
	if len(params) > 0 {
		c.Params = params
		return c
	}
	return vm.Eval(c.Env.withParent(env), ExprList(c.Body))
}

// initBlock installs the lambda builtin.
func (vm *VM) initBlock() {
	vm.Root.Define(`\`, BlockLambda)
}

// BlockLambda is a builtin.
//
// \ creates a closure. The first argument is a Q-expression of parameter
// names, and the second is the body. For example, to create and call a
// closure which adds its arguments:
//
//   lispy> def {add} (\ {x y} {+ x y})
//   ()
//   lispy> add 1 2
//   3
//
// A parameter preceded by & collects any remaining arguments:
//
//   lispy> (\ {x & xs} {xs}) 1 2 3
//   {2 3}
func BlockLambda(vm *VM, env *Env, args ExprList) Value {
	if err := checkArgCount(`\`, args, 2); err != nil {
		return err
	}
	if err := checkAllType(`\`, args, quoteType); err != nil {
		return err
	}
	params, err := ParseParams(args[0].(QuoteList))
	if err != nil {
		return err
	}
	return NewClosure(params, args[1].(QuoteList))
}
