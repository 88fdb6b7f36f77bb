package internal

import "strings"

// An ExprList is an evaluable list, or S-expression. Evaluating it applies its
// first element, which must be a function, to the rest of its elements.
type ExprList []Value

// A QuoteList is a literal list, or Q-expression. It evaluates to itself.
type QuoteList []Value

// TypeName returns "S-Expression".
func (ExprList) TypeName() string {
	return exprType
}

// String returns the elements separated by spaces and enclosed in parentheses.
func (l ExprList) String() string {
	return listString(l, '(', ')')
}

// Copy returns a deep copy of the list.
func (l ExprList) Copy() Value {
	return ExprList(copyElems(l))
}

func (ExprList) value() {}

// TypeName returns "Q-Expression".
func (QuoteList) TypeName() string {
	return quoteType
}

// String returns the elements separated by spaces and enclosed in braces.
func (l QuoteList) String() string {
	return listString(l, '{', '}')
}

// Copy returns a deep copy of the list.
func (l QuoteList) Copy() Value {
	return QuoteList(copyElems(l))
}

func (QuoteList) value() {}

func listString(l []Value, open, close byte) string {
	b := strings.Builder{}
	b.WriteByte(open)
	for i, v := range l {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(v.String())
	}
	b.WriteByte(close)
	return b.String()
}

// copyElems deep-copies each element of l into a new slice. The result is
// never nil, so copies of empty lists still print and compare as lists.
func copyElems(l []Value) []Value {
	m := make([]Value, len(l))
	for i, v := range l {
		m[i] = v.Copy()
	}
	return m
}

// initList installs list builtins.
func (vm *VM) initList() {
	fns := map[string]Fn{
		"cons": ListCons,
		"eval": ListEval,
		"head": ListHead,
		"init": ListInit,
		"join": ListJoin,
		"len":  ListLen,
		"list": ListList,
		"tail": ListTail,
	}
	vm.defineAll(fns)
}

// quoteArg checks that args holds exactly one non-empty QuoteList and returns
// it.
func quoteArg(name string, args ExprList) (QuoteList, *Error) {
	if err := checkArgCount(name, args, 1); err != nil {
		return nil, err
	}
	if err := checkArgType(name, args, 0, quoteType); err != nil {
		return nil, err
	}
	if err := checkNotEmpty(name, args, 0); err != nil {
		return nil, err
	}
	return args[0].(QuoteList), nil
}

// ListList is a builtin.
//
// list converts its arguments into a Q-expression.
func ListList(vm *VM, env *Env, args ExprList) Value {
	if args == nil {
		return QuoteList{}
	}
	return QuoteList(args)
}

// ListHead is a builtin.
//
// head returns a Q-expression containing only the first element of its
// argument:
//
//   lispy> head {1 2 3}
//   {1}
func ListHead(vm *VM, env *Env, args ExprList) Value {
	l, err := quoteArg("head", args)
	if err != nil {
		return err
	}
	return l[:1:1]
}

// ListTail is a builtin.
//
// tail returns its argument with the first element removed.
func ListTail(vm *VM, env *Env, args ExprList) Value {
	l, err := quoteArg("tail", args)
	if err != nil {
		return err
	}
	return l[1:]
}

// ListInit is a builtin.
//
// init returns its argument with the last element removed.
func ListInit(vm *VM, env *Env, args ExprList) Value {
	l, err := quoteArg("init", args)
	if err != nil {
		return err
	}
	return l[: len(l)-1 : len(l)-1]
}

// ListEval is a builtin.
//
// eval evaluates a Q-expression as if it were an S-expression:
//
//   lispy> eval {+ 1 2}
//   3
func ListEval(vm *VM, env *Env, args ExprList) Value {
	if err := checkArgCount("eval", args, 1); err != nil {
		return err
	}
	if err := checkArgType("eval", args, 0, quoteType); err != nil {
		return err
	}
	return vm.Eval(env, ExprList(args[0].(QuoteList)))
}

// ListJoin is a builtin.
//
// join concatenates its arguments, which must all be Q-expressions.
func ListJoin(vm *VM, env *Env, args ExprList) Value {
	if err := checkMinArgs("join", args, 1); err != nil {
		return err
	}
	if err := checkAllType("join", args, quoteType); err != nil {
		return err
	}
	n := 0
	for _, arg := range args {
		n += len(arg.(QuoteList))
	}
	r := make(QuoteList, 0, n)
	for _, arg := range args {
		r = append(r, arg.(QuoteList)...)
	}
	return r
}

// ListCons is a builtin.
//
// cons prepends its first argument to the Q-expression given as its second:
//
//   lispy> cons 1 {2 3}
//   {1 2 3}
func ListCons(vm *VM, env *Env, args ExprList) Value {
	if err := checkArgCount("cons", args, 2); err != nil {
		return err
	}
	if err := checkArgType("cons", args, 1, quoteType); err != nil {
		return err
	}
	l := args[1].(QuoteList)
	r := make(QuoteList, 0, len(l)+1)
	r = append(r, args[0])
	return append(r, l...)
}

// ListLen is a builtin.
//
// len returns the number of elements in a Q-expression.
func ListLen(vm *VM, env *Env, args ExprList) Value {
	if err := checkArgCount("len", args, 1); err != nil {
		return err
	}
	if err := checkArgType("len", args, 0, quoteType); err != nil {
		return err
	}
	return Number(len(args[0].(QuoteList)))
}
