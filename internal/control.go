package internal

import (
	"fmt"
	"strings"
)

// initControl installs conditionals, equality, and output builtins.
func (vm *VM) initControl() {
	fns := map[string]Fn{
		"==":    ControlEqual,
		"!=":    ControlNotEqual,
		"if":    ControlIf,
		"error": ControlError,
		"print": ControlPrint,
	}
	vm.defineAll(fns)
}

// ControlIf is a builtin.
//
// if evaluates its second argument if the first is a non-zero Number and its
// third argument otherwise. Both branches must be Q-expressions, so the branch
// not taken is never evaluated:
//
//   lispy> if (> 2 1) {+ 1 1} {/ 1 0}
//   2
func ControlIf(vm *VM, env *Env, args ExprList) Value {
	if err := checkArgCount("if", args, 3); err != nil {
		return err
	}
	if err := checkArgType("if", args, 0, numberType); err != nil {
		return err
	}
	if err := checkArgType("if", args, 1, quoteType); err != nil {
		return err
	}
	if err := checkArgType("if", args, 2, quoteType); err != nil {
		return err
	}
	if args[0].(Number) != 0 {
		return vm.Eval(env, ExprList(args[1].(QuoteList)))
	}
	return vm.Eval(env, ExprList(args[2].(QuoteList)))
}

// ControlEqual is a builtin.
//
// == returns 1 if its two arguments have the same structure and 0 otherwise.
func ControlEqual(vm *VM, env *Env, args ExprList) Value {
	if err := checkArgCount("==", args, 2); err != nil {
		return err
	}
	return Bool(Equal(args[0], args[1]))
}

// ControlNotEqual is a builtin.
//
// != returns 0 if its two arguments have the same structure and 1 otherwise.
func ControlNotEqual(vm *VM, env *Env, args ExprList) Value {
	if err := checkArgCount("!=", args, 2); err != nil {
		return err
	}
	return Bool(!Equal(args[0], args[1]))
}

// ControlError is a builtin.
//
// error creates an error whose message is the contents of a Q-expression:
//
//   lispy> error {no such thing}
//   Error: no such thing
func ControlError(vm *VM, env *Env, args ExprList) Value {
	if err := checkArgCount("error", args, 1); err != nil {
		return err
	}
	if err := checkArgType("error", args, 0, quoteType); err != nil {
		return err
	}
	return NewError(joinValues(args[0].(QuoteList)))
}

// ControlPrint is a builtin.
//
// print writes its arguments, separated by spaces, and a newline to the VM's
// standard output.
func ControlPrint(vm *VM, env *Env, args ExprList) Value {
	if _, err := fmt.Fprintln(vm.Stdout, joinValues(args)); err != nil {
		return FromError(err)
	}
	return ExprList{}
}

func joinValues(l []Value) string {
	s := make([]string, len(l))
	for i, v := range l {
		s[i] = v.String()
	}
	return strings.Join(s, " ")
}
