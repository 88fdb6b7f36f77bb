package internal

import (
	"fmt"
	"strings"
)

// Eval reduces a value to normal form in env. Symbols evaluate to their
// bindings, S-expressions are applied, and all other values evaluate to
// themselves.
//
// Eval consumes v: the elements of an S-expression are replaced in place by
// their results. Pass a copy if v must be kept.
func (vm *VM) Eval(env *Env, v Value) Value {
	switch v := v.(type) {
	case Symbol:
		return env.Get(string(v))
	case ExprList:
		return vm.evalExpr(env, v)
	}
	return v
}

// evalExpr evaluates an S-expression. Every element is evaluated first, from
// left to right; then the first error among them, if any, is the result.
// Otherwise, an empty expression evaluates to itself, a single element to
// that element, and anything longer to the application of its first element
// to the rest.
func (vm *VM) evalExpr(env *Env, l ExprList) Value {
	vm.trace(l)
	vm.depth++
	defer func() { vm.depth-- }()
	for i, v := range l {
		l[i] = vm.Eval(env, v)
	}
	for _, v := range l {
		if IsError(v) {
			return v
		}
	}
	switch len(l) {
	case 0:
		return ExprList{}
	case 1:
		return l[0]
	}
	if !IsFunction(l[0]) {
		return NewError("S-expression doesn't begin with a function")
	}
	return vm.Apply(env, l[0], l[1:])
}

// Evaluate evaluates a program, typically one read from a single unit of
// input, in the global environment.
func (vm *VM) Evaluate(program Value) Value {
	return vm.Eval(vm.Root, program)
}

// trace writes an S-expression about to be evaluated to the VM's trace
// writer, if it has one.
func (vm *VM) trace(l ExprList) {
	if vm.Trace == nil {
		return
	}
	fmt.Fprintf(vm.Trace, "%s%v\n", strings.Repeat("  ", vm.depth), l)
}
