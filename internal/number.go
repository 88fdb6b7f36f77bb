package internal

import (
	"math"
	"strconv"
)

// Number is a signed integer value.
type Number int64

// TypeName returns "Number".
func (Number) TypeName() string {
	return numberType
}

// String returns the number in decimal.
func (n Number) String() string {
	return strconv.FormatInt(int64(n), 10)
}

// Copy returns n.
func (n Number) Copy() Value {
	return n
}

func (Number) value() {}

// Bool converts a bool to the Number 1 or 0.
func Bool(c bool) Number {
	if c {
		return 1
	}
	return 0
}

// initNumber installs arithmetic and comparison builtins.
func (vm *VM) initNumber() {
	fns := map[string]Fn{
		"+":  NumberAdd,
		"-":  NumberSub,
		"*":  NumberMul,
		"/":  NumberDiv,
		"%":  NumberMod,
		"^":  NumberPow,
		"<":  NumberLess,
		"<=": NumberLessOrEqual,
		">":  NumberGreater,
		">=": NumberGreaterOrEqual,
	}
	vm.defineAll(fns)
	// The first version of the language spelled its operators out.
	vm.alias("add", "+")
	vm.alias("sub", "-")
	vm.alias("mul", "*")
	vm.alias("div", "/")
}

// fold checks that every argument is a Number and then reduces them from left
// to right with op, starting from the first argument.
func fold(name string, args ExprList, op func(x, y Number) (Number, *Error)) Value {
	if err := checkMinArgs(name, args, 1); err != nil {
		return err
	}
	if err := checkAllType(name, args, numberType); err != nil {
		return err
	}
	x := args[0].(Number)
	for _, arg := range args[1:] {
		var err *Error
		x, err = op(x, arg.(Number))
		if err != nil {
			return err
		}
	}
	return x
}

// NumberAdd is a builtin.
//
// + adds its arguments. With no arguments, it returns 0.
func NumberAdd(vm *VM, env *Env, args ExprList) Value {
	if len(args) == 0 {
		return Number(0)
	}
	return fold("+", args, func(x, y Number) (Number, *Error) { return x + y, nil })
}

// NumberSub is a builtin.
//
// - subtracts each argument after the first from the first. With a single
// argument, it negates it instead:
//
//   lispy> - 5
//   -5
func NumberSub(vm *VM, env *Env, args ExprList) Value {
	if len(args) == 1 {
		if err := checkArgType("-", args, 0, numberType); err != nil {
			return err
		}
		return -args[0].(Number)
	}
	return fold("-", args, func(x, y Number) (Number, *Error) { return x - y, nil })
}

// NumberMul is a builtin.
//
// * multiplies its arguments. With no arguments, it returns 1.
func NumberMul(vm *VM, env *Env, args ExprList) Value {
	if len(args) == 0 {
		return Number(1)
	}
	return fold("*", args, func(x, y Number) (Number, *Error) { return x * y, nil })
}

// NumberDiv is a builtin.
//
// / divides the first argument by each following one, truncating toward zero.
func NumberDiv(vm *VM, env *Env, args ExprList) Value {
	return fold("/", args, func(x, y Number) (Number, *Error) {
		if y == 0 {
			return 0, NewError("Division by zero")
		}
		return x / y, nil
	})
}

// NumberMod is a builtin.
//
// % computes the remainder of truncated division. The result has the sign of
// the dividend.
func NumberMod(vm *VM, env *Env, args ExprList) Value {
	return fold("%", args, func(x, y Number) (Number, *Error) {
		if y == 0 {
			return 0, NewError("Division by zero")
		}
		return x % y, nil
	})
}

// NumberPow is a builtin.
//
// ^ raises the first argument to the power of each following one. The power
// is computed in floating point and truncated toward zero, so negative
// exponents generally produce 0.
func NumberPow(vm *VM, env *Env, args ExprList) Value {
	return fold("^", args, func(x, y Number) (Number, *Error) {
		r := math.Pow(float64(x), float64(y))
		if math.IsNaN(r) || r >= 0x1p63 || r < -0x1p63 {
			return 0, NewError("Integer overflow")
		}
		return Number(r), nil
	})
}

// compare checks that there are exactly two Number arguments and returns 1 if
// they satisfy pred and 0 otherwise.
func compare(name string, args ExprList, pred func(x, y Number) bool) Value {
	if err := checkArgCount(name, args, 2); err != nil {
		return err
	}
	if err := checkAllType(name, args, numberType); err != nil {
		return err
	}
	return Bool(pred(args[0].(Number), args[1].(Number)))
}

// NumberLess is a builtin.
//
// < returns 1 if the first argument is less than the second and 0 otherwise.
func NumberLess(vm *VM, env *Env, args ExprList) Value {
	return compare("<", args, func(x, y Number) bool { return x < y })
}

// NumberLessOrEqual is a builtin.
//
// <= returns 1 if the first argument is less than or equal to the second and
// 0 otherwise.
func NumberLessOrEqual(vm *VM, env *Env, args ExprList) Value {
	return compare("<=", args, func(x, y Number) bool { return x <= y })
}

// NumberGreater is a builtin.
//
// > returns 1 if the first argument is greater than the second and 0
// otherwise.
func NumberGreater(vm *VM, env *Env, args ExprList) Value {
	return compare(">", args, func(x, y Number) bool { return x > y })
}

// NumberGreaterOrEqual is a builtin.
//
// >= returns 1 if the first argument is greater than or equal to the second
// and 0 otherwise.
func NumberGreaterOrEqual(vm *VM, env *Env, args ExprList) Value {
	return compare(">=", args, func(x, y Number) bool { return x >= y })
}
