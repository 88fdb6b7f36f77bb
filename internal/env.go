package internal

import (
	"sort"
	"sync/atomic"

	"github.com/zephyrtronium/contains"
)

// Env is a frame of variable bindings with an optional parent. Lookups walk
// from a frame to its ancestors, so inner frames shadow outer ones. The root
// frame, which has no parent, holds the global bindings.
//
// Values stored in or loaded from an Env are always deep copies, so a binding
// never aliases any other value.
type Env struct {
	vars   map[string]Value
	parent *Env

	// id is the frame's unique ID.
	id uintptr
}

// NewEnv creates an empty frame with the given parent, which may be nil.
func NewEnv(parent *Env) *Env {
	return &Env{
		vars:   map[string]Value{},
		parent: parent,
		id:     nextEnv(),
	}
}

// Parent returns the frame's parent, or nil if it is a root.
func (e *Env) Parent() *Env {
	return e.parent
}

// UniqueID returns the frame's unique ID.
func (e *Env) UniqueID() uintptr {
	return e.id
}

// Get returns a copy of the value bound to name in the nearest frame that has
// such a binding. If no frame does, the result is an Error.
func (e *Env) Get(name string) Value {
	for f := e; f != nil; f = f.parent {
		if v, ok := f.vars[name]; ok {
			return v.Copy()
		}
	}
	return Errorf("Symbol '%s' doesn't exist", name)
}

// Lookup returns the value bound to name in this frame only, without copying
// it, and whether there was any such binding.
func (e *Env) Lookup(name string) (Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Put binds name to a copy of v in this frame.
func (e *Env) Put(name string, v Value) {
	e.vars[name] = v.Copy()
}

// Def binds name to a copy of v in the root frame.
func (e *Env) Def(name string, v Value) {
	e.Root().Put(name, v)
}

// Define binds name to a new builtin wrapping f in the root frame.
func (e *Env) Define(name string, f Fn) {
	e.Def(name, NewBuiltin(name, f))
}

// shortChain is the number of frames Root walks before it begins tracking
// visited frames. Chains built by evaluation are rarely deeper than this.
const shortChain = 16

// Root returns the frame at the end of the parent chain. Panics if the chain
// contains a cycle.
func (e *Env) Root() *Env {
	var set contains.Set
	for n := 0; e.parent != nil; n++ {
		if n >= shortChain && !set.Add(e.UniqueID()) {
			panic("lispy: cycle in environment chain")
		}
		e = e.parent
	}
	return e
}

// Names returns the sorted names bound in this frame.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of bindings in this frame.
func (e *Env) Len() int {
	return len(e.vars)
}

// Copy returns a new frame with copies of this frame's bindings and the same
// parent.
func (e *Env) Copy() *Env {
	f := &Env{
		vars:   make(map[string]Value, len(e.vars)),
		parent: e.parent,
		id:     nextEnv(),
	}
	for name, v := range e.vars {
		f.vars[name] = v.Copy()
	}
	return f
}

// withParent returns a frame sharing this frame's bindings but with a
// different parent. Bindings made through either frame are visible through
// both; neither frame's parent changes.
func (e *Env) withParent(parent *Env) *Env {
	return &Env{
		vars:   e.vars,
		parent: parent,
		id:     nextEnv(),
	}
}

// envcounter is the global counter for frame IDs. All accesses to this must
// be atomic.
var envcounter uintptr

// nextEnv increments the frame counter and returns its value as a unique ID
// for a new frame.
func nextEnv() uintptr {
	return atomic.AddUintptr(&envcounter, 1)
}

// initEnv installs builtins which bind variables.
func (vm *VM) initEnv() {
	fns := map[string]Fn{
		"def": EnvDef,
		"=":   EnvPut,
	}
	vm.defineAll(fns)
}

// bind checks the arguments to def or = and binds each symbol in the first
// argument to the corresponding following argument using put.
func bind(name string, args ExprList, put func(string, Value)) Value {
	if err := checkMinArgs(name, args, 1); err != nil {
		return err
	}
	if err := checkArgType(name, args, 0, quoteType); err != nil {
		return err
	}
	syms := args[0].(QuoteList)
	for _, sym := range syms {
		if _, ok := sym.(Symbol); !ok {
			return Errorf("Function '%s' cannot define non-symbol. Got %s, Expected %s.", name, TypeName(sym), symbolType)
		}
	}
	if len(syms) != len(args)-1 {
		return Errorf("Function '%s' passed incorrect number of values for symbols. Got %d, Expected %d.", name, len(args)-1, len(syms))
	}
	for i, sym := range syms {
		put(string(sym.(Symbol)), args[i+1])
	}
	return ExprList{}
}

// EnvDef is a builtin.
//
// def binds each symbol in a Q-expression to the corresponding following
// argument in the global environment:
//
//   lispy> def {x y} 1 2
//   ()
//   lispy> + x y
//   3
func EnvDef(vm *VM, env *Env, args ExprList) Value {
	return bind("def", args, env.Def)
}

// EnvPut is a builtin.
//
// = binds each symbol in a Q-expression to the corresponding following
// argument in the current local environment. Outside any function, this is
// the global environment.
func EnvPut(vm *VM, env *Env, args ExprList) Value {
	return bind("=", args, env.Put)
}
