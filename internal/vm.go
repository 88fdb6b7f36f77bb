package internal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Version is the interpreter version.
const Version = "0.1.0"

// VM is an interpreter for lispy programs. A VM is not safe for concurrent
// use, but separate VMs share no state.
type VM struct {
	// Root is the global environment. It holds every builtin and every
	// definition made with def.
	Root *Env

	// Stdout receives output from print.
	Stdout io.Writer
	// Trace, if not nil, receives each S-expression the VM evaluates,
	// indented by nesting depth.
	Trace io.Writer

	// depth is the current S-expression nesting depth, for tracing.
	depth int
}

// NewVM prepares a new VM with all builtins installed in its global
// environment, then runs all registered core extensions.
func NewVM() *VM {
	vm := NewBareVM()
	vm.finalInit()
	return vm
}

// NewBareVM prepares a new VM with all builtins installed in its global
// environment but without running core extensions.
func NewBareVM() *VM {
	haveVM = true

	vm := VM{
		Root:   NewEnv(nil),
		Stdout: os.Stdout,
	}
	vm.initList()
	vm.initNumber()
	vm.initEnv()
	vm.initBlock()
	vm.initControl()

	return &vm
}

// defineAll installs each function as a builtin under its key.
func (vm *VM) defineAll(fns map[string]Fn) {
	for name, f := range fns {
		vm.Root.Define(name, f)
	}
}

// alias installs the builtin named existing under another name as well.
// Panics if there is no such builtin.
func (vm *VM) alias(name, existing string) {
	v, ok := vm.Root.Lookup(existing)
	b, _ := v.(*Builtin)
	if !ok || b == nil {
		panic("lispy: no builtin named " + existing)
	}
	vm.Root.Define(name, b.Fn)
}

// finalInit runs core extensions once the VM is capable of executing code.
func (vm *VM) finalInit() {
	for _, ext := range coreExt {
		ext(vm)
	}
}

// ReadString parses source code and reads it into a single ExprList holding
// every top-level expression.
func (vm *VM) ReadString(src, label string) (ExprList, error) {
	return vm.read(strings.NewReader(src), label)
}

func (vm *VM) read(src io.Reader, label string) (ExprList, error) {
	n, err := Parse(src, label)
	if err != nil {
		return nil, err
	}
	return Read(n).(ExprList), nil
}

// DoString parses and evaluates a single unit of input, such as a line typed
// at a prompt. All of the top-level expressions together form one
// S-expression, so "+ 1 2" evaluates to 3. A parse error is returned as an
// Error value.
func (vm *VM) DoString(src, label string) Value {
	prog, err := vm.ReadString(src, label)
	if err != nil {
		return FromError(err)
	}
	return vm.Evaluate(prog)
}

// DoReader parses source code and evaluates each top-level expression in turn
// in the global environment. The result is that of the last expression, or
// the first Error encountered, after which no more expressions are evaluated.
func (vm *VM) DoReader(src io.Reader, label string) Value {
	prog, err := vm.read(src, label)
	if err != nil {
		return FromError(err)
	}
	var r Value = ExprList{}
	for _, expr := range prog {
		r = vm.Evaluate(expr)
		if IsError(r) {
			return r
		}
	}
	return r
}

// DoFile evaluates the file at path as with DoReader. The file may be UTF-8,
// or UTF-16 with a byte order mark.
func (vm *VM) DoFile(path string) Value {
	f, err := os.Open(path)
	if err != nil {
		return FromError(err)
	}
	defer f.Close()
	return vm.DoReader(SourceReader(f), path)
}

// MustDoString evaluates a unit of input as with DoString, panicking if the
// result is an Error.
func (vm *VM) MustDoString(src string) Value {
	r := vm.DoString(src, "MustDoString")
	if err, ok := r.(*Error); ok {
		panic(fmt.Errorf("lispy: %w", err))
	}
	return r
}

// SourceReader wraps r to decode source text into UTF-8. A leading byte
// order mark selects UTF-8 or UTF-16 and is removed; without one, the text is
// taken to be UTF-8 already.
func SourceReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// Register registers a core extension. Each function is called in the order it
// is registered; extensions that depend on other extensions need only import
// them. Register should be called from within init funcs. Panics if NewVM has
// been called.
func Register(f func(*VM)) {
	if haveVM {
		panic("lispy/internal: Register must be called before any VM is created")
	}
	coreExt = append(coreExt, f)
}

// coreExt is a list of core extensions that have been registered.
var coreExt = make([]func(*VM), 0, 2)

// haveVM becomes true once NewVM has been called.
var haveVM = false
