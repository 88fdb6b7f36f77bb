package internal_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/unicode"

	"github.com/zephyrtronium/lispy"
	"github.com/zephyrtronium/lispy/internal"
	"github.com/zephyrtronium/lispy/testutils"
)

// TestNewVM tests that NewVM creates a usable VM.
func TestNewVM(t *testing.T) {
	// We can use testVM to test NewVM.
	vm := testutils.TestingVM()
	if vm == nil {
		t.Fatal("testVM is nil")
	}
	if vm.Root == nil {
		t.Fatal("testVM has no root environment")
	}
	if vm.Root.Parent() != nil {
		t.Error("root environment has a parent")
	}
	if vm.Stdout == nil {
		t.Error("testVM has no standard output")
	}
}

// builtins is the list of names bound in a new VM.
var builtins = []string{
	"cons", "eval", "head", "init", "join", "len", "list", "tail",
	"+", "-", "*", "/", "%", "^", "<", "<=", ">", ">=",
	"add", "sub", "mul", "div",
	"def", "=", `\`,
	"==", "!=", "if", "error", "print",
}

// TestRootNames tests that a new VM's global environment has exactly the
// builtins we expect.
func TestRootNames(t *testing.T) {
	vm := lispy.NewVM()
	testutils.CheckNames(t, vm.Root, builtins)
	testutils.CheckBuiltins(t, vm.Root, builtins)
}

// TestVMsIndependent tests that definitions in one VM are invisible to
// another.
func TestVMsIndependent(t *testing.T) {
	a, b := lispy.NewVM(), lispy.NewVM()
	a.MustDoString(`def {indep} 1`)
	if r := b.DoString(`indep`, "TestVMsIndependent"); !lispy.IsError(r) {
		t.Errorf("definition leaked between VMs: %v", r)
	}
}

// TestDoReader tests that programs evaluate one top-level expression at a
// time and stop at the first error.
func TestDoReader(t *testing.T) {
	cases := map[string]struct {
		src  string
		pass func(lispy.Value) bool
	}{
		"Empty":      {"", testutils.PassEqual(lispy.ExprList{})},
		"Last":       {"(def {rdA} 2)\n(+ rdA 1)", testutils.PassEqual(lispy.Number(3))},
		"Bare":       {"1 2 3", testutils.PassEqual(lispy.Number(3))},
		"Comments":   {"; header\n(* 6 7) ; answer\n", testutils.PassEqual(lispy.Number(42))},
		"Stop":       {"(def {rdB} 1) (/ 1 0) (def {rdC} 1)", testutils.PassError("Division by zero")},
		"ParseError": {"(+ 1 2", testutils.PassError("unclosed '('")},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			vm := lispy.NewVM()
			if r := vm.DoReader(strings.NewReader(c.src), name); !c.pass(r) {
				t.Errorf("%q gave wrong result %v", c.src, r)
			}
		})
	}
	t.Run("StopSkipsRest", func(t *testing.T) {
		vm := lispy.NewVM()
		vm.DoReader(strings.NewReader("(def {rdB} 1) (/ 1 0) (def {rdC} 1)"), "StopSkipsRest")
		if r := vm.DoString("rdB", "StopSkipsRest"); r != lispy.Number(1) {
			t.Errorf("expression before error gave %v", r)
		}
		if r := vm.DoString("rdC", "StopSkipsRest"); !lispy.IsError(r) {
			t.Errorf("expression after error gave %v", r)
		}
	})
}

// TestDoFile tests running source files in each supported encoding.
func TestDoFile(t *testing.T) {
	const src = "(def {fileX} 7)\n(+ fileX 1)\n"
	utf16le, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(src)
	if err != nil {
		t.Fatal(err)
	}
	utf16be, err := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder().String(src)
	if err != nil {
		t.Fatal(err)
	}
	cases := map[string]string{
		"UTF8":    src,
		"UTF8BOM": "\xef\xbb\xbf" + src,
		"UTF16LE": utf16le,
		"UTF16BE": utf16be,
	}
	dir := t.TempDir()
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".lspy")
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				t.Fatal(err)
			}
			vm := lispy.NewVM()
			if r := vm.DoFile(path); r != lispy.Number(8) {
				t.Errorf("%s gave %v", name, r)
			}
		})
	}
	t.Run("Missing", func(t *testing.T) {
		vm := lispy.NewVM()
		if r := vm.DoFile(filepath.Join(dir, "nonexistent.lspy")); !lispy.IsError(r) {
			t.Errorf("missing file gave %v", r)
		}
	})
}

// TestMustDoString tests that MustDoString panics exactly when the result is
// an error.
func TestMustDoString(t *testing.T) {
	vm := testutils.TestingVM()
	if r := vm.MustDoString(`+ 1 1`); r != lispy.Number(2) {
		t.Errorf("wrong result %v", r)
	}
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok {
			t.Fatalf("wrong panic %v", r)
		}
		if !strings.Contains(err.Error(), "Division by zero") {
			t.Errorf("wrong panic message %q", err)
		}
	}()
	vm.MustDoString(`/ 1 0`)
}

// TestRegisterAfterVM tests that registering an extension after creating a VM
// panics.
func TestRegisterAfterVM(t *testing.T) {
	testutils.TestingVM()
	defer func() {
		if recover() == nil {
			t.Error("no panic")
		}
	}()
	internal.Register(func(*lispy.VM) {})
}
