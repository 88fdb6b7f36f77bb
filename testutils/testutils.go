// Package testutils provides utilities for testing lispy code in Go.
package testutils

import (
	"strings"
	"sync"
	"testing"

	"github.com/zephyrtronium/lispy"
)

// testVM is the VM used for all tests.
var testVM *lispy.VM

var testVMInit sync.Once

// TestingVM returns a VM for testing lispy. The VM is shared by all tests that
// use this package.
func TestingVM() *lispy.VM {
	testVMInit.Do(ResetTestingVM)
	return testVM
}

// ResetTestingVM reinitializes the VM returned by TestingVM. It is not safe to
// call this in parallel tests.
func ResetTestingVM() {
	testVM = lispy.NewVM()
}

// A SourceTestCase is a test case containing lispy source code and a
// predicate to check the result.
type SourceTestCase struct {
	// Source is the lispy source code to execute.
	Source string
	// Pass is a predicate taking the result of executing Source. If Pass
	// returns false, then the test fails.
	Pass func(result lispy.Value) bool
}

// TestFunc returns a test function for the test case. This uses TestingVM to
// evaluate the code as a single line of input.
func (c SourceTestCase) TestFunc(name string) func(*testing.T) {
	return func(t *testing.T) {
		vm := TestingVM()
		if r := vm.DoString(c.Source, name); !c.Pass(r) {
			if err, ok := r.(*lispy.Error); ok {
				t.Errorf("%q produced wrong result; an error occurred: %s", c.Source, err.Msg)
			} else {
				t.Errorf("%q produced wrong result; got %s (%s)", c.Source, r, r.TypeName())
			}
		}
	}
}

// PassEqual returns a Pass function for a SourceTestCase that predicates on
// structural equality with want.
func PassEqual(want lispy.Value) func(lispy.Value) bool {
	return func(result lispy.Value) bool {
		return lispy.Equal(want, result)
	}
}

// PassString returns a Pass function for a SourceTestCase that predicates on
// the printed form of the result.
func PassString(want string) func(lispy.Value) bool {
	return func(result lispy.Value) bool {
		return result != nil && result.String() == want
	}
}

// PassType returns a Pass function for a SourceTestCase that predicates on
// the type name of the result.
func PassType(want string) func(lispy.Value) bool {
	return func(result lispy.Value) bool {
		return result != nil && result.TypeName() == want
	}
}

// PassFailure returns a Pass function for a SourceTestCase that returns true
// iff the result is an error.
func PassFailure() func(lispy.Value) bool {
	// This doesn't need to be a function returning a function, but it's nice to
	// stay consistent with the other predicate generators.
	return func(result lispy.Value) bool {
		return lispy.IsError(result)
	}
}

// PassError returns a Pass function for a SourceTestCase that returns true
// iff the result is an error whose message contains msg.
func PassError(msg string) func(lispy.Value) bool {
	return func(result lispy.Value) bool {
		err, ok := result.(*lispy.Error)
		return ok && strings.Contains(err.Msg, msg)
	}
}

// PassSuccess returns a Pass function for a SourceTestCase that returns true
// iff the result is not an error.
func PassSuccess() func(lispy.Value) bool {
	return func(result lispy.Value) bool {
		return result != nil && !lispy.IsError(result)
	}
}

// CheckNames is a testing helper to check whether an environment frame has
// exactly the bindings we expect.
func CheckNames(t *testing.T, env *lispy.Env, names []string) {
	t.Helper()
	checked := make(map[string]bool, len(names))
	for _, name := range names {
		checked[name] = true
		t.Run("Have_"+name, func(t *testing.T) {
			v, ok := env.Lookup(name)
			if !ok {
				t.Fatal("no binding", name)
			}
			if v == nil {
				t.Fatal("binding", name, "is nil")
			}
		})
	}
	for _, name := range env.Names() {
		t.Run("Want_"+name, func(t *testing.T) {
			if !checked[name] {
				t.Fatal("unexpected binding", name)
			}
		})
	}
}

// CheckBuiltins is a testing helper to check that each name in a frame is
// bound to a builtin registered under that name.
func CheckBuiltins(t *testing.T, env *lispy.Env, names []string) {
	t.Helper()
	for _, name := range names {
		t.Run("Builtin_"+name, func(t *testing.T) {
			v, _ := env.Lookup(name)
			b, ok := v.(*lispy.Builtin)
			if !ok {
				t.Fatalf("%s is %v, not a builtin", name, v)
			}
			if b.Name != name {
				t.Errorf("%s has wrong builtin name %q", name, b.Name)
			}
		})
	}
}
