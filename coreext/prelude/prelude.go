// Package prelude installs a library of functions written in lispy into
// every new VM. Import it for side effects.
package prelude

import (
	// embedding the prelude source
	_ "embed"
	"fmt"
	"strings"

	"github.com/zephyrtronium/lispy"
	"github.com/zephyrtronium/lispy/internal"
)

//go:embed prelude.lspy
var source string

// Names lists the names the prelude defines, in order of definition.
var Names = []string{
	"nil", "true", "false", "fun", "unpack", "pack", "curry", "uncurry",
	"do", "let", "not", "or", "and", "flip", "comp", "fst", "snd", "trd",
	"nth", "last", "take", "drop", "split", "elem", "map", "filter", "foldl",
	"sum", "product", "reverse",
}

func init() {
	internal.Register(initPrelude)
}

func initPrelude(vm *lispy.VM) {
	if err := Load(vm); err != nil {
		panic(err)
	}
}

// Load evaluates the prelude in vm's global environment. It is run for every
// VM created with NewVM; use it to install the prelude into a VM from
// NewBareVM.
func Load(vm *lispy.VM) error {
	r := vm.DoReader(strings.NewReader(source), "prelude.lspy")
	if err, ok := r.(*lispy.Error); ok {
		return fmt.Errorf("lispy/coreext/prelude: %w", err)
	}
	return nil
}
