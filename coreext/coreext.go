// Package coreext imports every core extension for its side effects. Programs
// which want the full standard environment should import it.
package coreext

import (
	// importing for side effects
	_ "github.com/zephyrtronium/lispy/coreext/prelude"
)
