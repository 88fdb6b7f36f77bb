//go:build !aix && !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris

package main

import "runtime"

// platformVersion describes the operating system for the shell banner.
func platformVersion() string {
	return runtime.GOOS
}
