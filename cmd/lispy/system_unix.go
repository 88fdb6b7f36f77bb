//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package main

import (
	"bytes"
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// platformVersion describes the operating system for the shell banner.
func platformVersion() string {
	var uname unix.Utsname
	if unix.Uname(&uname) != nil {
		// If uname failed, we don't have anything else to try.
		return runtime.GOOS
	}
	s, r := uname.Sysname[:], uname.Release[:]
	return fmt.Sprintf("%s %s", bytes.Trim(s, "\x00"), bytes.Trim(r, "\x00"))
}
