//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package main

// isTerminal returns whether fd refers to a terminal. Without termios, the
// shell assumes that it does and lets the line editor decide.
func isTerminal(fd int) bool {
	return true
}
