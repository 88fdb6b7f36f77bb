package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/peterh/liner"

	"github.com/zephyrtronium/lispy"
)

const helpText = `Commands:
  :help            show this help
  :quit            leave the shell
  :load <file>...  run files in the current environment
  :dump <expr>     evaluate an expression and show its structure
  :env             list global bindings
  :reset           start over with a fresh environment
Anything else is evaluated. Unclosed brackets continue on the next line.
`

// dumper formats values for :dump.
var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// shell runs lispy code for a user.
type shell struct {
	vm  *lispy.VM
	cfg *Config

	out  io.Writer
	errs io.Writer
}

func newShell(cfg *Config, out, errs io.Writer) *shell {
	sh := &shell{cfg: cfg, out: out, errs: errs}
	sh.reset()
	return sh
}

// reset replaces the shell's VM with a new one.
func (sh *shell) reset() {
	if sh.cfg.NoPrelude {
		sh.vm = lispy.NewBareVM()
	} else {
		sh.vm = lispy.NewVM()
	}
	sh.vm.Stdout = sh.out
	if sh.cfg.Trace {
		sh.vm.Trace = sh.errs
	}
}

// runFile runs a source file, reporting any error. Returns false if the file
// produced an error.
func (sh *shell) runFile(path string) bool {
	r := sh.vm.DoFile(path)
	if err, ok := r.(*lispy.Error); ok {
		fmt.Fprintf(sh.errs, "%s: %s\n", path, err.Msg)
		return false
	}
	return true
}

// evalPrint evaluates a unit of input and prints its result. Returns false if
// the result is an error.
func (sh *shell) evalPrint(src string) bool {
	r := sh.vm.DoString(src, "command line")
	fmt.Fprintln(sh.out, r.String())
	return !lispy.IsError(r)
}

// A prompter reads lines of input.
type prompter interface {
	Prompt(prompt string) (string, error)
}

// scanPrompter reads lines without printing prompts, for input that is not a
// terminal.
type scanPrompter struct {
	s *bufio.Scanner
}

func (p scanPrompter) Prompt(string) (string, error) {
	if p.s.Scan() {
		return p.s.Text(), nil
	}
	if err := p.s.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// interactive runs a line-editing REPL on the terminal.
func (sh *shell) interactive() {
	fmt.Fprintf(sh.out, "lispy %s on %s\nType :help for help, :quit to leave.\n", lispy.Version, platformVersion())
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetWordCompleter(sh.complete)

	if sh.cfg.History != "" {
		if f, err := os.Open(sh.cfg.History); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
	}
	sh.loop(ln, ln.AppendHistory)
	if sh.cfg.History != "" {
		if f, err := os.Create(sh.cfg.History); err == nil {
			ln.WriteHistory(f)
			f.Close()
		} else {
			fmt.Fprintln(sh.errs, "could not save history:", err)
		}
	}
	fmt.Fprintln(sh.out)
}

// loop reads and evaluates input until it ends or the user quits. If record
// is not nil, it receives each accepted input.
func (sh *shell) loop(p prompter, record func(string)) {
	for {
		src, ok := sh.read(p)
		if !ok {
			return
		}
		trimmed := strings.TrimSpace(src)
		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, ":"):
			if sh.command(trimmed) {
				return
			}
		default:
			sh.evalPrint(src)
		}
		if record != nil {
			record(strings.ReplaceAll(src, "\n", " "))
		}
	}
}

// read reads lines until they form a complete unit of input. Returns false at
// the end of input.
func (sh *shell) read(p prompter) (string, bool) {
	var b strings.Builder
	for {
		prompt := sh.cfg.Prompt
		if b.Len() > 0 {
			prompt = sh.cfg.Continuation
		}
		line, err := p.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			// Ctrl+C abandons the current input.
			return "", true
		}
		if err != nil {
			return "", false
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if _, err := sh.vm.ReadString(src, "stdin"); !errors.Is(err, lispy.ErrUnclosed) {
			return src, true
		}
	}
}

// command runs a shell command. Returns true if the shell should exit.
func (sh *shell) command(line string) (exit bool) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":help":
		fmt.Fprint(sh.out, helpText)
	case ":quit", ":exit":
		return true
	case ":load":
		if len(fields) < 2 {
			fmt.Fprintln(sh.out, "usage: :load <file>...")
			return false
		}
		for _, path := range fields[1:] {
			fmt.Fprintln(sh.out, sh.vm.DoFile(path).String())
		}
	case ":dump":
		expr := strings.TrimSpace(strings.TrimPrefix(line, fields[0]))
		if expr == "" {
			fmt.Fprintln(sh.out, "usage: :dump <expr>")
			return false
		}
		dumper.Fdump(sh.out, sh.vm.DoString(expr, ":dump"))
	case ":env":
		for _, name := range sh.vm.Root.Names() {
			v, _ := sh.vm.Root.Lookup(name)
			fmt.Fprintf(sh.out, "%s\t%s\n", name, v.String())
		}
	case ":reset":
		sh.reset()
		fmt.Fprintln(sh.out, "environment reset.")
	default:
		fmt.Fprintf(sh.out, "unknown command %s. Type :help for help.\n", fields[0])
	}
	return false
}

// complete completes global names for liner. pos is in runes.
func (sh *shell) complete(line string, pos int) (head string, completions []string, tail string) {
	r := []rune(line)
	before := string(r[:pos])
	start := strings.LastIndexAny(before, " \t(){}") + 1
	head, word, tail := before[:start], before[start:], string(r[pos:])
	if word == "" {
		return head, nil, tail
	}
	for _, name := range sh.vm.Root.Names() {
		if strings.HasPrefix(name, word) {
			completions = append(completions, name)
		}
	}
	return head, completions, tail
}
