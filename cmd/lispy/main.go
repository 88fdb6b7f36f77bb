package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	// import for side effects
	_ "github.com/zephyrtronium/lispy/coreext"
)

func main() {
	var (
		expr, config     string
		trace, noPrelude bool
	)
	flag.StringVar(&expr, "e", "", "evaluate `expr` and print its result")
	flag.StringVar(&config, "config", "", "read settings from `file` (default $HOME/.lispy.yaml)")
	flag.BoolVar(&trace, "trace", false, "write each evaluated S-expression to stderr")
	flag.BoolVar(&noPrelude, "no-prelude", false, "start without the prelude")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [file ...]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := loadConfig(config)
	if err != nil {
		fail(err)
	}
	// Flags given explicitly override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trace":
			cfg.Trace = trace
		case "no-prelude":
			cfg.NoPrelude = noPrelude
		}
	})

	sh := newShell(cfg, os.Stdout, os.Stderr)
	for _, path := range cfg.Preload {
		if !sh.runFile(path) {
			os.Exit(1)
		}
	}
	for _, path := range flag.Args() {
		if !sh.runFile(path) {
			os.Exit(1)
		}
	}
	switch {
	case expr != "":
		if !sh.evalPrint(expr) {
			os.Exit(1)
		}
	case flag.NArg() > 0:
		// Files only.
	case isTerminal(int(os.Stdin.Fd())):
		sh.interactive()
	default:
		sh.loop(scanPrompter{bufio.NewScanner(os.Stdin)}, nil)
	}
}

func fail(args ...interface{}) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}
