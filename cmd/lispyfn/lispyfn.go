// Command lispyfn lists the functions in Go packages which can serve as lispy
// builtins, formatted as entries of the maps passed to defineAll. For example,
// to list the list builtins under their lispy names:
//
//	lispyfn -match ^List
package main

import (
	"flag"
	"fmt"
	"go/token"
	"go/types"
	"os"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

func main() {
	var match, ignore string
	var lispy string
	flag.StringVar(&match, "match", ".", "include only functions matching this regular expression")
	flag.StringVar(&ignore, "ignore", "$^", "exclude functions matching this regular expression")
	flag.StringVar(&lispy, "lispy", "github.com/zephyrtronium/lispy/internal", "import path for the package defining Fn")
	flag.Parse()
	mre, err := regexp.Compile(match)
	if err != nil {
		fail("error compiling match:", err)
	}
	ire, err := regexp.Compile(ignore)
	if err != nil {
		fail("error compiling ignore:", err)
	}

	fset := token.NewFileSet()
	config := packages.Config{Mode: packages.NeedName | packages.NeedTypes | packages.NeedImports, Fset: fset}
	pkgs, err := packages.Load(&config, append([]string{lispy}, flag.Args()...)...)
	if err != nil {
		fail("error loading packages:", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		os.Exit(1)
	}
	fn := getFn(pkgs[0])
	// With no other packages named, list the builtins of the package
	// defining Fn.
	if len(pkgs) > 1 {
		pkgs = pkgs[1:]
	}
	var results []string
	for _, pkg := range pkgs {
		results = append(results, find(pkg.Types.Scope(), fn, mre, ire)...)
	}
	sort.Strings(results)
	for _, name := range results {
		fmt.Printf("\t\t%q: %s,\n", trimMatch(name, mre), name)
	}
}

func fail(args ...interface{}) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

// getFn finds the underlying type of Fn in pkg.
func getFn(pkg *packages.Package) types.Type {
	r := pkg.Types.Scope().Lookup("Fn")
	if r == nil {
		fail(pkg.Name, "has no definition of Fn")
	}
	t, ok := r.(*types.TypeName)
	if !ok {
		fail(pkg.Name, "has incorrect definition of Fn:", r)
	}
	return t.Type().Underlying()
}

// find lists the exported functions in scope assignable to fn whose names
// match mre and not ire.
func find(scope *types.Scope, fn types.Type, mre, ire *regexp.Regexp) []string {
	var r []string
	for _, name := range scope.Names() {
		if !mre.MatchString(name) || ire.MatchString(name) {
			continue
		}
		obj := scope.Lookup(name)
		if _, ok := obj.(*types.Func); !ok || !obj.Exported() {
			continue
		}
		if types.AssignableTo(obj.Type(), fn) {
			r = append(r, name)
		}
	}
	return r
}

// trimMatch removes the matched part of name, through the end of the match,
// and lowercases the first letter of what remains.
func trimMatch(name string, mre *regexp.Regexp) string {
	if mre.String() != "." {
		k := mre.FindStringIndex(name)
		name = name[k[1]:]
	}
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}
