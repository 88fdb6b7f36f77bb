package internal_test

import (
	"testing"

	"github.com/zephyrtronium/lispy"
	"github.com/zephyrtronium/lispy/testutils"
)

// TestLambda tests closure construction.
func TestLambda(t *testing.T) {
	cases := map[string]testutils.SourceTestCase{
		"Type":        {Source: `\ {x} {x}`, Pass: testutils.PassType("Function")},
		"String":      {Source: `\ {x y} {+ x y}`, Pass: testutils.PassString(`(\ {x y} {+ x y})`)},
		"StringRest":  {Source: `\ {x & xs} {xs}`, Pass: testutils.PassString(`(\ {x & xs} {xs})`)},
		"NoParams":    {Source: `\ {} {1}`, Pass: testutils.PassString(`(\ {} {1})`)},
		"NonSymbol":   {Source: `\ {x 1} {x}`, Pass: testutils.PassError("Cannot define non-symbol. Got Number, Expected Symbol.")},
		"NotQuote":    {Source: `\ {x} 1`, Pass: testutils.PassError(`Function '\' passed incorrect type for argument 1. Got Number, Expected Q-Expression.`)},
		"Arity":       {Source: `\ {x}`, Pass: testutils.PassError(`Function '\' passed incorrect number of arguments. Got 1, Expected 2.`)},
		"RestMissing": {Source: `\ {x &} {x}`, Pass: testutils.PassError("Function format invalid: '&' not followed by a single symbol")},
		"RestTwo":     {Source: `\ {& xs ys} {xs}`, Pass: testutils.PassError("Function format invalid: '&' not followed by a single symbol")},
		"RestRest":    {Source: `\ {x & &} {x}`, Pass: testutils.PassError("Function format invalid: '&' not followed by a single symbol")},
	}
	for name, c := range cases {
		t.Run(name, c.TestFunc("TestLambda/"+name))
	}
}

// TestApply tests closure application, partial application, and variadic
// parameters.
func TestApply(t *testing.T) {
	vm := testutils.TestingVM()
	vm.MustDoString(`def {applyAdd} (\ {x y} {+ x y})`)
	vm.MustDoString(`def {applyRest} (\ {x & xs} {xs})`)
	vm.MustDoString(`def {applyAll} (\ {& xs} {xs})`)
	vm.MustDoString(`def {applyK} (\ {x y} {x})`)
	cases := map[string]testutils.SourceTestCase{
		"Full":         {Source: `applyAdd 1 2`, Pass: testutils.PassEqual(lispy.Number(3))},
		"Curry":        {Source: `((applyAdd 1) 2)`, Pass: testutils.PassEqual(lispy.Number(3))},
		"CurryChain":   {Source: `(applyAdd 10) 20`, Pass: testutils.PassEqual(lispy.Number(30))},
		"Partial":      {Source: `(applyAdd 1)`, Pass: testutils.PassString(`(\ {y} {+ x y})`)},
		"PartialType":  {Source: `applyAdd 1`, Pass: testutils.PassType("Function")},
		"TooMany":      {Source: `applyAdd 1 2 3`, Pass: testutils.PassError("Function passed too many arguments: expected 2, got 3")},
		"TooManyLater": {Source: `(applyAdd 1) 2 3`, Pass: testutils.PassError("Function passed too many arguments: expected 1, got 2")},
		"Rest":         {Source: `applyRest 1 2 3`, Pass: testutils.PassEqual(lispy.QuoteList{lispy.Number(2), lispy.Number(3)})},
		"RestOne":      {Source: `applyRest 1 2`, Pass: testutils.PassEqual(lispy.QuoteList{lispy.Number(2)})},
		"RestEmpty":    {Source: `applyRest 1`, Pass: testutils.PassEqual(lispy.QuoteList{})},
		"RestAll":      {Source: `applyAll 1 2`, Pass: testutils.PassEqual(lispy.QuoteList{lispy.Number(1), lispy.Number(2)})},
		"Constant":     {Source: `applyK 4 {never evaluated}`, Pass: testutils.PassEqual(lispy.Number(4))},
		"Immediate":    {Source: `(\ {a b} {- a b}) 5 3`, Pass: testutils.PassEqual(lispy.Number(2))},
		"NoParams":     {Source: `(\ {} {1}) 2`, Pass: testutils.PassError("Function passed too many arguments: expected 0, got 1")},
		"BodyError":    {Source: `applyAdd 1 {2}`, Pass: testutils.PassError("Function '+' passed incorrect type for argument 1.")},
	}
	for name, c := range cases {
		t.Run(name, c.TestFunc("TestApply/"+name))
	}
}

// TestClosureReusable tests that applying a closure, fully or partially, does
// not change the closure bound to its name.
func TestClosureReusable(t *testing.T) {
	vm := lispy.NewVM()
	vm.MustDoString(`def {reAdd} (\ {x y} {+ x y})`)
	vm.MustDoString(`def {reInc} (reAdd 1)`)
	steps := []struct {
		src  string
		want lispy.Value
	}{
		{`reInc 1`, lispy.Number(2)},
		{`reInc 41`, lispy.Number(42)},
		{`reAdd 2 3`, lispy.Number(5)},
		{`reAdd 4 5`, lispy.Number(9)},
		{`reInc 0`, lispy.Number(1)},
	}
	for _, s := range steps {
		if r := vm.DoString(s.src, "TestClosureReusable"); !lispy.Equal(r, s.want) {
			t.Errorf("%q gave %v, want %v", s.src, r, s.want)
		}
	}
}

// TestClosureCallerFallback tests that a closure body resolves names it does
// not bind through the environment of its caller.
func TestClosureCallerFallback(t *testing.T) {
	vm := lispy.NewVM()
	vm.MustDoString(`def {fbGet} (\ {x} {+ x fbFree})`)
	if r := vm.DoString(`fbGet 1`, "TestClosureCallerFallback"); !testutils.PassError("Symbol 'fbFree' doesn't exist")(r) {
		t.Errorf("unbound free variable gave %v", r)
	}
	vm.MustDoString(`def {fbFree} 10`)
	if r := vm.DoString(`fbGet 1`, "TestClosureCallerFallback"); r != lispy.Number(11) {
		t.Errorf("global free variable gave %v", r)
	}
	vm.MustDoString(`def {fbOuter} (\ {fbFree} {fbGet 1})`)
	if r := vm.DoString(`fbOuter 100`, "TestClosureCallerFallback"); r != lispy.Number(101) {
		t.Errorf("caller's free variable gave %v", r)
	}
	// Parameters shadow the caller.
	vm.MustDoString(`def {fbShadow} (\ {x} {(\ {x} {x}) 2})`)
	if r := vm.DoString(`fbShadow 1`, "TestClosureCallerFallback"); r != lispy.Number(2) {
		t.Errorf("shadowed parameter gave %v", r)
	}
}

// TestRecursion tests that a closure can call itself through a global name.
func TestRecursion(t *testing.T) {
	vm := lispy.NewVM()
	vm.MustDoString(`def {fact} (\ {n} {if (<= n 1) {1} {* n (fact (- n 1))}})`)
	if r := vm.DoString(`fact 10`, "TestRecursion"); r != lispy.Number(3628800) {
		t.Errorf("fact 10 gave %v", r)
	}
}

func BenchmarkApplyClosure(b *testing.B) {
	vm := lispy.NewVM()
	vm.MustDoString(`def {benchAdd} (\ {x y} {+ x y})`)
	f := vm.Root.Get("benchAdd")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		vm.Apply(vm.Root, f, lispy.ExprList{lispy.Number(1), lispy.Number(2)})
	}
}
