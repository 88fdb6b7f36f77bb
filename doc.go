/*
Package lispy implements a small Lisp: a dynamically typed expression language
with integers, symbols, first-class errors, two kinds of lists, builtin
functions, and closures supporting partial application and variadic
parameters.

The interpreter can easily be embedded in another program. To start, use the
NewVM function to create and initialize the interpreter. The VM's Root field is
the global environment; use its Put or Def methods to make values available to
lispy code, or Define to install Go functions as builtins. DoString evaluates
a line of input as the interactive shell does, and DoFile runs a file.

Lispy Primer

Every program is built from numbers, symbols, and two kinds of lists. An
S-expression is written in parentheses and is evaluated by applying its first
element to the rest:

	(+ 1 2 3)

evaluates to 6. At the top level of a line of input, the parentheses are
optional, so the shell accepts "+ 1 2 3" as well. Before a function is
applied, every element of the S-expression is evaluated from left to right, so
arguments are always values:

	(* 2 (- 10 4))

evaluates to 12. An S-expression with a single element evaluates to that
element, and the empty S-expression () evaluates to itself.

A Q-expression is written in braces and is never evaluated; it is the data
structure of the language. The builtins list, head, tail, init, join, cons,
len, and eval operate on Q-expressions:

	head {1 2 3}         is {1}
	tail {1 2 3}         is {2 3}
	join {1 2} {3}       is {1 2 3}
	eval {+ 1 2}         is 3

Symbols name values in an environment. def binds symbols in the global
environment, and = binds them in the innermost one. Both take a Q-expression of
symbols followed by one value per symbol:

	def {x y} 10 20
	+ x y                is 30

Functions are created with the lambda builtin, \, from a Q-expression of
parameter names and a Q-expression body:

	def {add} (\ {a b} {+ a b})
	add 1 2              is 3

Applying a function to fewer arguments than it has parameters produces a new
function waiting for the rest:

	def {inc} (add 1)
	inc 41               is 42

A parameter preceded by & collects all remaining arguments, possibly none, into
a Q-expression:

	(\ {x & xs} {xs}) 1 2 3    is {2 3}

Errors are values. Anything which fails, such as dividing by zero or looking up
a symbol which has no binding, produces an error, and evaluating an expression
containing an error produces the first such error:

	+ 1 (/ 10 0)         is Error: Division by zero

Importing package github.com/zephyrtronium/lispy/coreext installs a prelude of
functions written in lispy, including fun, map, filter, foldl, and others.
*/
package lispy
