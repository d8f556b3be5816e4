// Package native implements the built-in functions of the base frame:
// list operations, a single print primitive, type predicates, and a
// numeric helper. Each native checks its own arity and argument shape
// at call time; registration itself fails fast on a programmer error
// (a duplicate name).
package native

import (
	"fmt"
	"io"

	"github.com/vellum-lang/vellum/internal/core"
	"github.com/vellum-lang/vellum/internal/frame"
	"github.com/vellum-lang/vellum/internal/value"
	"github.com/vellum-lang/vellum/internal/verror"
)

// Register installs every built-in native into root. It panics on a
// duplicate name — an initialization-time programmer error, not a
// runtime condition.
func Register(root *frame.Frame, out io.Writer) {
	registered := make(map[string]bool)
	bind := func(name string, fn core.NativeFunc) {
		if registered[name] {
			panic(fmt.Sprintf("native.Register: duplicate registration of %q", name))
		}
		registered[name] = true
		root.Set(name, value.NewNative(name, fn))
	}

	bind("head", Head)
	bind("car", Head)
	bind("tail", Tail)
	bind("cdr", Tail)
	bind("cons", Cons)
	bind("list", List)

	bind("print", Printer(out))

	bind("number?", Predicate(core.KindNumber))
	bind("string?", Predicate(core.KindString))
	bind("symbol?", Predicate(core.KindSymbol))
	bind("function?", Predicate(core.KindFunction))
	bind("special?", Predicate(core.KindSpecial))
	bind("native?", Predicate(core.KindNative))

	bind("sqrt", Sqrt)
}

func truthValue(ok bool) core.Value {
	if ok {
		return value.Intern("true")
	}
	return value.Nil
}

// Head returns the first element of a non-empty list, failing with an
// InvalidType error on an empty list.
func Head(args []core.Value, ev core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return nil, verror.WrongArity("head", 1, len(args))
	}
	cons, ok := args[0].(*value.Cons)
	if !ok {
		return nil, verror.InvalidType("head requires a non-empty list")
	}
	return cons.Head, nil
}

// Tail returns every element but the first.
func Tail(args []core.Value, ev core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return nil, verror.WrongArity("tail", 1, len(args))
	}
	cons, ok := args[0].(*value.Cons)
	if !ok {
		return nil, verror.InvalidType("tail requires a non-empty list")
	}
	return cons.Tail, nil
}

// Cons prepends an element onto a list.
func Cons(args []core.Value, ev core.Evaluator) (core.Value, error) {
	if len(args) != 2 {
		return nil, verror.WrongArity("cons", 2, len(args))
	}
	return value.NewCons(args[0], args[1]), nil
}

// List builds a proper list out of its (already evaluated) arguments;
// unlike Function, a Native enforces its own arity, so this accepts
// any number of arguments. Used by the bundled cond macro.
func List(args []core.Value, ev core.Evaluator) (core.Value, error) {
	return value.ListFromSlice(args), nil
}

// Printer returns a print native bound to a specific writer, so tests
// can capture output without touching the process's real stdout.
func Printer(out io.Writer) core.NativeFunc {
	return func(args []core.Value, ev core.Evaluator) (core.Value, error) {
		if len(args) != 1 {
			return nil, verror.WrongArity("print", 1, len(args))
		}
		fmt.Fprintln(out, args[0].String())
		return args[0], nil
	}
}

// Predicate builds a type-predicate native for the given Kind.
func Predicate(kind core.Kind) core.NativeFunc {
	return func(args []core.Value, ev core.Evaluator) (core.Value, error) {
		if len(args) != 1 {
			return nil, verror.WrongArity("type predicate", 1, len(args))
		}
		return truthValue(args[0].Kind() == kind), nil
	}
}

// Sqrt computes the square root of a number.
func Sqrt(args []core.Value, ev core.Evaluator) (core.Value, error) {
	if len(args) != 1 {
		return nil, verror.WrongArity("sqrt", 1, len(args))
	}
	n, ok := args[0].(value.Number)
	if !ok {
		return nil, verror.InvalidType("sqrt requires a number")
	}
	return n.Sqrt(), nil
}
