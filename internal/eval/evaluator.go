// Package eval implements the tree-walking evaluator.
//
// The evaluator dispatches on Value.Kind() with an explicit type
// switch rather than polymorphism, and every function/macro call
// swaps the current frame in with a deferred restore, so the
// previous frame comes back on every exit path, error included.
package eval

import (
	"fmt"

	"github.com/vellum-lang/vellum/internal/core"
	"github.com/vellum-lang/vellum/internal/frame"
	"github.com/vellum-lang/vellum/internal/trace"
	"github.com/vellum-lang/vellum/internal/value"
	"github.com/vellum-lang/vellum/internal/verror"
)

// Evaluator is the stateful evaluation engine: one instance's current
// frame persists across successive top-level forms, which is what
// lets a REPL session accumulate definitions.
type Evaluator struct {
	current   *frame.Frame
	callStack []string
	depth     int
}

// NewEvaluator wraps an already-constructed base frame (normally
// prelude.Base()) in a fresh Evaluator.
func NewEvaluator(base *frame.Frame) *Evaluator {
	return &Evaluator{current: base, callStack: []string{"(top level)"}}
}

// Eval evaluates a single value one-shot with a new Evaluator over
// base. It does not build a base frame of its own: definitions made
// by v are written into base.
func Eval(base *frame.Frame, v core.Value) (core.Value, error) {
	return NewEvaluator(base).Eval(v)
}

func (e *Evaluator) CurrentFrame() core.Frame { return e.current }

func (e *Evaluator) Lookup(symbol string) (core.Value, bool) {
	return e.current.Get(symbol)
}

func (e *Evaluator) pushCall(name string) {
	e.callStack = append(e.callStack, name)
	e.depth++
}

func (e *Evaluator) popCall() {
	e.callStack = e.callStack[:len(e.callStack)-1]
	e.depth--
}

// withFrame runs fn with child installed as the current frame,
// restoring the previous frame afterward regardless of error.
func (e *Evaluator) withFrame(child *frame.Frame, fn func() (core.Value, error)) (core.Value, error) {
	save := e.current
	e.current = child
	defer func() { e.current = save }()
	return fn()
}

// Eval is the single evaluation entry point: dispatch on Kind,
// self-evaluating atoms return unchanged, symbols resolve through the
// frame chain, and non-empty lists are calls.
func (e *Evaluator) Eval(v core.Value) (core.Value, error) {
	switch v.Kind() {
	case core.KindNumber, core.KindString, core.KindFunction, core.KindMacro, core.KindSpecial, core.KindNative:
		return v, nil
	case core.KindSymbol:
		return e.evalSymbol(v.(*value.Symbol))
	case core.KindList:
		return e.evalList(v)
	default:
		return nil, verror.Internal(fmt.Sprintf("unhandled kind %s", v.Kind()))
	}
}

func (e *Evaluator) evalSymbol(sym *value.Symbol) (core.Value, error) {
	v, ok := e.current.Get(sym.Text())
	if !ok {
		return nil, verror.UndefinedSymbol(sym.Text()).SetWhere(e.callStack)
	}
	return v, nil
}

// evalList evaluates a list: the empty list is self-evaluating,
// otherwise the head determines the calling convention.
func (e *Evaluator) evalList(v core.Value) (core.Value, error) {
	cons, ok := v.(*value.Cons)
	if !ok {
		return v, nil // Nil
	}

	if trace.Global.IsEnabled() {
		trace.Global.Emit(trace.Event{Value: v.String(), Depth: e.depth})
	}

	headVal, err := e.Eval(cons.Head)
	if err != nil {
		return nil, err
	}

	switch callee := headVal.(type) {
	case value.Special:
		return e.evalSpecial(callee, cons.Tail)
	case *value.Function:
		return e.callFunction(callee, cons.Tail)
	case *value.Macro:
		return e.callMacro(callee, cons.Tail)
	case *value.Native:
		return e.callNative(callee, cons.Tail)
	default:
		return nil, verror.NotCallable(headVal.Kind().String()).
			SetNear(v.String()).SetWhere(e.callStack)
	}
}

// evalArgs evaluates every element of a list left to right — the
// eager-argument discipline shared by Function and Native calls.
func (e *Evaluator) evalArgs(list core.Value) ([]core.Value, error) {
	items, ok := value.SliceFromList(list)
	if !ok {
		return nil, verror.InvalidType("improper argument list").SetWhere(e.callStack)
	}
	out := make([]core.Value, len(items))
	for i, item := range items {
		v, err := e.Eval(item)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// callFunction implements the Function calling convention: arguments
// evaluated eagerly in the caller's frame, body evaluated in a fresh
// frame parented at the closure's captured frame.
func (e *Evaluator) callFunction(fn *value.Function, argList core.Value) (core.Value, error) {
	args, err := e.evalArgs(argList)
	if err != nil {
		return nil, err
	}
	if len(args) != len(fn.Params) {
		return nil, verror.WrongArity(displayName(fn.Name, "function"), len(fn.Params), len(args)).SetWhere(e.callStack)
	}

	closure, _ := fn.Closure.(*frame.Frame)
	child := frame.NewChild(closure)
	for i, param := range fn.Params {
		child.Set(param.Text(), args[i])
	}

	e.pushCall(displayName(fn.Name, "function"))
	defer e.popCall()

	return e.withFrame(child, func() (core.Value, error) {
		return e.Eval(fn.Body)
	})
}

// callMacro implements the Macro calling convention: the raw,
// unevaluated tail is bound to the macro's single parameter in a
// child of the CALLER's current frame, the body is evaluated there to
// produce an expansion, and that expansion is then evaluated again —
// in the original caller's frame.
func (e *Evaluator) callMacro(mac *value.Macro, argList core.Value) (core.Value, error) {
	child := frame.NewChild(e.current)
	child.Set(mac.Param.Text(), argList)

	e.pushCall(displayName(mac.Name, "macro"))
	defer e.popCall()

	expansion, err := e.withFrame(child, func() (core.Value, error) {
		return e.Eval(mac.Body)
	})
	if err != nil {
		return nil, err
	}
	return e.Eval(expansion)
}

// callNative implements the Native calling convention: eager
// arguments, no frame of its own.
func (e *Evaluator) callNative(n *value.Native, argList core.Value) (core.Value, error) {
	args, err := e.evalArgs(argList)
	if err != nil {
		return nil, err
	}
	e.pushCall(displayName(n.Name, "native"))
	defer e.popCall()

	result, err := n.Fn(args, e)
	if err != nil {
		if ve, ok := err.(*verror.Error); ok {
			ve.SetWhere(e.callStack)
		}
		return nil, err
	}
	return result, nil
}

func displayName(name, kind string) string {
	if name == "" {
		return "(anonymous " + kind + ")"
	}
	return name
}
