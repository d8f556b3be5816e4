package eval

import (
	"github.com/vellum-lang/vellum/internal/core"
	"github.com/vellum-lang/vellum/internal/value"
	"github.com/vellum-lang/vellum/internal/verror"
)

// TrueSymbol is the interned truth symbol, bound to itself in the
// base frame.
var TrueSymbol = value.Intern("true")

// evalSpecial dispatches the six special forms plus the eight
// operators. Unlike Function/Native calls, each form decides for
// itself which parts of its raw, unevaluated tail to evaluate.
func (e *Evaluator) evalSpecial(special value.Special, tail core.Value) (core.Value, error) {
	switch special.Tag {
	case value.SpecialDo:
		return e.evalDo(tail)
	case value.SpecialDefine:
		return e.evalDefine(tail)
	case value.SpecialFunction:
		return e.evalFunctionForm(tail)
	case value.SpecialMacro:
		return e.evalMacroForm(tail)
	case value.SpecialIf:
		return e.evalIf(tail)
	case value.SpecialQuote:
		return e.evalQuote(tail)
	case value.SpecialOperator:
		return e.evalOperator(special.Op, tail)
	default:
		return nil, verror.Internal("unknown special form").SetWhere(e.callStack)
	}
}

// evalDo evaluates each form in order in the current frame and
// returns the last: `(do e1 … en)`, n ≥ 1.
func (e *Evaluator) evalDo(tail core.Value) (core.Value, error) {
	items, ok := value.SliceFromList(tail)
	if !ok || len(items) == 0 {
		return nil, verror.WrongArity("do", 1, len(items)).SetWhere(e.callStack)
	}
	var result core.Value
	for _, item := range items {
		v, err := e.Eval(item)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// evalDefine binds symbol s in the CURRENT frame to the evaluated
// value of e, and returns that value: `(define s e)`. The binding is
// installed only after evaluation of e succeeds, so a failing define
// leaves the frame unchanged.
func (e *Evaluator) evalDefine(tail core.Value) (core.Value, error) {
	items, ok := value.SliceFromList(tail)
	if !ok || len(items) != 2 {
		return nil, verror.WrongArity("define", 2, len(items)).SetWhere(e.callStack)
	}
	sym, ok := items[0].(*value.Symbol)
	if !ok {
		return nil, verror.InvalidType("define requires a symbol name").SetWhere(e.callStack)
	}
	v, err := e.Eval(items[1])
	if err != nil {
		return nil, err
	}
	if fn, ok := v.(*value.Function); ok && fn.Name == "" {
		fn.Name = sym.Text()
	}
	e.current.Set(sym.Text(), v)
	return v, nil
}

// evalFunctionForm builds a closure capturing the CURRENT frame:
// `(function (p1 … pk) body)`.
func (e *Evaluator) evalFunctionForm(tail core.Value) (core.Value, error) {
	items, ok := value.SliceFromList(tail)
	if !ok || len(items) != 2 {
		return nil, verror.WrongArity("function", 2, len(items)).SetWhere(e.callStack)
	}
	params, err := symbolList(items[0])
	if err != nil {
		return nil, err
	}
	return value.NewFunction("", params, items[1], e.current), nil
}

// evalMacroForm builds a macro with exactly one parameter: `(macro (p)
// body)`.
func (e *Evaluator) evalMacroForm(tail core.Value) (core.Value, error) {
	items, ok := value.SliceFromList(tail)
	if !ok || len(items) != 2 {
		return nil, verror.WrongArity("macro", 2, len(items)).SetWhere(e.callStack)
	}
	params, err := symbolList(items[0])
	if err != nil {
		return nil, err
	}
	if len(params) != 1 {
		return nil, verror.InvalidType("macro requires exactly one parameter symbol").SetWhere(e.callStack)
	}
	return value.NewMacro("", params[0], items[1]), nil
}

// symbolList validates that a parameter list is a proper list of
// symbols.
func symbolList(v core.Value) ([]*value.Symbol, error) {
	items, ok := value.SliceFromList(v)
	if !ok {
		return nil, verror.InvalidType("parameter list must be a proper list")
	}
	out := make([]*value.Symbol, len(items))
	for i, item := range items {
		sym, ok := item.(*value.Symbol)
		if !ok {
			return nil, verror.InvalidType("function/macro parameters must be symbols")
		}
		out[i] = sym
	}
	return out, nil
}

// evalIf evaluates the condition once, then exactly one of the two
// branches.
func (e *Evaluator) evalIf(tail core.Value) (core.Value, error) {
	items, ok := value.SliceFromList(tail)
	if !ok || len(items) != 3 {
		return nil, verror.WrongArity("if", 3, len(items)).SetWhere(e.callStack)
	}
	cond, err := e.Eval(items[0])
	if err != nil {
		return nil, err
	}
	if value.IsTruthy(cond) {
		return e.Eval(items[1])
	}
	return e.Eval(items[2])
}

// evalQuote returns its single argument unevaluated.
func (e *Evaluator) evalQuote(tail core.Value) (core.Value, error) {
	items, ok := value.SliceFromList(tail)
	if !ok || len(items) != 1 {
		return nil, verror.WrongArity("quote", 1, len(items)).SetWhere(e.callStack)
	}
	return items[0], nil
}

// evalOperator implements the eight Operator tags: arithmetic and
// ordering require both operands to be Numbers (anything else is an
// InvalidType error) and apply decimal arithmetic (division
// by zero follows decimal's own non-finite-result semantics rather
// than raising); comparisons return the truth symbol or Nil.
func (e *Evaluator) evalOperator(op value.Operator, tail core.Value) (core.Value, error) {
	items, ok := value.SliceFromList(tail)
	if !ok || len(items) != 2 {
		return nil, verror.WrongArity(op.String(), 2, len(items)).SetWhere(e.callStack)
	}
	left, err := e.Eval(items[0])
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(items[1])
	if err != nil {
		return nil, err
	}

	if op == value.OpEq {
		if left.Equal(right) {
			return TrueSymbol, nil
		}
		return value.Nil, nil
	}

	ln, ok := left.(value.Number)
	if !ok {
		return nil, verror.InvalidType("operator requires numbers").SetWhere(e.callStack)
	}
	rn, ok := right.(value.Number)
	if !ok {
		return nil, verror.InvalidType("operator requires numbers").SetWhere(e.callStack)
	}

	switch op {
	case value.OpAdd:
		return ln.Add(rn), nil
	case value.OpSub:
		return ln.Sub(rn), nil
	case value.OpMul:
		return ln.Mul(rn), nil
	case value.OpDiv:
		return ln.Quo(rn), nil
	case value.OpMod:
		return ln.Rem(rn), nil
	case value.OpLt:
		if ln.Cmp(rn) < 0 {
			return TrueSymbol, nil
		}
		return value.Nil, nil
	case value.OpGt:
		if ln.Cmp(rn) > 0 {
			return TrueSymbol, nil
		}
		return value.Nil, nil
	default:
		return nil, verror.Internal("unknown operator").SetWhere(e.callStack)
	}
}
