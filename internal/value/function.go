package value

import (
	"fmt"

	"github.com/vellum-lang/vellum/internal/core"
)

// Function is a user-defined closure: eager-argument calling
// convention, body evaluated in a fresh frame parented at the
// *captured* definition-time frame, which is how a function sees the
// bindings visible where it was written rather than where it is
// called from.
type Function struct {
	Name    string // empty for anonymous lambdas; set by define for diagnostics
	Params  []*Symbol
	Body    core.Value
	Closure core.Frame
}

func NewFunction(name string, params []*Symbol, body core.Value, closure core.Frame) *Function {
	return &Function{Name: name, Params: params, Body: body, Closure: closure}
}

func (f *Function) Kind() core.Kind { return core.KindFunction }

func (f *Function) String() string {
	if f.Name != "" {
		return fmt.Sprintf("#<function %s>", f.Name)
	}
	return "#<function>"
}

func (f *Function) Equal(other core.Value) bool {
	o, ok := other.(*Function)
	return ok && f == o
}

// Macro binds its entire unevaluated argument tail to a single
// parameter and is invoked in a child of the *calling* frame; its
// result is then re-evaluated in the caller's frame, so the expansion
// sees exactly the bindings visible at the call site.
type Macro struct {
	Name  string
	Param *Symbol
	Body  core.Value
}

func NewMacro(name string, param *Symbol, body core.Value) *Macro {
	return &Macro{Name: name, Param: param, Body: body}
}

func (m *Macro) Kind() core.Kind { return core.KindMacro }

func (m *Macro) String() string {
	if m.Name != "" {
		return fmt.Sprintf("#<macro %s>", m.Name)
	}
	return "#<macro>"
}

func (m *Macro) Equal(other core.Value) bool {
	o, ok := other.(*Macro)
	return ok && m == o
}

// SpecialTag identifies which bespoke special form a Special value
// stands for.
type SpecialTag uint8

const (
	SpecialDo SpecialTag = iota
	SpecialDefine
	SpecialFunction
	SpecialMacro
	SpecialIf
	SpecialQuote
	SpecialOperator
)

func (t SpecialTag) String() string {
	switch t {
	case SpecialDo:
		return "do"
	case SpecialDefine:
		return "define"
	case SpecialFunction:
		return "function"
	case SpecialMacro:
		return "macro"
	case SpecialIf:
		return "if"
	case SpecialQuote:
		return "quote"
	case SpecialOperator:
		return "operator"
	default:
		return "special"
	}
}

// Operator names the eight arithmetic/comparison operator tokens,
// each itself a Special value carrying SpecialOperator.
type Operator uint8

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpEq
	OpLt
	OpGt
)

var operatorText = map[string]Operator{
	"+": OpAdd, "-": OpSub, "*": OpMul, "/": OpDiv,
	"%": OpMod, "=": OpEq, "<": OpLt, ">": OpGt,
}

// OperatorFromText reports whether text names one of the eight
// operator tokens, and which.
func OperatorFromText(text string) (Operator, bool) {
	op, ok := operatorText[text]
	return op, ok
}

func (op Operator) String() string {
	for text, o := range operatorText {
		if o == op {
			return text
		}
	}
	return "?"
}

// Special is a handle onto one of the fixed special forms; it carries
// no closure state and dispatches purely on its Tag (and, for
// SpecialOperator, its Op).
type Special struct {
	Tag SpecialTag
	Op  Operator // only meaningful when Tag == SpecialOperator
}

func (s Special) Kind() core.Kind { return core.KindSpecial }

func (s Special) String() string {
	if s.Tag == SpecialOperator {
		return fmt.Sprintf("#<operator %s>", s.Op)
	}
	return fmt.Sprintf("#<special %s>", s.Tag)
}

func (s Special) Equal(other core.Value) bool {
	o, ok := other.(Special)
	return ok && s == o
}

// Native wraps a host Go function: eager arguments, no frame of its
// own.
type Native struct {
	Name string
	Fn   core.NativeFunc
}

func NewNative(name string, fn core.NativeFunc) *Native {
	return &Native{Name: name, Fn: fn}
}

func (n *Native) Kind() core.Kind { return core.KindNative }
func (n *Native) String() string  { return fmt.Sprintf("#<native %s>", n.Name) }

func (n *Native) Equal(other core.Value) bool {
	o, ok := other.(*Native)
	return ok && n == o
}
