package value

import (
	"testing"

	"github.com/vellum-lang/vellum/internal/core"
)

func TestOperatorFromText(t *testing.T) {
	tests := map[string]Operator{
		"+": OpAdd, "-": OpSub, "*": OpMul, "/": OpDiv,
		"%": OpMod, "=": OpEq, "<": OpLt, ">": OpGt,
	}
	for text, want := range tests {
		got, ok := OperatorFromText(text)
		if !ok || got != want {
			t.Errorf("OperatorFromText(%q) = %v, %v, want %v, true", text, got, ok, want)
		}
	}
	if _, ok := OperatorFromText("&"); ok {
		t.Errorf("OperatorFromText(&) = ok, want not found")
	}
}

func TestFunction_EqualIsIdentity(t *testing.T) {
	f1 := NewFunction("f", nil, Nil, nil)
	f2 := NewFunction("f", nil, Nil, nil)
	if f1.Equal(f2) {
		t.Errorf("distinct Function values compared equal")
	}
	if !f1.Equal(f1) {
		t.Errorf("a Function should equal itself")
	}
}

func TestMacro_EqualIsIdentity(t *testing.T) {
	m1 := NewMacro("m", Intern("x"), Nil)
	m2 := NewMacro("m", Intern("x"), Nil)
	if m1.Equal(m2) {
		t.Errorf("distinct Macro values compared equal")
	}
}

func TestSpecial_Equal(t *testing.T) {
	a := Special{Tag: SpecialIf}
	b := Special{Tag: SpecialIf}
	c := Special{Tag: SpecialDo}
	if !a.Equal(b) {
		t.Errorf("two if specials should be equal")
	}
	if a.Equal(c) {
		t.Errorf("if and do specials should not be equal")
	}
}

func TestNative_String(t *testing.T) {
	n := NewNative("sqrt", func(args []core.Value, ev core.Evaluator) (core.Value, error) { return nil, nil })
	if n.String() != "#<native sqrt>" {
		t.Errorf("String() = %q, want #<native sqrt>", n.String())
	}
}
