package reader

import (
	"testing"

	"github.com/vellum-lang/vellum/internal/core"
	"github.com/vellum-lang/vellum/internal/value"
)

// readBody strips the (do …) wrapper every Read call produces (spec
// §4.1) and returns its single form, for tests that only care about
// one top-level expression.
func readBody(t *testing.T, source string) core.Value {
	t.Helper()
	v, err := Read(source)
	if err != nil {
		t.Fatalf("Read(%q) error = %v", source, err)
	}
	cons, ok := v.(*value.Cons)
	if !ok {
		t.Fatalf("Read(%q) = %v, want a (do …) cons", source, v)
	}
	items, ok := value.SliceFromList(cons.Tail)
	if !ok || len(items) != 1 {
		t.Fatalf("Read(%q) wrapped body = %v, want exactly one form", source, cons.Tail)
	}
	return items[0]
}

func TestRead_WrapsInDo(t *testing.T) {
	v, err := Read("1 2 3")
	if err != nil {
		t.Fatalf("Read error = %v", err)
	}
	cons, ok := v.(*value.Cons)
	if !ok {
		t.Fatalf("Read(\"1 2 3\") = %v, want a cons", v)
	}
	special, ok := cons.Head.(value.Special)
	if !ok || special.Tag != value.SpecialDo {
		t.Errorf("head of Read(...) = %v, want the do special", cons.Head)
	}
	items, ok := value.SliceFromList(cons.Tail)
	if !ok || len(items) != 3 {
		t.Fatalf("body = %v, want 3 forms", cons.Tail)
	}
}

func TestRead_EmptyInputFails(t *testing.T) {
	if _, err := Read(""); err == nil {
		t.Errorf("Read(\"\") = nil error, want UnexpectedEOF")
	}
}

func TestRead_Number(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"42", "42"},
		{"3.14", "3.14"},
		{"0", "0"},
	}
	for _, tt := range tests {
		form := readBody(t, tt.source)
		n, ok := form.(value.Number)
		if !ok {
			t.Fatalf("Read(%q) = %v, want a Number", tt.source, form)
		}
		if n.String() != tt.want {
			t.Errorf("Read(%q) = %s, want %s", tt.source, n.String(), tt.want)
		}
	}
}

func TestRead_MalformedNumberIsParseError(t *testing.T) {
	if _, err := Read("1.2.3"); err == nil {
		t.Errorf("Read(\"1.2.3\") = nil error, want a parse error for the second '.'")
	}
}

func TestRead_String(t *testing.T) {
	form := readBody(t, `"hello world"`)
	s, ok := form.(value.String)
	if !ok || string(s) != "hello world" {
		t.Errorf("Read = %v, want String(hello world)", form)
	}
}

func TestRead_Symbol(t *testing.T) {
	form := readBody(t, "foo-bar")
	sym, ok := form.(*value.Symbol)
	if !ok || sym.Text() != "foo-bar" {
		t.Errorf("Read(foo-bar) = %v, want Symbol(foo-bar)", form)
	}
}

func TestRead_ReservedWordsBecomeSpecials(t *testing.T) {
	tests := []struct {
		source string
		tag    value.SpecialTag
	}{
		{"do", value.SpecialDo},
		{"def", value.SpecialDefine},
		{"define", value.SpecialDefine},
		{"fn", value.SpecialFunction},
		{"function", value.SpecialFunction},
		{"macro", value.SpecialMacro},
		{"if", value.SpecialIf},
		{"quote", value.SpecialQuote},
	}
	for _, tt := range tests {
		form := readBody(t, tt.source)
		special, ok := form.(value.Special)
		if !ok || special.Tag != tt.tag {
			t.Errorf("Read(%q) = %v, want Special(%v)", tt.source, form, tt.tag)
		}
	}
}

func TestRead_OperatorCharacters(t *testing.T) {
	for _, ch := range []string{"+", "-", "*", "/", "%", "=", "<", ">"} {
		form := readBody(t, ch)
		special, ok := form.(value.Special)
		if !ok || special.Tag != value.SpecialOperator {
			t.Errorf("Read(%q) = %v, want an Operator special", ch, form)
		}
	}
}

// An operator glued to a following literal with no whitespace splits
// into two top-level forms rather than being read as one symbol.
func TestRead_OperatorGluedToLiteralSplits(t *testing.T) {
	v, err := Read("-5")
	if err != nil {
		t.Fatalf("Read(\"-5\") error = %v", err)
	}
	cons := v.(*value.Cons)
	items, ok := value.SliceFromList(cons.Tail)
	if !ok || len(items) != 2 {
		t.Fatalf("body = %v, want 2 forms", cons.Tail)
	}
	special, ok := items[0].(value.Special)
	if !ok || special.Tag != value.SpecialOperator || special.Op != value.OpSub {
		t.Errorf("items[0] = %v, want the Sub operator", items[0])
	}
	n, ok := items[1].(value.Number)
	if !ok || n.String() != "5" {
		t.Errorf("items[1] = %v, want Number(5)", items[1])
	}
}

func TestRead_EmptyList(t *testing.T) {
	form := readBody(t, "()")
	if form != value.Nil {
		t.Errorf("Read(\"()\") = %v, want Nil", form)
	}
}

func TestRead_NestedList(t *testing.T) {
	form := readBody(t, "(+ 1 (* 2 3))")
	cons, ok := form.(*value.Cons)
	if !ok {
		t.Fatalf("Read(...) = %v, want a cons", form)
	}
	items, ok := value.SliceFromList(cons)
	if !ok || len(items) != 3 {
		t.Fatalf("items = %v, want 3 elements", items)
	}
	inner, ok := items[2].(*value.Cons)
	if !ok {
		t.Fatalf("third element = %v, want a nested list", items[2])
	}
	innerItems, _ := value.SliceFromList(inner)
	if len(innerItems) != 3 {
		t.Errorf("nested list = %v, want 3 elements", innerItems)
	}
}

func TestRead_QuoteShorthand(t *testing.T) {
	form := readBody(t, "'foo")
	cons, ok := form.(*value.Cons)
	if !ok {
		t.Fatalf("Read('foo) = %v, want (quote foo)", form)
	}
	special, ok := cons.Head.(value.Special)
	if !ok || special.Tag != value.SpecialQuote {
		t.Errorf("head = %v, want the quote special", cons.Head)
	}
	items, ok := value.SliceFromList(cons.Tail)
	if !ok || len(items) != 1 {
		t.Fatalf("tail = %v, want one quoted form", cons.Tail)
	}
	sym, ok := items[0].(*value.Symbol)
	if !ok || sym.Text() != "foo" {
		t.Errorf("quoted form = %v, want Symbol(foo)", items[0])
	}
}

func TestRead_UnterminatedListFails(t *testing.T) {
	if _, err := Read("(+ 1 2"); err == nil {
		t.Errorf("Read(unterminated) = nil error, want UnexpectedEOF")
	}
}

func TestRead_UnmatchedCloseParenFails(t *testing.T) {
	if _, err := Read(")"); err == nil {
		t.Errorf("Read(\")\") = nil error, want UnexpectedChar")
	}
}

func TestRead_LineCommentsAreSkipped(t *testing.T) {
	form := readBody(t, "; a comment\n42 ; trailing comment")
	n, ok := form.(value.Number)
	if !ok || n.String() != "42" {
		t.Errorf("Read(...) = %v, want Number(42)", form)
	}
}
