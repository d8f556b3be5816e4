package prelude

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vellum-lang/vellum/internal/core"
	"github.com/vellum-lang/vellum/internal/reader"
	"github.com/vellum-lang/vellum/internal/value"
)

func mustEval(t *testing.T, source string) core.Value {
	t.Helper()
	ev, err := NewEvaluator(&bytes.Buffer{})
	if err != nil {
		t.Fatalf("NewEvaluator error = %v", err)
	}
	form, err := reader.Read(source)
	if err != nil {
		t.Fatalf("Read(%q) error = %v", source, err)
	}
	v, err := ev.Eval(form)
	if err != nil {
		t.Fatalf("Eval(%q) error = %v", source, err)
	}
	return v
}

func TestNewEvaluator_LoadsBootstrapWithoutError(t *testing.T) {
	if _, err := NewEvaluator(&bytes.Buffer{}); err != nil {
		t.Fatalf("NewEvaluator error = %v", err)
	}
}

func TestBootstrap_Not(t *testing.T) {
	if got := mustEval(t, "(not ())"); got.String() != "true" {
		t.Errorf("(not ()) = %v, want true", got)
	}
	if got := mustEval(t, "(not true)"); got != value.Nil {
		t.Errorf("(not true) = %v, want ()", got)
	}
}

func TestBootstrap_AndShortCircuits(t *testing.T) {
	got := mustEval(t, "(and () undefined-symbol)")
	if got != value.Nil {
		t.Errorf("(and () undefined) = %v, want () without evaluating the second arm", got)
	}
}

func TestBootstrap_OrShortCircuits(t *testing.T) {
	got := mustEval(t, "(or true undefined-symbol)")
	if got.String() != "true" {
		t.Errorf("(or true undefined) = %v, want true without evaluating the second arm", got)
	}
}

// A first argument with a visible side effect (here, a print call)
// must run exactly once: splicing the raw expression into both the
// test and consequent positions of an if would run it twice whenever
// it is truthy.
func TestBootstrap_OrEvaluatesFirstArgumentExactlyOnce(t *testing.T) {
	var buf bytes.Buffer
	ev, err := NewEvaluator(&buf)
	if err != nil {
		t.Fatalf("NewEvaluator error = %v", err)
	}
	eval := func(source string) core.Value {
		t.Helper()
		form, err := reader.Read(source)
		if err != nil {
			t.Fatalf("Read(%q) error = %v", source, err)
		}
		v, err := ev.Eval(form)
		if err != nil {
			t.Fatalf("Eval(%q) error = %v", source, err)
		}
		return v
	}

	eval(`(define bump (fn () (print (quote side-effect))))`)
	got := eval("(or (bump) undefined-symbol)")
	if got.String() != "side-effect" {
		t.Errorf("(or (bump) undefined) = %v, want side-effect", got)
	}

	lines := strings.Count(buf.String(), "\n")
	if lines != 1 {
		t.Errorf("bump printed %d lines, want exactly 1 (first argument evaluated once)", lines)
	}
}

func TestBootstrap_List(t *testing.T) {
	got := mustEval(t, "(list 1 2 3)")
	items, ok := value.SliceFromList(got)
	if !ok || len(items) != 3 {
		t.Fatalf("(list 1 2 3) = %v, want a 3-element list", got)
	}
}

func TestBootstrap_Cond(t *testing.T) {
	got := mustEval(t, `(cond
		((= 1 2) "no")
		((= 1 1) "yes")
		(true "fallback"))`)
	s, ok := got.(value.String)
	if !ok || string(s) != "yes" {
		t.Errorf("cond result = %v, want String(yes)", got)
	}
}

func TestBootstrap_CondFallsThroughToNil(t *testing.T) {
	got := mustEval(t, `(cond ((= 1 2) "no"))`)
	if got != value.Nil {
		t.Errorf("unmatched cond = %v, want ()", got)
	}
}
