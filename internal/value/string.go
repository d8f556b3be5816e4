package value

import "github.com/vellum-lang/vellum/internal/core"

// String is the atomic text type. Values are immutable Go strings;
// there is no in-place mutation.
type String string

func (s String) Kind() core.Kind { return core.KindString }
func (s String) String() string  { return string(s) }

func (s String) Equal(other core.Value) bool {
	o, ok := other.(String)
	return ok && s == o
}
