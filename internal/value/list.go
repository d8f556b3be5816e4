package value

import (
	"strings"

	"github.com/vellum-lang/vellum/internal/core"
)

// List is a persistent cons list: the empty list Nil, or a *Cons cell
// whose Tail is itself a List. Every Cons call allocates a fresh node;
// nothing is ever mutated in place, so sharing a tail between two
// lists is always safe.
type nilList struct{}

// Nil is the single empty list value. It is the only falsy value in
// the language.
var Nil core.Value = nilList{}

func (nilList) Kind() core.Kind { return core.KindList }
func (nilList) String() string  { return "()" }
func (nilList) Equal(other core.Value) bool {
	_, ok := other.(nilList)
	return ok
}

// Cons is a non-empty list cell.
type Cons struct {
	Head core.Value
	Tail core.Value // Nil or *Cons
}

func NewCons(head, tail core.Value) *Cons {
	return &Cons{Head: head, Tail: tail}
}

func (c *Cons) Kind() core.Kind { return core.KindList }

func (c *Cons) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	cur := core.Value(c)
	first := true
	for {
		cell, ok := cur.(*Cons)
		if !ok {
			break
		}
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(cell.Head.String())
		cur = cell.Tail
	}
	if _, isNil := cur.(nilList); !isNil {
		sb.WriteString(" . ")
		sb.WriteString(cur.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (c *Cons) Equal(other core.Value) bool {
	o, ok := other.(*Cons)
	if !ok {
		return false
	}
	return c.Head.Equal(o.Head) && c.Tail.Equal(o.Tail)
}

// IsTruthy implements the language's single falsiness rule: only the
// empty list is falsy.
func IsTruthy(v core.Value) bool {
	_, isNil := v.(nilList)
	return !isNil
}

// ListFromSlice builds a proper list from a Go slice, tail-first.
func ListFromSlice(items []core.Value) core.Value {
	var result core.Value = Nil
	for i := len(items) - 1; i >= 0; i-- {
		result = NewCons(items[i], result)
	}
	return result
}

// SliceFromList flattens a proper list into a Go slice. Reports false
// if the argument is not a proper (nil-terminated) list.
func SliceFromList(v core.Value) ([]core.Value, bool) {
	var items []core.Value
	cur := v
	for {
		if _, isNil := cur.(nilList); isNil {
			return items, true
		}
		cell, ok := cur.(*Cons)
		if !ok {
			return items, false
		}
		items = append(items, cell.Head)
		cur = cell.Tail
	}
}
