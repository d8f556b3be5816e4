package value

import (
	"github.com/ericlagergren/decimal"
	"github.com/vellum-lang/vellum/internal/core"
)

// decCtx is the shared arithmetic context: decimal128-equivalent
// precision with banker's rounding.
var decCtx = decimal.Context{
	Precision:    34,
	RoundingMode: decimal.ToNearestEven,
}

// Number is the single numeric atom of the data model: integers and
// reals share one Go type, distinguished at read time only by whether
// the underlying decimal carries a fractional part.
type Number struct {
	Big *decimal.Big
}

func NewNumberFromInt(i int64) Number {
	return Number{Big: decimal.New(i, 0)}
}

// NewNumberFromString parses a literal exactly as written, preserving
// its scale (so "1.20" round-trips distinctly from "1.2").
func NewNumberFromString(s string) (Number, bool) {
	d := new(decimal.Big)
	_, ok := d.SetString(s)
	if !ok {
		return Number{}, false
	}
	return Number{Big: d}, true
}

func NewNumberFromBig(d *decimal.Big) Number { return Number{Big: d} }

func (n Number) Kind() core.Kind { return core.KindNumber }

func (n Number) String() string {
	if n.Big == nil {
		return "0"
	}
	return n.Big.String()
}

func (n Number) Equal(other core.Value) bool {
	o, ok := other.(Number)
	if !ok {
		return false
	}
	if n.Big == nil || o.Big == nil {
		return n.Big == o.Big
	}
	return n.Big.Cmp(o.Big) == 0
}

// IsInt reports whether this number carries no fractional part.
func (n Number) IsInt() bool {
	return n.Big != nil && n.Big.IsInt()
}

func (n Number) arith(op func(z, x, y *decimal.Big) *decimal.Big, other Number) Number {
	z := new(decimal.Big)
	op(z, n.Big, other.Big)
	return Number{Big: z}
}

func (n Number) Add(other Number) Number { return n.arith(decCtx.Add, other) }
func (n Number) Sub(other Number) Number { return n.arith(decCtx.Sub, other) }
func (n Number) Mul(other Number) Number { return n.arith(decCtx.Mul, other) }
func (n Number) Quo(other Number) Number { return n.arith(decCtx.Quo, other) }
func (n Number) Rem(other Number) Number { return n.arith(decCtx.Rem, other) }

func (n Number) Cmp(other Number) int { return n.Big.Cmp(other.Big) }

func (n Number) Sqrt() Number {
	z := new(decimal.Big)
	decCtx.Sqrt(z, n.Big)
	return Number{Big: z}
}
