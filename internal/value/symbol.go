package value

import (
	"sync"

	"github.com/vellum-lang/vellum/internal/core"
)

// Symbol is an interned identifier: two symbols with the same text
// are always the identical Go value, giving O(1) equality. The reader
// makes a symbol of any bare literal that is not a number, a lone
// operator character or a reserved word; it does not apply
// ValidSymbolText's word-character rule. The eight operator
// characters are read as Operator specials, never as symbols.
type Symbol struct {
	text string
}

var (
	internMu sync.Mutex
	interned = map[string]*Symbol{}
)

// Intern returns the unique *Symbol for the given text, creating it
// on first use. The table only ever grows — symbols are never
// collected.
func Intern(text string) *Symbol {
	internMu.Lock()
	defer internMu.Unlock()
	if s, ok := interned[text]; ok {
		return s
	}
	s := &Symbol{text: text}
	interned[text] = s
	return s
}

func (s *Symbol) Kind() core.Kind { return core.KindSymbol }
func (s *Symbol) String() string  { return s.text }
func (s *Symbol) Text() string    { return s.text }

func (s *Symbol) Equal(other core.Value) bool {
	o, ok := other.(*Symbol)
	return ok && s == o
}

// ValidSymbolText reports whether a string is a legal bare symbol:
// non-empty, not digit-led, and built only from word characters.
func ValidSymbolText(s string) bool {
	if len(s) == 0 {
		return false
	}
	if s[0] >= '0' && s[0] <= '9' {
		return false
	}
	for _, r := range s {
		if !isSymbolChar(r) {
			return false
		}
	}
	return true
}

func isSymbolChar(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '-' || r == '_' || r == '?' || r == '!'
}
