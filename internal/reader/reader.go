// Package reader consumes tokenize.Token values and assembles them
// into the single recursive expression tree the evaluator walks,
// wrapping every top-level form in a `(do …)` application so a whole
// source text reduces to one evaluable expression.
package reader

import (
	"fmt"

	"github.com/vellum-lang/vellum/internal/core"
	"github.com/vellum-lang/vellum/internal/tokenize"
	"github.com/vellum-lang/vellum/internal/value"
	"github.com/vellum-lang/vellum/internal/verror"
)

var reservedSpecials = map[string]value.SpecialTag{
	"do":       value.SpecialDo,
	"def":      value.SpecialDefine,
	"define":   value.SpecialDefine,
	"fn":       value.SpecialFunction,
	"function": value.SpecialFunction,
	"macro":    value.SpecialMacro,
	"if":       value.SpecialIf,
	"quote":    value.SpecialQuote,
}

// Read tokenizes and parses source, returning the do-wrapped
// top-level expression.
func Read(source string) (core.Value, error) {
	tz := tokenize.NewTokenizer(source)
	p := &parser{tz: tz}
	if err := p.advance(); err != nil {
		return nil, err
	}

	var forms []core.Value
	for p.tok.Type != tokenize.TokenEOF {
		form, err := p.readForm()
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
	if len(forms) == 0 {
		return nil, verror.UnexpectedEOF()
	}

	doSym := value.Special{Tag: value.SpecialDo}
	return value.NewCons(doSym, value.ListFromSlice(forms)), nil
}

type parser struct {
	tz  *tokenize.Tokenizer
	tok tokenize.Token
}

func (p *parser) advance() error {
	tok, err := p.tz.NextToken()
	if err != nil {
		return verror.ReadError(verror.IDUnexpectedChar, err.Error())
	}
	p.tok = tok
	return nil
}

// readForm reads one top-level expression: a list, a quoted form, or
// an atom.
func (p *parser) readForm() (core.Value, error) {
	switch p.tok.Type {
	case tokenize.TokenEOF:
		return nil, verror.UnexpectedEOF()
	case tokenize.TokenLParen:
		return p.readList()
	case tokenize.TokenRParen:
		return nil, verror.UnexpectedChar(')')
	case tokenize.TokenQuote:
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.readForm()
		if err != nil {
			return nil, err
		}
		quoteSym := value.Special{Tag: value.SpecialQuote}
		return value.NewCons(quoteSym, value.NewCons(inner, value.Nil)), nil
	case tokenize.TokenString:
		v := value.String(p.tok.Value)
		return v, p.advance()
	default:
		return p.readAtom()
	}
}

// readList reads `(` expr* `)`. The opening paren has already been
// seen as p.tok.
func (p *parser) readList() (core.Value, error) {
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}
	var items []core.Value
	for {
		if p.tok.Type == tokenize.TokenEOF {
			return nil, verror.UnexpectedEOF()
		}
		if p.tok.Type == tokenize.TokenRParen {
			if err := p.advance(); err != nil { // consume ')'
				return nil, err
			}
			return value.ListFromSlice(items), nil
		}
		item, err := p.readForm()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

// readAtom reads a bare literal token: a number, an operator, a
// reserved word (Special), or a plain Symbol.
func (p *parser) readAtom() (core.Value, error) {
	text := p.tok.Value
	if text == "" {
		return nil, verror.UnexpectedChar(rune(0))
	}

	if op, ok := value.OperatorFromText(text); ok {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return value.Special{Tag: value.SpecialOperator, Op: op}, nil
	}

	if looksLikeNumber(text) {
		n, ok := tryParseNumber(text)
		if !ok {
			return nil, verror.ReadError(verror.IDUnexpectedChar,
				fmt.Sprintf("malformed number literal %q", text))
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return n, nil
	}

	if tag, ok := reservedSpecials[text]; ok {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return value.Special{Tag: tag}, nil
	}

	if err := p.advance(); err != nil {
		return nil, err
	}
	return value.Intern(text), nil
}

// looksLikeNumber reports whether text is digit-led, meaning the
// reader must commit to parsing it as a number rather than silently
// falling back to Symbol on a malformed literal such as "1.2.3" —
// that shape is a parse error, not a valid symbol name.
func looksLikeNumber(text string) bool {
	return text != "" && text[0] >= '0' && text[0] <= '9'
}

// tryParseNumber recognizes a digit run with at most one '.'.
func tryParseNumber(text string) (value.Number, bool) {
	dots := 0
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch == '.' {
			dots++
			continue
		}
		if ch < '0' || ch > '9' {
			return value.Number{}, false
		}
	}
	if dots > 1 {
		return value.Number{}, false
	}
	n, ok := value.NewNumberFromString(text)
	if !ok {
		return value.Number{}, false
	}
	return n, true
}
