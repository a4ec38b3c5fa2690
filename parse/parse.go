package parse

import (
	"fmt"
	"strconv"

	"github.com/sjson-format/go-sjson/debug"
	"github.com/sjson-format/go-sjson/ir"
	"github.com/sjson-format/go-sjson/token"
)

// Parse tokenizes d and parses one root value from the token sequence.
// Tokens after the root value are ignored.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	return ParseTokens(toks, opts...)
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseTokens parses one root value from an already scanned token sequence.
func ParseTokens(toks []token.Token, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{toks: toks, opts: pOpts}
	return p.value(0)
}

type parser struct {
	toks []token.Token
	i    int
	opts *parseOpts
}

// next consumes and returns the next token; past the end of the sequence it
// is an end-of-input error.
func (p *parser) next() (*token.Token, error) {
	if p.i >= len(p.toks) {
		return nil, fmt.Errorf("%w after %d tokens", ErrEndOfInput, p.i)
	}
	t := &p.toks[p.i]
	p.i++
	return t, nil
}

// peek returns the next token without consuming it.
func (p *parser) peek() (*token.Token, error) {
	if p.i >= len(p.toks) {
		return nil, fmt.Errorf("%w after %d tokens", ErrEndOfInput, p.i)
	}
	return &p.toks[p.i], nil
}

func (p *parser) value(depth int) (*ir.Node, error) {
	if depth > p.opts.maxDepth {
		return nil, fmt.Errorf("%w: depth %d", ErrTooDeep, depth)
	}
	t, err := p.next()
	if err != nil {
		return nil, err
	}
	switch t.Type {
	case token.TNull:
		return ir.Null(), nil
	case token.TTrue:
		return ir.FromBool(true), nil
	case token.TFalse:
		return ir.FromBool(false), nil
	case token.TString:
		return ir.FromString(t.String()), nil
	case token.TInteger:
		v, err := strconv.ParseInt(string(t.Bytes), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bad integer %q (%v) %s",
				ErrParse, t.Bytes, err, t.Pos)
		}
		return ir.FromInt(int32(v)), nil
	case token.TFloat:
		v, err := strconv.ParseFloat(string(t.Bytes), 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bad float %q (%v) %s",
				ErrParse, t.Bytes, err, t.Pos)
		}
		return ir.FromFloat(float32(v)), nil
	case token.TLSquare:
		return p.array(depth + 1)
	case token.TLCurl:
		return p.dict(depth + 1)
	default:
		return nil, fmt.Errorf("%w: unexpected token %q (%s) %s",
			ErrParse, t.Bytes, t.Type, t.Pos)
	}
}

func (p *parser) array(depth int) (*ir.Node, error) {
	arr := ir.FromSlice(nil)
	for i := 0; ; i++ {
		t, err := p.peek()
		if err != nil {
			return nil, err
		}
		if t.Type == token.TRSquare {
			p.i++
			return arr, nil
		}
		if i > 0 {
			sep, err := p.next()
			if err != nil {
				return nil, err
			}
			if sep.Type != token.TComma {
				return nil, fmt.Errorf("%w: expected `,` after value in array, got %q %s",
					ErrParse, sep.Bytes, sep.Pos)
			}
		}
		elt, err := p.value(depth)
		if err != nil {
			return nil, err
		}
		arr.Values = append(arr.Values, elt)
	}
}

func (p *parser) dict(depth int) (*ir.Node, error) {
	dict := ir.FromMap(nil)
	for i := 0; ; i++ {
		t, err := p.peek()
		if err != nil {
			return nil, err
		}
		if t.Type == token.TRCurl {
			p.i++
			return dict, nil
		}
		if i > 0 {
			sep, err := p.next()
			if err != nil {
				return nil, err
			}
			if sep.Type != token.TComma {
				return nil, fmt.Errorf("%w: expected `,` after value in dictionary, got %q %s",
					ErrParse, sep.Bytes, sep.Pos)
			}
		}
		keyTok, err := p.next()
		if err != nil {
			return nil, err
		}
		if keyTok.Type != token.TString {
			return nil, fmt.Errorf("%w: expected string as key in dictionary, got %q (%s) %s",
				ErrParse, keyTok.Bytes, keyTok.Type, keyTok.Pos)
		}
		key := keyTok.String()
		col, err := p.next()
		if err != nil {
			return nil, err
		}
		if col.Type != token.TColon {
			return nil, fmt.Errorf("%w: expected `:` after key %q, got %q %s",
				ErrParse, key, col.Bytes, col.Pos)
		}
		val, err := p.value(depth)
		if err != nil {
			return nil, err
		}
		// duplicate keys resolve last-one-wins
		if _, dup := dict.Fields[key]; dup && debug.Parse() {
			debug.Logf("duplicate key %q %s, keeping last\n", key, keyTok.Pos)
		}
		dict.Fields[key] = val
	}
}
