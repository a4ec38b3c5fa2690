package token

import (
	"bytes"
	"fmt"

	"github.com/sjson-format/go-sjson/debug"
)

var commentMarker = []byte("//")

// Tokenize scans src and appends the resulting tokens to dst. On a scan
// error the tokens scanned so far are returned together with the error.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	lines := bytes.Split(src, []byte{'\n'})
	for li, line := range lines {
		if ci := bytes.Index(line, commentMarker); ci >= 0 {
			line = line[:ci]
		}
		var err error
		dst, err = tokenizeLine(dst, line, li+1)
		if err != nil {
			return dst, err
		}
	}
	if debug.Tokens() {
		for i := range dst {
			debug.Logf("token[%d]: %s %q\n", i, dst[i].Type, dst[i].Bytes)
		}
	}
	return dst, nil
}

func tokenizeLine(dst []Token, line []byte, ln int) ([]Token, error) {
	i := 0
	for i < len(line) {
		c := line[i]
		pos := Pos{Line: ln, Col: i + 1}
		switch {
		case isSpace(c):
			i++
		case c == '{':
			dst = append(dst, Token{Type: TLCurl, Pos: pos, Bytes: line[i : i+1]})
			i++
		case c == '}':
			dst = append(dst, Token{Type: TRCurl, Pos: pos, Bytes: line[i : i+1]})
			i++
		case c == '[':
			dst = append(dst, Token{Type: TLSquare, Pos: pos, Bytes: line[i : i+1]})
			i++
		case c == ']':
			dst = append(dst, Token{Type: TRSquare, Pos: pos, Bytes: line[i : i+1]})
			i++
		case c == ',':
			dst = append(dst, Token{Type: TComma, Pos: pos, Bytes: line[i : i+1]})
			i++
		case c == ':':
			dst = append(dst, Token{Type: TColon, Pos: pos, Bytes: line[i : i+1]})
			i++
		case c == '"':
			n, err := scanString(line[i:])
			if err != nil {
				return dst, NewScanErr(err, pos)
			}
			dst = append(dst, Token{Type: TString, Pos: pos, Bytes: line[i : i+n]})
			i += n
		case c == 't':
			n, err := scanWord(line[i:], "true")
			if err != nil {
				return dst, NewScanErr(err, pos)
			}
			dst = append(dst, Token{Type: TTrue, Pos: pos, Bytes: line[i : i+n]})
			i += n
		case c == 'f':
			n, err := scanWord(line[i:], "false")
			if err != nil {
				return dst, NewScanErr(err, pos)
			}
			dst = append(dst, Token{Type: TFalse, Pos: pos, Bytes: line[i : i+n]})
			i += n
		case c == 'n':
			n, err := scanWord(line[i:], "null")
			if err != nil {
				return dst, NewScanErr(err, pos)
			}
			dst = append(dst, Token{Type: TNull, Pos: pos, Bytes: line[i : i+n]})
			i += n
		case asciiDigit(c) || c == '+' || c == '-':
			n, isFloat, err := number(line[i:])
			if err != nil {
				return dst, NewScanErr(err, pos)
			}
			tt := TInteger
			if isFloat {
				tt = TFloat
			}
			dst = append(dst, Token{Type: tt, Pos: pos, Bytes: line[i : i+n]})
			i += n
		default:
			return dst, NewScanErr(fmt.Errorf("%w: unexpected character %q", ErrScan, c), pos)
		}
	}
	return dst, nil
}

// scanString scans a string literal at the start of d through to the next
// `"` on the same line. There are no escape sequences.
func scanString(d []byte) (int, error) {
	end := bytes.IndexByte(d[1:], '"')
	if end < 0 {
		return 0, fmt.Errorf("%w: unterminated string", ErrScan)
	}
	return end + 2, nil
}

// scanWord matches the fixed literal want by substring comparison, not
// general identifier scanning.
func scanWord(d []byte, want string) (int, error) {
	if len(d) >= len(want) && string(d[:len(want)]) == want {
		return len(want), nil
	}
	return 0, fmt.Errorf("%w: expected %q", ErrScan, want)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
