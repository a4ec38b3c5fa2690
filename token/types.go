package token

import (
	"errors"
	"fmt"
)

type TokenType int

const (
	TNull TokenType = iota
	TTrue
	TFalse
	TInteger
	TFloat
	TString
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TComma
	TColon
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TNull:    "TNull",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TInteger: "TInteger",
		TFloat:   "TFloat",
		TString:  "TString",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TComma:   "TComma",
		TColon:   "TColon",
	}[t]
}

// Token is one classified lexical unit with its raw text. TString tokens
// keep their surrounding quotes in Bytes.
type Token struct {
	Type  TokenType
	Pos   Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	if t.Type == TString {
		return Unquote(t.Bytes)
	}
	return string(t.Bytes)
}

var ErrScan = errors.New("scan error")

type ScanErr struct {
	Err error
	Pos Pos
}

func (e *ScanErr) Unwrap() error {
	return e.Err
}

func NewScanErr(e error, p Pos) *ScanErr {
	return &ScanErr{Err: e, Pos: p}
}

func (e *ScanErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
