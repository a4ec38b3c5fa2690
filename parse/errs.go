package parse

import "errors"

var (
	ErrParse      = errors.New("parse error")
	ErrEndOfInput = errors.New("unexpected end of input")
	ErrTooDeep    = errors.New("too deeply nested")
)
