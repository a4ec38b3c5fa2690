package encode

import "errors"

var (
	ErrEncoding = errors.New("encoding error")
	ErrTooDeep  = errors.New("too deeply nested")
)
