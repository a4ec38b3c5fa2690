package ir

import "errors"

var ErrWrongKind = errors.New("wrong-kind access")
