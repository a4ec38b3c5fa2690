// Package token turns raw sjson text into a flat token sequence.
//
// Scanning is line oriented: on every line, everything from the first `//`
// to end of line is discarded before any other processing, including a `//`
// occurring inside a string literal. This is a documented limitation of the
// format, not an attempt at JSON compatibility. String literals carry no
// escape sequences, so a raw `"` cannot appear inside a string.
//
// A scan error aborts scanning for the remainder of the input; the tokens
// accumulated up to that point are returned alongside the error as a
// best-effort partial result.
package token
