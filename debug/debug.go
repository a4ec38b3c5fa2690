// Package debug provides env-var gated diagnostics for the sjson packages.
//
// Diagnostics are purely observational: operations report their outcomes
// through returned errors and flags, and this package only adds stderr
// visibility on top.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Parse  bool
	Vivify bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("SJSON_DEBUG_TOKENS")
	d.Parse = boolEnv("SJSON_DEBUG_PARSE")
	d.Vivify = boolEnv("SJSON_DEBUG_VIVIFY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Parse() bool {
	return d.Parse
}
func Vivify() bool {
	return d.Vivify
}
