// Package encode writes ir nodes as pretty-printed sjson text.
//
// Output uses two spaces of additional indentation per nesting level by
// default, dictionary entries appear in sorted key order regardless of
// source order, and no trailing newline is appended.
package encode
