// Package sjson is an in-memory document model for a JSON-like text format
// with //-to-end-of-line comments.
//
// # Format
//
// The source grammar is JSON-like: objects, arrays, quoted strings without
// escape sequences, signed 32-bit integers, 32-bit floats, true/false, and
// null. On every input line, everything from the first `//` to end of line
// is stripped before tokenization, even inside string literals. Serialized
// output is pretty-printed with two spaces per nesting level and emits
// dictionary entries in sorted key order, so round-tripping a document can
// reorder its keys; element order in arrays is preserved.
//
// # Documents
//
// A Document is a thin handle on one shared node of a value tree. Navigating
// with Key and Index returns handles that alias the child stored in the
// container, so a Set through one handle is observed by every other handle
// and container entry referencing the same node. Navigating to a missing
// dictionary key or past the end of an array creates the missing nodes
// ("auto-vivification"); this is an intentional default-creation behavior
// reported through a returned flag, never an error.
//
// # Errors
//
// Every fallible operation returns an explicit error: token.ErrScan for
// malformed input text, parse.ErrParse/parse.ErrEndOfInput for structural
// errors, ir.ErrWrongKind for payload access or navigation on a node of an
// incompatible kind, and ErrSource when an input cannot be opened or read.
//
// Documents are not safe for concurrent mutation of a shared tree.
package sjson
