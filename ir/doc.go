// Package ir provides the in-memory representation of sjson documents.
//
// # Node structure
//
// A Node represents a single value as a tagged union: the Kind field names
// the one live payload, and mutating operations always replace the tag and
// payload together. Kinds are:
//
//   - NullKind: null
//   - BoolKind: boolean (Bool)
//   - IntegerKind: signed 32-bit integer (Int32)
//   - FloatKind: 32-bit float (Float32)
//   - StringKind: string (String)
//   - ArrayKind: ordered elements (Values)
//   - DictKind: string-keyed entries (Fields)
//
// # Sharing
//
// Array elements and dictionary entries hold *Node references, and those
// references may be shared: a child obtained through navigation aliases the
// node stored in its parent, it is not a snapshot. In-place mutation through
// Set and the SetX methods preserves node identity, so every alias observes
// the new value. A node is released by the garbage collector when its last
// reference is dropped. Because children may be shared by several parents,
// nodes do not track a parent pointer.
//
// # Creating nodes
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromMap(map[string]*ir.Node{"key": ir.FromString("value")})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Checked access
//
// The AsX accessors return the payload only when the live kind matches and
// an error wrapping ErrWrongKind otherwise; they never fall back to a zero
// value.
//
// # Thread safety
//
// Node trees are not safe for concurrent mutation: shared children are plain
// references with no synchronization. Callers needing cross-goroutine access
// must synchronize or Clone.
package ir
