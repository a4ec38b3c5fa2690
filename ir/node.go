package ir

import (
	"fmt"
	"maps"
	"slices"
)

// Node is one value in a document tree. Kind names the live payload; all
// other payload fields are zero. Children in Values and Fields are shared
// references, not copies.
type Node struct {
	Kind Kind

	Bool    bool
	Int32   int32
	Float32 float32
	String  string
	Values  []*Node
	Fields  map[string]*Node
}

func Null() *Node {
	return &Node{Kind: NullKind}
}

func FromBool(v bool) *Node {
	return &Node{Kind: BoolKind, Bool: v}
}

func FromInt(v int32) *Node {
	return &Node{Kind: IntegerKind, Int32: v}
}

func FromFloat(v float32) *Node {
	return &Node{Kind: FloatKind, Float32: v}
}

func FromString(v string) *Node {
	return &Node{Kind: StringKind, String: v}
}

func FromSlice(vs []*Node) *Node {
	if vs == nil {
		vs = []*Node{}
	}
	return &Node{Kind: ArrayKind, Values: vs}
}

func FromMap(m map[string]*Node) *Node {
	if m == nil {
		m = map[string]*Node{}
	}
	return &Node{Kind: DictKind, Fields: m}
}

// reset clears every payload so the tag and live payload stay consistent.
func (n *Node) reset(k Kind) {
	*n = Node{Kind: k}
}

func (n *Node) SetNull() {
	n.reset(NullKind)
}

func (n *Node) SetBool(v bool) {
	n.reset(BoolKind)
	n.Bool = v
}

func (n *Node) SetInt(v int32) {
	n.reset(IntegerKind)
	n.Int32 = v
}

func (n *Node) SetFloat(v float32) {
	n.reset(FloatKind)
	n.Float32 = v
}

func (n *Node) SetString(v string) {
	n.reset(StringKind)
	n.String = v
}

func (n *Node) SetArray(vs []*Node) {
	n.reset(ArrayKind)
	if vs == nil {
		vs = []*Node{}
	}
	n.Values = vs
}

func (n *Node) SetDict(m map[string]*Node) {
	n.reset(DictKind)
	if m == nil {
		m = map[string]*Node{}
	}
	n.Fields = m
}

// Set overwrites n's tag and payload with src's, preserving n's identity:
// aliases of n observe the new value. Children of src are adopted by
// reference, not copied.
func (n *Node) Set(src *Node) {
	*n = *src
}

func kindErr(want, got Kind) error {
	return fmt.Errorf("%w: want %s, have %s", ErrWrongKind, want, got)
}

func (n *Node) AsBool() (bool, error) {
	if n.Kind != BoolKind {
		return false, kindErr(BoolKind, n.Kind)
	}
	return n.Bool, nil
}

func (n *Node) AsInt() (int32, error) {
	if n.Kind != IntegerKind {
		return 0, kindErr(IntegerKind, n.Kind)
	}
	return n.Int32, nil
}

func (n *Node) AsFloat() (float32, error) {
	if n.Kind != FloatKind {
		return 0, kindErr(FloatKind, n.Kind)
	}
	return n.Float32, nil
}

func (n *Node) AsString() (string, error) {
	if n.Kind != StringKind {
		return "", kindErr(StringKind, n.Kind)
	}
	return n.String, nil
}

func (n *Node) Elems() ([]*Node, error) {
	if n.Kind != ArrayKind {
		return nil, kindErr(ArrayKind, n.Kind)
	}
	return n.Values, nil
}

func (n *Node) Entries() (map[string]*Node, error) {
	if n.Kind != DictKind {
		return nil, kindErr(DictKind, n.Kind)
	}
	return n.Fields, nil
}

// Len reports the element count for arrays and the entry count for dicts,
// and 0 for every other kind.
func (n *Node) Len() int {
	switch n.Kind {
	case ArrayKind:
		return len(n.Values)
	case DictKind:
		return len(n.Fields)
	default:
		return 0
	}
}

// Get returns the dict entry under field, or nil when n is not a dict or
// has no such entry.
func (n *Node) Get(field string) *Node {
	if n.Kind != DictKind {
		return nil
	}
	return n.Fields[field]
}

func (n *Node) Put(field string, child *Node) error {
	if n.Kind != DictKind {
		return kindErr(DictKind, n.Kind)
	}
	n.Fields[field] = child
	return nil
}

func (n *Node) Append(child *Node) error {
	if n.Kind != ArrayKind {
		return kindErr(ArrayKind, n.Kind)
	}
	n.Values = append(n.Values, child)
	return nil
}

// Keys returns a dict's keys in sorted order, nil otherwise.
func (n *Node) Keys() []string {
	if n.Kind != DictKind {
		return nil
	}
	return slices.Sorted(maps.Keys(n.Fields))
}

// Clone returns a deep copy sharing no nodes with n.
func (n *Node) Clone() *Node {
	res := &Node{
		Kind:    n.Kind,
		Bool:    n.Bool,
		Int32:   n.Int32,
		Float32: n.Float32,
		String:  n.String,
	}
	if n.Values != nil {
		res.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			res.Values[i] = v.Clone()
		}
	}
	if n.Fields != nil {
		res.Fields = make(map[string]*Node, len(n.Fields))
		for k, v := range n.Fields {
			res.Fields[k] = v.Clone()
		}
	}
	return res
}

// Visit walks the tree rooted at n, calling f before and after each node's
// children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
		for _, k := range n.Keys() {
			if err := n.Fields[k].Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
