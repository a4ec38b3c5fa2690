package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes by kind and payload,
// recursively. The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Dict entries are compared in key order, so source/insertion order never
// affects the result.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	rankA := rank(a.Kind)
	rankB := rank(b.Kind)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Kind {
	case NullKind:
		return 0
	case BoolKind:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntegerKind:
		return cmp.Compare(a.Int32, b.Int32)
	case FloatKind:
		return cmp.Compare(a.Float32, b.Float32)
	case StringKind:
		return strings.Compare(a.String, b.String)
	case ArrayKind:
		return compareArrays(a, b)
	case DictKind:
		return compareDicts(a, b)
	}
	return 0
}

func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank orders kinds: Null < Bool < Integer < Float < String < Array < Dict.
func rank(k Kind) int {
	switch k {
	case NullKind:
		return 0
	case BoolKind:
		return 1
	case IntegerKind:
		return 2
	case FloatKind:
		return 3
	case StringKind:
		return 4
	case ArrayKind:
		return 5
	case DictKind:
		return 6
	}
	return 100
}

func compareArrays(a, b *Node) int {
	if c := cmp.Compare(len(a.Values), len(b.Values)); c != 0 {
		return c
	}
	for i := range a.Values {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return 0
}

func compareDicts(a, b *Node) int {
	aKeys := a.Keys()
	bKeys := b.Keys()
	if c := cmp.Compare(len(aKeys), len(bKeys)); c != 0 {
		return c
	}
	for i, k := range aKeys {
		if c := strings.Compare(k, bKeys[i]); c != 0 {
			return c
		}
	}
	for _, k := range aKeys {
		if c := Compare(a.Fields[k], b.Fields[k]); c != 0 {
			return c
		}
	}
	return 0
}
