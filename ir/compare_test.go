package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want int
	}{
		// kind ranking: Null < Bool < Integer < Float < String < Array < Dict
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Integer", FromBool(true), FromInt(0), -1},
		{"Integer < Float", FromInt(9), FromFloat(0), -1},
		{"Float < String", FromFloat(9), FromString(""), -1},
		{"String < Array", FromString("z"), FromSlice(nil), -1},
		{"Array < Dict", FromSlice(nil), FromMap(nil), -1},

		{"null == null", Null(), Null(), 0},
		{"false < true", FromBool(false), FromBool(true), -1},
		{"int order", FromInt(1), FromInt(2), -1},
		{"float order", FromFloat(1.5), FromFloat(2.5), -1},
		{"string order", FromString("a"), FromString("b"), -1},

		{"empty arrays equal", FromSlice(nil), FromSlice(nil), 0},
		{"shorter array first", FromSlice([]*Node{FromInt(9)}),
			FromSlice([]*Node{FromInt(1), FromInt(2)}), -1},
		{"array elementwise", FromSlice([]*Node{FromInt(1)}),
			FromSlice([]*Node{FromInt(2)}), -1},

		{"empty dicts equal", FromMap(nil), FromMap(nil), 0},
		{"dict key order", FromMap(map[string]*Node{"a": Null()}),
			FromMap(map[string]*Node{"b": Null()}), -1},
		{"dict value order", FromMap(map[string]*Node{"a": FromInt(1)}),
			FromMap(map[string]*Node{"a": FromInt(2)}), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare() = %v, want %v", got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.want)
			}
		})
	}
}

func TestEqualIgnoresInsertionOrder(t *testing.T) {
	a := FromMap(nil)
	a.Put("x", FromInt(1))
	a.Put("y", FromInt(2))
	b := FromMap(nil)
	b.Put("y", FromInt(2))
	b.Put("x", FromInt(1))
	if !Equal(a, b) {
		t.Error("dicts with same entries in different insertion order differ")
	}
}
