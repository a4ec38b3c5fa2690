package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromAny(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want *Node
	}{
		{"nil", nil, Null()},
		{"bool", true, FromBool(true)},
		{"int", 7, FromInt(7)},
		{"int32", int32(-2), FromInt(-2)},
		{"int64", int64(1 << 20), FromInt(1 << 20)},
		{"float32", float32(1.5), FromFloat(1.5)},
		{"float64", 2.5, FromFloat(2.5)},
		{"string", "s", FromString("s")},
		{"slice", []any{1, "a"}, FromSlice([]*Node{FromInt(1), FromString("a")})},
		{"map", map[string]any{"k": false},
			FromMap(map[string]*Node{"k": FromBool(false)})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromAny(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if !Equal(got, tt.want) {
				t.Errorf("FromAny(%v) != %v", tt.in, tt.want)
			}
		})
	}
}

func TestFromAnyErrs(t *testing.T) {
	if _, err := FromAny(int64(1) << 40); err == nil {
		t.Error("no error for out-of-range integer")
	}
	if _, err := FromAny(struct{}{}); err == nil {
		t.Error("no error for unrepresentable type")
	}
	if _, err := FromAny([]any{struct{}{}}); err == nil {
		t.Error("no error for unrepresentable element")
	}
}

func TestFromAnyPassesNodesThrough(t *testing.T) {
	n := FromInt(1)
	got, err := FromAny(n)
	if err != nil {
		t.Fatal(err)
	}
	if got != n {
		t.Error("*Node input was copied, not passed through")
	}
}

func TestToAny(t *testing.T) {
	n := FromMap(map[string]*Node{
		"b":   FromBool(true),
		"i":   FromInt(3),
		"f":   FromFloat(1.5),
		"s":   FromString("x"),
		"nul": Null(),
		"arr": FromSlice([]*Node{FromInt(1), FromInt(2)}),
	})
	want := map[string]any{
		"b":   true,
		"i":   int32(3),
		"f":   float32(1.5),
		"s":   "x",
		"nul": nil,
		"arr": []any{int32(1), int32(2)},
	}
	got := ToAny(n)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToAny mismatch (-want +got):\n%s", diff)
	}
}
