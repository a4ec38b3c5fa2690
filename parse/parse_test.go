package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/sjson-format/go-sjson/ir"
	"github.com/sjson-format/go-sjson/token"
)

func TestParseOK(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *ir.Node
	}{
		{"null", `null`, ir.Null()},
		{"true", `true`, ir.FromBool(true)},
		{"false", `false`, ir.FromBool(false)},
		{"integer", `22`, ir.FromInt(22)},
		{"negative", `-7`, ir.FromInt(-7)},
		{"float", `1.5`, ir.FromFloat(1.5)},
		{"exp", `1e14`, ir.FromFloat(1e14)},
		{"string", `"hello"`, ir.FromString("hello")},
		{"empty-array", `[]`, ir.FromSlice(nil)},
		{"empty-dict", `{}`, ir.FromMap(nil)},
		{"array", `[1, 2, 3]`, ir.FromSlice([]*ir.Node{
			ir.FromInt(1), ir.FromInt(2), ir.FromInt(3),
		})},
		{"nested-array", `[[1], [2, [3]]]`, ir.FromSlice([]*ir.Node{
			ir.FromSlice([]*ir.Node{ir.FromInt(1)}),
			ir.FromSlice([]*ir.Node{
				ir.FromInt(2),
				ir.FromSlice([]*ir.Node{ir.FromInt(3)}),
			}),
		})},
		{"dict", `{"a": 1, "b": true}`, ir.FromMap(map[string]*ir.Node{
			"a": ir.FromInt(1),
			"b": ir.FromBool(true),
		})},
		{"nested-dict", `{"a": {"b": [null]}}`, ir.FromMap(map[string]*ir.Node{
			"a": ir.FromMap(map[string]*ir.Node{
				"b": ir.FromSlice([]*ir.Node{ir.Null()}),
			}),
		})},
		{"multiline", "{\n  \"a\": 1, // first\n  \"b\": 2\n}", ir.FromMap(map[string]*ir.Node{
			"a": ir.FromInt(1),
			"b": ir.FromInt(2),
		})},
		{"dup-key-last-wins", `{"a": 1, "a": 2}`, ir.FromMap(map[string]*ir.Node{
			"a": ir.FromInt(2),
		})},
		{"trailing-tokens-ignored", `1 2 3`, ir.FromInt(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseString(tt.in)
			if err != nil {
				t.Fatalf("ParseString(%q): %v", tt.in, err)
			}
			if !ir.Equal(got, tt.want) {
				t.Errorf("ParseString(%q) = %v, want %v", tt.in, got.Kind, tt.want.Kind)
			}
		})
	}
}

func TestParseErrs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		e    error
	}{
		{"empty", ``, ErrEndOfInput},
		{"only-comment", `// nothing here`, ErrEndOfInput},
		{"open-array", `[1, 2`, ErrEndOfInput},
		{"open-dict", `{"a": 1`, ErrEndOfInput},
		{"dangling-key", `{"a":`, ErrEndOfInput},
		{"missing-comma-array", `[1 2]`, ErrParse},
		{"missing-comma-dict", `{"a": 1 "b": 2}`, ErrParse},
		{"non-string-key", `{1: 2}`, ErrParse},
		{"missing-colon", `{"a" 1}`, ErrParse},
		{"leading-comma", `[, 1]`, ErrParse},
		{"colon-as-value", `[:]`, ErrParse},
		{"scan-error", `[1, @]`, token.ErrScan},
		{"big-integer", `3000000000`, ErrParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.in)
			if err == nil {
				t.Fatalf("ParseString(%q): no error", tt.in)
			}
			if !errors.Is(err, tt.e) {
				t.Errorf("error %v does not wrap %v", err, tt.e)
			}
		})
	}
}

func TestParseMaxDepth(t *testing.T) {
	deep := strings.Repeat("[", DefaultMaxDepth+1) +
		strings.Repeat("]", DefaultMaxDepth+1)
	if _, err := ParseString(deep); !errors.Is(err, ErrTooDeep) {
		t.Errorf("error %v does not wrap ErrTooDeep", err)
	}

	if _, err := ParseString("[[[[1]]]]", WithMaxDepth(4)); err != nil {
		t.Errorf("depth 4 at limit 4: %v", err)
	}
	if _, err := ParseString("[[[[[1]]]]]", WithMaxDepth(4)); !errors.Is(err, ErrTooDeep) {
		t.Errorf("error %v does not wrap ErrTooDeep", err)
	}
}

func TestParseShares(t *testing.T) {
	n, err := ParseString(`{"a": [1]}`)
	if err != nil {
		t.Fatal(err)
	}
	arr := n.Get("a")
	arr.Values[0].SetString("changed")
	got, err := n.Get("a").Values[0].AsString()
	if err != nil {
		t.Fatal(err)
	}
	if got != "changed" {
		t.Errorf("child mutation not observed through parent, got %q", got)
	}
}
