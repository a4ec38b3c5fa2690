package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sjson-format/go-sjson/ir"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		n    *ir.Node
		want string
	}{
		{"null", ir.Null(), "null"},
		{"true", ir.FromBool(true), "true"},
		{"false", ir.FromBool(false), "false"},
		{"int", ir.FromInt(-42), "-42"},
		{"float", ir.FromFloat(1.5), "1.5"},
		{"whole-float", ir.FromFloat(2), "2.0"},
		{"big-float", ir.FromFloat(1e14), "1e+14"},
		{"string", ir.FromString("hi"), `"hi"`},
		{"empty-string", ir.FromString(""), `""`},
		{"empty-dict", ir.FromMap(nil), "{}"},
		{"empty-array", ir.FromSlice(nil), "[]"},
		{
			"array",
			ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}),
			"[\n  1,\n  2\n]",
		},
		{
			"dict-sorted-keys",
			ir.FromMap(map[string]*ir.Node{
				"zeta":  ir.FromInt(1),
				"alpha": ir.FromInt(2),
			}),
			"{\n  \"alpha\": 2,\n  \"zeta\": 1\n}",
		},
		{
			"nested",
			ir.FromMap(map[string]*ir.Node{
				"a": ir.FromSlice([]*ir.Node{
					ir.FromMap(map[string]*ir.Node{"b": ir.Null()}),
				}),
			}),
			"{\n  \"a\": [\n    {\n      \"b\": null\n    }\n  ]\n}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := Encode(tt.n, buf); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestEncodeIndent(t *testing.T) {
	n := ir.FromMap(map[string]*ir.Node{"a": ir.FromInt(1)})
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf, Indent(4)); err != nil {
		t.Fatal(err)
	}
	want := "{\n    \"a\": 1\n}"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeNoTrailingNewline(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(ir.FromSlice([]*ir.Node{ir.Null()}), buf); err != nil {
		t.Fatal(err)
	}
	if strings.HasSuffix(buf.String(), "\n") {
		t.Error("output has a trailing newline")
	}
}

func TestEncodeMaxDepth(t *testing.T) {
	n := ir.FromSlice(nil)
	root := n
	for i := 0; i < 8; i++ {
		inner := ir.FromSlice(nil)
		n.Values = append(n.Values, inner)
		n = inner
	}
	buf := bytes.NewBuffer(nil)
	err := Encode(root, buf, MaxDepth(4))
	if !errors.Is(err, ErrTooDeep) {
		t.Errorf("error %v does not wrap ErrTooDeep", err)
	}
}

func TestEncodeSelfReferential(t *testing.T) {
	// a cycle cannot serialize; the depth bound turns it into an error
	n := ir.FromSlice(nil)
	n.Values = append(n.Values, n)
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf); !errors.Is(err, ErrTooDeep) {
		t.Errorf("error %v does not wrap ErrTooDeep", err)
	}
}

func TestEncodeColors(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	n := ir.FromMap(map[string]*ir.Node{"a": ir.FromInt(1)})
	if err := Encode(n, buf, EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "1") {
		t.Errorf("colored output lost content: %q", buf.String())
	}
}

func TestMustString(t *testing.T) {
	got := MustString(ir.FromSlice([]*ir.Node{ir.FromInt(3)}))
	if got != "[\n  3\n]" {
		t.Errorf("MustString = %q", got)
	}
}
