package sjson

import (
	"testing"

	"github.com/sjson-format/go-sjson/ir"
)

func TestAt(t *testing.T) {
	doc, err := Parse(`{"users": [{"name": "ada"}, {"name": "lin"}], "n": 2}`)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		path string
		want *ir.Node
	}{
		{"n", ir.FromInt(2)},
		{"users[1].name", ir.FromString("lin")},
		{"users[0]", ir.FromMap(map[string]*ir.Node{"name": ir.FromString("ada")})},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := doc.At(tt.path)
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(got.Node(), tt.want) {
				t.Errorf("At(%q) = %s", tt.path, got)
			}
		})
	}
}

func TestAtErrs(t *testing.T) {
	doc, err := Parse(`{"a": [1]}`)
	if err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{
		"missing",
		"a[1]",
		"a[0].field",
		"a[x]",
		"a[0",
	} {
		t.Run(path, func(t *testing.T) {
			if _, err := doc.At(path); err == nil {
				t.Errorf("At(%q): no error", path)
			}
		})
	}
	// At never modifies the tree
	if doc.Node().Len() != 1 {
		t.Errorf("entry count changed to %d", doc.Node().Len())
	}
}

func TestEnsure(t *testing.T) {
	doc := New()
	leaf, created, err := doc.Ensure("servers[1].host")
	if err != nil {
		t.Fatal(err)
	}
	if !created {
		t.Error("vivification not reported")
	}
	if err := leaf.Set("example.com"); err != nil {
		t.Fatal(err)
	}
	got, err := doc.At("servers[1].host")
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := got.Node().AsString(); s != "example.com" {
		t.Errorf("host = %q", s)
	}
	if servers, err := doc.At("servers"); err != nil {
		t.Fatal(err)
	} else if servers.Node().Len() != 2 {
		t.Errorf("servers len = %d, want 2", servers.Node().Len())
	}

	_, created, err = doc.Ensure("servers[1].host")
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Error("existing path reported as created")
	}
}

func TestSetPath(t *testing.T) {
	doc := New()
	if err := doc.SetPath("a.b[0]", int32(1)); err != nil {
		t.Fatal(err)
	}
	if err := doc.SetPath("a.c", "x"); err != nil {
		t.Fatal(err)
	}
	want, err := Parse(`{"a": {"b": [1], "c": "x"}}`)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(doc.Node(), want.Node()) {
		t.Errorf("document = %s", doc)
	}

	// assigning across a scalar is an error
	if err := doc.SetPath("a.c.deep", 1); err == nil {
		t.Error("no error setting below a string")
	}
}
