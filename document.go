package sjson

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sjson-format/go-sjson/debug"
	"github.com/sjson-format/go-sjson/encode"
	"github.com/sjson-format/go-sjson/ir"
	"github.com/sjson-format/go-sjson/parse"
)

var ErrSource = errors.New("source unavailable")

// Document is a handle holding one shared reference into a value tree. The
// held node is the Document's root from the handle's perspective; it need
// not be the tree's true root.
type Document struct {
	node *ir.Node
}

// New returns a Document holding a fresh empty dictionary.
func New() *Document {
	return &Document{node: ir.FromMap(nil)}
}

// Wrap returns a Document sharing node by reference.
func Wrap(node *ir.Node) *Document {
	if node == nil {
		node = ir.Null()
	}
	return &Document{node: node}
}

func Parse(text string, opts ...parse.ParseOption) (*Document, error) {
	return ParseBytes([]byte(text), opts...)
}

func ParseBytes(d []byte, opts ...parse.ParseOption) (*Document, error) {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return &Document{node: node}, nil
}

// Node returns the held node itself, not a copy.
func (d *Document) Node() *ir.Node {
	return d.node
}

func (d *Document) Kind() ir.Kind {
	return d.node.Kind
}

// Key navigates to the dictionary entry under key. A missing key is created
// as a Null child before returning (auto-vivification); the returned flag
// reports whether any node was created. A held node of Null kind is first
// promoted in place to an empty dictionary so that vivified children can be
// navigated further. Any other non-dictionary kind is an error, with the
// default empty Document returned as a no-crash fallback.
func (d *Document) Key(key string) (*Document, bool, error) {
	vivified := false
	switch d.node.Kind {
	case ir.DictKind:
	case ir.NullKind:
		d.node.SetDict(nil)
		vivified = true
	default:
		return New(), false, fmt.Errorf("%w: key %q on %s node",
			ir.ErrWrongKind, key, d.node.Kind)
	}
	if child, ok := d.node.Fields[key]; ok {
		return &Document{node: child}, vivified, nil
	}
	child := ir.Null()
	d.node.Fields[key] = child
	if debug.Vivify() {
		debug.Logf("vivify: new null entry under key %q\n", key)
	}
	return &Document{node: child}, true, nil
}

// Index navigates to the array element at i. An array shorter than i+1 is
// grown by appending Null elements (auto-vivification); the returned flag
// reports whether the array grew. A held node of Null kind is first promoted
// in place to an empty array. Any other non-array kind, or a negative index,
// is an error with the default empty Document as fallback.
func (d *Document) Index(i int) (*Document, bool, error) {
	if i < 0 {
		return New(), false, fmt.Errorf("negative index %d", i)
	}
	vivified := false
	switch d.node.Kind {
	case ir.ArrayKind:
	case ir.NullKind:
		d.node.SetArray(nil)
		vivified = true
	default:
		return New(), false, fmt.Errorf("%w: index %d on %s node",
			ir.ErrWrongKind, i, d.node.Kind)
	}
	for len(d.node.Values) <= i {
		d.node.Values = append(d.node.Values, ir.Null())
		vivified = true
	}
	if vivified && debug.Vivify() {
		debug.Logf("vivify: array grown to %d elements\n", len(d.node.Values))
	}
	return &Document{node: d.node.Values[i]}, vivified, nil
}

// Set overwrites the held node's kind and payload in place. Every other
// Document or container entry holding a reference to the same node observes
// the new value immediately. v may be a Go scalar, []any, map[string]any,
// or an *ir.Node (adopted by reference).
func (d *Document) Set(v any) error {
	node, err := ir.FromAny(v)
	if err != nil {
		return err
	}
	d.node.Set(node)
	return nil
}

// ReadFrom resets the Document's held reference to the parse result of r's
// content. When reading fails the root is left unchanged; when scanning or
// parsing fails the root is reset to Null and the error is surfaced.
func (d *Document) ReadFrom(r io.Reader) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSource, err)
	}
	node, err := parse.Parse(src)
	if err != nil {
		d.node = ir.Null()
		return err
	}
	d.node = node
	return nil
}

func (d *Document) ReadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSource, err)
	}
	defer f.Close()
	return d.ReadFrom(f)
}

func (d *Document) WriteTo(w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(d.node, w, opts...)
}

func (d *Document) WriteFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSource, err)
	}
	defer f.Close()
	return d.WriteTo(f)
}

// Text serializes the held node to its canonical form.
func (d *Document) Text() (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(d.node, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (d *Document) String() string {
	s, err := d.Text()
	if err != nil {
		return fmt.Sprintf("<error: %v>", err)
	}
	return s
}
