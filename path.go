package sjson

import (
	"fmt"
	"strconv"
	"strings"
)

// Paths address nodes with dictionary-key and array-index syntax: fields
// separated by `.`, indexes in `[n]`, e.g. "users[2].name".
type segment struct {
	field   string
	index   int
	isIndex bool
}

func splitPath(p string) ([]segment, error) {
	var segs []segment
	i := 0
	for i < len(p) {
		switch p[i] {
		case '.':
			i++
		case '[':
			j := strings.IndexByte(p[i:], ']')
			if j < 0 {
				return nil, fmt.Errorf("unbalanced `[` in path %q", p)
			}
			n, err := strconv.Atoi(p[i+1 : i+j])
			if err != nil {
				return nil, fmt.Errorf("bad index in path %q: %v", p, err)
			}
			segs = append(segs, segment{index: n, isIndex: true})
			i += j + 1
		default:
			j := strings.IndexAny(p[i:], ".[")
			if j < 0 {
				j = len(p) - i
			}
			segs = append(segs, segment{field: p[i : i+j]})
			i += j
		}
	}
	return segs, nil
}

// At navigates to the node addressed by path without modifying the tree.
// The returned Document aliases the addressed node.
func (d *Document) At(path string) (*Document, error) {
	segs, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	node := d.node
	for _, seg := range segs {
		if seg.isIndex {
			elems, err := node.Elems()
			if err != nil {
				return nil, err
			}
			if seg.index < 0 || seg.index >= len(elems) {
				return nil, fmt.Errorf("index out of bounds %d (len %d)",
					seg.index, len(elems))
			}
			node = elems[seg.index]
			continue
		}
		entries, err := node.Entries()
		if err != nil {
			return nil, err
		}
		child, ok := entries[seg.field]
		if !ok {
			return nil, fmt.Errorf("no entry %q", seg.field)
		}
		node = child
	}
	return &Document{node: node}, nil
}

// Ensure navigates to the node addressed by path, auto-vivifying missing
// dictionary entries and array elements along the way. The returned flag
// reports whether any node was created.
func (d *Document) Ensure(path string) (*Document, bool, error) {
	segs, err := splitPath(path)
	if err != nil {
		return New(), false, err
	}
	cur := d
	created := false
	for _, seg := range segs {
		var c bool
		if seg.isIndex {
			cur, c, err = cur.Index(seg.index)
		} else {
			cur, c, err = cur.Key(seg.field)
		}
		if err != nil {
			return New(), created, err
		}
		created = created || c
	}
	return cur, created, nil
}

// SetPath assigns v to the node addressed by path, vivifying as needed.
func (d *Document) SetPath(path string, v any) error {
	dst, _, err := d.Ensure(path)
	if err != nil {
		return err
	}
	return dst.Set(v)
}
