package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sjson-format/go-sjson/ir"
	"github.com/sjson-format/go-sjson/token"
)

// DefaultMaxDepth bounds nesting so that programmatically built trees
// deeper than any parseable input cannot exhaust the call stack.
const DefaultMaxDepth = 512

type EncState struct {
	depth, indent int
	maxDepth      int

	colorKind ir.Kind
	Color     func(ir.Kind, ColorAttr, string) string
}

// Encode writes node to w. The serializer appends no trailing newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent:   2,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	if es.depth > es.maxDepth {
		return fmt.Errorf("%w: depth %d", ErrTooDeep, es.depth)
	}
	es.colorKind = node.Kind
	switch node.Kind {
	case ir.DictKind:
		return encodeDict(node, w, es)
	case ir.ArrayKind:
		return encodeArray(node, w, es)
	case ir.StringKind:
		return encodeString(node, w, es)
	case ir.IntegerKind:
		return encodeInt(node, w, es)
	case ir.FloatKind:
		return encodeFloat(node, w, es)
	case ir.BoolKind:
		return encodeBool(node, w, es)
	case ir.NullKind:
		return encodeNull(node, w, es)
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrEncoding, node.Kind)
	}
}

// Helper functions for writing

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeNL(w io.Writer, es *EncState) error {
	indentString := strings.Repeat(" ", es.indent*es.depth)
	return writeString(w, "\n"+indentString)
}

func applyColor(es *EncState, k ir.Kind, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(k, attr, v)
}

// encodeDict emits entries in sorted key order, not insertion order.
func encodeDict(node *ir.Node, w io.Writer, es *EncState) error {
	keys := node.Keys()
	if len(keys) == 0 {
		return writeString(w, applyColor(es, ir.DictKind, SepColor, "{}"))
	}
	if err := writeString(w, applyColor(es, ir.DictKind, SepColor, "{")); err != nil {
		return err
	}
	es.depth++
	for i, key := range keys {
		if err := writeNL(w, es); err != nil {
			return err
		}
		f := applyColor(es, ir.DictKind, FieldColor, token.Quote(key)) +
			applyColor(es, ir.DictKind, SepColor, ":") + " "
		if err := writeString(w, f); err != nil {
			return err
		}
		if err := encode(node.Fields[key], w, es); err != nil {
			return err
		}
		if i < len(keys)-1 {
			if err := writeString(w, applyColor(es, ir.DictKind, SepColor, ",")); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.DictKind, SepColor, "}"))
}

// encodeArray preserves element order.
func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeString(w, applyColor(es, ir.ArrayKind, SepColor, "[]"))
	}
	if err := writeString(w, applyColor(es, ir.ArrayKind, SepColor, "[")); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		if i < len(node.Values)-1 {
			if err := writeString(w, applyColor(es, ir.ArrayKind, SepColor, ",")); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.ArrayKind, SepColor, "]"))
}

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	// no escape processing: content is emitted verbatim between quotes
	v := token.Quote(node.String)
	return writeString(w, applyColor(es, ir.StringKind, ValueColor, v))
}

func encodeInt(node *ir.Node, w io.Writer, es *EncState) error {
	v := strconv.FormatInt(int64(node.Int32), 10)
	return writeString(w, applyColor(es, ir.IntegerKind, ValueColor, v))
}

func encodeFloat(node *ir.Node, w io.Writer, es *EncState) error {
	v := strconv.FormatFloat(float64(node.Float32), 'g', -1, 32)
	// keep float-typed values float-typed when read back
	if !strings.ContainsAny(v, ".eE") {
		v += ".0"
	}
	return writeString(w, applyColor(es, ir.FloatKind, ValueColor, v))
}

func encodeBool(node *ir.Node, w io.Writer, es *EncState) error {
	v := strconv.FormatBool(node.Bool)
	return writeString(w, applyColor(es, ir.BoolKind, ValueColor, v))
}

func encodeNull(node *ir.Node, w io.Writer, es *EncState) error {
	return writeString(w, applyColor(es, ir.NullKind, ValueColor, "null"))
}
