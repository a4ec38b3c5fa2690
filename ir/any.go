package ir

import (
	"fmt"
	"math"
)

// FromAny converts a plain Go value into a Node. *Node values and node
// containers pass through by reference. Integers out of the signed 32-bit
// range are an error rather than a silent truncation.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x, nil
	case bool:
		return FromBool(x), nil
	case int:
		return intNode(int64(x))
	case int32:
		return FromInt(x), nil
	case int64:
		return intNode(x)
	case float32:
		return FromFloat(x), nil
	case float64:
		return FromFloat(float32(x)), nil
	case string:
		return FromString(x), nil
	case []*Node:
		return FromSlice(x), nil
	case map[string]*Node:
		return FromMap(x), nil
	case []any:
		vs := make([]*Node, len(x))
		for i, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return FromSlice(vs), nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return FromMap(m), nil
	default:
		return nil, fmt.Errorf("cannot represent %T as a node", v)
	}
}

func intNode(v int64) (*Node, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return nil, fmt.Errorf("integer %d out of 32-bit range", v)
	}
	return FromInt(int32(v)), nil
}

// ToAny converts a Node into plain Go values: nil, bool, int32, float32,
// string, []any, and map[string]any.
func ToAny(n *Node) any {
	switch n.Kind {
	case NullKind:
		return nil
	case BoolKind:
		return n.Bool
	case IntegerKind:
		return n.Int32
	case FloatKind:
		return n.Float32
	case StringKind:
		return n.String
	case ArrayKind:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = ToAny(v)
		}
		return res
	case DictKind:
		res := make(map[string]any, len(n.Fields))
		for k, v := range n.Fields {
			res[k] = ToAny(v)
		}
		return res
	default:
		return nil
	}
}
