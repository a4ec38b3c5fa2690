package ir

import "fmt"

type Kind int

const (
	NullKind Kind = iota
	BoolKind
	IntegerKind
	FloatKind
	StringKind
	ArrayKind
	DictKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:    "Null",
		BoolKind:    "Bool",
		IntegerKind: "Integer",
		FloatKind:   "Float",
		StringKind:  "String",
		ArrayKind:   "Array",
		DictKind:    "Dict",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":    NullKind,
		"Bool":    BoolKind,
		"Integer": IntegerKind,
		"Float":   FloatKind,
		"String":  StringKind,
		"Array":   ArrayKind,
		"Dict":    DictKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		BoolKind,
		IntegerKind,
		FloatKind,
		StringKind,
		ArrayKind,
		DictKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case ArrayKind, DictKind:
		return false
	default:
		return true
	}
}
