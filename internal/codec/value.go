package codec

import (
	"fmt"
	"math/big"
	"time"

	"github.com/amzn/ion-go/ion"
)

// Kind is the type tag carried by a wrapped Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindDecimal
	KindTimestamp
	KindString
	KindBytes
	KindList
	KindStruct
	KindOther
)

var kindNames = [...]string{
	KindNull:      "null",
	KindBool:      "bool",
	KindInt:       "int",
	KindFloat:     "float",
	KindDecimal:   "decimal",
	KindTimestamp: "timestamp",
	KindString:    "string",
	KindBytes:     "bytes",
	KindList:      "list",
	KindStruct:    "struct",
	KindOther:     "other",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is the boxed domain object built around a raw decoded value.
// Exactly one of Scalar, Elements or Fields is meaningful, depending on Kind.
type Value struct {
	Kind     Kind
	Scalar   any
	Elements []*Value
	Fields   map[string]*Value
}

// Wrap recursively boxes a raw decoded value.
func Wrap(raw any) *Value {
	switch t := raw.(type) {
	case nil:
		return &Value{Kind: KindNull}
	case bool:
		return &Value{Kind: KindBool, Scalar: t}
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, *big.Int:
		return &Value{Kind: KindInt, Scalar: t}
	case float32, float64:
		return &Value{Kind: KindFloat, Scalar: t}
	case *ion.Decimal:
		return &Value{Kind: KindDecimal, Scalar: t}
	case time.Time, ion.Timestamp:
		return &Value{Kind: KindTimestamp, Scalar: t}
	case *ion.Timestamp:
		if t == nil {
			return &Value{Kind: KindNull}
		}
		return &Value{Kind: KindTimestamp, Scalar: *t}
	case string:
		return &Value{Kind: KindString, Scalar: t}
	case []byte:
		return &Value{Kind: KindBytes, Scalar: t}
	case *bool, *int, *int64, *float64, *string:
		return wrapPointer(t)
	case []any:
		elems := make([]*Value, len(t))
		for i, e := range t {
			elems[i] = Wrap(e)
		}
		return &Value{Kind: KindList, Elements: elems}
	case map[string]any:
		fields := make(map[string]*Value, len(t))
		for k, f := range t {
			fields[k] = Wrap(f)
		}
		return &Value{Kind: KindStruct, Fields: fields}
	case map[any]any:
		// CBOR maps may have non-string keys
		fields := make(map[string]*Value, len(t))
		for k, f := range t {
			fields[fmt.Sprint(k)] = Wrap(f)
		}
		return &Value{Kind: KindStruct, Fields: fields}
	default:
		return &Value{Kind: KindOther, Scalar: t}
	}
}

// wrapPointer boxes the target of a scalar pointer, treating nil as a typed null.
func wrapPointer(p any) *Value {
	switch t := p.(type) {
	case *bool:
		if t != nil {
			return Wrap(*t)
		}
	case *int:
		if t != nil {
			return Wrap(*t)
		}
	case *int64:
		if t != nil {
			return Wrap(*t)
		}
	case *float64:
		if t != nil {
			return Wrap(*t)
		}
	case *string:
		if t != nil {
			return Wrap(*t)
		}
	}
	return &Value{Kind: KindNull}
}
