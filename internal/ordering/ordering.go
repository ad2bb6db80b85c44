// Package ordering compares dynamically typed keys. It backs the sort
// methods of the chain wrappers, whose keys are typed any.
package ordering

import (
	"cmp"
	"fmt"
	"reflect"
)

// Compare returns -1, 0 or +1 as a is less than, equal to or greater than b.
// Both values must share a kind among the integers, unsigned integers,
// floats and strings; anything else panics.
func Compare(a, b any) int {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	ka, kb := class(va), class(vb)
	if ka == invalid || ka != kb {
		panic(fmt.Sprintf("ordering: cannot compare %T with %T", a, b))
	}
	switch ka {
	case signed:
		return cmp.Compare(va.Int(), vb.Int())
	case unsigned:
		return cmp.Compare(va.Uint(), vb.Uint())
	case float:
		return cmp.Compare(va.Float(), vb.Float())
	default:
		return cmp.Compare(va.String(), vb.String())
	}
}

// Greater reports whether a is ordered after b.
func Greater(a, b any) bool {
	return Compare(a, b) > 0
}

// Less reports whether a is ordered before b.
func Less(a, b any) bool {
	return Compare(a, b) < 0
}

// Float converts a numeric value of any integer, unsigned or float kind to
// float64. Any other kind panics.
func Float(v any) float64 {
	rv := reflect.ValueOf(v)
	switch class(rv) {
	case signed:
		return float64(rv.Int())
	case unsigned:
		return float64(rv.Uint())
	case float:
		return rv.Float()
	default:
		panic(fmt.Sprintf("ordering: %T is not numeric", v))
	}
}

type kindClass int

const (
	invalid kindClass = iota
	signed
	unsigned
	float
	text
)

func class(v reflect.Value) kindClass {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signed
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsigned
	case reflect.Float32, reflect.Float64:
		return float
	case reflect.String:
		return text
	default:
		return invalid
	}
}
