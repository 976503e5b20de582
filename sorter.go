package slicepager

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"github.com/samber/lo"
)

// KeyFunc maps an element to the value it is sorted by. Returned values are
// compared with Compare.
type KeyFunc[T any] func(T) any

func identity[T any](item T) any {
	return item
}

// Sort returns a stably sorted copy of items. The input slice is never
// modified.
//
// A nil key compares the elements themselves. With reverse set the
// comparison is negated, so elements with equal keys keep their original
// relative order in both directions:
//
//	Sort(Sort(x, key, true), key, false) == Sort(x, key, false)
//
// Returns an error wrapping ErrTypeMismatch when two keys cannot be compared.
func Sort[T any](items []T, key KeyFunc[T], reverse bool) ([]T, error) {
	if key == nil {
		key = identity[T]
	}

	// Keys are computed once per element, not once per comparison.
	keys := lo.Map(items, func(item T, _ int) any { return key(item) })
	order := lo.Range(len(items))

	var cmpErr error
	slices.SortStableFunc(order, func(i, j int) int {
		c, err := Compare(keys[i], keys[j])
		if err != nil {
			if cmpErr == nil {
				cmpErr = err
			}
			return 0
		}

		return lo.Ternary(reverse, -c, c)
	})
	if cmpErr != nil {
		return nil, fmt.Errorf("cannot sort: %w", cmpErr)
	}

	return lo.Map(order, func(i int, _ int) T { return items[i] }), nil
}

// SortBy is the statically typed counterpart of Sort. It cannot fail.
func SortBy[T any, K cmp.Ordered](items []T, key func(T) K, reverse bool) []T {
	ret := slices.Clone(items)
	slices.SortStableFunc(ret, func(a, b T) int {
		c := cmp.Compare(key(a), key(b))
		return lo.Ternary(reverse, -c, c)
	})

	return ret
}

type valueClass int

const (
	classNone valueClass = iota
	classInt
	classUint
	classFloat
	classString
	classBool
)

func classify(v reflect.Value) valueClass {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return classInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return classUint
	case reflect.Float32, reflect.Float64:
		return classFloat
	case reflect.String:
		return classString
	case reflect.Bool:
		return classBool
	default:
		return classNone
	}
}

// Compare orders two dynamically typed values and returns -1, 0 or +1.
//
// Supported combinations:
//   - any two numbers (signed, unsigned and floating point may be mixed);
//   - two strings, or two bools (false < true), including named types;
//   - values whose type has a method Compare(other) int accepting the other
//     value, such as time.Time.
//
// Anything else yields an error wrapping ErrTypeMismatch.
func Compare(a, b any) (int, error) {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return 0, fmt.Errorf("%w: cannot compare %T with %T", ErrTypeMismatch, a, b)
	}

	if c, ok := compareByMethod(va, vb); ok {
		return c, nil
	}

	ca, cb := classify(va), classify(vb)
	switch {
	case ca == classString && cb == classString:
		return cmp.Compare(va.String(), vb.String()), nil
	case ca == classBool && cb == classBool:
		return cmp.Compare(lo.Ternary(va.Bool(), 1, 0), lo.Ternary(vb.Bool(), 1, 0)), nil
	case isNumeric(ca) && isNumeric(cb):
		return compareNumbers(va, ca, vb, cb), nil
	}

	return 0, fmt.Errorf("%w: cannot compare %T with %T", ErrTypeMismatch, a, b)
}

func isNumeric(c valueClass) bool {
	return c == classInt || c == classUint || c == classFloat
}

func compareNumbers(va reflect.Value, ca valueClass, vb reflect.Value, cb valueClass) int {
	switch {
	case ca == classInt && cb == classInt:
		return cmp.Compare(va.Int(), vb.Int())
	case ca == classUint && cb == classUint:
		return cmp.Compare(va.Uint(), vb.Uint())
	case ca == classInt && cb == classUint:
		if va.Int() < 0 {
			return -1
		}
		return cmp.Compare(uint64(va.Int()), vb.Uint())
	case ca == classUint && cb == classInt:
		return -compareNumbers(vb, cb, va, ca)
	default:
		return cmp.Compare(toFloat(va, ca), toFloat(vb, cb))
	}
}

func toFloat(v reflect.Value, c valueClass) float64 {
	switch c {
	case classInt:
		return float64(v.Int())
	case classUint:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

var _intType = reflect.TypeOf(0)

func compareByMethod(va, vb reflect.Value) (int, bool) {
	m := va.MethodByName("Compare")
	if !m.IsValid() {
		return 0, false
	}

	mt := m.Type()
	if mt.NumIn() != 1 || mt.NumOut() != 1 || mt.Out(0) != _intType || !vb.Type().AssignableTo(mt.In(0)) {
		return 0, false
	}

	return cmp.Compare(m.Call([]reflect.Value{vb})[0].Int(), 0), true
}
