package compare

import (
	"reflect"
	"strings"

	"go.llib.dev/ordkit/internal/constraints"
)

// Interface defines how comparison can be implemented.
// Values of an implementing type carry their own ordering,
// which the routines in sortkit can rely on without further configuration.
//
// This pattern is useful when working with:
// 1. Custom user-defined types requiring comparison logic
// 2. Encapsulated values needing semantic comparisons
// 3. Comparison-agnostic systems (e.g., sorting algorithms)
//
// Example usage:
//
//	type MyNumber int
//
//	func (m MyNumber) Compare(other MyNumber) int {
//		if m < other {
//			return -1
//		}
//		if other < m {
//			return +1
//		}
//		return 0
//	}
type Interface[T any] interface {
	// Compare returns:
	//   -1 if receiver is less than the argument,
	//    0 if they're equal, and
	//   +1 if receiver is greater.
	//
	// Think of the result of Compare like a seesaw:
	// The side that’s lower (touching the ground) represents the smaller value.
	// The side that’s up shows the larger value — it’s higher, so it’s greater.
	//
	// Implementors must ensure consistent ordering semantics.
	Compare(T) int
}

// ShortInterface is the short spelling of Interface,
// the one the math/big types use.
type ShortInterface[T any] interface {
	// Cmp compares x and y and returns:
	//   - -1 if x  < y;
	//   -  0 if x == y;
	//   - +1 if x  > y.
	Cmp(T) int
}

// Func is the functional form of Interface.
// It must return a negative number when a sorts before b,
// zero when they are equal in order, and a positive number when a sorts after b.
// It must describe a total order, the same convention as the standard library's cmp.Compare.
type Func[T any] func(a, b T) int

// IsEqual reports whether two values are equal based on their comparison result.
func IsEqual(cmp int) bool {
	return cmp == 0
}

// IsLess reports whether the receiver is less than another value.
func IsLess(cmp int) bool {
	return cmp < 0
}

// IsLessOrEqual reports whether the receiver is less than or equal to another value.
func IsLessOrEqual(cmp int) bool {
	return cmp <= 0
}

// IsMore reports whether the receiver is greater than another value.
func IsMore(cmp int) bool {
	return 0 < cmp
}

// IsMoreOrEqual reports whether the receiver is more than or equal to another value.
func IsMoreOrEqual(cmp int) bool {
	return 0 <= cmp
}

// IsGreater reports whether the receiver is greater than another value.
func IsGreater(cmp int) bool {
	return IsMore(cmp)
}

// IsGreaterOrEqual reports whether the receiver is greater than or equal to another value.
func IsGreaterOrEqual(cmp int) bool {
	return IsMoreOrEqual(cmp)
}

func Numbers[T constraints.Number](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func Strings[S ~string](a, b S) int {
	return strings.Compare(string(a), string(b))
}

// Comparables is the Func of types that implement Interface.
func Comparables[T Interface[T]](a, b T) int {
	return a.Compare(b)
}

// Lookup returns the natural ordering of T when one can be resolved.
//
// Types implementing Interface or ShortInterface compare through their own method.
// For the rest, types of an ordered reflection kind (integers, floats, strings)
// compare by their underlying value.
// The ok report is false when T carries no resolvable ordering.
func Lookup[T any]() (_ Func[T], ok bool) {
	var v T
	if _, ok := any(v).(Interface[T]); ok {
		return func(a, b T) int {
			return any(a).(Interface[T]).Compare(b)
		}, true
	}
	if _, ok := any(v).(ShortInterface[T]); ok {
		return func(a, b T) int {
			return any(a).(ShortInterface[T]).Cmp(b)
		}, true
	}
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b T) int {
			return Numbers(reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int())
		}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b T) int {
			return Numbers(reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint())
		}, true
	case reflect.Float32, reflect.Float64:
		return func(a, b T) int {
			return Numbers(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())
		}, true
	case reflect.String:
		return func(a, b T) int {
			return Strings(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
		}, true
	default:
		return nil, false
	}
}
