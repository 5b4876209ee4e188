package values

import (
	"cmp"
	"reflect"
)

// Comparer is implemented by element types with a natural order. Compare
// returns a negative number, zero or a positive number like cmp.Compare.
type Comparer[T any] interface {
	Compare(other T) int
}

// conditionallyOrdered is implemented by wrappers whose order depends on the
// wrapped type.
type conditionallyOrdered interface {
	ordered() bool
}

// orderOf returns the natural order of E, if it has one. Comparer wins over
// the underlying kind, and every string, integer or float kind is ordered.
func orderOf[E any]() (func(a, b E) int, bool) {
	var zero E
	if c, ok := any(zero).(conditionallyOrdered); ok && !c.ordered() {
		return nil, false
	}
	if _, ok := any(zero).(Comparer[E]); ok {
		return func(a, b E) int { return any(a).(Comparer[E]).Compare(b) }, true
	}
	switch reflect.TypeFor[E]().Kind() {
	case reflect.String:
		return func(a, b E) int {
			return cmp.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
		}, true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b E) int {
			return cmp.Compare(reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int())
		}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b E) int {
			return cmp.Compare(reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint())
		}, true
	case reflect.Float32, reflect.Float64:
		return func(a, b E) int {
			return cmp.Compare(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())
		}, true
	}
	return nil, false
}

// Orderable reports whether containers of E offer sorted.
func Orderable[E any]() bool {
	_, ok := orderOf[E]()
	return ok
}
