package sorted

import (
	"cmp"
	"math"
	"reflect"
	"strings"
)

// ByField returns a key selector reading the named field of a struct (by Go
// name or json tag) or the named entry of a string-keyed map. The selector
// reports false when the field is missing or nil, or when its value does
// not convert to K without loss.
func ByField[T any, K cmp.Ordered](name string) func(T) (K, bool) {
	kt := reflect.TypeOf((*K)(nil)).Elem()

	return func(item T) (K, bool) {
		var zero K

		v, ok := indirect(reflect.ValueOf(item))
		if !ok {
			return zero, false
		}

		var f reflect.Value

		switch v.Kind() {
		case reflect.Struct:
			f = structField(v, name)
		case reflect.Map:
			if v.Type().Key().Kind() != reflect.String {
				return zero, false
			}
			f = v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key()))
		default:
			return zero, false
		}

		f, ok = indirect(f)
		if !ok {
			return zero, false
		}

		if (kt.Kind() == reflect.String) != (f.Kind() == reflect.String) {
			return zero, false
		}

		if !f.Type().ConvertibleTo(kt) || !fits(f, kt) {
			return zero, false
		}

		return f.Convert(kt).Interface().(K), true
	}
}

// fits reports whether v converts to t without truncation, overflow or a
// change of sign.
func fits(v reflect.Value, t reflect.Type) bool {
	z := reflect.Zero(t)

	switch {
	case isInt(v.Kind()):
		x := v.Int()
		switch {
		case isInt(t.Kind()):
			return !z.OverflowInt(x)
		case isUint(t.Kind()):
			return x >= 0 && !z.OverflowUint(uint64(x))
		}
	case isUint(v.Kind()):
		x := v.Uint()
		switch {
		case isInt(t.Kind()):
			return x <= math.MaxInt64 && !z.OverflowInt(int64(x))
		case isUint(t.Kind()):
			return !z.OverflowUint(x)
		}
	case isFloat(v.Kind()):
		switch {
		case isInt(t.Kind()), isUint(t.Kind()):
			return false
		case isFloat(t.Kind()):
			return !z.OverflowFloat(v.Float())
		}
	}

	return true
}

func isInt(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUint(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func indirect(v reflect.Value) (reflect.Value, bool) {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return v, false
		}
		v = v.Elem()
	}

	return v, v.IsValid()
}

func structField(v reflect.Value, name string) reflect.Value {
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)

		if f.PkgPath != "" {
			continue
		}

		if f.Name == name {
			return v.Field(i)
		}

		if tag := strings.Split(f.Tag.Get("json"), ",")[0]; tag != "" && tag == name {
			return v.Field(i)
		}
	}

	return reflect.Value{}
}
