package binder

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/arbsh/arbsh/internal/command"
)

// BindPipelineObject runs step 2 of spec §4.6 (pipeline parameter
// binding) against one input object, updating b in place. A spec with
// ValueFromPipeline receives obj directly, converted if necessary; a
// spec with ValueFromPipelineByPropertyName receives whichever field
// or property of obj matches its own name. Failures in this phase are
// non-fatal: the parameter keeps whatever static value it already had.
func (b *Bound) BindPipelineObject(specs []ParamSpec, obj any) {
	for _, spec := range specs {
		switch {
		case spec.ValueFromPipeline:
			if lit, ok := coerceToString(obj); ok {
				b.Values[spec.Name] = BoundValue{Arg: literalArg(lit)}
			}
		case spec.ValueFromPipelineByPropertyName:
			if v, ok := propertyByName(obj, spec.Name); ok {
				if lit, ok := coerceToString(v); ok {
					b.Values[spec.Name] = BoundValue{Arg: literalArg(lit)}
				}
			}
		}
	}
}

func literalArg(s string) command.Argument { return command.Argument{Literal: s} }

func coerceToString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case fmt.Stringer:
		return t.String(), true
	case int, int32, int64, float32, float64:
		return fmt.Sprintf("%v", t), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		rv := reflect.ValueOf(v)
		if !rv.IsValid() {
			return "", false
		}
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Float32, reflect.Float64, reflect.Bool, reflect.String:
			return fmt.Sprintf("%v", v), true
		}
		return "", false
	}
}

func propertyByName(obj any, name string) (any, bool) {
	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, false
	}
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		if sameFoldedName(f.Name, name) {
			return rv.Field(i).Interface(), true
		}
	}
	return nil, false
}

func sameFoldedName(a, b string) bool {
	return len(a) == len(b) && equalFold(a, b)
}

func equalFold(a, b string) bool {
	ar, br := []rune(a), []rune(b)
	if len(ar) != len(br) {
		return false
	}
	for i := range ar {
		ca, cb := ar[i], br[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}
