package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// FieldError reports a form value that could not be converted to its field type.
type FieldError struct {
	Field  string
	Value  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %s", e.Field, e.Reason)
}

// Decode copies values into the `form`-tagged fields of dst, which must be a
// pointer to a struct. Supported field types are string, bool, the signed
// integer kinds, and pointers to those. A pointer field stays nil when its key
// is absent or blank. Only the first value of each key is used.
func Decode(values map[string][]string, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("validator: decode target must be a pointer to struct, got %T", dst)
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := strings.SplitN(sf.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		vals, ok := values[name]
		if !ok || len(vals) == 0 {
			continue
		}
		raw := strings.TrimSpace(vals[0])

		fv := rv.Field(i)
		if fv.Kind() == reflect.Pointer {
			if raw == "" {
				continue
			}
			ptr := reflect.New(fv.Type().Elem())
			if err := setScalar(ptr.Elem(), name, raw); err != nil {
				return err
			}
			fv.Set(ptr)
			continue
		}
		if err := setScalar(fv, name, raw); err != nil {
			return err
		}
	}
	return nil
}

func setScalar(v reflect.Value, name, raw string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(raw)
	case reflect.Bool:
		if raw == "" {
			return nil
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return &FieldError{Field: name, Value: raw, Reason: "must be true or false"}
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if raw == "" {
			return nil
		}
		n, err := strconv.ParseInt(raw, 10, v.Type().Bits())
		if err != nil {
			return &FieldError{Field: name, Value: raw, Reason: "must be a whole number"}
		}
		v.SetInt(n)
	default:
		return fmt.Errorf("validator: unsupported field type %s for %q", v.Type(), name)
	}
	return nil
}
