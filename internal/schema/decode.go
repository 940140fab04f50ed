package schema

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

var fileType = reflect.TypeOf((*File)(nil))

// decode fills rv from p. It returns the struct fields that could not be
// decoded so their rule messages are not reported twice.
func decode(p Payload, rv reflect.Value, byField map[string][]string) (map[string]bool, error) {
	failed := make(map[string]bool)
	t := rv.Type()

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		key := sf.Tag.Get("form")
		if key == "" || key == "-" {
			continue
		}
		field := rv.Field(i)

		if sf.Type == fileType {
			f, ok := p.Files[key]
			if !ok || f == nil {
				failed[sf.Name] = true
				byField[sf.Name] = append(byField[sf.Name], requiredMessage(t, sf, key))
				continue
			}
			field.Set(reflect.ValueOf(f))
			continue
		}

		raw, ok := p.Fields[key]
		if !ok {
			failed[sf.Name] = true
			byField[sf.Name] = append(byField[sf.Name], requiredMessage(t, sf, key))
			continue
		}

		switch sf.Type.Kind() {
		case reflect.String:
			field.SetString(raw)
		case reflect.Int:
			n, ok := coerceInt(raw)
			if !ok {
				failed[sf.Name] = true
				byField[sf.Name] = append(byField[sf.Name], numberMessage(t, sf, key))
				continue
			}
			field.SetInt(int64(n))
		default:
			return nil, fmt.Errorf("schema: unsupported field type %s for %s", sf.Type, sf.Name)
		}
	}

	return failed, nil
}

// coerceInt accepts anything that reads as a whole number. Blank input
// coerces to zero, the same as a numeric form field left empty.
func coerceInt(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, true
	}

	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
