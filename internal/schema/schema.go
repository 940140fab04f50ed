// Package schema turns raw form payloads into typed, validated records.
//
// Every input struct declares its fields with a `form` tag (the payload key)
// and its rules with `validate` tags understood by go-playground/validator.
// Numeric fields are coerced from their string form before the rules run.
package schema

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// File is an uploaded file as received from a multipart form.
type File struct {
	Filename    string
	Size        int64
	ContentType string
	Data        []byte
}

// Payload is the raw key-value input of a form submission.
type Payload struct {
	Fields map[string]string
	Files  map[string]*File
}

func Fields(kv map[string]string) Payload {
	return Payload{Fields: kv}
}

func WithFile(name string, f *File) Payload {
	return Payload{Files: map[string]*File{name: f}}
}

// ValidationError carries one message per violated rule, in field order.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, " ")
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var (
	once     sync.Once
	instance *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			if name := f.Tag.Get("form"); name != "" && name != "-" {
				return name
			}
			return f.Name
		})
		registerRules(v)
		instance = v
	})
	return instance
}

// Validate decodes p into T and applies T's rules. On failure the returned
// error is a *ValidationError and the partially decoded value is discarded.
func Validate[T any](p Payload) (T, error) {
	var out T

	rv := reflect.ValueOf(&out).Elem()
	if rv.Kind() != reflect.Struct {
		return out, errors.New("schema: Validate needs a struct type")
	}

	byField := make(map[string][]string)
	failed, err := decode(p, rv, byField)
	if err != nil {
		return out, err
	}

	if err := engine().Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return out, err
		}
		for _, fe := range verrs {
			if failed[fe.StructField()] {
				continue
			}
			byField[fe.StructField()] = append(byField[fe.StructField()], message(fe))
		}
	}

	if len(byField) == 0 {
		return out, nil
	}

	var zero T
	return zero, &ValidationError{Messages: ordered(rv.Type(), byField)}
}

func ordered(t reflect.Type, byField map[string][]string) []string {
	var msgs []string
	for i := 0; i < t.NumField(); i++ {
		msgs = append(msgs, byField[t.Field(i).Name]...)
	}
	return msgs
}
