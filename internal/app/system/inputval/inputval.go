// Package inputval decodes and validates JSON request bodies.
//
// Request structs declare presence requirements with `validate` tags and
// pointer fields; type mismatches are caught by the JSON decoder. Either
// failure is reported as an *Error so handlers can answer 422 before any
// store access happens.
package inputval

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/dalemusser/tyte/internal/app/system/limits"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(jsonName)
	return v
}

// Error describes why a request body was rejected.
type Error struct {
	Fields []string // offending JSON fields, if known
	Reason string
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return e.Reason
	}
	return strings.Join(e.Fields, ", ") + ": " + e.Reason
}

// Struct runs tag validation on v.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fe validator.ValidationErrors
	if !errors.As(err, &fe) {
		return &Error{Reason: err.Error()}
	}
	out := &Error{Reason: "field required"}
	for _, f := range fe {
		out.Fields = append(out.Fields, f.Field())
		if f.Tag() != "required" {
			out.Reason = "invalid value"
		}
	}
	return out
}

// DecodeJSON reads a single JSON object from the request into v and validates it.
//
// Keys match struct tags exactly: a key that differs only in case is
// treated as absent. Anything after the first JSON value is rejected.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, limits.MaxRequestBodySize)
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return decodeError(err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(v); err != nil {
		return decodeError(err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return &Error{Reason: "unexpected data after JSON body"}
	}

	if err := matchExactKeys(data, v); err != nil {
		return decodeError(err)
	}
	return Struct(v)
}

// matchExactKeys re-applies each tagged field of the struct behind v from
// the key with exactly its JSON name, zeroing fields that were only
// filled through a case-insensitive match.
func matchExactKeys(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return nil
	}
	rv = rv.Elem()

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		name := jsonName(f)
		if name == "" || !f.IsExported() {
			continue
		}
		field := rv.Field(i)
		field.SetZero()
		msg, ok := raw[name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(msg, field.Addr().Interface()); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) && typeErr.Field == "" {
				typeErr.Field = name
			}
			return err
		}
	}
	return nil
}

// jsonName returns the JSON key for f, or "" when the field is skipped.
func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

func decodeError(err error) error {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var maxErr *http.MaxBytesError

	switch {
	case errors.Is(err, io.EOF):
		return &Error{Reason: "request body is required"}
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			return &Error{Reason: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value)}
		}
		return &Error{Fields: []string{field}, Reason: fmt.Sprintf("expected %s, got %s", typeErr.Type, typeErr.Value)}
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return &Error{Reason: "malformed JSON body"}
	case errors.As(err, &maxErr):
		return &Error{Reason: fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit)}
	default:
		return &Error{Reason: err.Error()}
	}
}
