package router

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// validate checks `validate` struct tags on bound values. A single
// instance caches parsed struct metadata across requests.
var validate = validator.New(validator.WithRequiredStructEnabled())

// BindJSON decodes the request body as JSON into v and, when v is a
// struct, validates it against its `validate` tags. Inside a dispatched
// request the buffered body is used, so BindJSON works even though the
// dispatcher has already drained the stream.
//
// By default the decoder rejects unknown fields that do not map to
// exported struct fields. Pass true to allow unknown fields. Exactly
// one JSON value must be present in the body; trailing data is an
// error.
func BindJSON(r *http.Request, v any, allowUnknownFields ...bool) error {
	var src io.Reader = r.Body
	if raw := RawBody(r); raw != nil {
		src = bytes.NewReader(raw)
	}

	dec := json.NewDecoder(src)

	if len(allowUnknownFields) == 0 || !allowUnknownFields[0] {
		dec.DisallowUnknownFields()
	}

	if err := dec.Decode(v); err != nil {
		return err
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("unexpected trailing data after JSON value")
	}

	if reflect.Indirect(reflect.ValueOf(v)).Kind() == reflect.Struct {
		return validate.Struct(v)
	}

	return nil
}
