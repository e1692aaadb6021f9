package networking

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"gopkg.in/yaml.v3"
)

// Decoder parses a response body into a target value. Implementations must be
// safe for concurrent use; the client shares one decoder across calls.
type Decoder interface {
	// Decode parses data into v, which is a non-nil pointer to the target.
	Decode(data []byte, v any) error
}

// JSONDecoder decodes JSON response bodies. The zero value matches
// encoding/json defaults and is the client's default decoder.
type JSONDecoder struct {
	// UseNumber decodes numbers as json.Number instead of float64.
	UseNumber bool

	// DisallowUnknownFields rejects bodies carrying fields absent from the
	// target type.
	DisallowUnknownFields bool
}

// Decode implements Decoder. The body must be a single JSON value; trailing
// data after it is an error.
func (d JSONDecoder) Decode(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if d.UseNumber {
		dec.UseNumber()
	}
	if d.DisallowUnknownFields {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(v); err != nil {
		return err
	}
	// json.Decoder is stream-oriented and stops after the first value.
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("unexpected data after top-level JSON value")
	}
	return nil
}

// YAMLDecoder decodes YAML response bodies. Supply it per call with
// WithRequestDecoder, or client-wide with WithDecoder, for APIs that answer
// in YAML.
type YAMLDecoder struct{}

// Decode implements Decoder.
func (YAMLDecoder) Decode(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// defaultDecoder is shared across calls; it holds no mutable state.
var defaultDecoder Decoder = JSONDecoder{}
