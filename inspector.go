package cchook

import (
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON is the diagnostic used when the input is rejected as JSON
// but the decoder offers no more specific error.
var ErrInvalidJSON = errors.New("invalid JSON")

// View provides gjson path access to a record for matcher evaluation. Paths
// use gjson syntax, so nested fields are addressed as "tool_input.command".
type View interface {
	// HasField returns true if the path exists in the record.
	HasField(path string) bool

	// GetString returns the string value at path, or false if not found
	// or not a string.
	GetString(path string) (string, bool)

	// GetBytes returns the raw JSON at path, or false if not found.
	// Strings are returned with their quotes.
	GetBytes(path string) ([]byte, bool)
}

// Inspect returns a View over raw JSON bytes.
func Inspect(raw []byte) (View, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrInvalidJSON
	}
	return jsonView{raw: raw}, nil
}

// RecordView returns a View over an in-memory record.
func RecordView(r Record) (View, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return jsonView{raw: raw}, nil
}

type jsonView struct {
	raw []byte
}

func (v jsonView) HasField(path string) bool {
	return gjson.GetBytes(v.raw, path).Exists()
}

func (v jsonView) GetString(path string) (string, bool) {
	r := gjson.GetBytes(v.raw, path)
	if !r.Exists() {
		return "", false
	}
	if r.Type != gjson.String {
		return "", false
	}
	return r.String(), true
}

func (v jsonView) GetBytes(path string) ([]byte, bool) {
	r := gjson.GetBytes(v.raw, path)
	if !r.Exists() {
		return nil, false
	}
	return []byte(r.Raw), true
}

// shapeOf names the top-level JSON type of a valid document.
func shapeOf(r gjson.Result) string {
	switch r.Type {
	case gjson.Null:
		return "null"
	case gjson.False, gjson.True:
		return "boolean"
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	}
	if r.IsArray() {
		return "array"
	}
	return "object"
}
