package cchook

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/tidwall/gjson"
	"golang.org/x/term"
)

// Input is the source of a hook event: either an in-memory value or a reader
// holding JSON text. Build one with FromRecord, FromValue, FromReader or
// FromStdin. The zero Input has no data.
type Input struct {
	value    any
	reader   io.Reader
	isReader bool
}

// FromRecord returns an Input for an already parsed record. The record is
// handed to the callback as is, without copying.
func FromRecord(r Record) Input {
	return Input{value: r}
}

// FromValue returns an Input for an arbitrary decoded value, such as the
// result of json.Unmarshal into an any. Values that are not JSON objects
// fail dispatch with an *InvalidDataShapeError.
func FromValue(v any) Input {
	return Input{value: v}
}

// FromReader returns an Input that reads JSON text from r. The reader is
// consumed to EOF; closing it stays with the caller.
func FromReader(r io.Reader) Input {
	return Input{reader: r, isReader: true}
}

// FromStdin returns an Input reading from os.Stdin. Dispatch fails with an
// *InputUnavailableError when stdin is an interactive terminal.
func FromStdin() Input {
	return FromReader(os.Stdin)
}

// IsReader reports whether the input is the reader variant.
func (in Input) IsReader() bool { return in.isReader }

// isTerminal is replaced in tests.
var isTerminal = func(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// normalized is the output of the input normalizer. raw is only set for
// reader inputs and lets matchers reuse the original bytes.
type normalized struct {
	value any
	raw   []byte
}

// normalize resolves the input variant into a single value. In-memory values
// pass through untouched; reader input is read fully and parsed.
func normalize(in Input) (normalized, error) {
	if !in.isReader {
		if isNilValue(in.value) {
			return normalized{}, &InputUnavailableError{Reason: "no record was supplied"}
		}
		return normalized{value: in.value}, nil
	}

	if in.reader == nil {
		return normalized{}, &InputUnavailableError{Reason: "reader is nil"}
	}
	if f, ok := in.reader.(interface{ Fd() uintptr }); ok && isTerminal(f.Fd()) {
		return normalized{}, &InputUnavailableError{Reason: "input is an interactive terminal"}
	}

	raw, err := io.ReadAll(in.reader)
	if err != nil {
		return normalized{}, &InputUnavailableError{Reason: "read failed", Err: err}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return normalized{}, &InputUnavailableError{Reason: "input is empty"}
	}

	rec, err := parse(raw)
	if err != nil {
		return normalized{}, err
	}
	return normalized{value: rec, raw: raw}, nil
}

// parse validates and decodes raw JSON text into a Record. gjson performs the
// cheap validity check and shape classification; encoding/json is only used
// to decode objects and to produce positioned diagnostics.
func parse(raw []byte) (Record, error) {
	if !gjson.ValidBytes(raw) {
		return nil, malformed(raw, diagnose(raw))
	}
	if shape := shapeOf(gjson.ParseBytes(raw)); shape != "object" {
		return nil, &InvalidDataShapeError{Got: shape}
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, malformed(raw, err)
	}
	return rec, nil
}

func diagnose(raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	return ErrInvalidJSON
}

// malformed builds a *MalformedInputError, converting a syntax error offset
// into a 1-based line and column.
func malformed(raw []byte, err error) *MalformedInputError {
	e := &MalformedInputError{Err: err}

	var syn *json.SyntaxError
	if !errors.As(err, &syn) {
		return e
	}

	pos := int(syn.Offset)
	if pos > len(raw) {
		pos = len(raw)
	}
	if pos < 0 {
		pos = 0
	}
	lastNL := bytes.LastIndexByte(raw[:pos], '\n')
	e.Offset = syn.Offset
	e.Line = 1 + bytes.Count(raw[:pos], []byte{'\n'})
	e.Column = pos - lastNL - 1
	return e
}

func isNilValue(v any) bool {
	switch m := v.(type) {
	case nil:
		return true
	case Record:
		return m == nil
	case map[string]any:
		return m == nil
	}
	return false
}

// jsonTypeName names a decoded Go value by its JSON type.
func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int64, int32, json.Number:
		return "number"
	}
	return fmt.Sprintf("%T", v)
}
