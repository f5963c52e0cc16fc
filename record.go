package cchook

import (
	"encoding/json"
	"fmt"
)

// EventNameField is the record key that carries the embedded event name.
const EventNameField = "hook_event_name"

// Record is one hook event as sent by the host. Apart from EventNameField the
// library treats every field as opaque and passes it through to the callback.
type Record map[string]any

// EventName returns the embedded event name. It reports false when the field
// is absent, null, or not a string.
func (r Record) EventName() (Event, bool) {
	v, ok := r[EventNameField]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return Event(s), true
}

// String returns the string at key, or "" if absent or not a string.
func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// Bool returns the bool at key, or false if absent or not a bool.
func (r Record) Bool(key string) bool {
	b, _ := r[key].(bool)
	return b
}

// Keys returns the record's field names in no particular order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	return keys
}

// Decode re-encodes the record as JSON and decodes it into v, which is
// typically one of the payload structs.
func (r Record) Decode(v any) error {
	raw, err := json.Marshal(r)
	if err != nil {
		return &InvalidDataShapeError{Got: fmt.Sprintf("%T", r), Err: err}
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &InvalidDataShapeError{Got: "object", Err: err}
	}
	return nil
}
