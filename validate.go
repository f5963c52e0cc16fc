package cchook

import (
	"context"
	"log/slog"
	"sort"
)

// validateData checks that the normalized value is a mapping and returns it
// as a Record. A missing, null or non-string event name is only logged: the
// record can never match, so dispatch skips the callback.
func validateData(ctx context.Context, logger *slog.Logger, v any) (Record, error) {
	var rec Record
	switch m := v.(type) {
	case Record:
		rec = m
	case map[string]any:
		rec = Record(m)
	default:
		return nil, &InvalidDataShapeError{Got: jsonTypeName(v)}
	}

	raw, present := rec[EventNameField]
	switch {
	case !present || raw == nil:
		keys := rec.Keys()
		sort.Strings(keys)
		logger.WarnContext(ctx, "hook data has no event name; callback will not run",
			"field", EventNameField,
			"available_fields", keys,
		)
	default:
		if _, ok := raw.(string); !ok {
			logger.WarnContext(ctx, "hook data event name is not a string; callback will not run",
				"field", EventNameField,
				"type", jsonTypeName(raw),
			)
		}
	}

	return rec, nil
}
