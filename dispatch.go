package cchook

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"
)

// Callback handles a matched hook event and returns a result of type R.
//
// Example:
//
//	type guard struct {
//	    denied map[string]bool
//	}
//
//	func (g *guard) Call(ctx context.Context, rec cchook.Record) (Decision, error) {
//	    if g.denied[rec.String("tool_name")] {
//	        return Decision{Block: true}, nil
//	    }
//	    return Decision{}, nil
//	}
type Callback[R any] interface {
	Call(ctx context.Context, rec Record) (R, error)
}

// CallbackFunc is a function adapter for Callback. Use for simple callbacks
// that don't need a struct:
//
//	cchook.CallbackFunc[string](func(ctx context.Context, rec cchook.Record) (string, error) {
//	    return "ok", nil
//	})
type CallbackFunc[R any] func(ctx context.Context, rec Record) (R, error)

// Call implements the Callback interface.
func (f CallbackFunc[R]) Call(ctx context.Context, rec Record) (R, error) {
	return f(ctx, rec)
}

// Result is the outcome of a successful Dispatch. When Called is true, Value
// holds the callback's result. Otherwise the callback did not run and Record
// is the meaningful value. Record is always the normalized event record.
type Result[R any] struct {
	Record Record
	Value  R
	Called bool
}

// Any returns the callback's result when it ran, and the record otherwise.
func (r Result[R]) Any() any {
	if r.Called {
		return r.Value
	}
	return r.Record
}

// Dispatch processes one hook event. It validates target, reads and validates
// the input, and invokes cb when the record's embedded event name equals
// target and every configured matcher accepts the record.
//
// The processing flow:
//  1. Reject an unsupported target before touching in or cb
//  2. Reject a nil callback before reading input
//  3. Normalize the input and check it is a JSON object
//  4. Compare the embedded event name with target
//  5. Evaluate matchers
//  6. Call cb at most once, wrapping its error or panic in a *CallbackError
//
// A record without an event name is not an error: the callback is skipped
// and the record is returned.
//
// Example:
//
//	res, err := cchook.Dispatch(ctx, cchook.Stop, cchook.FromStdin(),
//	    cchook.CallbackFunc[string](func(ctx context.Context, rec cchook.Record) (string, error) {
//	        return "session " + rec.String("session_id") + " stopped", nil
//	    }),
//	)
func Dispatch[R any](ctx context.Context, target Event, in Input, cb Callback[R], opts ...Option) (Result[R], error) {
	if err := ValidateEvent(target); err != nil {
		return Result[R]{}, err
	}
	if !callable(cb) {
		return Result[R]{}, &InvalidCallbackError{Type: fmt.Sprintf("%T", cb)}
	}

	cfg := newConfig(opts)
	log := cfg.logger.With("target", target.String())
	log.DebugContext(ctx, "processing hook event", "reader", in.IsReader())

	n, err := normalize(in)
	if err != nil {
		log.DebugContext(ctx, "input normalization failed", "error", err)
		return Result[R]{}, err
	}
	rec, err := validateData(ctx, log, n.value)
	if err != nil {
		log.DebugContext(ctx, "hook data validation failed", "error", err)
		return Result[R]{}, err
	}
	res := Result[R]{Record: rec}

	ctx = cfg.hooks.callOnNormalize(ctx, target, rec)

	got, ok := rec.EventName()
	if !ok {
		cfg.hooks.callOnSkip(ctx, target, "", SkipNoEventName)
		return res, nil
	}
	if got != target {
		log.DebugContext(ctx, "event name mismatch; skipping callback", "event", got.String())
		cfg.hooks.callOnSkip(ctx, target, got.String(), SkipMismatch)
		return res, nil
	}

	if len(cfg.matchers) > 0 {
		matched, err := matchAll(cfg.matchers, rec, n.raw)
		if err != nil {
			return Result[R]{}, err
		}
		if !matched {
			log.DebugContext(ctx, "matcher rejected record; skipping callback")
			cfg.hooks.callOnSkip(ctx, target, got.String(), SkipNoMatch)
			return res, nil
		}
	}

	cfg.hooks.callOnDispatch(ctx, target)

	start := time.Now()
	value, err := invoke(ctx, cb, rec)
	duration := time.Since(start)

	if err != nil {
		cerr := &CallbackError{Event: target, Err: err}
		log.ErrorContext(ctx, "hook callback failed", "error", err, "duration", duration)
		cfg.hooks.callOnFailure(ctx, target, cerr, duration)
		return Result[R]{}, cerr
	}

	log.DebugContext(ctx, "hook callback completed", "duration", duration)
	cfg.hooks.callOnSuccess(ctx, target, duration)

	res.Value = value
	res.Called = true
	return res, nil
}

// callable reports whether cb can be invoked. A nil CallbackFunc stored in
// the interface is not nil itself, so it needs its own check.
func callable[R any](cb Callback[R]) bool {
	if cb == nil {
		return false
	}
	if f, ok := cb.(CallbackFunc[R]); ok && f == nil {
		return false
	}
	return true
}

// invoke runs the callback, converting a panic into a *PanicError.
func invoke[R any](ctx context.Context, cb Callback[R], rec Record) (value R, err error) {
	defer func() {
		if p := recover(); p != nil {
			var zero R
			value = zero
			err = &PanicError{Value: p, Stack: debug.Stack()}
		}
	}()
	return cb.Call(ctx, rec)
}

// matchAll evaluates matchers against the record. Reader input reuses the
// raw bytes; in-memory records are encoded once.
func matchAll(ms []Matcher, rec Record, raw []byte) (bool, error) {
	var (
		view View
		err  error
	)
	if raw != nil {
		view, err = Inspect(raw)
	} else {
		view, err = RecordView(rec)
	}
	if err != nil {
		return false, &InvalidDataShapeError{Got: "object", Err: err}
	}

	for _, m := range ms {
		if !m.Match(view) {
			return false, nil
		}
	}
	return true, nil
}
