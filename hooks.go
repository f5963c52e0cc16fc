package cchook

import (
	"context"
	"log/slog"
	"time"
)

// SkipReason explains why a dispatch did not invoke the callback.
type SkipReason string

// Skip reasons passed to OnSkipFunc.
const (
	SkipNoEventName SkipReason = "no_event_name"
	SkipMismatch    SkipReason = "event_mismatch"
	SkipNoMatch     SkipReason = "matcher_rejected"
)

// OnNormalizeFunc is called once the input has been normalized and validated.
// Use this to enrich the context with logging fields or trace spans.
// The returned context is used for the rest of the call and is passed to the
// callback.
type OnNormalizeFunc func(ctx context.Context, target Event, rec Record) context.Context

// OnDispatchFunc is called just before the callback executes.
type OnDispatchFunc func(ctx context.Context, event Event)

// OnSkipFunc is called when the callback is not invoked. got is the embedded
// event name, empty when the record carries none.
type OnSkipFunc func(ctx context.Context, target Event, got string, reason SkipReason)

// OnSuccessFunc is called after the callback completes successfully.
type OnSuccessFunc func(ctx context.Context, event Event, duration time.Duration)

// OnFailureFunc is called after the callback fails. err is the
// *CallbackError that Dispatch returns.
type OnFailureFunc func(ctx context.Context, event Event, err error, duration time.Duration)

// hooks holds all configured hook functions.
type hooks struct {
	onNormalize []OnNormalizeFunc
	onDispatch  []OnDispatchFunc
	onSkip      []OnSkipFunc
	onSuccess   []OnSuccessFunc
	onFailure   []OnFailureFunc
}

// config is built fresh for every Dispatch call.
type config struct {
	logger   *slog.Logger
	matchers []Matcher
	hooks    hooks
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Option configures a Dispatch call.
type Option func(*config)

// WithLogger sets the logger used for diagnostics. Defaults to
// slog.Default(). The library never configures handlers or levels.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithMatcher adds a matcher evaluated after the event name matches. All
// matchers must accept the record for the callback to run.
//
// Example:
//
//	cchook.Dispatch(ctx, cchook.PreToolUse, cchook.FromStdin(), cb,
//	    cchook.WithMatcher(cchook.MustToolName("Write|Edit")),
//	)
func WithMatcher(m Matcher) Option {
	return func(c *config) {
		c.matchers = append(c.matchers, m)
	}
}

// WithOnNormalize adds a hook called after the input is normalized.
// Multiple hooks are called in order, with context chaining through each.
//
// Example:
//
//	cchook.WithOnNormalize(func(ctx context.Context, target cchook.Event, rec cchook.Record) context.Context {
//	    return logx.WithCtx(ctx, slog.String("session_id", rec.String("session_id")))
//	})
func WithOnNormalize(fn OnNormalizeFunc) Option {
	return func(c *config) {
		c.hooks.onNormalize = append(c.hooks.onNormalize, fn)
	}
}

// WithOnDispatch adds a hook called just before the callback executes.
// Multiple hooks are called in order.
func WithOnDispatch(fn OnDispatchFunc) Option {
	return func(c *config) {
		c.hooks.onDispatch = append(c.hooks.onDispatch, fn)
	}
}

// WithOnSkip adds a hook called when the callback is not invoked.
// Multiple hooks are called in order.
//
// Example:
//
//	cchook.WithOnSkip(func(ctx context.Context, target cchook.Event, got string, reason cchook.SkipReason) {
//	    metrics.Incr("hook.skipped", "reason:"+string(reason))
//	})
func WithOnSkip(fn OnSkipFunc) Option {
	return func(c *config) {
		c.hooks.onSkip = append(c.hooks.onSkip, fn)
	}
}

// WithOnSuccess adds a hook called after the callback completes successfully.
// Multiple hooks are called in order.
//
// Example:
//
//	cchook.WithOnSuccess(func(ctx context.Context, event cchook.Event, d time.Duration) {
//	    metrics.Timing("hook.success", d, "event:"+event.String())
//	})
func WithOnSuccess(fn OnSuccessFunc) Option {
	return func(c *config) {
		c.hooks.onSuccess = append(c.hooks.onSuccess, fn)
	}
}

// WithOnFailure adds a hook called after the callback fails.
// Multiple hooks are called in order.
//
// Example:
//
//	cchook.WithOnFailure(func(ctx context.Context, event cchook.Event, err error, d time.Duration) {
//	    metrics.Incr("hook.failure", "event:"+event.String())
//	})
func WithOnFailure(fn OnFailureFunc) Option {
	return func(c *config) {
		c.hooks.onFailure = append(c.hooks.onFailure, fn)
	}
}

func (h *hooks) callOnNormalize(ctx context.Context, target Event, rec Record) context.Context {
	for _, fn := range h.onNormalize {
		ctx = fn(ctx, target, rec)
	}
	return ctx
}

func (h *hooks) callOnDispatch(ctx context.Context, event Event) {
	for _, fn := range h.onDispatch {
		fn(ctx, event)
	}
}

func (h *hooks) callOnSkip(ctx context.Context, target Event, got string, reason SkipReason) {
	for _, fn := range h.onSkip {
		fn(ctx, target, got, reason)
	}
}

func (h *hooks) callOnSuccess(ctx context.Context, event Event, duration time.Duration) {
	for _, fn := range h.onSuccess {
		fn(ctx, event, duration)
	}
}

func (h *hooks) callOnFailure(ctx context.Context, event Event, err error, duration time.Duration) {
	for _, fn := range h.onFailure {
		fn(ctx, event, err, duration)
	}
}
