// Package cchook gives Claude Code hook scripts one entry point for reading
// and reacting to hook events.
//
// The host application starts a hook script and writes one JSON object to its
// stdin. The object names the event in its "hook_event_name" field and
// carries event-specific fields such as tool_name, tool_input or session_id.
// The package reads that object, validates it, and calls your callback only
// when the event is the one you asked for. Everything except the event name
// is passed through untouched.
//
// # Quick Start
//
//	func main() {
//	    res, err := cchook.Dispatch(context.Background(), cchook.PreToolUse, cchook.FromStdin(),
//	        cchook.CallbackFunc[string](func(ctx context.Context, rec cchook.Record) (string, error) {
//	            return "about to use " + rec.String("tool_name"), nil
//	        }),
//	    )
//	    if err != nil {
//	        fmt.Fprintln(os.Stderr, err)
//	        os.Exit(1)
//	    }
//	    if res.Called {
//	        fmt.Println(res.Value)
//	    }
//	}
//
// # Processing Flow
//
// Dispatch is a straight pipeline, run once per call:
//
//  1. The target event is checked against the supported set. An unknown
//     name fails before the input or callback is looked at.
//  2. A nil callback fails before any input is read.
//  3. The input is normalized. In-memory records pass through; readers are
//     read to EOF and parsed as JSON.
//  4. The value must be a JSON object. A missing event name is logged and
//     the callback is skipped.
//  5. On an exact, case-sensitive match (and if every Matcher accepts the
//     record) the callback runs exactly once.
//
// The Result carries the callback's value when it ran, and the record
// otherwise.
//
// # Inputs
//
// Input is a two-variant union:
//
//	cchook.FromRecord(rec)        // already parsed
//	cchook.FromValue(v)           // any decoded value; non-objects are rejected
//	cchook.FromReader(r)          // JSON text
//	cchook.FromStdin()            // os.Stdin, rejected when it is a terminal
//
// # Matchers
//
// Matchers narrow a matched event further, using gjson paths:
//
//	cchook.Dispatch(ctx, cchook.PreToolUse, cchook.FromStdin(), cb,
//	    cchook.WithMatcher(cchook.MustToolName("Write|Edit")),
//	    cchook.WithMatcher(cchook.MustPathGlob("tool_input.file_path", "**/*.go")),
//	)
//
// Composable matchers are provided:
//   - HasFields: Check for field presence
//   - FieldEquals: Check field value
//   - ToolName: Match tool_name against a hook settings pattern
//   - PathGlob: Match a string field against a doublestar glob
//   - And, Or, Not: Combine matchers
//
// # Hooks
//
// Hooks observe the pipeline without coupling to a logging or metrics system:
//
//	cchook.Dispatch(ctx, cchook.Stop, in, cb,
//	    cchook.WithOnSkip(func(ctx context.Context, target cchook.Event, got string, reason cchook.SkipReason) {
//	        metrics.Incr("hook.skipped", "reason:"+string(reason))
//	    }),
//	    cchook.WithOnFailure(func(ctx context.Context, event cchook.Event, err error, d time.Duration) {
//	        metrics.Incr("hook.failure", "event:"+event.String())
//	    }),
//	)
//
// Available hooks:
//   - WithOnNormalize: Called after the input is normalized, enriches context
//   - WithOnDispatch: Called just before the callback executes
//   - WithOnSkip: Called when the callback is not invoked
//   - WithOnSuccess: Called after the callback succeeds
//   - WithOnFailure: Called after the callback fails
//
// Diagnostics go to the *slog.Logger given with WithLogger, or slog.Default().
//
// # Error Handling
//
// Every error matches ErrHook with errors.Is, and exactly one kind:
//
//   - ErrInputUnavailable: no data could be read
//   - ErrMalformedInput: the text is not valid JSON
//   - ErrInvalidDataShape: the data is not a JSON object
//   - ErrUnsupportedEvent: the target is not a supported event
//   - ErrInvalidCallback: the callback is nil
//   - ErrCallbackFailed: the callback returned an error or panicked
//
// Use errors.As with the typed errors for structured context:
//
//	var cerr *cchook.CallbackError
//	if errors.As(err, &cerr) {
//	    log.Printf("callback for %s failed: %v", cerr.Event, cerr.Err)
//	}
//
// # Thread Safety
//
// Dispatch keeps no state between calls. The supported event set is
// read-only, so concurrent calls are safe.
package cchook
