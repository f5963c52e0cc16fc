package cchook_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/bjaus/cchook"
)

var quiet = cchook.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

func Example() {
	stdin := strings.NewReader(`{"hook_event_name": "PreToolUse", "tool_name": "Read", "tool_input": {"file_path": "example.txt"}}`)

	res, err := cchook.Dispatch[string](context.Background(), cchook.PreToolUse, cchook.FromReader(stdin),
		cchook.CallbackFunc[string](func(ctx context.Context, rec cchook.Record) (string, error) {
			return "about to use " + rec.String("tool_name"), nil
		}),
		quiet,
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Called, res.Value)

	// Output:
	// true about to use Read
}

func Example_mismatch() {
	rec := cchook.Record{"hook_event_name": "Stop", "session_id": "session_123"}

	res, err := cchook.Dispatch[string](context.Background(), cchook.PreToolUse, cchook.FromRecord(rec),
		cchook.CallbackFunc[string](func(ctx context.Context, rec cchook.Record) (string, error) {
			return "unreachable", nil
		}),
		quiet,
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Called, res.Record["session_id"])

	// Output:
	// false session_123
}

func Example_typedPayload() {
	stdin := strings.NewReader(`{"hook_event_name": "SessionStart", "session_id": "s1", "source": "resume"}`)

	res, err := cchook.Dispatch[string](context.Background(), cchook.SessionStart, cchook.FromReader(stdin),
		cchook.CallbackFunc[string](func(ctx context.Context, rec cchook.Record) (string, error) {
			p, err := cchook.DecodeAs[cchook.SessionStartPayload](rec)
			if err != nil {
				return "", err
			}
			return p.SessionID + " via " + p.Source, nil
		}),
		quiet,
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Value)

	// Output:
	// s1 via resume
}

func Example_matchers() {
	guard := cchook.CallbackFunc[string](func(ctx context.Context, rec cchook.Record) (string, error) {
		return "checked", nil
	})

	for _, tool := range []string{"Edit", "Bash"} {
		stdin := strings.NewReader(`{"hook_event_name": "PreToolUse", "tool_name": "` + tool + `", "tool_input": {"file_path": "cmd/app/main.go"}}`)
		res, err := cchook.Dispatch[string](context.Background(), cchook.PreToolUse, cchook.FromReader(stdin), guard,
			cchook.WithMatcher(cchook.MustToolName("Write|Edit")),
			cchook.WithMatcher(cchook.MustPathGlob("tool_input.file_path", "**/*.go")),
			quiet,
		)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(tool, res.Called)
	}

	// Output:
	// Edit true
	// Bash false
}

func Example_hooks() {
	rec := cchook.Record{"hook_event_name": "Notification", "message": "Claude needs your permission"}

	_, _ = cchook.Dispatch[struct{}](context.Background(), cchook.Notification, cchook.FromRecord(rec),
		cchook.CallbackFunc[struct{}](func(ctx context.Context, rec cchook.Record) (struct{}, error) {
			fmt.Println("Notification:", rec.String("message"))
			return struct{}{}, nil
		}),
		cchook.WithOnDispatch(func(ctx context.Context, event cchook.Event) {
			fmt.Println("Dispatching", event)
		}),
		cchook.WithOnSuccess(func(ctx context.Context, event cchook.Event, d time.Duration) {
			fmt.Printf("Metric: hook.%s.success\n", event)
		}),
		quiet,
	)

	// Output:
	// Dispatching Notification
	// Notification: Claude needs your permission
	// Metric: hook.Notification.success
}

func Example_errors() {
	_, err := cchook.Dispatch[any](context.Background(), "PostToolUse", cchook.FromRecord(cchook.Record{"hook_event_name": "PostToolUse"}),
		cchook.CallbackFunc[any](func(ctx context.Context, rec cchook.Record) (any, error) {
			return nil, errors.New("boom")
		}),
		quiet,
	)

	var cerr *cchook.CallbackError
	if errors.As(err, &cerr) {
		fmt.Println(cerr.Event, cerr.Err)
	}

	_, err = cchook.Dispatch[any](context.Background(), "Bogus", cchook.FromStdin(),
		cchook.CallbackFunc[any](func(ctx context.Context, rec cchook.Record) (any, error) { return nil, nil }),
	)

	var uerr *cchook.UnsupportedEventError
	if errors.As(err, &uerr) {
		fmt.Println(uerr.Suggestion())
	}

	// Output:
	// PostToolUse boom
	// use one of the supported events: Notification, PostToolUse, PreCompact, PreToolUse, SessionStart, Stop, SubagentStop, UserPromptSubmit
}
