package cchook

import "encoding/json"

// Common holds the fields the host sends with every event.
type Common struct {
	SessionID      string `json:"session_id"`
	TranscriptPath string `json:"transcript_path"`
	CWD            string `json:"cwd"`
	HookEventName  Event  `json:"hook_event_name"`
}

// ToolUse is the payload of PreToolUse and PostToolUse events. ToolResponse
// is only set for PostToolUse.
type ToolUse struct {
	Common
	ToolName     string          `json:"tool_name"`
	ToolUseID    string          `json:"tool_use_id,omitempty"`
	ToolInput    json.RawMessage `json:"tool_input,omitempty"`
	ToolResponse json.RawMessage `json:"tool_response,omitempty"`
}

// NotificationPayload is the payload of Notification events.
type NotificationPayload struct {
	Common
	Message string `json:"message"`
	Title   string `json:"title,omitempty"`
}

// StopPayload is the payload of Stop and SubagentStop events.
type StopPayload struct {
	Common
	StopHookActive bool `json:"stop_hook_active"`
}

// UserPromptPayload is the payload of UserPromptSubmit events.
type UserPromptPayload struct {
	Common
	Prompt string `json:"prompt"`
}

// PreCompactPayload is the payload of PreCompact events.
type PreCompactPayload struct {
	Common
	Trigger            string `json:"trigger"`
	CustomInstructions string `json:"custom_instructions,omitempty"`
}

// SessionStartPayload is the payload of SessionStart events.
type SessionStartPayload struct {
	Common
	Source string `json:"source"`
}

// DecodeAs decodes the record into a new T.
//
// Example:
//
//	cchook.CallbackFunc[string](func(ctx context.Context, rec cchook.Record) (string, error) {
//	    tu, err := cchook.DecodeAs[cchook.ToolUse](rec)
//	    if err != nil {
//	        return "", err
//	    }
//	    return tu.ToolName, nil
//	})
func DecodeAs[T any](r Record) (T, error) {
	var v T
	if err := r.Decode(&v); err != nil {
		return v, err
	}
	return v, nil
}
