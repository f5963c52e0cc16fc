package cchook

import "sort"

// Event is a Claude Code hook event name. Names are compared exactly and are
// case-sensitive.
type Event string

// Supported hook events.
const (
	PreToolUse       Event = "PreToolUse"
	PostToolUse      Event = "PostToolUse"
	Notification     Event = "Notification"
	Stop             Event = "Stop"
	SubagentStop     Event = "SubagentStop"
	UserPromptSubmit Event = "UserPromptSubmit"
	PreCompact       Event = "PreCompact"
	SessionStart     Event = "SessionStart"
)

// supported is never written after init, so concurrent reads need no lock.
var supported = map[Event]struct{}{
	PreToolUse:       {},
	PostToolUse:      {},
	Notification:     {},
	Stop:             {},
	SubagentStop:     {},
	UserPromptSubmit: {},
	PreCompact:       {},
	SessionStart:     {},
}

// String implements fmt.Stringer.
func (e Event) String() string { return string(e) }

// Valid reports whether e is a supported event.
func (e Event) Valid() bool {
	_, ok := supported[e]
	return ok
}

// SupportedEvents returns the supported events in sorted order. The slice is
// newly allocated on every call.
func SupportedEvents() []Event {
	events := make([]Event, 0, len(supported))
	for e := range supported {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i] < events[j] })
	return events
}

// ValidateEvent returns an *UnsupportedEventError if name is not a supported
// event.
func ValidateEvent(name Event) error {
	if name.Valid() {
		return nil
	}
	return &UnsupportedEventError{Event: name, Supported: SupportedEvents()}
}
