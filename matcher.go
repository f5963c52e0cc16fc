package cchook

import (
	"fmt"
	"regexp"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher refines dispatch after the event name has matched. When a
// configured matcher rejects the record the callback is skipped, exactly as
// for an event name mismatch.
type Matcher interface {
	Match(v View) bool
}

// MatcherFunc adapts a function to the Matcher interface.
type MatcherFunc func(v View) bool

// Match implements Matcher.
func (f MatcherFunc) Match(v View) bool { return f(v) }

// HasFields returns a Matcher that matches when all paths exist.
func HasFields(paths ...string) Matcher {
	return hasFields{paths: paths}
}

type hasFields struct {
	paths []string
}

func (m hasFields) Match(v View) bool {
	for _, p := range m.paths {
		if !v.HasField(p) {
			return false
		}
	}
	return true
}

// FieldEquals returns a Matcher that matches when the path exists and equals
// the given string value.
func FieldEquals(path, value string) Matcher {
	return fieldEquals{path: path, value: value}
}

type fieldEquals struct {
	path  string
	value string
}

func (m fieldEquals) Match(v View) bool {
	s, ok := v.GetString(m.path)
	return ok && s == m.value
}

// And returns a Matcher that matches when all matchers match.
func And(ms ...Matcher) Matcher {
	return and{ms: ms}
}

type and struct {
	ms []Matcher
}

func (m and) Match(v View) bool {
	for _, mm := range m.ms {
		if !mm.Match(v) {
			return false
		}
	}
	return true
}

// Or returns a Matcher that matches when any matcher matches.
func Or(ms ...Matcher) Matcher {
	return or{ms: ms}
}

type or struct {
	ms []Matcher
}

func (m or) Match(v View) bool {
	for _, mm := range m.ms {
		if mm.Match(v) {
			return true
		}
	}
	return false
}

// Not inverts a Matcher.
func Not(m Matcher) Matcher {
	return MatcherFunc(func(v View) bool { return !m.Match(v) })
}

// ToolName returns a Matcher for the tool_name field using the same pattern
// rules as Claude Code hook settings: "" and "*" match any tool, anything
// else is a regular expression that must match the whole name, so "Bash"
// matches only Bash and "Write|Edit" matches either.
func ToolName(pattern string) (Matcher, error) {
	if pattern == "" || pattern == "*" {
		return HasFields("tool_name"), nil
	}
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("compile tool matcher %q: %w", pattern, err)
	}
	return MatcherFunc(func(v View) bool {
		s, ok := v.GetString("tool_name")
		return ok && re.MatchString(s)
	}), nil
}

// MustToolName is like ToolName but panics on an invalid pattern.
func MustToolName(pattern string) Matcher {
	m, err := ToolName(pattern)
	if err != nil {
		panic(err)
	}
	return m
}

// PathGlob returns a Matcher that matches when the string at path matches a
// doublestar glob pattern, for example:
//
//	cchook.PathGlob("tool_input.file_path", "**/*.go")
func PathGlob(path, pattern string) (Matcher, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}
	return MatcherFunc(func(v View) bool {
		s, ok := v.GetString(path)
		if !ok {
			return false
		}
		matched, err := doublestar.Match(pattern, s)
		return err == nil && matched
	}), nil
}

// MustPathGlob is like PathGlob but panics on an invalid pattern.
func MustPathGlob(path, pattern string) Matcher {
	m, err := PathGlob(path, pattern)
	if err != nil {
		panic(err)
	}
	return m
}
