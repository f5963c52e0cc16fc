package cchook

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
)

type InspectSuite struct {
	suite.Suite
}

func TestInspectSuite(t *testing.T) {
	suite.Run(t, new(InspectSuite))
}

func (s *InspectSuite) TestReturnsViewForValidJSON() {
	view, err := Inspect([]byte(`{"hook_event_name": "Stop"}`))

	s.Require().NoError(err)
	s.Assert().NotNil(view)
}

func (s *InspectSuite) TestReturnsErrorForInvalidJSON() {
	_, err := Inspect([]byte(`{not valid}`))

	s.Assert().ErrorIs(err, ErrInvalidJSON)
}

func (s *InspectSuite) TestReturnsErrorForEmptyInput() {
	_, err := Inspect([]byte{})

	s.Assert().ErrorIs(err, ErrInvalidJSON)
}

func (s *InspectSuite) TestRecordViewEncodesRecord() {
	view, err := RecordView(Record{"tool_input": map[string]any{"command": "ls"}})

	s.Require().NoError(err)
	cmd, ok := view.GetString("tool_input.command")
	s.Require().True(ok)
	s.Assert().Equal("ls", cmd)
}

func (s *InspectSuite) TestRecordViewRejectsUnencodableValues() {
	_, err := RecordView(Record{"ch": make(chan int)})

	s.Assert().Error(err)
}

type ViewHasFieldSuite struct {
	suite.Suite
	view View
}

func (s *ViewHasFieldSuite) SetupTest() {
	raw := []byte(`{
		"hook_event_name": "PreToolUse",
		"tool_name": "Bash",
		"tool_input": {
			"command": "go test ./...",
			"options": {
				"timeout": 120
			}
		}
	}`)

	var err error
	s.view, err = Inspect(raw)
	s.Require().NoError(err)
}

func TestViewHasFieldSuite(t *testing.T) {
	suite.Run(t, new(ViewHasFieldSuite))
}

func (s *ViewHasFieldSuite) TestHasField() {
	tests := map[string]struct {
		path   string
		exists bool
	}{
		"hook_event_name":            {"hook_event_name", true},
		"tool_name":                  {"tool_name", true},
		"tool_input":                 {"tool_input", true},
		"tool_input.command":         {"tool_input.command", true},
		"tool_input.options.timeout": {"tool_input.options.timeout", true},
		"missing":                    {"missing", false},
		"tool_input.missing":         {"tool_input.missing", false},
		"tool_input.options.missing": {"tool_input.options.missing", false},
	}

	for name, tt := range tests {
		s.Run(name, func() {
			got := s.view.HasField(tt.path)
			s.Assert().Equal(tt.exists, got)
		})
	}
}

type ViewGetStringSuite struct {
	suite.Suite
	view View
}

func (s *ViewGetStringSuite) SetupTest() {
	raw := []byte(`{
		"session_id": "abc123",
		"count": 42,
		"stop_hook_active": true,
		"tool_input": {
			"file_path": "main.go"
		}
	}`)

	var err error
	s.view, err = Inspect(raw)
	s.Require().NoError(err)
}

func TestViewGetStringSuite(t *testing.T) {
	suite.Run(t, new(ViewGetStringSuite))
}

func (s *ViewGetStringSuite) TestReturnsStringValue() {
	val, ok := s.view.GetString("session_id")

	s.Require().True(ok)
	s.Assert().Equal("abc123", val)
}

func (s *ViewGetStringSuite) TestReturnsNestedStringValue() {
	val, ok := s.view.GetString("tool_input.file_path")

	s.Require().True(ok)
	s.Assert().Equal("main.go", val)
}

func (s *ViewGetStringSuite) TestReturnsFalseForNumber() {
	_, ok := s.view.GetString("count")

	s.Assert().False(ok)
}

func (s *ViewGetStringSuite) TestReturnsFalseForBoolean() {
	_, ok := s.view.GetString("stop_hook_active")

	s.Assert().False(ok)
}

func (s *ViewGetStringSuite) TestReturnsFalseForMissingField() {
	_, ok := s.view.GetString("missing")

	s.Assert().False(ok)
}

type ViewGetBytesSuite struct {
	suite.Suite
	view View
}

func (s *ViewGetBytesSuite) SetupTest() {
	raw := []byte(`{
		"tool_name": "Read",
		"count": 42,
		"tool_input": {"file_path": "a.txt"}
	}`)

	var err error
	s.view, err = Inspect(raw)
	s.Require().NoError(err)
}

func TestViewGetBytesSuite(t *testing.T) {
	suite.Run(t, new(ViewGetBytesSuite))
}

func (s *ViewGetBytesSuite) TestReturnsRawStringWithQuotes() {
	val, ok := s.view.GetBytes("tool_name")

	s.Require().True(ok)
	s.Assert().Equal(`"Read"`, string(val))
}

func (s *ViewGetBytesSuite) TestReturnsRawNumber() {
	val, ok := s.view.GetBytes("count")

	s.Require().True(ok)
	s.Assert().Equal("42", string(val))
}

func (s *ViewGetBytesSuite) TestReturnsRawObject() {
	val, ok := s.view.GetBytes("tool_input")

	s.Require().True(ok)
	s.Assert().Equal(`{"file_path": "a.txt"}`, string(val))
}

func (s *ViewGetBytesSuite) TestReturnsFalseForMissingField() {
	_, ok := s.view.GetBytes("missing")

	s.Assert().False(ok)
}

func (s *ViewGetBytesSuite) TestShapeOf() {
	s.Assert().Equal("object", shapeOf(gjson.Parse(`{}`)))
	s.Assert().Equal("array", shapeOf(gjson.Parse(`[]`)))
	s.Assert().Equal("null", shapeOf(gjson.Parse(`null`)))
	s.Assert().Equal("boolean", shapeOf(gjson.Parse(`false`)))
}
