package internal

import (
	"bytes"
	"encoding/json"
)

// Message roles as they appear in transcript.jsonl
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message represents one turn in a session transcript
type Message struct {
	Role      string     `json:"role"`
	Content   Content    `json:"content"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
	Timestamp string     `json:"timestamp,omitempty"`
}

// ToolCall represents a single tool invocation issued by the assistant
type ToolCall struct {
	Tool      string          `json:"tool"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
}

// ArgsString returns the raw argument payload as text, or "" if absent.
// Used by detectors that do substring matching on stringified arguments.
func (tc ToolCall) ArgsString() string {
	if len(tc.Arguments) == 0 {
		return ""
	}
	return string(tc.Arguments)
}

// ContentBlock represents one typed block in structured message content
type ContentBlock struct {
	Type string `json:"type" yaml:"type"`
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Block types observed in assistant messages
const (
	BlockThinking = "thinking"
	BlockToolCall = "tool_call"
)

type contentKind int

const (
	contentEmpty contentKind = iota
	contentText
	contentBlocks
	contentOther
)

// Content is the polymorphic message body: transcripts store it either as
// a plain string or as an ordered list of typed blocks. The original raw
// JSON is retained so stringified matching stays faithful to the input.
type Content struct {
	text   string
	blocks []ContentBlock
	kind   contentKind
	raw    json.RawMessage
}

// NewTextContent creates plain-text content
func NewTextContent(text string) Content {
	return Content{text: text, kind: contentText}
}

// NewBlockContent creates structured block content
func NewBlockContent(blocks ...ContentBlock) Content {
	return Content{blocks: blocks, kind: contentBlocks}
}

// IsText reports whether the content is a plain string
func (c Content) IsText() bool {
	return c.kind == contentText
}

// IsBlocks reports whether the content is a list of typed blocks
func (c Content) IsBlocks() bool {
	return c.kind == contentBlocks
}

// Text returns the plain-text body, or "" for non-text content
func (c Content) Text() string {
	return c.text
}

// Blocks returns the typed block list, or nil for non-block content
func (c Content) Blocks() []ContentBlock {
	return c.blocks
}

// String returns the content stringified for substring matching: the text
// itself for plain content, the raw JSON for block or object shapes.
func (c Content) String() string {
	switch c.kind {
	case contentText:
		return c.text
	case contentEmpty:
		return ""
	default:
		if len(c.raw) > 0 {
			return string(c.raw)
		}
		b, err := json.Marshal(c.blocks)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

// UnmarshalJSON accepts a string, a block list, or any other JSON shape
func (c *Content) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*c = Content{}
		return nil
	}

	var text string
	if err := json.Unmarshal(trimmed, &text); err == nil {
		*c = Content{text: text, kind: contentText}
		return nil
	}

	var blocks []ContentBlock
	if err := json.Unmarshal(trimmed, &blocks); err == nil {
		raw := make(json.RawMessage, len(trimmed))
		copy(raw, trimmed)
		*c = Content{blocks: blocks, kind: contentBlocks, raw: raw}
		return nil
	}

	// Unknown shape (e.g. an object): keep the raw bytes for stringified matching
	raw := make(json.RawMessage, len(trimmed))
	copy(raw, trimmed)
	*c = Content{kind: contentOther, raw: raw}
	return nil
}

// MarshalJSON re-emits the content in its original shape
func (c Content) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case contentText, contentEmpty:
		return json.Marshal(c.text)
	case contentBlocks:
		if len(c.raw) > 0 {
			return c.raw, nil
		}
		return json.Marshal(c.blocks)
	default:
		return c.raw, nil
	}
}

// MarshalYAML mirrors MarshalJSON for the YAML exporter
func (c Content) MarshalYAML() (interface{}, error) {
	switch c.kind {
	case contentText, contentEmpty:
		return c.text, nil
	case contentBlocks:
		return c.blocks, nil
	default:
		return string(c.raw), nil
	}
}
