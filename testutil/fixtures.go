package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteSessionFixture creates a session directory fixture under root:
// <root>/<project>/sessions/<dirName>/{metadata.json, transcript.jsonl}.
// transcriptLines are written verbatim, one per line; pass nil to skip the
// transcript file entirely.
func WriteSessionFixture(t *testing.T, root, project, dirName string, metadata map[string]interface{}, transcriptLines []string) string {
	t.Helper()

	sessionDir := filepath.Join(root, project, "sessions", dirName)
	if err := os.MkdirAll(sessionDir, 0755); err != nil {
		t.Fatalf("Failed to create session directory: %v", err)
	}

	if metadata != nil {
		data, err := json.Marshal(metadata)
		if err != nil {
			t.Fatalf("Failed to marshal metadata: %v", err)
		}
		if err := os.WriteFile(filepath.Join(sessionDir, "metadata.json"), data, 0644); err != nil {
			t.Fatalf("Failed to write metadata.json: %v", err)
		}
	}

	if transcriptLines != nil {
		content := strings.Join(transcriptLines, "\n") + "\n"
		if err := os.WriteFile(filepath.Join(sessionDir, "transcript.jsonl"), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write transcript.jsonl: %v", err)
		}
	}

	return sessionDir
}

// WriteRawSessionFixture is like WriteSessionFixture but takes the
// metadata file content verbatim, for malformed-input tests
func WriteRawSessionFixture(t *testing.T, root, project, dirName, metadata string, transcriptLines []string) string {
	t.Helper()

	sessionDir := filepath.Join(root, project, "sessions", dirName)
	if err := os.MkdirAll(sessionDir, 0755); err != nil {
		t.Fatalf("Failed to create session directory: %v", err)
	}

	if metadata != "" {
		if err := os.WriteFile(filepath.Join(sessionDir, "metadata.json"), []byte(metadata), 0644); err != nil {
			t.Fatalf("Failed to write metadata.json: %v", err)
		}
	}

	if transcriptLines != nil {
		content := strings.Join(transcriptLines, "\n") + "\n"
		if err := os.WriteFile(filepath.Join(sessionDir, "transcript.jsonl"), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write transcript.jsonl: %v", err)
		}
	}

	return sessionDir
}

// WriteFile writes a file fixture, creating parent directories as needed
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
}

// TranscriptLine marshals a message-shaped map into one JSONL line
func TranscriptLine(t *testing.T, msg map[string]interface{}) string {
	t.Helper()
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Failed to marshal transcript line: %v", err)
	}
	return string(data)
}

// UserLine builds a plain-text user message line
func UserLine(t *testing.T, text string) string {
	t.Helper()
	return TranscriptLine(t, map[string]interface{}{"role": "user", "content": text})
}

// AssistantToolLine builds an assistant message line calling the given tools
func AssistantToolLine(t *testing.T, tools ...string) string {
	t.Helper()
	calls := make([]map[string]interface{}, 0, len(tools))
	for _, tool := range tools {
		calls = append(calls, map[string]interface{}{"tool": tool})
	}
	return TranscriptLine(t, map[string]interface{}{"role": "assistant", "content": "", "tool_calls": calls})
}
