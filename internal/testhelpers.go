package internal

// CreateTestMessage creates a plain-text message for tests
func CreateTestMessage(role, text, timestamp string) Message {
	return Message{
		Role:      role,
		Content:   NewTextContent(text),
		Timestamp: timestamp,
	}
}

// CreateToolCallMessage creates an assistant message issuing the given tools
func CreateToolCallMessage(tools ...string) Message {
	calls := make([]ToolCall, 0, len(tools))
	for _, tool := range tools {
		calls = append(calls, ToolCall{Tool: tool})
	}
	return Message{
		Role:      RoleAssistant,
		ToolCalls: calls,
	}
}

// CreateTestRawSession creates a raw session with metadata and messages
func CreateTestRawSession(id string, messages []Message) *RawSession {
	return &RawSession{
		Meta: &Metadata{
			SessionID: id,
			Created:   "2025-06-01T10:00:00+00:00",
			Name:      "Test Session",
			TurnCount: len(messages),
		},
		Messages: messages,
		DirName:  id,
		Project:  "test-project",
	}
}

// CreateTestRecord creates a minimal valid session record for tests
func CreateTestRecord(id string) *SessionRecord {
	return Summarize(CreateTestRawSession(id, []Message{
		CreateTestMessage(RoleUser, "Hello", "2025-06-01T10:00:00+00:00"),
		CreateTestMessage(RoleAssistant, "Hi there", "2025-06-01T10:05:00+00:00"),
	}))
}

// CreateTestReport creates a report over the given records
func CreateTestReport(records ...*SessionRecord) *Report {
	return BuildReport(records)
}
