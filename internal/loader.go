package internal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Loader discovers session directories under a projects root and parses
// their metadata and transcripts. Parse failures are absorbed: a session
// that cannot be read is skipped, never fatal.
type Loader struct {
	projectsDir string
}

// NewLoader creates a Loader rooted at the given projects directory
func NewLoader(projectsDir string) *Loader {
	return &Loader{projectsDir: projectsDir}
}

// DefaultProjectsDir returns the standard projects root under the home
// directory
func DefaultProjectsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".amplifier", "projects"), nil
}

// FindSessionDirs walks the projects root and returns every directory
// holding a metadata.json under a "sessions" path element, sorted for
// reproducible ordering
func (l *Loader) FindSessionDirs() ([]string, error) {
	var sessionDirs []string

	err := filepath.Walk(l.projectsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Skip directories we can't access
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() || info.Name() != "metadata.json" {
			return nil
		}
		dir := filepath.Dir(path)
		if pathHasElement(dir, "sessions") {
			sessionDirs = append(sessionDirs, dir)
		}
		return nil
	})
	if err != nil {
		return nil, &StorageError{Path: l.projectsDir, Op: "walk", Err: err}
	}

	sort.Strings(sessionDirs)
	return sessionDirs, nil
}

// LoadSession reads one session directory: metadata.json plus the sibling
// transcript.jsonl. A missing transcript yields an empty message list; a
// malformed metadata file yields nil metadata. Both cases leave the
// session to be filtered out by the summarizer.
func (l *Loader) LoadSession(sessionDir string) *RawSession {
	raw := &RawSession{
		DirName: filepath.Base(sessionDir),
		Project: projectFromPath(sessionDir),
	}

	metadataPath := filepath.Join(sessionDir, "metadata.json")
	data, err := os.ReadFile(metadataPath)
	if err != nil {
		LogWarn("Failed to read %s: %v", metadataPath, err)
		return raw
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		LogWarn("%v", &ParseError{Path: metadataPath, Err: err})
		return raw
	}
	raw.Meta = &meta

	raw.Messages = l.loadTranscript(filepath.Join(sessionDir, "transcript.jsonl"))
	return raw
}

// loadTranscript parses a JSONL transcript, one message per line. Blank
// lines are skipped and unparseable lines are dropped with a warning.
func (l *Loader) loadTranscript(path string) []Message {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer func() { _ = f.Close() }()

	var messages []Message
	scanner := bufio.NewScanner(f)
	// Tool output lines can be large
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var msg Message
		if err := json.Unmarshal([]byte(line), &msg); err != nil {
			LogWarn("Skipping malformed line %d: %v", lineNum, &ParseError{Path: path, Err: err})
			continue
		}
		messages = append(messages, msg)
	}
	if err := scanner.Err(); err != nil {
		LogWarn("Failed to read transcript %s: %v", path, err)
	}

	return messages
}

// LoadAll discovers and loads every session under the projects root
func (l *Loader) LoadAll() ([]*RawSession, error) {
	sessionDirs, err := l.FindSessionDirs()
	if err != nil {
		return nil, err
	}

	LogInfo("Found %d session(s) to analyze", len(sessionDirs))

	raws := make([]*RawSession, 0, len(sessionDirs))
	for _, dir := range sessionDirs {
		raws = append(raws, l.LoadSession(dir))
	}
	return raws, nil
}

// projectFromPath extracts the project name between the "projects" and
// "sessions" path segments
func projectFromPath(sessionDir string) string {
	marker := string(filepath.Separator) + "projects" + string(filepath.Separator)
	path := sessionDir
	if i := strings.LastIndex(path, marker); i >= 0 {
		path = path[i+len(marker):]
	}
	sessionsMarker := string(filepath.Separator) + "sessions"
	if i := strings.Index(path, sessionsMarker); i >= 0 {
		path = path[:i]
	}
	return path
}

// pathHasElement reports whether any element of path equals name
func pathHasElement(path, name string) bool {
	for _, part := range strings.Split(path, string(filepath.Separator)) {
		if part == name {
			return true
		}
	}
	return false
}
