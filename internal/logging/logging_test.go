package logging

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewJSONLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Format: "json"}, &buf)

	logger.Info().Msg("hidden")
	logger.Warn().Str("component", "test").Msg("shown")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected a single JSON line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "shown" || entry["level"] != "warn" || entry["component"] != "test" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestWithRunID(t *testing.T) {
	var buf bytes.Buffer
	logger, id := WithRunID(New(Config{Format: "json"}, &buf))
	if len(id) != 36 {
		t.Fatalf("unexpected run id %q", id)
	}

	logger.Info().Msg("tick")
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["run_id"] != id {
		t.Fatalf("run_id not attached: %v", entry)
	}
}
