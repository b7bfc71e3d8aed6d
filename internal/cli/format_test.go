package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/evcraddock/message-part/internal/content"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"short", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"long", "hello world!", 8, "hello..."},
		{"multibyte kept whole", strings.Repeat("a", 36) + "世界世界世界", 40, strings.Repeat("a", 36) + "世..."},
		{"multibyte fits", "héllo 世界", 8, "héllo 世界"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := truncate(tt.input, tt.max)
			if !utf8.ValidString(result) {
				t.Errorf("truncate(%q, %d) = %q, not valid UTF-8", tt.input, tt.max, result)
			}
			if result != tt.expected {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.max, result, tt.expected)
			}
		})
	}
}

func TestFormatTime(t *testing.T) {
	if got := formatTime(time.Time{}); got != "-" {
		t.Errorf("zero time = %q, want %q", got, "-")
	}
}

func TestPrintPartTable(t *testing.T) {
	parts := []*content.Part{
		{ID: "p1", Title: "Never", UpdatedAt: time.Now()},
		{ID: "p2", Title: "Saved", Bag: json.RawMessage(`{"message":"x"}`), UpdatedAt: time.Now()},
	}

	var buf bytes.Buffer
	if err := printPartTable(&buf, parts); err != nil {
		t.Fatalf("print: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[2], "never saved") {
		t.Errorf("row 1 = %q, want never saved", lines[2])
	}
	if !strings.Contains(lines[3], "saved") || strings.Contains(lines[3], "never") {
		t.Errorf("row 2 = %q, want saved", lines[3])
	}
}
