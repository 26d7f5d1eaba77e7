package b64p

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name string
		want Format
		err  error
	}{
		{name: "lines", want: FormatLines},
		{name: "TABLE", want: FormatTable},
		{name: "yaml", want: FormatYAML},
		{name: "json", err: ErrUnknownFormat},
		{name: "", err: ErrUnknownFormat},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.name)
		if !errors.Is(err, tt.err) {
			t.Errorf("ParseFormat(%q) error = %v; want %v", tt.name, err, tt.err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q; want %q", tt.name, got, tt.want)
		}
	}
}

func TestSelectEncoding(t *testing.T) {
	if SelectEncoding(false) != base64.StdEncoding {
		t.Error("Expected standard encoding by default")
	}
	if SelectEncoding(true) != base64.URLEncoding {
		t.Error("Expected URL-safe encoding when requested")
	}
}

func TestWriteLines(t *testing.T) {
	partials, err := ComputePartials([]byte("ab"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteLines(&buf, partials); err != nil {
		t.Fatalf("WriteLines returned error: %v", err)
	}

	if got, want := buf.String(), "YW\nFi\nhY\n"; got != want {
		t.Errorf("WriteLines wrote %q; want %q", got, want)
	}
}

func TestWriteLinesEmptyPartial(t *testing.T) {
	partials, err := ComputePartials([]byte("a"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteLines(&buf, partials); err != nil {
		t.Fatalf("WriteLines returned error: %v", err)
	}

	// Always three lines, even when a partial is empty
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[1] != "" {
		t.Errorf("Expected empty second line, got %q", lines[1])
	}
}

func TestWriteTable(t *testing.T) {
	details, err := Explain([]byte("password"), base64.StdEncoding)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteTable(&buf, details); err != nil {
		t.Fatalf("WriteTable returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"cGFzc3dvcmQ=", "cGFzc3dvcm",
		"MHBhc3N3b3Jk", "Bhc3N3b3Jk",
		"MDBwYXNzd29yZA==", "wYXNzd29yZ",
		`"00password"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected table to contain %q, got:\n%s", want, out)
		}
	}
}
