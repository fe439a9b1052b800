package format

import (
	"bytes"
	"strings"
	"testing"
)

type envelope struct {
	Data map[string]any `json:"data"`
}

type notice string

func (n notice) Text() string { return string(n) + "\n" }

func TestWrite(t *testing.T) {
	v := envelope{Data: map[string]any{"path": "/tmp/x.html", "bytes": 12}}

	tests := []struct {
		format string
		pretty bool
		want   string
	}{
		{"json", false, `{"data":{"bytes":12,"path":"/tmp/x.html"}}` + "\n"},
		{"", false, `{"data":{"bytes":12,"path":"/tmp/x.html"}}` + "\n"},
		{"json", true, "{\n  \"data\": {\n    \"bytes\": 12,\n    \"path\": \"/tmp/x.html\"\n  }\n}\n"},
		{"yaml", false, "data:\n  bytes: 12\n  path: /tmp/x.html\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := Write(&buf, v, tt.format, tt.pretty); err != nil {
			t.Fatalf("%s: %v", tt.format, err)
		}
		if buf.String() != tt.want {
			t.Fatalf("%s (pretty=%v):\n got %q\nwant %q", tt.format, tt.pretty, buf.String(), tt.want)
		}
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, notice("exported /tmp/x.html"), "text", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.String() != "exported /tmp/x.html\n" {
		t.Fatalf("got %q", buf.String())
	}

	buf.Reset()
	if err := Write(&buf, map[string]any{"data": notice("inside")}, "text", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.String() != "inside\n" {
		t.Fatalf("envelope data should render as text, got %q", buf.String())
	}

	buf.Reset()
	if err := Write(&buf, map[string]int{"a": 1}, "text", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "\"a\": 1") {
		t.Fatalf("non-Texter payloads fall back to JSON, got %q", buf.String())
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, 1, "edn", false); err == nil {
		t.Fatalf("expected error")
	}
}
