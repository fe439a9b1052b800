package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Texter is implemented by payloads with a human-readable rendering.
type Texter interface {
	Text() string
}

// Write encodes v for command output.
//
// Supported formats:
// - json (default)
// - yaml
// - text (Texter payloads; anything else falls back to indented JSON)
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "yaml", "yml":
		return WriteYAML(w, v)
	case "text":
		if t, ok := texterOf(v); ok {
			_, err := fmt.Fprintln(w, strings.TrimRight(t.Text(), "\n"))
			return err
		}
		return WriteJSON(w, v, true)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON, one document per line unless pretty.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

// WriteYAML writes v through its json tags, so yaml and json output share
// field names.
func WriteYAML(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var generic any
	if err := json.Unmarshal(b, &generic); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(generic); err != nil {
		return err
	}
	return enc.Close()
}

// texterOf finds a Texter in v or in the "data" field of an envelope.
func texterOf(v any) (Texter, bool) {
	if t, ok := v.(Texter); ok {
		return t, true
	}
	if env, ok := v.(map[string]any); ok {
		t, ok := env["data"].(Texter)
		return t, ok
	}
	return nil, false
}
