package export

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
)

const (
	DefaultBaseName  = "document"
	DefaultExtension = ".html"
	DefaultMediaType = "text/html; charset=utf-8"
	DefaultTitle     = "Document"
)

// Options controls the name, declared type and shape of an exported file.
type Options struct {
	Dir       string
	BaseName  string
	Extension string
	MediaType string
	// Standalone wraps the fragment in a full HTML page.
	Standalone bool
	Title      string
}

// Normalize fills empty fields with defaults and cleans the name parts.
func (o Options) Normalize() Options {
	o.BaseName = strings.TrimSpace(o.BaseName)
	if o.BaseName != "" {
		o.BaseName = filepath.Base(o.BaseName)
	}
	if o.BaseName == "" || o.BaseName == "." || o.BaseName == string(filepath.Separator) {
		o.BaseName = DefaultBaseName
	}
	o.Extension = strings.TrimSpace(o.Extension)
	if o.Extension == "" {
		o.Extension = DefaultExtension
	}
	if !strings.HasPrefix(o.Extension, ".") {
		o.Extension = "." + o.Extension
	}
	o.MediaType = strings.TrimSpace(o.MediaType)
	if o.MediaType == "" {
		o.MediaType = DefaultMediaType
	}
	o.Title = strings.TrimSpace(o.Title)
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	o.Dir = strings.TrimSpace(o.Dir)
	return o
}

// FileName is the fixed naming pattern: <BaseName><Extension>.
func FileName(opts Options) string {
	opts = opts.Normalize()
	return opts.BaseName + opts.Extension
}

// DefaultPath is where Write puts the file.
func DefaultPath(opts Options) string {
	opts = opts.Normalize()
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, FileName(opts))
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
<article class="markdown-body">
{{.Body}}
</article>
</body>
</html>
`))

// Render returns the bytes an export writes: the fragment as-is, or a full
// page around it when Standalone is set.
func Render(html string, opts Options) []byte {
	opts = opts.Normalize()
	if !opts.Standalone {
		return []byte(html)
	}
	var b bytes.Buffer
	err := pageTemplate.Execute(&b, struct {
		Title string
		Body  template.HTML
	}{
		Title: opts.Title,
		Body:  template.HTML(html),
	})
	if err != nil {
		return []byte(html)
	}
	return b.Bytes()
}

// Write renders html and writes it to DefaultPath, replacing any existing file.
func Write(html string, opts Options) (string, error) {
	path := DefaultPath(opts)
	if err := WriteFile(path, html, opts); err != nil {
		return "", err
	}
	return path, nil
}

// WriteFile renders html and writes it to path, replacing any existing file.
func WriteFile(path string, html string, opts Options) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("export: empty path")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: create dir: %w", err)
	}
	if err := atomicWriteFile(dir, ".mdpad-export-*", path, Render(html, opts), 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

// ContentDisposition is the header value offering the export as a download.
func ContentDisposition(opts Options) string {
	return fmt.Sprintf("attachment; filename=%q", FileName(opts))
}
