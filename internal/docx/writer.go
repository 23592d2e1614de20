package docx

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriteTo serialises the document as a WordprocessingML package.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)
	for _, p := range packageParts {
		f, err := zw.Create(p.name)
		if err != nil {
			return cw.n, fmt.Errorf("create %s: %w", p.name, err)
		}
		if err := partTemplates.ExecuteTemplate(f, p.template, d); err != nil {
			return cw.n, fmt.Errorf("render %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return cw.n, fmt.Errorf("finish package: %w", err)
	}
	return cw.n, nil
}

// Save writes the document to path. The package is written to a temporary
// file in the same directory and renamed into place, so path is either the
// complete document or untouched.
func (d *Document) Save(path string) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("output path is required")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".md2docx-*.docx")
	if err != nil {
		return err
	}
	if _, err := d.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
