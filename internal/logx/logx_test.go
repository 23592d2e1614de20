package logx

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"pkt.systems/pslog"
)

func TestWithOutputAddsField(t *testing.T) {
	capture := &logCapture{}
	log := WithOutput(newLogger(capture), "/tmp/paper.docx")
	log.Info("hello")

	entry := capture.firstEntry(t)
	if entry["output"] != "/tmp/paper.docx" {
		t.Fatalf("expected output field, got %+v", entry)
	}
}

func TestWithOutputSkipsEmpty(t *testing.T) {
	capture := &logCapture{}
	WithOutput(newLogger(capture), "").Info("hello")

	entry := capture.firstEntry(t)
	if _, ok := entry["output"]; ok {
		t.Fatalf("did not expect output field")
	}
}

func TestWithLineIsOneBased(t *testing.T) {
	capture := &logCapture{}
	WithLine(newLogger(capture), 0).Info("hello")

	entry := capture.firstEntry(t)
	if line, ok := entry["line"].(float64); !ok || line != 1 {
		t.Fatalf("expected line 1, got %+v", entry)
	}
}

func TestWithSourceAddsField(t *testing.T) {
	capture := &logCapture{}
	ctx := pslog.ContextWithLogger(context.Background(), newLogger(capture))
	WithSource(ctx, "paper.md").Info("hello")

	entry := capture.firstEntry(t)
	if entry["source"] != "paper.md" {
		t.Fatalf("expected source field, got %+v", entry)
	}
}

func TestWithSourceDedupesContextMarker(t *testing.T) {
	capture := &logCapture{}
	logger := newLogger(capture).With("source", "paper.md")
	ctx := ContextWithSourceLogger(context.Background(), logger, "paper.md")
	WithSource(ctx, "paper.md").Info("hello")

	line := capture.buf.String()
	if n := bytes.Count([]byte(line), []byte(`"source"`)); n != 1 {
		t.Fatalf("expected a single source field, got %d in %s", n, line)
	}
}

func newLogger(capture *logCapture) pslog.Logger {
	return pslog.NewWithOptions(capture, pslog.Options{
		Mode:          pslog.ModeStructured,
		NoColor:       true,
		MinLevel:      pslog.InfoLevel,
		VerboseFields: true,
	})
}

type logCapture struct {
	buf bytes.Buffer
}

func (c *logCapture) Write(p []byte) (int, error) {
	return c.buf.Write(p)
}

func (c *logCapture) firstEntry(t *testing.T) map[string]any {
	t.Helper()
	data := c.buf.Bytes()
	idx := bytes.IndexByte(data, '\n')
	if idx == -1 {
		idx = len(data)
	}
	line := bytes.TrimSpace(data[:idx])
	entry := map[string]any{}
	if err := json.Unmarshal(line, &entry); err != nil {
		t.Fatalf("parse log entry: %v", err)
	}
	return entry
}
