package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestHandler_Handle(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	r := slog.NewRecord(time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC), slog.LevelInfo, "rotating backups", 0)
	r.AddAttrs(slog.String("source", "todo.json"), slog.Int("kept", 3))

	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"INFO", "rotating backups", "source=todo.json", "kept=3"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q: %q", want, output)
		}
	}
}

func TestHandler_Enabled(t *testing.T) {
	h := NewHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, nil)

	derived := h.WithAttrs([]slog.Attr{slog.String("component", "resolver")})

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "cache refreshed", 0)
	if err := derived.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if !strings.Contains(buf.String(), "component=resolver") {
		t.Errorf("output missing WithAttrs attribute: %q", buf.String())
	}

	// The original handler must not inherit derived attrs.
	buf.Reset()
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if strings.Contains(buf.String(), "component=resolver") {
		t.Error("original handler should not carry derived attrs")
	}
}

func TestMultiHandler_DispatchesToAll(t *testing.T) {
	var a, b bytes.Buffer
	mh := NewMultiHandler(
		NewHandler(&a, nil),
		slog.NewJSONHandler(&b, nil),
	)

	logger := slog.New(mh)
	logger.Info("fanout")

	if !strings.Contains(a.String(), "fanout") {
		t.Error("text handler should receive the record")
	}
	if !strings.Contains(b.String(), "fanout") {
		t.Error("JSON handler should receive the record")
	}
}

func TestMultiHandler_LevelMix(t *testing.T) {
	var quiet, chatty bytes.Buffer
	mh := NewMultiHandler(
		NewHandler(&quiet, &slog.HandlerOptions{Level: slog.LevelError}),
		NewHandler(&chatty, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)

	if !mh.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("multi handler should be enabled when any child is")
	}

	logger := slog.New(mh)
	logger.Debug("details")

	if quiet.Len() != 0 {
		t.Error("error-level handler should not receive debug records")
	}
	if !strings.Contains(chatty.String(), "details") {
		t.Error("debug-level handler should receive debug records")
	}
}
