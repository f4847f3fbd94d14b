package snapshot

import (
	"context"
	"testing"
	"time"
)

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if opts.Format != FormatPDF || opts.Width != 1366 || opts.Height != 900 {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
	if opts.Timeout != 30*time.Second || opts.WaitFor != ".admin-page" {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
	if opts.Extension() != ".pdf" {
		t.Fatalf("extension = %q", opts.Extension())
	}
}

func TestOptionsFormat(t *testing.T) {
	opts := Options{Format: " PNG "}
	if err := opts.Normalize(); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if opts.Extension() != ".png" {
		t.Fatalf("extension = %q", opts.Extension())
	}

	bad := Options{Format: "gif"}
	if err := bad.Normalize(); err == nil {
		t.Fatal("expected error for gif")
	}
}

func TestCaptureRejectsNonHTTP(t *testing.T) {
	if _, err := Capture(context.Background(), "file:///etc/passwd", Options{}); err == nil {
		t.Fatal("expected error for file url")
	}
}
