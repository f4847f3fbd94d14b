package cmd

import (
	"testing"
	"time"

	"vedic-admin/snapshot"
)

func TestSnapshotFileName(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 30, 5, 0, time.UTC)
	for format, want := range map[string]string{
		"":      "snapshot-20240315-093005.pdf",
		" PNG ": "snapshot-20240315-093005.png",
		"pdf":   "snapshot-20240315-093005.pdf",
	} {
		opts := snapshot.Options{Format: format}
		if err := opts.Normalize(); err != nil {
			t.Fatalf("Normalize(%q): %v", format, err)
		}
		if got := snapshotFileName(opts, now); got != want {
			t.Fatalf("snapshotFileName(%q) = %q, want %q", format, got, want)
		}
	}
}
