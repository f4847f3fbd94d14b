package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"vedic-admin/logger"
	"vedic-admin/snapshot"
)

type snapshotArgs struct {
	url     string
	format  string
	out     string
	width   int64
	height  int64
	timeout time.Duration
}

var snapArgs snapshotArgs

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Capture a console page as PDF or PNG",
	Long:  "Capture a console page as PDF or PNG with headless Chrome, e.g. the dashboard or a filtered list",
	RunE:  runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapArgs.url, "url", "u", "", "page URL, defaults to the dashboard at HTTP_ADDR")
	snapshotCmd.Flags().StringVarP(&snapArgs.format, "format", "f", snapshot.FormatPDF, "pdf or png")
	snapshotCmd.Flags().StringVarP(&snapArgs.out, "out", "o", "", "output file")
	snapshotCmd.Flags().Int64Var(&snapArgs.width, "width", 1366, "viewport width")
	snapshotCmd.Flags().Int64Var(&snapArgs.height, "height", 900, "viewport height")
	snapshotCmd.Flags().DurationVar(&snapArgs.timeout, "timeout", 30*time.Second, "capture timeout")
	RootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	url := snapArgs.url
	if url == "" {
		url = "http://" + cfg.HTTPAddr + "/"
	}
	opts := snapshot.Options{
		Format:  snapArgs.format,
		Width:   snapArgs.width,
		Height:  snapArgs.height,
		Timeout: snapArgs.timeout,
	}
	if err := opts.Normalize(); err != nil {
		return err
	}
	data, err := snapshot.Capture(cmd.Context(), url, opts)
	if err != nil {
		return fmt.Errorf("failed to capture %s: %v", url, err)
	}
	out := snapArgs.out
	if out == "" {
		out = snapshotFileName(opts, time.Now())
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %v", err)
	}
	logger.Logger.Printf("Wrote %s (%d bytes)", out, len(data))
	return nil
}

// snapshotFileName names a capture after its time and format. opts must be
// normalized.
func snapshotFileName(opts snapshot.Options, now time.Time) string {
	return "snapshot-" + now.Format("20060102-150405") + opts.Extension()
}
