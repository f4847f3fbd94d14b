package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"vedic-admin/audit"
)

var auditLimit int

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "List recent operator actions",
	RunE:  runAudit,
}

func init() {
	auditCmd.Flags().IntVarP(&auditLimit, "limit", "n", 20, "number of entries")
	RootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	store, err := audit.Open(cmd.Context(), cfg.AuditDriver, cfg.AuditDSN)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %v", err)
	}
	if store == nil {
		return fmt.Errorf("audit log is disabled (AUDIT_DRIVER=%s)", cfg.AuditDriver)
	}
	defer store.Close()

	entries, err := store.Recent(cmd.Context(), auditLimit)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tACTION\tKIND\tID\tTITLE\tDETAIL\tREQUEST")
	now := time.Now()
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			humanize.RelTime(e.At, now, "ago", "from now"), e.Action, e.Kind, e.TargetId, e.Title, e.Detail, e.RequestId)
	}
	return tw.Flush()
}
