package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"vedic-admin/audit"
	"vedic-admin/console"
	"vedic-admin/logger"
)

type serveArgs struct {
	addr        string
	auditDriver string
	auditDSN    string
}

var sArgs serveArgs

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the admin console",
	Long:  "Run the admin console web server against the content API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&sArgs.addr, "addr", "a", "", "listen address, overrides HTTP_ADDR")
	serveCmd.Flags().StringVar(&sArgs.auditDriver, "audit-driver", "", "audit driver: sqlite, mysql, postgres or none")
	serveCmd.Flags().StringVar(&sArgs.auditDSN, "audit-dsn", "", "audit database DSN or sqlite path")
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if sArgs.addr != "" {
		cfg.HTTPAddr = sArgs.addr
	}
	if sArgs.auditDriver != "" {
		cfg.AuditDriver = sArgs.auditDriver
	}
	if sArgs.auditDSN != "" {
		cfg.AuditDSN = sArgs.auditDSN
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := newClient()
	if err != nil {
		return err
	}
	store, err := audit.Open(ctx, cfg.AuditDriver, cfg.AuditDSN)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Logger.Printf("failed to close audit log: %v", err)
		}
	}()

	logger.Logger.Printf("Using content API %s, audit driver %s", client.BaseURL(), cfg.AuditDriver)
	return console.New(client, store, []byte(cfg.FlashKey)).ListenAndServe(ctx, cfg.HTTPAddr)
}
