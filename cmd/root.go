package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"vedic-admin/api"
	"vedic-admin/config"
	"vedic-admin/logger"
)

var RootCmd = &cobra.Command{
	Use:               "vedic-admin",
	Short:             "Admin console for the Vedic AI content API",
	Long:              "Admin console for the Vedic AI content API: books, textbooks, research papers, thesis, contact submissions and newsletter subscriptions",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Close()
	},
}

var (
	cfg    *config.Config
	apiURL string
)

func init() {
	RootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "content API base URL, overrides VEDIC_API_URL")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	if apiURL != "" {
		c.APIURL = apiURL
	}
	if err := logger.Setup(c.LogPath); err != nil {
		return err
	}
	cfg = c
	return nil
}

func newClient() (*api.Client, error) {
	client, err := api.New(cfg.APIOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to create api client: %v", err)
	}
	return client, nil
}
