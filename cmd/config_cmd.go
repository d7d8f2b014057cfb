package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/guidepost-labs/guidepost/internal/cli"
	"github.com/guidepost-labs/guidepost/internal/config"
	"github.com/guidepost-labs/guidepost/internal/draftstore"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Environment: %s\n", cfg.General.Environment)
	fmt.Printf("    Theme:       %s\n", cfg.General.Theme)
	fmt.Printf("    Draft DB:    %s\n", config.DraftDBPath(cfg, draftstore.DefaultPath()))
	fmt.Println()

	fmt.Println("  [Webhook]")
	fmt.Printf("    Endpoint:     %s\n", config.WebhookURL(cfg))
	fmt.Printf("    Brokerage ID: %s\n", cfg.Webhook.BrokerageID)
	if secret := config.GetIntakeSecret(cfg); secret != "" {
		fmt.Printf("    Secret:       %s\n", cli.MaskSecret(secret))
	} else {
		fmt.Println("    Secret:       not configured")
	}

	return nil
}
