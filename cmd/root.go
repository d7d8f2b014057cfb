// Package cmd implements the guidepost CLI commands.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/guidepost-labs/guidepost/internal/budget"
	"github.com/guidepost-labs/guidepost/internal/config"
	"github.com/guidepost-labs/guidepost/internal/draftstore"
	"github.com/guidepost-labs/guidepost/internal/lead"
	"github.com/guidepost-labs/guidepost/internal/tui"
	"github.com/guidepost-labs/guidepost/internal/tui/theme"
	"github.com/guidepost-labs/guidepost/internal/webhook"
)

var (
	flagEnv     string
	flagDraftDB string
)

var rootCmd = &cobra.Command{
	Use:   "guidepost",
	Short: "Buyer guide intake for real-estate agents",
	Long:  "Fill in buyer details and submit them for an automatically generated market guide.\nHalf-finished forms are saved locally and restored on the next run.",
	RunE:  runForm,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagEnv, "environment", "e", "", "Override deployment environment (production|development)")
	rootCmd.PersistentFlags().StringVar(&flagDraftDB, "draft-db", "", "Override draft database path")
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagEnv != "" {
		if flagEnv != config.EnvProduction && flagEnv != config.EnvDevelopment {
			return cfg, fmt.Errorf("unknown environment %q", flagEnv)
		}
		cfg.General.Environment = flagEnv
	}
	return cfg, nil
}

// openStore opens the draft database configured for this invocation.
func openStore(cfg config.Config) (*draftstore.Store, error) {
	path := flagDraftDB
	if path == "" {
		path = config.DraftDBPath(cfg, draftstore.DefaultPath())
	}
	return draftstore.Open(path)
}

// newSubmitter builds the webhook client with the endpoint resolved once
// from config.
func newSubmitter(cfg config.Config) *webhook.Client {
	return webhook.NewClient(
		config.WebhookURL(cfg),
		cfg.Webhook.BrokerageID,
		config.GetIntakeSecret(cfg),
	)
}

func runForm(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	theme.SetActive(cfg.General.Theme)

	// Force TrueColor so lipgloss backgrounds render on all terminals.
	lipgloss.SetColorProfile(termenv.TrueColor)

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	client := newSubmitter(cfg)
	mgr := lead.NewManager(store, client, budget.Standard())

	app := tui.NewApp(mgr, client)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
