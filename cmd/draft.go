package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/guidepost-labs/guidepost/internal/budget"
	"github.com/guidepost-labs/guidepost/internal/draftstore"
	"github.com/guidepost-labs/guidepost/internal/lead"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Inspect or discard the locally saved draft",
}

var draftShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved draft",
	RunE:  runDraftShow,
}

var draftClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the saved draft",
	RunE:  runDraftClear,
}

func init() {
	draftCmd.AddCommand(draftShowCmd)
	draftCmd.AddCommand(draftClearCmd)
	rootCmd.AddCommand(draftCmd)
}

func openConfiguredStore() (*draftstore.Store, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return openStore(cfg)
}

func runDraftShow(_ *cobra.Command, _ []string) error {
	store, err := openConfiguredStore()
	if err != nil {
		return err
	}
	defer store.Close()

	raw, ok, err := store.Load()
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("  No saved draft.")
		return nil
	}

	table := budget.Standard()
	d := lead.Overlay(lead.Defaults(), raw, table.MaxIndex())

	if at, ok, _ := store.UpdatedAt(); ok {
		fmt.Printf("  Saved %s\n\n", at.Local().Format("2006-01-02 15:04"))
	}

	printField := func(label, value string) {
		if value == "" {
			value = "—"
		}
		fmt.Printf("    %-18s %s\n", label, value)
	}

	printField("Agent email", d.AgentEmail)
	printField("Buyer", d.BuyerName)
	printField("Situation", d.Situation)
	printField("Area", d.Area)
	printField("Budget", table.Label(d.BudgetRange[0], d.BudgetRange[1]))
	printField("Timeline", d.Timeline)
	printField("Bedrooms", d.Bedrooms)
	printField("Bathrooms", d.Bathrooms)
	printField("Property types", strings.Join(d.PropertyTypes, ", "))
	printField("Top priority", d.TopPriority)
	printField("2nd priority", d.SecondaryPriority)
	printField("Pre-approved", fmt.Sprintf("%v", d.PreApproved))
	printField("Notes", truncate(d.BuyerNotes, 60))
	printField("Insights", truncate(d.AgentInsights, 60))

	return nil
}

func runDraftClear(_ *cobra.Command, _ []string) error {
	store, err := openConfiguredStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(); err != nil {
		return err
	}
	fmt.Println("  Draft cleared.")
	return nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
