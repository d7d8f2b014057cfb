package cmd

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/guidepost-labs/guidepost/internal/budget"
	"github.com/guidepost-labs/guidepost/internal/lead"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Validate and submit the saved draft without the TUI",
	RunE:  runSubmit,
}

func init() {
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if _, ok, err := store.Load(); err != nil {
		return err
	} else if !ok {
		return errors.New("no saved draft; run `guidepost` to fill one in")
	}

	mgr := lead.NewManager(store, newSubmitter(cfg), budget.Standard())

	err = mgr.Submit(context.Background())
	var fieldErrs lead.FieldErrors
	if errors.As(err, &fieldErrs) {
		fmt.Println("  Draft is not ready to submit:")
		fields := make([]string, 0, len(fieldErrs))
		for f := range fieldErrs {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			fmt.Printf("    %-20s %s\n", f, fieldErrs[f])
		}
		return errors.New("validation failed")
	}
	if err != nil {
		return fmt.Errorf("submission failed (draft kept): %w", err)
	}

	fmt.Printf("  Submitted. Confirmation will arrive at %s\n", mgr.SubmittedTo())
	return nil
}
