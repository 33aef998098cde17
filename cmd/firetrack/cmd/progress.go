package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/firetrack/fire-tracker/internal/calculation"
	"github.com/firetrack/fire-tracker/internal/output"
	"github.com/firetrack/fire-tracker/internal/store"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Compare actual savings against the required trajectory",
	Long: `Evaluate progress toward the FIRE target.

The evaluation uses the most recent saved simulation for the plan parameters
and the contribution ledger for the actual history. Run "firetrack simulate
--save" at least once before checking progress.`,
	RunE: runProgress,
}

var progressFormat string

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.Flags().StringVarP(&progressFormat, "format", "o", "console", "output format: console, json or csv")
}

func runProgress(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	formatter := output.GetFormatterByName(progressFormat)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (available: %v)", progressFormat, output.FormatterNames())
	}

	record, err := env.sims.Latest()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no saved simulation yet; run \"firetrack simulate --save\" first")
		}
		return err
	}

	ledger, err := env.ledger.LoadAll()
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}

	engine := calculation.NewEngine()
	engine.SetLogger(env.logger)

	summary, err := engine.EvaluateProgress(cmd.Context(), record, ledger, time.Now())
	if err != nil {
		return err
	}

	data, err := formatter.FormatProgress(summary)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
