package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firetrack/fire-tracker/internal/output"
	"github.com/firetrack/fire-tracker/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved simulations or recorded contributions",
	RunE:  runHistory,
}

var historyContributions bool

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolVar(&historyContributions, "contributions", false, "list the contribution ledger instead of simulations")
}

func runHistory(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	if historyContributions {
		return printContributions(env)
	}
	return printSimulations(env)
}

func printSimulations(env *appEnv) error {
	records, err := env.sims.LoadAll()
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No simulations saved yet.")
		return nil
	}

	fmt.Printf("%-12s %4s %4s %8s %14s %14s %16s %16s\n",
		"Date", "Age", "Ret", "SWR", "Expenses", "Portfolio", "FIRE Target", "Coast Target")
	for _, r := range records {
		fmt.Printf("%-12s %4d %4d %7s%% %14s %14s %16s %16s\n",
			r.Date, r.CurrentAge, r.RetirementAge, r.SWRPercent.StringFixed(1),
			r.AnnualExpenses.StringFixed(0), r.PortfolioValue.StringFixed(2),
			r.FIRETarget.StringFixed(2), r.CoastFIRETarget.StringFixed(2))
	}
	return nil
}

func printContributions(env *appEnv) error {
	records, err := env.ledger.LoadAll()
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No contributions recorded yet.")
		return nil
	}

	fmt.Printf("%-12s %-20s %10s %14s %8s %14s\n",
		"Date", "Asset", "Quantity", "Invested", "Return", "Portfolio")
	for _, r := range records {
		fmt.Printf("%-12s %-20s %10s %14s %7s%% %14s\n",
			r.Date, r.Asset, r.Quantity.String(),
			output.FormatCurrency(r.AmountInvested), r.ReturnPercent.StringFixed(1),
			output.FormatCurrency(r.PortfolioValue))
	}
	return nil
}
