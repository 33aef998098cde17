package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/firetrack/fire-tracker/internal/domain"
	"github.com/firetrack/fire-tracker/pkg/dateutil"
	"github.com/firetrack/fire-tracker/pkg/numparse"
)

var contributeCmd = &cobra.Command{
	Use:   "contribute",
	Short: "Record a contribution to a tracked asset",
	Long: `Append a contribution to the ledger.

Amounts accept locale formats like "1.234,56". The date defaults to today.

Example:
  firetrack contribute --asset "ETF World" --amount 500 --value "12.500,00"`,
	RunE: runContribute,
}

var (
	contribDate     string
	contribAsset    string
	contribQuantity string
	contribAmount   string
	contribReturn   string
	contribValue    string
)

func init() {
	rootCmd.AddCommand(contributeCmd)

	contributeCmd.Flags().StringVar(&contribDate, "date", "", "contribution date, YYYY-MM-DD (default today)")
	contributeCmd.Flags().StringVar(&contribAsset, "asset", "", "asset name (required)")
	contributeCmd.Flags().StringVar(&contribQuantity, "quantity", "0", "units bought")
	contributeCmd.Flags().StringVar(&contribAmount, "amount", "0", "amount invested")
	contributeCmd.Flags().StringVar(&contribReturn, "return", "0", "asset return in percent")
	contributeCmd.Flags().StringVar(&contribValue, "value", "0", "total portfolio value after the contribution")
	contributeCmd.MarkFlagRequired("asset")
}

func runContribute(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	date := contribDate
	if date == "" {
		date = time.Now().Format(dateutil.ISODate)
	}

	record := domain.ContributionRecord{Date: date, Asset: contribAsset}
	for _, field := range []struct {
		flag  string
		value string
		dst   *decimal.Decimal
	}{
		{"quantity", contribQuantity, &record.Quantity},
		{"amount", contribAmount, &record.AmountInvested},
		{"value", contribValue, &record.PortfolioValue},
	} {
		d, err := numparse.ParseAmount(field.value)
		if err != nil {
			return fmt.Errorf("flag --%s: %w", field.flag, err)
		}
		*field.dst = d
	}
	ret, err := numparse.ParseAmount(contribReturn)
	if err != nil {
		return fmt.Errorf("flag --return: %w", err)
	}
	record.ReturnPercent = ret

	if err := env.ledger.Append(record); err != nil {
		return err
	}

	color, err := env.colors.ColorFor(record.Asset)
	if err != nil {
		env.logger.Warnf("asset color lookup failed: %v", err)
	} else {
		env.logger.Debugf("asset %s uses color %s", record.Asset, color)
	}

	fmt.Printf("Recorded %s to %s on %s.\n", record.AmountInvested.StringFixed(2), record.Asset, record.Date)
	return nil
}
