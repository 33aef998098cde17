package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/firetrack/fire-tracker/internal/calculation"
	"github.com/firetrack/fire-tracker/internal/config"
	"github.com/firetrack/fire-tracker/internal/domain"
	"github.com/firetrack/fire-tracker/internal/output"
	"github.com/firetrack/fire-tracker/internal/store"
	"github.com/firetrack/fire-tracker/pkg/dateutil"
	"github.com/firetrack/fire-tracker/pkg/numparse"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Project portfolio growth and FIRE targets",
	Long: `Run a wealth projection from the current situation to retirement.

Unset flags are seeded from the most recent saved simulation, the latest
recorded portfolio value, and the profile birth date. Amount flags accept
locale formats like "24.000" or "1 234,56"; rate flags are percents.

Example:
  firetrack simulate --expenses 24000 --swr 4 --monthly 500 --save`,
	RunE: runSimulate,
}

var (
	simInputPath     string
	simCurrentAge    int
	simRetirementAge int
	simSWR           string
	simExpenses      string
	simInvested      string
	simReturn        string
	simInflation     string
	simPortfolio     string
	simMonthly       string
	simSave          bool
	simFormat        string
	simWriteFile     bool
)

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().StringVarP(&simInputPath, "input", "f", "", "scenario YAML file (replaces individual flags)")
	simulateCmd.Flags().IntVar(&simCurrentAge, "current-age", 0, "current age")
	simulateCmd.Flags().IntVar(&simRetirementAge, "retirement-age", 0, "target retirement age")
	simulateCmd.Flags().StringVar(&simSWR, "swr", "", "safe withdrawal rate in percent")
	simulateCmd.Flags().StringVar(&simExpenses, "expenses", "", "annual expenses in retirement")
	simulateCmd.Flags().StringVar(&simInvested, "invested", "", "total amount invested so far")
	simulateCmd.Flags().StringVar(&simReturn, "return", "", "expected nominal annual return in percent")
	simulateCmd.Flags().StringVar(&simInflation, "inflation", "", "expected annual inflation in percent")
	simulateCmd.Flags().StringVar(&simPortfolio, "portfolio", "", "current portfolio value")
	simulateCmd.Flags().StringVar(&simMonthly, "monthly", "", "monthly contribution")
	simulateCmd.Flags().BoolVar(&simSave, "save", false, "persist the result as today's simulation record")
	simulateCmd.Flags().StringVarP(&simFormat, "format", "o", "console", "output format: console, json or csv")
	simulateCmd.Flags().BoolVarP(&simWriteFile, "write", "w", false, "write the report to a timestamped file")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	env, err := openEnv()
	if err != nil {
		return err
	}
	defer env.Close()

	formatter := output.GetFormatterByName(simFormat)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (available: %v)", simFormat, output.FormatterNames())
	}

	var input *domain.SimulationInput
	if simInputPath != "" {
		input, err = config.NewInputParser().LoadFromFile(simInputPath)
		if err != nil {
			return err
		}
	} else {
		input, err = resolveInput(cmd, env)
		if err != nil {
			return err
		}
	}

	engine := calculation.NewEngine()
	engine.SetLogger(env.logger)

	result, err := engine.RunSimulation(cmd.Context(), input)
	if err != nil {
		return err
	}

	report := &output.SimulationReport{Input: input, Result: result}
	if simWriteFile {
		name, err := output.WriteSimulationReport(formatter, report, formatExtension(simFormat))
		if err != nil {
			return err
		}
		fmt.Printf("Report written to %s\n", name)
	} else {
		data, err := formatter.FormatSimulation(report)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	}

	if monthly := calculation.ProjectMonthly(input.InvestedAmount, input.MonthlyContribution,
		input.RealRate(), result.FIRETarget, input.YearsToRetirement()*12); monthly.Reached {
		years, _ := monthly.YearsToTarget()
		fmt.Printf("\nEstimated time to FIRE: %d months (about %.1f years)\n", monthly.MonthsToTarget, years)
	}

	if simSave {
		record := domain.NewSimulationRecord(time.Now().Format(dateutil.ISODate), input, result)
		if err := env.sims.AppendOrReplace(record); err != nil {
			return fmt.Errorf("save simulation: %w", err)
		}
		fmt.Println("Simulation saved.")
	}
	return nil
}

// resolveInput builds the simulation input from flags, falling back to the
// last saved simulation, the latest recorded portfolio value and the profile
// birth date for anything not given.
func resolveInput(cmd *cobra.Command, env *appEnv) (*domain.SimulationInput, error) {
	input := &domain.SimulationInput{
		SafeWithdrawalRate:  decimal.NewFromFloat(0.04),
		AnnualExpenses:      decimal.NewFromInt(24000),
		NominalReturn:       decimal.NewFromFloat(0.05),
		Inflation:           decimal.NewFromFloat(0.02),
		MonthlyContribution: decimal.NewFromInt(500),
	}

	last, err := env.sims.Latest()
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	if last != nil {
		input.CurrentAge = last.CurrentAge
		input.RetirementAge = last.RetirementAge
		input.SafeWithdrawalRate = last.SWR()
		input.AnnualExpenses = last.AnnualExpenses
		input.InvestedAmount = last.InvestedAmount
		input.NominalReturn = last.ReturnPercent.Div(decimal.NewFromInt(100))
		input.Inflation = last.InflationPercent.Div(decimal.NewFromInt(100))
		input.PortfolioValue = last.PortfolioValue
		input.MonthlyContribution = last.MonthlyContribution
		env.logger.Debugf("seeded defaults from simulation record of %s", last.Date)
	}

	if ledger, err := env.ledger.LoadAll(); err == nil && len(ledger) > 0 {
		if v := ledger[len(ledger)-1].PortfolioValue; v.IsPositive() {
			input.PortfolioValue = v
			env.logger.Debugf("seeded portfolio value from the contribution ledger")
		}
	}

	if profile, err := env.profile.Load(); err == nil {
		if age, ok := profile.Age(time.Now()); ok {
			input.CurrentAge = age
			env.logger.Debugf("derived current age %d from profile birth date", age)
		}
	}

	if cmd.Flags().Changed("current-age") {
		input.CurrentAge = simCurrentAge
	}
	if cmd.Flags().Changed("retirement-age") {
		input.RetirementAge = simRetirementAge
	}
	if input.RetirementAge <= input.CurrentAge {
		input.RetirementAge = max(input.CurrentAge+1, 65)
	}

	for _, field := range []struct {
		flag    string
		value   string
		percent bool
		dst     *decimal.Decimal
	}{
		{"swr", simSWR, true, &input.SafeWithdrawalRate},
		{"return", simReturn, true, &input.NominalReturn},
		{"inflation", simInflation, true, &input.Inflation},
		{"expenses", simExpenses, false, &input.AnnualExpenses},
		{"invested", simInvested, false, &input.InvestedAmount},
		{"portfolio", simPortfolio, false, &input.PortfolioValue},
		{"monthly", simMonthly, false, &input.MonthlyContribution},
	} {
		if !cmd.Flags().Changed(field.flag) {
			continue
		}
		var d decimal.Decimal
		var err error
		if field.percent {
			d, err = numparse.ParsePercent(field.value)
		} else {
			d, err = numparse.ParseAmount(field.value)
		}
		if err != nil {
			return nil, fmt.Errorf("flag --%s: %w", field.flag, err)
		}
		*field.dst = d
	}

	return input, nil
}

func formatExtension(format string) string {
	switch format {
	case "json":
		return "json"
	case "csv":
		return "csv"
	default:
		return "txt"
	}
}
