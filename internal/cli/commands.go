// Package cli implements the planctl command line tool. It runs the
// same planning and ranking engine as the API without a server or a
// database; rank is the only subcommand that talks to the network.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"goalplanner/internal/catalog"
	apperrors "goalplanner/internal/errors"
	"goalplanner/internal/finance"
	"goalplanner/internal/marketdata"
	"goalplanner/internal/models"
	"goalplanner/internal/ranking"
	"goalplanner/internal/services"
)

// NewRootCmd creates the planctl root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "planctl",
		Short: "Goal planning from the command line",
		Long: `planctl computes savings plans, growth projections and instrument
rankings with the same engine the API serves. Only rank needs network
access.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newPlanCmd())
	rootCmd.AddCommand(newProjectCmd())
	rootCmd.AddCommand(newRankCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// goalFlags holds the goal definition shared by plan and project.
type goalFlags struct {
	name            string
	goalType        string
	target          float64
	savings         float64
	years           int
	profile         string
	inflation       float64
	expectedReturn  float64
	monthlyExpenses float64
	retirementYears int
}

func addGoalFlags(cmd *cobra.Command, f *goalFlags) {
	cmd.Flags().StringVar(&f.name, "name", "My Goal", "Goal name")
	cmd.Flags().StringVar(&f.goalType, "type", "other", "Goal type: marriage, new_house, child_education, retirement or other")
	cmd.Flags().Float64Var(&f.target, "target", 0, "Target amount in today's money")
	cmd.Flags().Float64Var(&f.savings, "savings", 0, "Current savings")
	cmd.Flags().IntVar(&f.years, "years", 5, "Years until the goal")
	cmd.Flags().StringVar(&f.profile, "profile", "moderate", "Risk profile: conservative, moderate or aggressive")
	cmd.Flags().Float64Var(&f.inflation, "inflation", 5.0, "Annual inflation rate (percent)")
	cmd.Flags().Float64Var(&f.expectedReturn, "return", 12.0, "Expected annual return (percent)")
	cmd.Flags().Float64Var(&f.monthlyExpenses, "expenses", 0, "Monthly expenses in retirement (retirement goals)")
	cmd.Flags().IntVar(&f.retirementYears, "retirement-years", 20, "Years in retirement (retirement goals)")
}

func (f goalFlags) toInput() services.GoalInput {
	input := services.GoalInput{
		Name:           f.name,
		Type:           models.GoalType(f.goalType),
		TargetAmount:   f.target,
		CurrentSavings: f.savings,
		Years:          f.years,
		RiskProfile:    finance.ParseRiskProfile(f.profile),
		InflationRate:  &f.inflation,
		ExpectedReturn: &f.expectedReturn,
	}
	if f.monthlyExpenses > 0 {
		input.MonthlyExpenses = &f.monthlyExpenses
	}
	if f.retirementYears > 0 {
		input.RetirementYears = &f.retirementYears
	}
	return input
}

// computePreview runs the inline plan computation. The goal store is
// nil on purpose: Preview never reads it.
func computePreview(f goalFlags) (*services.Plan, error) {
	planService := services.NewPlanService(nil, f.inflation, f.expectedReturn)
	return planService.Preview(f.toInput())
}

func newPlanCmd() *cobra.Command {
	flags := &goalFlags{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Compute the savings plan for a goal",
		Long: `Compute the inflated future value of a goal, the one-time and monthly
investments that reach it, and the asset split for the risk profile.
Example: planctl plan --name "Wedding" --type marriage --target 1000000 --savings 100000 --years 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := computePreview(*flags)
			if err != nil {
				return err
			}
			printPlan(cmd.OutOrStdout(), plan)
			return nil
		},
	}
	addGoalFlags(cmd, flags)
	return cmd
}

func newProjectCmd() *cobra.Command {
	flags := &goalFlags{}
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Print the year-by-year growth projection",
		Long: `Project the inflating goal value against both investment strategies,
year by year, and compare their returns.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := computePreview(*flags)
			if err != nil {
				return err
			}
			printProjection(cmd.OutOrStdout(), plan)
			return nil
		},
	}
	addGoalFlags(cmd, flags)
	return cmd
}

func newRankCmd() *cobra.Command {
	var (
		profileFlag string
		periodFlag  string
		catalogPath string
		top         int
	)
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank a risk profile's instrument universes",
		Long: `Fetch recent price history for the profile's stock and mutual fund
universes and print them in score order. Needs network access.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := finance.RiskProfile(profileFlag)
			if !profile.Valid() {
				return apperrors.WithMessage(apperrors.ErrInvalidRiskProfile,
					fmt.Sprintf("unknown risk profile %q, use conservative, moderate or aggressive", profileFlag))
			}
			period, err := marketdata.ParsePeriod(periodFlag, marketdata.Period1Year)
			if err != nil {
				return apperrors.Wrap(apperrors.ErrUnsupportedPeriod, err)
			}
			cat, err := catalog.Load(catalogPath)
			if err != nil {
				return err
			}
			return runRank(cmd.OutOrStdout(), cat, profile, period, top)
		},
	}
	cmd.Flags().StringVar(&profileFlag, "profile", "moderate", "Risk profile: conservative, moderate or aggressive")
	cmd.Flags().StringVar(&periodFlag, "period", "1y", "History window: 1mo, 3mo, 6mo, 1y, 2y or 5y")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Path to a catalog JSON overriding the built-in universes")
	cmd.Flags().IntVar(&top, "top", 0, "Keep only the top N of each table (0 keeps all)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "planctl v1.0.0")
		},
	}
}

func runRank(w io.Writer, cat catalog.Catalog, profile finance.RiskProfile, period marketdata.Period, top int) error {
	ctx := context.Background()
	client := marketdata.NewClient(0, marketdata.NewYahooProvider(), marketdata.NewFundProvider())

	fmt.Fprintf(w, "Ranking the %s universes over %s\n\n", profile, period)
	printRanked(ctx, w, client, "Stocks", cat.StockUniverse(profile), profile, period, top)
	fmt.Fprintln(w)
	printRanked(ctx, w, client, "Mutual funds", cat.FundUniverse(profile), profile, period, top)
	return nil
}

// printRanked fetches one universe, ranks it and prints the score table.
// Symbols whose data could not be fetched are listed, not fatal.
func printRanked(ctx context.Context, w io.Writer, client *marketdata.Client, title string, universe []marketdata.Instrument, profile finance.RiskProfile, period marketdata.Period, top int) {
	series, fetchErrs := client.BatchHistory(ctx, universe, period)

	candidates := make([]ranking.Candidate, 0, len(series))
	for _, sr := range series {
		candidates = append(candidates, ranking.Candidate{Symbol: sr.Symbol, Closes: sr.Closes()})
	}
	ranked := ranking.Rank(candidates, profile, ranking.DefaultRiskFreeRate)
	if top > 0 && len(ranked) > top {
		ranked = ranked[:top]
	}

	fmt.Fprintln(w, title)
	if len(ranked) == 0 {
		fmt.Fprintln(w, "  no instruments could be ranked")
	} else {
		fmt.Fprintf(w, "  %-3s %-14s %7s %9s %9s %8s %8s\n",
			"#", "SYMBOL", "SCORE", "RETURN", "VOL", "SHARPE", "MAXDD")
		for i, r := range ranked {
			m := r.Metrics
			fmt.Fprintf(w, "  %-3d %-14s %7.3f %8.2f%% %8.2f%% %8.2f %7.2f%%\n",
				i+1, r.Symbol, r.Score,
				m.AnnualizedReturn*100, m.Volatility*100, m.SharpeRatio, m.MaxDrawdown*100)
		}
	}
	for _, fe := range fetchErrs {
		fmt.Fprintf(w, "  skipped %s: %v\n", fe.Symbol, fe.Err)
	}
}

func printPlan(w io.Writer, plan *services.Plan) {
	fmt.Fprintf(w, "Goal              %s (%s)\n", plan.GoalName, plan.GoalType)
	fmt.Fprintf(w, "Risk profile      %s\n", plan.RiskProfile)
	fmt.Fprintf(w, "Horizon           %d years\n", plan.Years)
	fmt.Fprintf(w, "Inflation         %.2f%%\n", plan.InflationRate)
	fmt.Fprintf(w, "Expected return   %.2f%%\n", plan.ExpectedReturn)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Target (today)    %s\n", plan.Display.TargetAmount)
	fmt.Fprintf(w, "Future value      %s\n", plan.Display.FutureValue)
	fmt.Fprintf(w, "Current savings   %s\n", plan.Display.CurrentSavings)
	fmt.Fprintf(w, "Amount needed     %s\n", plan.Display.AmountNeeded)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "One-time now      %s\n", plan.Display.LumpSumRequired)
	fmt.Fprintf(w, "Or monthly        %s\n", plan.Display.MonthlyRequired)
	fmt.Fprintln(w)
	alloc := plan.AssetAllocation
	fmt.Fprintf(w, "Allocation        equity %.0f%% / debt %.0f%% / gold %.0f%%\n",
		alloc.EquityPct, alloc.DebtPct, alloc.GoldPct)
	fmt.Fprintf(w, "Stocks            %.1f%%  %s\n", plan.Stocks.Pct, plan.Stocks.AmountDisplay)
	fmt.Fprintf(w, "Mutual funds      %.1f%%  %s\n", plan.MutualFunds.Pct, plan.MutualFunds.AmountDisplay)
}

func printProjection(w io.Writer, plan *services.Plan) {
	years := plan.Years
	returnFrac := plan.ExpectedReturn / 100
	lumpCurve := finance.GrowthCurve(plan.CurrentSavings+plan.LumpSumRequired, 0, returnFrac, years)
	monthlyCurve := finance.GrowthCurve(plan.CurrentSavings, plan.MonthlyRequired, returnFrac, years)

	fmt.Fprintf(w, "%s: %s needed in %d years\n\n", plan.GoalName, plan.Display.FutureValue, years)
	fmt.Fprintf(w, "%-6s  %-18s  %-18s  %-18s\n", "YEAR", "GOAL VALUE", "ONE-TIME PATH", "MONTHLY PATH")
	startYear := time.Now().Year()
	for i := 0; i <= years; i++ {
		goalValue := finance.FutureValue(plan.TargetAmount, plan.InflationRate/100, i)
		fmt.Fprintf(w, "%-6d  %-18s  %-18s  %-18s\n",
			startYear+i,
			finance.FormatINR(goalValue),
			finance.FormatINR(lumpCurve[i]),
			finance.FormatINR(monthlyCurve[i]))
	}

	lumpInvested := plan.LumpSumRequired + plan.CurrentSavings
	monthlyInvested := plan.MonthlyRequired*12*float64(years) + plan.CurrentSavings
	fmt.Fprintln(w)
	fmt.Fprintf(w, "One-time: invested %s, final %s, ROI %.2f%%\n",
		finance.FormatINR(lumpInvested),
		finance.FormatINR(lumpCurve[years]),
		finance.ROI(lumpInvested, lumpCurve[years]))
	fmt.Fprintf(w, "Monthly:  invested %s, final %s, ROI %.2f%%\n",
		finance.FormatINR(monthlyInvested),
		finance.FormatINR(monthlyCurve[years]),
		finance.ROI(monthlyInvested, monthlyCurve[years]))
}
