package cmd

import (
	"btctreasury/internal/calculator"
	"btctreasury/internal/domain"
	"btctreasury/internal/logger"
	"btctreasury/internal/service"
	"btctreasury/internal/util"
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type cli struct {
	load func() (*Dependencies, error)
	deps *Dependencies
}

// NewRootCommand builds the treasury cli. load is called at most once, by
// the first command that needs services.
func NewRootCommand(load func() (*Dependencies, error)) *cobra.Command {
	c := &cli{load: load}

	root := &cobra.Command{
		Use:           "treasury",
		Short:         "Bitcoin treasury valuation and risk analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.deps != nil && c.deps.Db != nil {
				CloseDependencies(c.deps)
			}
		},
	}

	root.AddCommand(
		c.ingestPricesCommand(),
		c.importLotsCommand(),
		c.importFinancialsCommand(),
		c.snapshotCommand(),
		c.navCommand(),
		c.historyCommand(),
		c.tranchesCommand(),
		c.positionCommand(),
		c.riskCommand(),
		c.runsCommand(),
		c.scenariosCommand(),
		c.performanceCommand(),
		c.serveCommand(),
	)
	return root
}

func (c *cli) dependencies() (*Dependencies, error) {
	if c.deps != nil {
		return c.deps, nil
	}
	deps, err := c.load()
	if err != nil {
		return nil, err
	}
	c.deps = deps
	return deps, nil
}

// commandContext attaches the logger and a fresh profile the services
// expect to find.
func (c *cli) commandContext(cmd *cobra.Command) (context.Context, *Dependencies, error) {
	deps, err := c.dependencies()
	if err != nil {
		return nil, nil, err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if deps.Logger != nil {
		ctx = logger.WithLogger(ctx, deps.Logger)
	}
	profile, _ := domain.NewProfile()
	ctx = context.WithValue(ctx, domain.ContextProfileKey, profile)
	return ctx, deps, nil
}

func addAsOfFlag(cmd *cobra.Command, asOf *string) {
	cmd.Flags().StringVar(asOf, "as-of", "", "valuation date YYYY-MM-DD (default today)")
}

func parseDateFlag(name, value string) (time.Time, error) {
	t, err := util.ParseDateOrToday(value)
	if err != nil {
		return time.Time{}, domain.InvalidInputError{Field: name, Reason: "expected YYYY-MM-DD"}
	}
	return t, nil
}

func (c *cli) ingestPricesCommand() *cobra.Command {
	var symbol, ticker, start, end string
	cmd := &cobra.Command{
		Use:   "ingest-prices",
		Short: "Fetch daily closes. Without --symbol, refreshes the configured primary and equity symbols",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, deps, err := c.commandContext(cmd)
			if err != nil {
				return err
			}
			endDate, err := parseDateFlag("end", end)
			if err != nil {
				return err
			}
			if symbol == "" {
				return deps.IngestService.IngestConfigured(ctx, endDate)
			}

			var startDate time.Time
			if start != "" {
				startDate, err = parseDateFlag("start", start)
				if err != nil {
					return err
				}
			}
			if ticker == "" {
				ticker = symbol
			}
			n, err := deps.IngestService.IngestPrices(ctx, symbol, ticker, startDate, endDate)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "stored %d closes for %s\n", n, strings.ToUpper(symbol))
			return nil
		},
	}
	cmd.Flags().StringVar(&symbol, "symbol", "", "symbol to store closes under")
	cmd.Flags().StringVar(&ticker, "ticker", "", "source ticker (default symbol)")
	cmd.Flags().StringVar(&start, "start", "", "first date YYYY-MM-DD (default: day after the last stored close)")
	cmd.Flags().StringVar(&end, "end", "", "last date YYYY-MM-DD (default today)")
	return cmd
}

func (c *cli) importLotsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import-lots <file.csv>",
		Short: "Import acquisition lots from csv",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, deps, err := c.commandContext(cmd)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			n, err := deps.IngestService.ImportLots(ctx, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d lots\n", n)
			return nil
		},
	}
}

func (c *cli) importFinancialsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import-financials <file.csv>",
		Short: "Import company financials from csv",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, deps, err := c.commandContext(cmd)
			if err != nil {
				return err
			}
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			n, err := deps.IngestService.ImportFinancials(ctx, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d financials rows\n", n)
			return nil
		},
	}
}

func (c *cli) snapshotCommand() *cobra.Command {
	var asOf string
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Compute and record the daily NAV snapshot",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, deps, err := c.commandContext(cmd)
			if err != nil {
				return err
			}
			date, err := parseDateFlag("as-of", asOf)
			if err != nil {
				return err
			}
			snapshot, err := deps.NavService.Snapshot(ctx, date)
			if err != nil {
				return err
			}
			return util.Fprint(cmd.OutOrStdout(), snapshot)
		},
	}
	addAsOfFlag(cmd, &asOf)
	return cmd
}

func (c *cli) navCommand() *cobra.Command {
	var asOf string
	cmd := &cobra.Command{
		Use:   "nav",
		Short: "Show NAV metrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, deps, err := c.commandContext(cmd)
			if err != nil {
				return err
			}
			date, err := parseDateFlag("as-of", asOf)
			if err != nil {
				return err
			}
			nav, err := deps.NavService.NAV(ctx, date)
			if err != nil {
				return err
			}
			return util.Fprint(cmd.OutOrStdout(), nav)
		},
	}
	addAsOfFlag(cmd, &asOf)
	return cmd
}

func (c *cli) historyCommand() *cobra.Command {
	var start, end string
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded daily snapshots",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, deps, err := c.commandContext(cmd)
			if err != nil {
				return err
			}
			endDate, err := parseDateFlag("end", end)
			if err != nil {
				return err
			}
			startDate := endDate.AddDate(0, 0, -30)
			if start != "" {
				startDate, err = parseDateFlag("start", start)
				if err != nil {
					return err
				}
			}
			snapshots, err := deps.NavService.History(ctx, startDate, endDate)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tQUANTITY\tASSET NAV\tPREMIUM")
			for _, s := range snapshots {
				fmt.Fprintf(w, "%s\t%.4f\t%.0f\t%s\n", s.AsOf.Format(time.DateOnly), s.TotalQuantity, s.AssetNav, formatPct(s.PremiumToAssetNav))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "first date YYYY-MM-DD (default 30 days before end)")
	cmd.Flags().StringVar(&end, "end", "", "last date YYYY-MM-DD (default today)")
	return cmd
}

func (c *cli) tranchesCommand() *cobra.Command {
	var asOf string
	cmd := &cobra.Command{
		Use:   "tranches",
		Short: "Show per-lot P&L and the portfolio summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, deps, err := c.commandContext(cmd)
			if err != nil {
				return err
			}
			date, err := parseDateFlag("as-of", asOf)
			if err != nil {
				return err
			}
			analysis, err := deps.NavService.Tranches(ctx, date)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tQUANTITY\tSPENT\tUNIT PRICE\tVALUE\tPNL\tPNL %\tAGE")
			for _, t := range analysis.Tranches {
				fmt.Fprintf(w, "%s\t%.4f\t%.0f\t%.0f\t%.0f\t%.0f\t%.1f\t%d\n",
					t.Date.Format(time.DateOnly),
					t.QuantityAcquired,
					t.AmountSpent,
					t.ImpliedUnitPrice,
					t.CurrentValue,
					t.UnrealizedPnl,
					t.UnrealizedPnlPct,
					t.AgeDays,
				)
			}
			p := analysis.Portfolio
			fmt.Fprintf(w, "TOTAL\t%.4f\t%.0f\t%s\t%.0f\t%.0f\t%s\t%d lots\n",
				p.TotalQuantity,
				p.TotalSpent,
				formatFloat(p.WeightedAvgCost),
				p.CurrentValue,
				p.UnrealizedPnl,
				formatFloat(p.UnrealizedPnlPct),
				p.LotCount,
			)
			return w.Flush()
		},
	}
	addAsOfFlag(cmd, &asOf)
	return cmd
}

func (c *cli) positionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "position",
		Short: "Manage the personal equity position",
	}

	var asOf string
	show := &cobra.Command{
		Use:   "show",
		Short: "Value the active position",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, deps, err := c.commandContext(cmd)
			if err != nil {
				return err
			}
			date, err := parseDateFlag("as-of", asOf)
			if err != nil {
				return err
			}
			metrics, err := deps.PositionService.Show(ctx, date)
			if err != nil {
				return err
			}
			return util.Fprint(cmd.OutOrStdout(), metrics)
		},
	}
	addAsOfFlag(show, &asOf)

	var label string
	var quantity, avgEntryPrice float64
	set := &cobra.Command{
		Use:   "set",
		Short: "Record a position and make it the active one",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, deps, err := c.commandContext(cmd)
			if err != nil {
				return err
			}
			position, err := deps.PositionService.Set(ctx, label, quantity, avgEntryPrice)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "active position %s: %s %.4f @ %.2f\n",
				position.PositionID, position.Label, position.Quantity, position.AvgEntryPrice)
			return nil
		},
	}
	set.Flags().StringVar(&label, "label", "default", "position label")
	set.Flags().Float64Var(&quantity, "quantity", 0, "shares held")
	set.Flags().Float64Var(&avgEntryPrice, "avg-entry-price", 0, "average entry price per share")
	set.MarkFlagRequired("quantity")
	set.MarkFlagRequired("avg-entry-price")

	list := &cobra.Command{
		Use:   "list",
		Short: "List recorded positions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, deps, err := c.commandContext(cmd)
			if err != nil {
				return err
			}
			positions, err := deps.PositionService.List(ctx)
			if err != nil {
				return err
			}
			active := calculator.ActivePosition(positions)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "\tID\tLABEL\tQUANTITY\tAVG ENTRY\tCREATED")
			for _, p := range positions {
				marker := ""
				if active != nil && p.PositionID == active.PositionID {
					marker = "*"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%.4f\t%.2f\t%s\n",
					marker, p.PositionID, p.Label, p.Quantity, p.AvgEntryPrice, p.CreatedAt.Format(time.DateTime))
			}
			return w.Flush()
		},
	}

	activate := &cobra.Command{
		Use:   "activate <position-id>",
		Short: "Make a recorded position the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			positionID, err := uuid.Parse(args[0])
			if err != nil {
				return domain.InvalidInputError{Field: "position-id", Reason: "expected a uuid"}
			}
			ctx, deps, err := c.commandContext(cmd)
			if err != nil {
				return err
			}
			return deps.PositionService.Activate(ctx, positionID)
		},
	}

	cmd.AddCommand(show, set, list, activate)
	return cmd
}

type riskFlags struct {
	scenario        string
	compare         []string
	horizon         int
	paths           int
	seed            int64
	residualSeed    int64
	calibrate       bool
	excludePosition bool
	asOf            string
}

func (f riskFlags) request(cmd *cobra.Command, scenarioName string) (service.SimulationRequest, error) {
	asOf, err := parseDateFlag("as-of", f.asOf)
	if err != nil {
		return service.SimulationRequest{}, err
	}
	req := service.SimulationRequest{
		Scenario:        scenarioName,
		AsOf:            asOf,
		Calibrate:       f.calibrate,
		ExcludePosition: f.excludePosition,
	}
	if cmd.Flags().Changed("horizon") {
		req.Overrides.HorizonDays = &f.horizon
	}
	if cmd.Flags().Changed("paths") {
		req.Overrides.NumPaths = &f.paths
	}
	if cmd.Flags().Changed("seed") {
		req.Seed = util.Uint64Pointer(uint64(f.seed))
	}
	if cmd.Flags().Changed("residual-seed") {
		req.ResidualSeed = util.Uint64Pointer(uint64(f.residualSeed))
	}
	return req, nil
}

func (c *cli) riskCommand() *cobra.Command {
	f := riskFlags{}
	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Simulate joint price paths and report VaR/CVaR",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, deps, err := c.commandContext(cmd)
			if err != nil {
				return err
			}

			names := f.compare
			if len(names) == 0 {
				names = []string{f.scenario}
			}
			reqs := make([]service.SimulationRequest, 0, len(names))
			for _, name := range names {
				req, err := f.request(cmd, name)
				if err != nil {
					return err
				}
				reqs = append(reqs, req)
			}

			results, err := deps.SimulationService.RunMany(ctx, reqs)
			if err != nil {
				return err
			}
			return writeRiskTable(cmd, results)
		},
	}
	cmd.Flags().StringVar(&f.scenario, "scenario", "", "scenario name (default from config)")
	cmd.Flags().StringSliceVar(&f.compare, "compare", nil, "run several scenarios side by side")
	cmd.Flags().IntVar(&f.horizon, "horizon", 0, "override horizon in days")
	cmd.Flags().IntVar(&f.paths, "paths", 0, "override number of paths")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "seed for the primary shocks")
	cmd.Flags().Int64Var(&f.residualSeed, "residual-seed", 0, "seed for the residual shocks")
	cmd.Flags().BoolVar(&f.calibrate, "calibrate", false, "estimate beta, alpha and residual volatility from recent returns")
	cmd.Flags().BoolVar(&f.excludePosition, "exclude-position", false, "skip the personal position in the portfolio summary")
	addAsOfFlag(cmd, &f.asOf)
	return cmd
}

func writeRiskTable(cmd *cobra.Command, results []service.SimulationResult) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tASSET\tVAR 95\tCVAR 95\tVAR 99\tCVAR 99\tMEAN\tMEDIAN")
	row := func(name, asset string, s domain.RiskSummary) {
		fmt.Fprintf(w, "%s\t%s\t%.2f%%\t%.2f%%\t%.2f%%\t%.2f%%\t%.2f%%\t%.2f%%\n",
			name, asset, s.Var95*100, s.Cvar95*100, s.Var99*100, s.Cvar99*100, s.MeanReturn*100, s.MedianReturn*100)
	}
	for _, r := range results {
		name := r.Run.ScenarioName
		row(name, "primary", r.Run.Results.Primary)
		if r.Run.Results.Dependent != nil {
			row(name, "equity", *r.Run.Results.Dependent)
		}
		if r.Run.Results.Portfolio != nil {
			row(name, "position", *r.Run.Results.Portfolio)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	for _, r := range results {
		if r.Calibration != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s calibrated: beta=%.3f alpha=%.3f residual vol=%.3f defaults=%t\n",
				r.Run.ScenarioName, r.Calibration.Beta, r.Calibration.Alpha, r.Calibration.ResidualVolatility, r.Calibration.UsedDefaults)
		}
		if h := r.Run.Results.Holdings; h != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "%s treasury: cost %.0f now %.0f p5 %.0f median %.0f p95 %.0f\n",
				r.Run.ScenarioName, h.TotalCost, h.CurrentValue, h.P5Value, h.MedianValue, h.P95Value)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "run %s\n", r.Run.SimulationRunID)
	}
	return nil
}

func (c *cli) runsCommand() *cobra.Command {
	var limit int64
	cmd := &cobra.Command{
		Use:   "runs [run-id]",
		Short: "List recorded simulation runs, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, deps, err := c.commandContext(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				runID, err := uuid.Parse(args[0])
				if err != nil {
					return domain.InvalidInputError{Field: "run-id", Reason: "expected a uuid"}
				}
				run, err := deps.SimulationService.Get(ctx, runID)
				if err != nil {
					return err
				}
				return util.Fprint(cmd.OutOrStdout(), run)
			}

			runs, err := deps.SimulationService.List(ctx, limit)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCREATED\tSCENARIO\tHORIZON\tPATHS\tVAR 95")
			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.2f%%\n",
					r.SimulationRunID, r.CreatedAt.Format(time.DateTime), r.ScenarioName, r.HorizonDays, r.NumPaths, r.Results.Primary.Var95*100)
			}
			return w.Flush()
		},
	}
	cmd.Flags().Int64Var(&limit, "limit", 20, "number of runs to list")
	return cmd
}

func (c *cli) scenariosCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scenarios",
		Short: "List scenario presets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, deps, err := c.commandContext(cmd)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDRIFT\tVOL\tBETA\tALPHA\tRESID VOL\tHORIZON\tPATHS\tDESCRIPTION")
			for _, s := range deps.SimulationService.Scenarios() {
				fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%d\t%d\t%s\n",
					s.Name, s.PrimaryDrift, s.PrimaryVolatility, s.Beta, s.Alpha, s.ResidualVolatility, s.HorizonDays, s.NumPaths, s.Description)
			}
			return w.Flush()
		},
	}
}

func (c *cli) performanceCommand() *cobra.Command {
	var asOf string
	cmd := &cobra.Command{
		Use:   "performance <symbol>",
		Short: "Show returns, beta and drawdowns for a symbol",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, deps, err := c.commandContext(cmd)
			if err != nil {
				return err
			}
			date, err := parseDateFlag("as-of", asOf)
			if err != nil {
				return err
			}
			report, err := deps.PerformanceService.Performance(ctx, args[0], date)
			if err != nil {
				return err
			}
			return util.Fprint(cmd.OutOrStdout(), report)
		},
	}
	addAsOfFlag(cmd, &asOf)
	return cmd
}

func (c *cli) serveCommand() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the http api",
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := c.dependencies()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("port") {
				port = deps.Config.Api.Port
			}
			deps.Logger.Infow("starting api", "port", port)
			return deps.ApiHandler().StartApi(port)
		},
	}
	cmd.Flags().IntVar(&port, "port", util.DefaultApiPort, "listen port")
	return cmd
}

func formatFloat(f *float64) string {
	if f == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *f)
}

func formatPct(f *float64) string {
	if f == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", *f*100)
}
