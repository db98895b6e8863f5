// Package main provides the CLI entrypoint for the GDP ARIMA analyzer.
package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/config"
	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/diagnostics"
	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/pipeline"
	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/selector"
	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/timeseries"
	"github.com/annmat2001/Time-Series-Analysis-of-GDP-Data--Residual-Analysis/worldbank"
)

var (
	flagConfig    string
	flagCountry   string
	flagIndicator string
	flagStartYear int
	flagEndYear   int
	flagCSV       string
	flagStrategy  string
	flagAlpha     float64
	flagMaxD      int
	flagMaxP      int
	flagMaxQ      int
	flagForecast  int
	flagVerbose   bool
)

func main() {
	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gdparima",
		Short:         "ARIMA analysis of annual GDP series with residual diagnostics",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runAnalyze,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "path to TOML config file")
	flags.StringVar(&flagCountry, "country", "", "ISO country code (overrides config)")
	flags.StringVar(&flagIndicator, "indicator", "", "World Bank indicator code")
	flags.IntVar(&flagStartYear, "start-year", 0, "first year of the series")
	flags.IntVar(&flagEndYear, "end-year", 0, "last year of the series")
	flags.StringVar(&flagCSV, "csv", "", "load the series from a CSV file instead of the API")
	flags.StringVar(&flagStrategy, "strategy", "", "order selection: heuristic or aic")
	flags.Float64Var(&flagAlpha, "alpha", 0, "significance level for all tests")
	flags.IntVar(&flagMaxD, "max-d", -1, "differencing cap")
	flags.IntVar(&flagMaxP, "max-p", -1, "AR order bound for the AIC search")
	flags.IntVar(&flagMaxQ, "max-q", -1, "MA order bound for the AIC search")
	flags.IntVar(&flagForecast, "forecast", -1, "forecast steps ahead")
	flags.BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "analyze",
		Short: "Run the full analysis (same as the bare command)",
		RunE:  runAnalyze,
	})

	return rootCmd
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	log := newLogger(flagVerbose)

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if flagCountry != "" {
		cfg.Data.Country = flagCountry
	}
	if flagIndicator != "" {
		cfg.Data.Indicator = flagIndicator
	}
	if flagStartYear > 0 {
		cfg.Data.StartYear = flagStartYear
	}
	if flagEndYear > 0 {
		cfg.Data.EndYear = flagEndYear
	}
	if flagCSV != "" {
		cfg.Data.CSVPath = flagCSV
	}
	if flagStrategy != "" {
		cfg.Analysis.Strategy = flagStrategy
	}
	if flagAlpha > 0 {
		cfg.Analysis.Alpha = flagAlpha
	}
	if flagMaxD >= 0 {
		cfg.Analysis.MaxD = flagMaxD
	}
	if flagMaxP >= 0 {
		cfg.Analysis.MaxP = flagMaxP
	}
	if flagMaxQ >= 0 {
		cfg.Analysis.MaxQ = flagMaxQ
	}
	if flagForecast >= 0 {
		cfg.Analysis.Forecast = flagForecast
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	series, err := loadSeries(cmd.Context(), cfg, log)
	if err != nil {
		return fmt.Errorf("loading series: %w", err)
	}

	var strategy selector.Strategy
	switch cfg.Analysis.Strategy {
	case "heuristic":
		strategy = selector.NewHeuristic()
	default:
		strategy = &selector.AICSearch{
			MaxP:      cfg.Analysis.MaxP,
			MaxQ:      cfg.Analysis.MaxQ,
			Criterion: "aic",
		}
	}

	p := pipeline.New(pipeline.Options{
		Alpha:    cfg.Analysis.Alpha,
		MaxD:     cfg.Analysis.MaxD,
		LjungLag: cfg.Analysis.LjungLag,
		Forecast: cfg.Analysis.Forecast,
		Strategy: strategy,
	}, log)

	report, err := p.Run(series)
	if err != nil {
		return err
	}

	printReport(report)
	return nil
}

func loadSeries(ctx context.Context, cfg config.Config, log zerolog.Logger) (*timeseries.Series, error) {
	if cfg.Data.CSVPath != "" {
		opts := timeseries.DefaultCSVOptions()
		opts.Name = cfg.Data.CSVPath
		return timeseries.LoadCSV(cfg.Data.CSVPath, opts)
	}

	client := worldbank.NewClient(log)
	if cfg.Data.BaseURL != "" {
		client = client.WithBaseURL(cfg.Data.BaseURL)
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	return client.Indicator(ctx, cfg.Data.Country, cfg.Data.Indicator,
		cfg.Data.StartYear, cfg.Data.EndYear)
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
}

func printReport(r *pipeline.Report) {
	fmt.Println("=== GDP Time Series Analysis ===")
	fmt.Println()

	years := r.Series.Years()
	fmt.Printf("Series:        %s\n", r.Series.Name)
	fmt.Printf("Observations:  %d (%d-%d)\n", r.Series.Len(), years[0], years[len(years)-1])
	fmt.Printf("Mean:          %.4g\n", r.Series.Mean())
	fmt.Printf("Std deviation: %.4g\n", r.Series.Std())
	fmt.Println()

	fmt.Println("--- Stationarity ---")
	for _, step := range r.Differencing.Steps {
		verdict := "unit root not rejected"
		if step.Rejected {
			verdict = "stationary"
		}
		fmt.Printf("d=%d: ADF=%.4f p=%.4f (%s)\n", step.Order, step.Statistic, step.PValue, verdict)
	}
	if !r.Differencing.Stationary {
		fmt.Printf("warning: still non-stationary at the d=%d cap\n", r.Differencing.Order)
	}
	fmt.Println()

	fmt.Println("--- Order Selection ---")
	for _, c := range r.Candidates {
		switch {
		case c.Err != nil:
			fmt.Printf("%-14s fit failed: %v\n", c.Order, c.Err)
		case math.IsNaN(c.AIC):
			fmt.Printf("%-14s (correlogram candidate)\n", c.Order)
		default:
			fmt.Printf("%-14s AIC=%.2f BIC=%.2f\n", c.Order, c.AIC, c.BIC)
		}
	}
	fmt.Printf("Selected: %s\n", r.Order)
	fmt.Println()

	fmt.Println("--- Model ---")
	for i, phi := range r.Model.ARCoeffs {
		fmt.Printf("AR(%d):     %+.4f\n", i+1, phi)
	}
	for i, theta := range r.Model.MACoeffs {
		fmt.Printf("MA(%d):     %+.4f\n", i+1, theta)
	}
	fmt.Printf("Intercept: %+.4g\n", r.Model.Intercept)
	fmt.Printf("Variance:  %.4g\n", r.Model.Variance)
	fmt.Printf("AIC=%.2f  AICc=%.2f  BIC=%.2f  LogLik=%.2f\n",
		r.Model.AIC, r.Model.AICc, r.Model.BIC, r.Model.LogLik)
	fmt.Println()

	fmt.Println("--- Residual Diagnostics ---")
	for _, res := range r.Diagnostics.Results {
		if res.Decision == diagnostics.Skipped {
			fmt.Printf("%-14s skipped (%s)\n", res.Name, res.Detail)
			continue
		}
		fmt.Printf("%-14s stat=%.4f p=%.4f -> %s (H0: %s)\n",
			res.Name, res.Statistic, res.PValue, res.Decision, res.Null)
	}
	if r.Diagnostics.Clean() {
		fmt.Println("Residuals pass all checks.")
	} else {
		fmt.Println("Residuals fail one or more checks; treat the fit with caution.")
	}

	if len(r.Forecasts) > 0 {
		fmt.Println()
		fmt.Println("--- Forecasts ---")
		lastYear := years[len(years)-1]
		for i, f := range r.Forecasts {
			fmt.Printf("%d: %.4g\n", lastYear+i+1, f)
		}
	}
}
