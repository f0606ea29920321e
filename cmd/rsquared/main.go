package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"rsquared/internal/data"
	"rsquared/internal/math/svr"
	"rsquared/internal/model"
	"rsquared/internal/plot"
	"rsquared/internal/report"
)

const outputPath = "output/svr_plot.png"

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {
	if err := run(os.Stdout, outputPath); err != nil {
		log.Fatal().Err(err).Msg("analysis failed")
	}
}

// run executes the full analysis: fit, evaluate, report, plot.
func run(w io.Writer, path string) error {
	logger := log.With().Str("run", uuid.New().String()).Logger()

	report.Banner(w, "R-Squared Analysis for Non-Linear Models")

	samples := data.Generate()
	fmt.Fprintln(w, "Sample Data:")
	fmt.Fprint(w, samples.Table())
	fmt.Fprintln(w)

	evaluator, err := model.New(svr.New(svr.Config{}), samples)
	if err != nil {
		return fmt.Errorf("could not construct evaluator: %w", err)
	}

	stats := evaluator.Evaluate(samples)
	report.Write(w, stats)
	fmt.Fprintln(w)
	report.Banner(w, "")

	logger.Info().
		Float64("sst", stats.SST).
		Float64("sse", stats.SSE).
		Float64("ssr", stats.SSR).
		Bool("decomposes", stats.Decomposes(model.Tolerance)).
		Msg("evaluated sum of squares")

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generating plot...")
	if err := plot.Render(samples, evaluator.Predict, path); err != nil {
		return fmt.Errorf("could not render plot: %w", err)
	}
	fmt.Fprintf(w, "Plot saved to: %s\n", path)

	return nil
}
