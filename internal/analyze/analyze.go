// Package analyze runs the load -> compute -> render -> report pipeline
// over a sample file.
package analyze

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"prngcheck/internal/logging"
	"prngcheck/internal/presenter"
	"prngcheck/internal/stats"
	"prngcheck/pkg/readsamples"
)

// Run analyzes the sample file at path: it prints the mean/variance
// report to stdout and writes the two-panel diagnostic figure. When show
// is set the figure is also opened in the platform viewer. The first
// failure aborts the run; nothing partial is emitted.
func Run(path string, show bool) error {
	logger := logging.GetLogger()

	samples, err := readsamples.Read(path)
	if err != nil {
		logger.Error("loading samples failed", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Info("samples loaded", zap.String("path", path), zap.Int("count", len(samples)))

	summary, err := stats.Describe(samples)
	if err != nil {
		logger.Error("statistics failed", zap.Error(err))
		return err
	}

	hist, err := stats.NewHistogram(samples, stats.DefaultBins)
	if err != nil {
		return err
	}
	pairs := stats.LagPairs(samples)

	presenter.PrintSummary(os.Stdout, summary)

	if err := presenter.SaveFigure(hist, pairs, presenter.FigureFile); err != nil {
		logger.Error("rendering figure failed", zap.Error(err))
		return err
	}
	logger.Info("figure written", zap.String("file", presenter.FigureFile))

	if show {
		if err := presenter.Show(presenter.FigureFile); err != nil {
			return fmt.Errorf("failed to open figure: %v", err)
		}
	}

	return nil
}
