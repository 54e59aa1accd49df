// Package logging configures the process-wide structured logger.
package logging

import "go.uber.org/zap"

func init() {
	cfg := zap.NewProductionConfig()
	// diagnostics go to stderr; stdout is reserved for the report
	cfg.OutputPaths = []string{"stderr"}
	zap.ReplaceGlobals(zap.Must(cfg.Build()))
}

// GetLogger returns the global logger.
func GetLogger() *zap.Logger {
	return zap.L()
}
