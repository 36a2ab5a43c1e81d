// Package logging provides structured logging using uber/zap.
//
// Two console modes:
//   - Production: JSON output for machine parsing
//   - Development: coloured console output with stack traces on errors
//
// When Config.File is set, JSON logs are also written to a file rotated by
// lumberjack (10 MB per file, 5 backups, 30 days, gzip).
//
// Example Usage:
//
//	logger, err := logging.New(logging.Config{Level: "info", File: "/var/log/panel.log"})
//	logger.Info("Panel server starting", zap.String("port", "8090"))
package logging
