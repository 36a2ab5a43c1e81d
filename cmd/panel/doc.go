// Command panel serves the research side panel.
//
// It reads the current selection from a Chrome started with
// --remote-debugging-port, posts it to the research service and keeps one
// note in the configured store.
//
// Usage:
//
//	# Start Chrome with DevTools enabled, then the panel
//	google-chrome --remote-debugging-port=9222
//	./panel -storage sqlite
//
//	# Development mode (colored logs, debug level)
//	./panel -dev
//
// Configuration:
//   - Environment variables, optionally from .env
//   - CLI flags (override env vars)
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
