// Package providers groups the panel's external capabilities.
//
// Available Providers:
//   - selection: Text selected in the focused browser tab (Chrome DevTools)
//   - summarizer: Client for the research service's process endpoint
//   - notes: Single-note persistence over file, sqlite, redis or memory
//
// Each provider exposes a small interface so the panel controller can be
// driven by fakes in tests.
package providers
