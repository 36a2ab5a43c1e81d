// Package config provides 12-factor configuration management for the
// research assistant binaries.
//
// Configuration is loaded from environment variables with sensible defaults.
// A .env file in the working directory is read first when present. CLI flags
// in cmd/* can override individual values.
//
// Configuration Sections:
//   - Panel: side-panel HTTP server (host, port)
//   - Research: research service listener and the endpoint the panel calls
//   - Browser: DevTools URL used to read the active page selection
//   - Storage: note store driver (file, sqlite, redis, memory); the path
//     defaults to research-assistant under the user config directory
//   - Gemini: model settings for the research service
//   - Logging: log level, output format, optional rotated file
//   - RateLimit: per-IP rate limiting for the research API
//
// Environment Variables:
//   - PANEL_HOST, PANEL_PORT
//   - RESEARCH_HOST, RESEARCH_PORT, RESEARCH_ENDPOINT, RESEARCH_PROMPTS_FILE
//   - BROWSER_DEBUG_URL
//   - STORAGE_DRIVER, STORAGE_PATH, STORAGE_NAMESPACE, REDIS_URL
//   - GEMINI_API_KEY, GEMINI_MODEL
//   - LOG_LEVEL, LOG_DEV, LOG_FILE
//   - RATE_LIMIT_RPS, RATE_LIMIT_BURST, RATE_LIMIT_ENABLED
package config
