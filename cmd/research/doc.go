// Command research serves POST /api/research/process backed by Gemini.
//
// Usage:
//
//	GEMINI_API_KEY=... research [-host 0.0.0.0] [-port 8080] [-model NAME] [-prompts FILE] [-dev]
package main
