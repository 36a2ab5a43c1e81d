// Package http provides the gin handlers for the panel page and the research
// API.
//
// Panel routes:
//   - GET  /                 panel page (one load = one panel lifecycle)
//   - GET  /panel/state      document snapshot
//   - POST /panel/summarize  summarize the active selection
//   - POST /panel/suggest    suggestions for the active selection
//   - POST /panel/notes      save {"notes": "..."}
//
// Research routes:
//   - POST /api/research/process  {"content", "operations"} -> text/plain
package http
