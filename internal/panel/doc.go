// Package panel implements the research side panel's behaviour.
//
// Controller has three entry points:
//   - Init: on panel load, copy the stored note into the input
//   - Summarize / Suggest: read the active page selection, post it to the
//     research service, render the reply (newlines as <br>) into the result
//     area, or render a warning or error message there instead
//   - Save: overwrite the stored note with the input and confirm
//
// The controller only talks to a View. Document is the in-memory View served
// by the panel HTTP server; the assistant CLI supplies a terminal View.
//
// Concurrent actions are independent. Whichever finishes last owns the
// result area.
package panel
