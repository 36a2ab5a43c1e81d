// Command assistant drives the research panel from a terminal.
//
// Usage:
//
//	assistant summarize [--suggest] [--text TEXT]
//	assistant notes show
//	assistant notes save TEXT
//
// Without --text the selection is read from the focused tab of a Chrome
// started with --remote-debugging-port (see --browser).
package main
