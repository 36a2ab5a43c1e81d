package main

import (
	"html"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/microcosm-cc/bluemonday"
)

// terminalView renders the panel to a terminal. Result markup is turned back
// into plain lines.
type terminalView struct {
	out    io.Writer
	input  string
	result *color.Color
	alert  *color.Color
	dim    *color.Color
}

func newTerminalView(out io.Writer) *terminalView {
	return &terminalView{
		out:    out,
		result: color.New(color.FgCyan),
		alert:  color.New(color.FgGreen, color.Bold),
		dim:    color.New(color.Faint),
	}
}

func (v *terminalView) InputValue() string { return v.input }

func (v *terminalView) SetInputValue(text string) { v.input = text }

func (v *terminalView) ShowResult(content string) {
	v.result.Fprintln(v.out, plainText(content))
}

func (v *terminalView) Alert(message string) {
	v.alert.Fprintln(v.out, message)
}

var lineBreaks = strings.NewReplacer("<br>", "\n", "<br/>", "\n", "<br />", "\n")

// tags strips any remaining markup; its output is entity-escaped text.
var tags = bluemonday.StrictPolicy()

// plainText turns sanitized result markup into terminal text: line breaks
// become newlines, tags are dropped and entities decoded.
func plainText(content string) string {
	return html.UnescapeString(tags.Sanitize(lineBreaks.Replace(content)))
}

