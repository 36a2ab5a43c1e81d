package panel

import (
	"strings"
	"sync"
)

// View is the panel surface the controller drives.
type View interface {
	// InputValue returns the note input's current text.
	InputValue() string
	// SetInputValue replaces the note input's text.
	SetInputValue(text string)
	// ShowResult replaces the result area's markup with content.
	ShowResult(content string)
	// Alert shows a blocking acknowledgment.
	Alert(message string)
}

// RenderSummary turns service text into result markup: each "\n" becomes
// "<br>" and nothing else changes.
func RenderSummary(text string) string {
	return strings.ReplaceAll(text, "\n", "<br>")
}

// Snapshot is a copy of the document's visible state.
type Snapshot struct {
	Input      string `json:"input"`
	HasResult  bool   `json:"has_result"`
	ResultHTML string `json:"result_html"`
	Alert      string `json:"alert,omitempty"`
}

// Document is an in-memory View mirroring the panel page: the #input field,
// the #result container inside .ai (created on first use) and the last alert.
type Document struct {
	mu        sync.RWMutex
	input     string
	result    string
	hasResult bool
	alert     string
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

func (d *Document) InputValue() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.input
}

func (d *Document) SetInputValue(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.input = text
}

// ShowResult replaces the result container's body wholesale.
func (d *Document) ShowResult(content string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hasResult = true
	d.result = `<div class="result-content">` + content + `</div>`
}

func (d *Document) Alert(message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.alert = message
}

// TakeAlert returns the pending alert and clears it.
func (d *Document) TakeAlert() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	msg := d.alert
	d.alert = ""
	return msg
}

// Reset returns the document to a freshly loaded page.
func (d *Document) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.input = ""
	d.result = ""
	d.hasResult = false
	d.alert = ""
}

// Snapshot copies the current state.
func (d *Document) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return Snapshot{
		Input:      d.input,
		HasResult:  d.hasResult,
		ResultHTML: d.result,
		Alert:      d.alert,
	}
}
