package panel

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/ResearchAssistant/internal/infrastructure/logging"
	"github.com/GriffinCanCode/ResearchAssistant/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/ResearchAssistant/internal/providers/selection"
	"github.com/GriffinCanCode/ResearchAssistant/internal/providers/summarizer"
)

// Messages shown to the user.
const (
	MsgNoSelection = "⚠️ Please select some text on the current page first."
	MsgSaved       = "✅ Notes saved successfully!"
	errorPrefix    = "❌ Error: "
)

// Actions reported to metrics.
const (
	ActionSummarize = "summarize"
	ActionSuggest   = "suggest"
	ActionSave      = "save"
)

// Summarizer sends content to the research service.
type Summarizer interface {
	Process(ctx context.Context, content string, op summarizer.Operation) (string, error)
}

// NoteStore loads and overwrites the single research note.
type NoteStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, text string) error
}

// Controller wires the panel's actions to the selection source, the research
// service and the note store. It keeps no state of its own; everything the
// user sees lives in the View.
type Controller struct {
	selection  selection.Provider
	summarizer Summarizer
	notes      NoteStore
	view       View
	logger     *logging.Logger
	metrics    *monitoring.Metrics
}

// Deps groups the controller's collaborators.
type Deps struct {
	Selection  selection.Provider
	Summarizer Summarizer
	Notes      NoteStore
	View       View
	Logger     *logging.Logger
	Metrics    *monitoring.Metrics
}

// NewController creates a controller. Logger and Metrics are optional.
func NewController(d Deps) *Controller {
	logger := d.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Controller{
		selection:  d.Selection,
		summarizer: d.Summarizer,
		notes:      d.Notes,
		view:       d.View,
		logger:     logger.Named("panel"),
		metrics:    d.Metrics,
	}
}

// Init runs once per panel load: it fills the input with the stored note.
func (c *Controller) Init(ctx context.Context) {
	text, err := c.notes.Load(ctx)
	if err != nil {
		c.logger.Warn("Failed to load notes", zap.Error(err))
		return
	}
	if text != "" {
		c.view.SetInputValue(text)
	}
}

// Summarize summarizes the active page selection into the result area.
func (c *Controller) Summarize(ctx context.Context) {
	c.process(ctx, ActionSummarize, summarizer.OperationSummarize)
}

// Suggest asks for suggestions on the active page selection.
func (c *Controller) Suggest(ctx context.Context) {
	c.process(ctx, ActionSuggest, summarizer.OperationSuggest)
}

// process runs one action cycle. Every failure ends up in the result area.
func (c *Controller) process(ctx context.Context, action string, op summarizer.Operation) {
	text, err := c.selection.ActivePageSelection(ctx)
	if err != nil {
		c.fail(action, monitoring.OutcomeError, err)
		return
	}
	if text == "" {
		c.metrics.RecordPanelAction(action, monitoring.OutcomeNoSelection)
		c.view.ShowResult(MsgNoSelection)
		return
	}

	reply, err := c.summarizer.Process(ctx, text, op)
	if err != nil {
		c.fail(action, outcomeOf(err), err)
		return
	}

	c.metrics.RecordPanelAction(action, monitoring.OutcomeSuccess)
	c.logger.Debug("Result rendered",
		zap.String("action", action),
		zap.Int("selection_len", len(text)),
		zap.Int("result_len", len(reply)),
	)
	c.view.ShowResult(RenderSummary(reply))
}

func (c *Controller) fail(action, outcome string, err error) {
	c.metrics.RecordPanelAction(action, outcome)
	c.logger.Warn("Panel action failed", zap.String("action", action), zap.Error(err))
	c.view.ShowResult(ErrorMessage(err))
}

// Save writes the current input to the note store and confirms. A storage
// failure is returned and shows no confirmation.
func (c *Controller) Save(ctx context.Context) error {
	if err := c.notes.Save(ctx, c.view.InputValue()); err != nil {
		c.metrics.RecordPanelAction(ActionSave, monitoring.OutcomeError)
		c.logger.Error("Failed to save notes", zap.Error(err))
		return err
	}
	c.metrics.RecordPanelAction(ActionSave, monitoring.OutcomeSuccess)
	c.view.Alert(MsgSaved)
	return nil
}

// ErrorMessage formats err for the result area.
func ErrorMessage(err error) string {
	return errorPrefix + err.Error()
}

func outcomeOf(err error) string {
	var apiErr *summarizer.APIError
	var netErr *summarizer.NetworkError
	switch {
	case errors.As(err, &apiErr):
		return monitoring.OutcomeAPIError
	case errors.As(err, &netErr):
		return monitoring.OutcomeNetwork
	default:
		return monitoring.OutcomeError
	}
}
