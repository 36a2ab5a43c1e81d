package panel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/GriffinCanCode/ResearchAssistant/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/ResearchAssistant/internal/providers/notes"
	"github.com/GriffinCanCode/ResearchAssistant/internal/providers/selection"
	"github.com/GriffinCanCode/ResearchAssistant/internal/providers/summarizer"
	mocks "github.com/GriffinCanCode/ResearchAssistant/internal/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fixture struct {
	selection  *mocks.MockSelection
	summarizer *mocks.MockSummarizer
	notes      *notes.Notes
	doc        *Document
	metrics    *monitoring.Metrics
	controller *Controller
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		selection:  &mocks.MockSelection{},
		summarizer: &mocks.MockSummarizer{},
		notes:      notes.New(notes.NewMemoryStore()),
		doc:        NewDocument(),
		metrics:    monitoring.NewMetrics("panel"),
	}
	f.controller = f.build(f.doc)
	return f
}

// build creates a controller over the same collaborators with a new view,
// the way a reopened panel would.
func (f *fixture) build(view View) *Controller {
	return NewController(Deps{
		Selection:  f.selection,
		Summarizer: f.summarizer,
		Notes:      f.notes,
		View:       view,
		Metrics:    f.metrics,
	})
}

func (f *fixture) actions(action, outcome string) float64 {
	return testutil.ToFloat64(f.metrics.PanelActions.WithLabelValues(action, outcome))
}

func TestSummarizeSendsSelection(t *testing.T) {
	f := newFixture(t)
	f.selection.On("ActivePageSelection", mock.Anything).Return("Selected paragraph.", nil)
	f.summarizer.On("Process", mock.Anything, "Selected paragraph.", summarizer.OperationSummarize).
		Return("Point one.\nPoint two.", nil)

	f.controller.Summarize(context.Background())

	f.summarizer.AssertNumberOfCalls(t, "Process", 1)
	f.summarizer.AssertExpectations(t)
	snap := f.doc.Snapshot()
	assert.True(t, snap.HasResult)
	assert.Equal(t, `<div class="result-content">Point one.<br>Point two.</div>`, snap.ResultHTML)
	assert.Equal(t, float64(1), f.actions(ActionSummarize, monitoring.OutcomeSuccess))
}

func TestSuggestUsesSuggestOperation(t *testing.T) {
	f := newFixture(t)
	f.selection.On("ActivePageSelection", mock.Anything).Return("Draft plan", nil)
	f.summarizer.On("Process", mock.Anything, "Draft plan", summarizer.OperationSuggest).Return("Add milestones.", nil)

	f.controller.Suggest(context.Background())

	f.summarizer.AssertExpectations(t)
	assert.Contains(t, f.doc.Snapshot().ResultHTML, "Add milestones.")
	assert.Equal(t, float64(1), f.actions(ActionSuggest, monitoring.OutcomeSuccess))
}

func TestSummarizeWithoutSelection(t *testing.T) {
	f := newFixture(t)
	f.selection.On("ActivePageSelection", mock.Anything).Return("", nil)

	f.controller.Summarize(context.Background())

	f.summarizer.AssertNotCalled(t, "Process", mock.Anything, mock.Anything, mock.Anything)
	assert.Contains(t, f.doc.Snapshot().ResultHTML, "select some text")
	assert.Contains(t, f.doc.Snapshot().ResultHTML, MsgNoSelection)
	assert.Equal(t, float64(1), f.actions(ActionSummarize, monitoring.OutcomeNoSelection))
}

func TestSummarizeErrorsAreRendered(t *testing.T) {
	tests := []struct {
		name         string
		selectionErr error
		processErr   error
		wantContains string
		wantOutcome  string
	}{
		{
			name:         "server error status",
			processErr:   &summarizer.APIError{StatusCode: 500},
			wantContains: "500",
			wantOutcome:  monitoring.OutcomeAPIError,
		},
		{
			name:         "unreachable endpoint",
			processErr:   &summarizer.NetworkError{Err: errors.New(`Post "http://localhost:8080/api/research/process": dial tcp [::1]:8080: connect: connection refused`)},
			wantContains: "connection refused",
			wantOutcome:  monitoring.OutcomeNetwork,
		},
		{
			name:         "tab query failure",
			selectionErr: fmt.Errorf("%w: no browser", selection.ErrTabQuery),
			wantContains: "tab query failed",
			wantOutcome:  monitoring.OutcomeError,
		},
		{
			name:         "injection denied",
			selectionErr: fmt.Errorf("%w: Cannot access contents of the page", selection.ErrInjection),
			wantContains: "Cannot access contents of the page",
			wantOutcome:  monitoring.OutcomeError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.selectionErr != nil {
				f.selection.On("ActivePageSelection", mock.Anything).Return("", tt.selectionErr)
			} else {
				f.selection.On("ActivePageSelection", mock.Anything).Return("text", nil)
				f.summarizer.On("Process", mock.Anything, "text", summarizer.OperationSummarize).Return("", tt.processErr)
			}

			assert.NotPanics(t, func() { f.controller.Summarize(context.Background()) })

			html := f.doc.Snapshot().ResultHTML
			assert.Contains(t, html, "❌ Error: ")
			assert.Contains(t, html, tt.wantContains)
			assert.Equal(t, float64(1), f.actions(ActionSummarize, tt.wantOutcome))
		})
	}
}

func TestResultIsReplacedNotAppended(t *testing.T) {
	f := newFixture(t)
	f.selection.On("ActivePageSelection", mock.Anything).Return("text", nil)
	f.summarizer.On("Process", mock.Anything, "text", summarizer.OperationSummarize).Return("first", nil).Once()
	f.summarizer.On("Process", mock.Anything, "text", summarizer.OperationSummarize).Return("second", nil).Once()

	f.controller.Summarize(context.Background())
	f.controller.Summarize(context.Background())

	assert.Equal(t, `<div class="result-content">second</div>`, f.doc.Snapshot().ResultHTML)
}

func TestConcurrentSummariesLastFinisherWins(t *testing.T) {
	f := newFixture(t)
	release := make(chan struct{})
	firstStarted := make(chan struct{})

	f.selection.On("ActivePageSelection", mock.Anything).Return("slow", nil).Once()
	f.selection.On("ActivePageSelection", mock.Anything).Return("fast", nil).Once()
	f.summarizer.On("Process", mock.Anything, "slow", summarizer.OperationSummarize).
		Run(func(mock.Arguments) {
			close(firstStarted)
			<-release
		}).
		Return("slow reply", nil)
	f.summarizer.On("Process", mock.Anything, "fast", summarizer.OperationSummarize).Return("fast reply", nil)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		f.controller.Summarize(context.Background())
	}()
	<-firstStarted

	f.controller.Summarize(context.Background())
	assert.Contains(t, f.doc.Snapshot().ResultHTML, "fast reply")

	close(release)
	wg.Wait()
	assert.Contains(t, f.doc.Snapshot().ResultHTML, "slow reply")
}

func TestSaveThenReloadRestoresNote(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.doc.SetInputValue("My research notes\n- claim A")
	require.NoError(t, f.controller.Save(ctx))
	assert.Equal(t, MsgSaved, f.doc.TakeAlert())

	reopened := NewDocument()
	f.build(reopened).Init(ctx)
	assert.Equal(t, "My research notes\n- claim A", reopened.InputValue())
}

func TestSaveOverwrites(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.doc.SetInputValue("T1")
	require.NoError(t, f.controller.Save(ctx))
	f.doc.SetInputValue("T2")
	require.NoError(t, f.controller.Save(ctx))

	stored, err := f.notes.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T2", stored)
	assert.Equal(t, float64(2), f.actions(ActionSave, monitoring.OutcomeSuccess))
}

func TestSaveEmptyClearsNote(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.doc.SetInputValue("something")
	require.NoError(t, f.controller.Save(ctx))
	f.doc.SetInputValue("")
	require.NoError(t, f.controller.Save(ctx))

	stored, err := f.notes.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)

	reopened := NewDocument()
	f.build(reopened).Init(ctx)
	assert.Empty(t, reopened.InputValue())
}

func TestSaveFailureShowsNoConfirmation(t *testing.T) {
	store := &mocks.MockNotes{}
	store.On("Save", mock.Anything, "draft").Return(errors.New("quota exceeded"))
	metrics := monitoring.NewMetrics("panel")
	doc := NewDocument()
	doc.SetInputValue("draft")

	c := NewController(Deps{Notes: store, View: doc, Metrics: metrics})
	err := c.Save(context.Background())

	assert.EqualError(t, err, "quota exceeded")
	assert.Empty(t, doc.TakeAlert())
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.PanelActions.WithLabelValues(ActionSave, monitoring.OutcomeError)))
}

func TestInitLeavesInputWhenNothingStored(t *testing.T) {
	store := &mocks.MockNotes{}
	store.On("Load", mock.Anything).Return("", nil)
	doc := NewDocument()
	doc.SetInputValue("typed before load")

	NewController(Deps{Notes: store, View: doc}).Init(context.Background())

	assert.Equal(t, "typed before load", doc.InputValue())
	store.AssertExpectations(t)
}

func TestInitLoadFailureIsNotFatal(t *testing.T) {
	store := &mocks.MockNotes{}
	store.On("Load", mock.Anything).Return("", errors.New("corrupt"))
	doc := NewDocument()

	assert.NotPanics(t, func() {
		NewController(Deps{Notes: store, View: doc}).Init(context.Background())
	})
	assert.Empty(t, doc.InputValue())
}
