package selection

import (
	"context"
	"errors"
)

var (
	// ErrTabQuery means the active tab could not be resolved.
	ErrTabQuery = errors.New("tab query failed")
	// ErrInjection means the selection read could not run in the page.
	ErrInjection = errors.New("script injection failed")
)

// SelectionScript runs in the page context and returns the highlighted text.
const SelectionScript = `() => window.getSelection().toString()`

// Provider reads the user's current text selection from the active page.
//
// An empty string with a nil error means "no selection": nothing is
// highlighted, no tab is active, or the page does not expose a document.
type Provider interface {
	ActivePageSelection(ctx context.Context) (string, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context) (string, error)

func (f ProviderFunc) ActivePageSelection(ctx context.Context) (string, error) {
	return f(ctx)
}

// Static always returns the same text. The assistant CLI uses it when the
// text is passed on the command line instead of read from a browser.
type Static string

func (s Static) ActivePageSelection(context.Context) (string, error) {
	return string(s), nil
}
