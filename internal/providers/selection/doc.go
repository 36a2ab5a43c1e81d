// Package selection reads the text the user has highlighted in the active
// browser tab.
//
// Provider is the one-method capability the panel depends on. Rod satisfies
// it against a running Chrome over the DevTools protocol: it resolves the
// focused page and evaluates window.getSelection().toString() in it. Static
// and ProviderFunc cover the CLI and tests.
//
// Restricted pages (chrome://, extension pages, the web store) and a window
// with no pages produce "" rather than an error, so callers show a "select
// some text" warning. Connection and evaluation failures wrap ErrTabQuery or
// ErrInjection.
package selection
