package selection

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/ResearchAssistant/internal/infrastructure/logging"
)

// focusScript reports whether the page is the one the user is looking at.
const focusScript = `() => ({ visible: document.visibilityState === "visible", focused: document.hasFocus() })`

// restrictedPrefixes are pages whose documents Chrome does not let scripts read.
var restrictedPrefixes = []string{
	"chrome://",
	"chrome-extension://",
	"chrome-search://",
	"devtools://",
	"edge://",
	"about:",
	"view-source:",
	"https://chrome.google.com/webstore",
	"https://chromewebstore.google.com",
}

// tab is the slice of a browser page the selection read needs.
type tab interface {
	URL(ctx context.Context) (string, error)
	Focus(ctx context.Context) (visible, focused bool, err error)
	Eval(ctx context.Context, js string) (string, error)
}

// Rod reads selections from a running Chrome over the DevTools protocol.
type Rod struct {
	debugURL string
	ignore   []string
	logger   *logging.Logger

	mu      sync.Mutex
	browser *rod.Browser
}

// NewRod creates a provider for the DevTools endpoint at debugURL, e.g.
// "http://127.0.0.1:9222" for Chrome started with --remote-debugging-port=9222.
// Tabs on any of the ignore origins (the panel's own page) are never read.
// The connection is made on first use.
func NewRod(debugURL string, ignore []string, logger *logging.Logger) *Rod {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Rod{
		debugURL: debugURL,
		ignore:   append([]string(nil), ignore...),
		logger:   logger.Named("selection"),
	}
}

// ActivePageSelection resolves the focused tab and returns its selection.
func (r *Rod) ActivePageSelection(ctx context.Context) (string, error) {
	tabs, err := r.tabs(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTabQuery, err)
	}
	return readSelection(ctx, tabs, r.ignore)
}

// Close forgets the DevTools connection. Browser.Close would terminate the
// user's Chrome, so the browser is left running.
func (r *Rod) Close() error {
	r.reset()
	return nil
}

func (r *Rod) tabs(ctx context.Context) ([]tab, error) {
	browser, err := r.connect(ctx)
	if err != nil {
		return nil, err
	}

	pages, err := browser.Context(ctx).Pages()
	if err != nil {
		// The connection may have gone stale when Chrome restarted.
		r.reset()
		if browser, err = r.connect(ctx); err != nil {
			return nil, err
		}
		if pages, err = browser.Context(ctx).Pages(); err != nil {
			return nil, err
		}
	}

	tabs := make([]tab, 0, len(pages))
	for _, p := range pages {
		tabs = append(tabs, rodTab{page: p})
	}
	return tabs, nil
}

func (r *Rod) connect(ctx context.Context) (*rod.Browser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser != nil {
		return r.browser, nil
	}

	controlURL, err := launcher.ResolveURL(r.debugURL)
	if err != nil {
		return nil, fmt.Errorf("resolve devtools url %s: %w", r.debugURL, err)
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Context(ctx).Connect(); err != nil {
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}

	r.logger.Info("Connected to browser", zap.String("control_url", controlURL))
	r.browser = browser
	return browser, nil
}

func (r *Rod) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.browser = nil
}

// readSelection picks the active tab and runs the selection script in it.
func readSelection(ctx context.Context, tabs []tab, ignore []string) (string, error) {
	active, url, err := activeTab(ctx, tabs, ignore)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTabQuery, err)
	}
	if active == nil || restricted(url) {
		return "", nil
	}

	text, err := active.Eval(ctx, SelectionScript)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInjection, err)
	}
	return text, nil
}

// activeTab returns the content tab the user last looked at: the focused
// one, else the first visible one, else the first in DevTools order, which
// Chrome keeps most recently activated first. Tabs on an ignored origin are
// skipped, so a focused panel page falls through to the page behind it.
// It fails only when no tab could be inspected at all.
func activeTab(ctx context.Context, tabs []tab, ignore []string) (tab, string, error) {
	var (
		visible, recent       tab
		visibleURL, recentURL string
		lastErr               error
		inspected             int
	)
	for _, t := range tabs {
		url, err := t.URL(ctx)
		if err != nil {
			lastErr = err
			continue
		}
		if onOrigin(url, ignore) {
			inspected++
			continue
		}
		isVisible, isFocused, err := t.Focus(ctx)
		if err != nil {
			lastErr = err
			continue
		}
		inspected++
		if isFocused {
			return t, url, nil
		}
		if isVisible && visible == nil {
			visible, visibleURL = t, url
		}
		if recent == nil {
			recent, recentURL = t, url
		}
	}
	if inspected == 0 && lastErr != nil {
		return nil, "", lastErr
	}
	if visible != nil {
		return visible, visibleURL, nil
	}
	return recent, recentURL, nil
}

func onOrigin(url string, origins []string) bool {
	for _, origin := range origins {
		origin = strings.TrimSuffix(origin, "/")
		if origin == "" {
			continue
		}
		if url == origin || strings.HasPrefix(url, origin+"/") ||
			strings.HasPrefix(url, origin+"?") || strings.HasPrefix(url, origin+"#") {
			return true
		}
	}
	return false
}

func restricted(url string) bool {
	for _, prefix := range restrictedPrefixes {
		if strings.HasPrefix(url, prefix) {
			return true
		}
	}
	return false
}

type rodTab struct {
	page *rod.Page
}

func (t rodTab) URL(ctx context.Context) (string, error) {
	info, err := t.page.Context(ctx).Info()
	if err != nil {
		return "", err
	}
	return info.URL, nil
}

func (t rodTab) Focus(ctx context.Context) (bool, bool, error) {
	res, err := t.page.Context(ctx).Evaluate(&rod.EvalOptions{
		JS:      focusScript,
		ByValue: true,
	})
	if err != nil {
		return false, false, err
	}
	return res.Value.Get("visible").Bool(), res.Value.Get("focused").Bool(), nil
}

func (t rodTab) Eval(ctx context.Context, js string) (string, error) {
	res, err := t.page.Context(ctx).Evaluate(&rod.EvalOptions{
		JS:      js,
		ByValue: true,
	})
	if err != nil {
		return "", err
	}
	if res == nil || res.Value.Nil() {
		return "", nil
	}
	return res.Value.Str(), nil
}
