// Package rod implements the dynamic extractor using Chrome browser
// automation. The component develop views render their property tables
// client-side, so a real browser session is required to harvest them.
package rod

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Manager owns the shared browser process. The browser is launched lazily
// on first use and reused across calls; a liveness check precedes reuse and
// a dead handle is discarded and relaunched. The mutex guarantees at most
// one launch is in flight at a time.
//
// Manager is safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	router   *rod.HijackRouter
}

// NewManager creates a Manager. No browser is launched until Browser is
// first called.
func NewManager() *Manager {
	return &Manager{}
}

// Browser returns a connected browser, launching or relaunching one as
// needed.
func (m *Manager) Browser() (*rod.Browser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.browser != nil {
		if m.alive() {
			return m.browser, nil
		}
		// Dead handle; discard and relaunch.
		m.closeBrowser()
	}

	if err := m.launchBrowser(); err != nil {
		return nil, err
	}
	return m.browser, nil
}

// Close terminates the shared browser process if one is running and clears
// the handle. Safe to call when no browser is running; a later Browser call
// launches a fresh one.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closeBrowser()
	return nil
}

// alive reports whether the current browser still responds.
// Must be called with mu held.
func (m *Manager) alive() bool {
	_, err := proto.BrowserGetVersion{}.Call(m.browser)
	return err == nil
}

// launchBrowser starts a new browser instance with stability flags and
// installs a request filter that aborts image, font, and media loads to
// reduce page load time. Must be called with mu held.
func (m *Manager) launchBrowser() error {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	router := browser.HijackRequests()
	err = router.Add("*", "", func(h *rod.Hijack) {
		switch h.Request.Type() {
		case proto.NetworkResourceTypeImage, proto.NetworkResourceTypeFont, proto.NetworkResourceTypeMedia:
			h.Response.Fail(proto.NetworkErrorReasonBlockedByClient)
		default:
			h.ContinueRequest(&proto.FetchContinueRequest{})
		}
	})
	if err != nil {
		_ = browser.Close()
		lnchr.Kill()
		return fmt.Errorf("installing request filter: %w", err)
	}
	go router.Run()

	m.browser = browser
	m.launcher = lnchr
	m.router = router
	return nil
}

// closeBrowser shuts down the current browser and launcher.
// Must be called with mu held.
func (m *Manager) closeBrowser() {
	if m.router != nil {
		_ = m.router.Stop()
		m.router = nil
	}
	if m.browser != nil {
		_ = m.browser.Close()
		m.browser = nil
	}
	if m.launcher != nil {
		m.launcher.Kill()
		m.launcher = nil
	}
}

// LauncherPID returns the process ID of the browser launcher, or 0 when no
// browser is running. This method exists for testing purposes to verify
// proper cleanup.
func (m *Manager) LauncherPID() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.launcher == nil {
		return 0
	}
	return m.launcher.PID()
}
