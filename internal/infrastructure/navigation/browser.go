// Package navigation opens hand-off URLs in the user's browser.
package navigation

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"agro_cart/internal/domain/handoff"

	"go.uber.org/zap"
)

// BrowserNavigator asks the operating system to open a URL in a new browser
// window or tab. Navigate returns once the opener has been started; the
// opener outlives the caller's context.
type BrowserNavigator struct {
	goos  string
	start func(name string, args ...string) error
}

var _ handoff.Navigator = (*BrowserNavigator)(nil)

func NewBrowserNavigator() *BrowserNavigator {
	return &BrowserNavigator{goos: runtime.GOOS, start: startDetached}
}

func (n *BrowserNavigator) Navigate(_ context.Context, url string) error {
	name, args := openerCommand(n.goos, url)
	zap.L().Debug("[navigation][browser] opening url", zap.String("opener", name))
	if err := n.start(name, args...); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}

func openerCommand(goos, url string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{url}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	default:
		return "xdg-open", []string{url}
	}
}

// startDetached starts the opener without waiting for it or tying it to a
// context.
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
