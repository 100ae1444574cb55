// Package browser hands URLs to the desktop's default browser.
package browser

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// Opener launches URLs. It satisfies menu.Sink.
type Opener struct {
	// start runs the command; replaced in tests.
	start func(name string, args ...string) error
	goos  string
}

// New returns an Opener for the current platform.
func New() *Opener {
	return &Opener{start: startDetached, goos: runtime.GOOS}
}

// NavigateTo opens raw in the default browser without waiting for it.
func (o *Opener) NavigateTo(raw string) error {
	target := strings.TrimSpace(raw)
	if target == "" {
		return errors.New("url is required")
	}
	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("parse url %q: %w", target, err)
	}
	if u.Scheme == "" {
		target = "https://" + target
	}
	name, args := command(o.goos, target)
	if err := o.start(name, args...); err != nil {
		return fmt.Errorf("open %s: %w", target, err)
	}
	return nil
}

// SearchURL fills the %s placeholder of an engine template with the escaped
// query. Templates without a placeholder get the query appended.
func SearchURL(template, query string) string {
	escaped := url.QueryEscape(strings.TrimSpace(query))
	if strings.Contains(template, "%s") {
		return strings.Replace(template, "%s", escaped, 1)
	}
	return template + escaped
}

func command(goos, target string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}

func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
