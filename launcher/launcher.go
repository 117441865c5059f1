// Package launcher builds chat URLs for card prompts and hands them to
// the user's browser. Opening is gated by a fixed-origin allowlist; this
// is the only place the service invokes anything external.
package launcher

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
)

// BaseURL is the only origin prompts may be launched against.
const BaseURL = "https://chat.openai.com/"

// ErrBlocked is returned when a constructed URL falls outside the
// allowed origin. The external action is not performed.
var ErrBlocked = errors.New("blocked external URL")

// BuildPromptURL builds the chat URL for a prompt. An empty prompt
// yields the bare base URL with no query. A non-empty system prompt is
// prepended to the prompt, separated by a blank line, before encoding.
func BuildPromptURL(prompt, systemPrompt string) string {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return BaseURL
	}

	combined := prompt
	if sys := strings.TrimSpace(systemPrompt); sys != "" {
		combined = sys + "\n\n" + combined
	}

	return BaseURL + "?q=" + url.QueryEscape(combined)
}

// Launcher opens prompt URLs externally. The open function is
// injectable so tests and handlers never spawn a real browser.
type Launcher struct {
	open func(url string) error
}

// New returns a Launcher that opens URLs with the platform browser.
func New() *Launcher {
	return &Launcher{open: openBrowser}
}

// NewWithOpener returns a Launcher using a custom open function.
func NewWithOpener(open func(url string) error) *Launcher {
	return &Launcher{open: open}
}

// Run builds the URL for the prompt, verifies it against the allowed
// origin, and opens it. The URL is returned so callers can echo what
// was launched.
func (l *Launcher) Run(prompt, systemPrompt string) (string, error) {
	u := BuildPromptURL(prompt, systemPrompt)
	if err := l.Open(u); err != nil {
		return "", err
	}
	log.Printf("Launched prompt URL (%d chars)", len(u))
	return u, nil
}

// Open hands a URL to the opener after the allowlist check. Anything
// outside BaseURL is refused before any external invocation.
func (l *Launcher) Open(u string) error {
	if !strings.HasPrefix(u, BaseURL) {
		return ErrBlocked
	}
	if err := l.open(u); err != nil {
		return fmt.Errorf("failed to open %s: %w", u, err)
	}
	return nil
}

func openBrowser(u string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", u)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", u)
	default:
		cmd = exec.Command("xdg-open", u)
	}
	return cmd.Start()
}
