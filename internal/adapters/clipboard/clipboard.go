package clipboard

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/atotto/clipboard"

	"turmas/internal/logging"
	"turmas/internal/ports"
)

// System implements ports.Clipboard. Text goes through atotto/clipboard;
// images are piped into a platform tool (see image_*.go).
type System struct {
	// run executes a clipboard command with data on stdin
	run func(name string, args []string, data []byte) error
}

var _ ports.Clipboard = (*System)(nil)

// NewSystem creates a clipboard bound to the host tools
func NewSystem() *System {
	return &System{run: runWithStdin}
}

// WriteText copies text to the clipboard
func (s *System) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy text: %w", err)
	}
	logging.Logger.Debug("Copied text to clipboard", "bytes", len(text))
	return nil
}

// WriteImage copies a PNG to the clipboard
func (s *System) WriteImage(png []byte) error {
	if len(png) == 0 {
		return fmt.Errorf("empty image")
	}

	var lastErr error
	for _, c := range imageCommands() {
		if _, err := exec.LookPath(c.name); err != nil {
			continue
		}
		if err := s.run(c.name, c.args, png); err != nil {
			logging.Logger.Warn("Clipboard tool failed", "tool", c.name, "error", err)
			lastErr = err
			continue
		}
		logging.Logger.Debug("Copied image to clipboard", "tool", c.name, "bytes", len(png))
		return nil
	}

	if lastErr != nil {
		return fmt.Errorf("failed to copy image: %w", lastErr)
	}
	return fmt.Errorf("no clipboard tool available for images")
}

type command struct {
	name string
	args []string
}

func runWithStdin(name string, args []string, data []byte) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = bytes.NewReader(data)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := bytes.TrimSpace(stderr.Bytes()); len(msg) > 0 {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
