package clip

import (
	"fmt"

	"github.com/atotto/clipboard"
)

type commandBackend struct{}

func newCommand() (TextBackend, error) {
	if clipboard.Unsupported {
		return nil, fmt.Errorf("command clipboard: %w: no xclip, xsel, wl-copy or termux tools found", ErrUnavailable)
	}
	return commandBackend{}, nil
}

func (commandBackend) Name() string { return "command" }

func (commandBackend) ReadText() (string, error) {
	return clipboard.ReadAll()
}

func (commandBackend) WriteText(text string) error {
	return clipboard.WriteAll(text)
}
