package clip

import (
	"fmt"

	"golang.design/x/clipboard"
)

type nativeBackend struct{}

// newNative initialises golang.design/x/clipboard. Init fails on headless
// hosts and in CGO_ENABLED=0 builds; NewText then falls back.
func newNative() (TextBackend, error) {
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("native clipboard: %w", err)
	}
	return nativeBackend{}, nil
}

func (nativeBackend) Name() string { return "native" }

func (nativeBackend) ReadText() (string, error) {
	return string(clipboard.Read(clipboard.FmtText)), nil
}

func (nativeBackend) WriteText(text string) error {
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
