// Package clip is clipmate's narrow view of the system clipboard.
//
// Text goes through a TextBackend:
//
//	native   golang.design/x/clipboard (cgo, X11/Cocoa/Win32)
//	command  github.com/atotto/clipboard (shells out to xclip/xsel/wl-copy/pbcopy)
//	headless no-op, every read fails with ErrUnavailable
//
// Images go through an ImageHelper, normally an external process such as
// xclip that emits and accepts PNG bytes.
package clip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrUnavailable is returned by backends that have no clipboard to talk to.
var ErrUnavailable = errors.New("clipboard unavailable")

// TextBackend reads and writes the text clipboard.
type TextBackend interface {
	// Name returns a human-readable name for the backend.
	Name() string
	ReadText() (string, error)
	WriteText(text string) error
}

// ImageHelper moves PNG bytes to and from the clipboard.
type ImageHelper interface {
	// ReadImage returns the clipboard image, or an empty slice if the
	// clipboard holds no image. An error means the helper itself could not
	// be run.
	ReadImage(ctx context.Context) ([]byte, error)
	WriteImage(ctx context.Context, png []byte) error
}

// Text backend selectors accepted by NewText.
const (
	BackendAuto    = "auto"
	BackendNative  = "native"
	BackendCommand = "command"
)

// NewText returns the text backend selected by kind. "auto" tries the
// backends in autoOrder and finally falls back to a headless no-op so one-shot
// commands still work on a bare server.
//
// oneShot marks a process that writes the clipboard and then exits. On X11 the
// native backend serves the selection from its own process, so a value written
// by a one-shot process vanishes when it exits; the command backend hands the
// value to xclip/xsel, which outlive the caller.
func NewText(kind string, oneShot bool) (TextBackend, error) {
	switch strings.ToLower(kind) {
	case "", BackendAuto:
		for _, name := range autoOrder(oneShot) {
			b, err := backends[name]()
			if err == nil {
				return b, nil
			}
			slog.Debug("text backend unavailable", "backend", name, "err", err)
		}
		slog.Warn("clipboard unavailable, running headless")
		return headless{}, nil
	case BackendNative:
		return newNative()
	case BackendCommand:
		return newCommand()
	default:
		return nil, fmt.Errorf("unknown text backend %q (want auto|native|command)", kind)
	}
}

var backends = map[string]func() (TextBackend, error){
	BackendNative:  newNative,
	BackendCommand: newCommand,
}

// autoOrder is the order "auto" tries backends in.
func autoOrder(oneShot bool) []string {
	if oneShot {
		return []string{BackendCommand, BackendNative}
	}
	return []string{BackendNative, BackendCommand}
}

type headless struct{}

func (headless) Name() string              { return "headless (no-op)" }
func (headless) ReadText() (string, error) { return "", ErrUnavailable }
func (headless) WriteText(_ string) error  { return ErrUnavailable }
