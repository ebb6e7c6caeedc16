package clip

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strings"
	"time"
)

// HelperSpec describes how to drive an external image clipboard tool.
type HelperSpec struct {
	Name      string
	ReadArgv  []string
	WriteArgv []string
}

var helperSpecs = map[string]HelperSpec{
	"xclip": {
		Name:      "xclip",
		ReadArgv:  []string{"xclip", "-selection", "clipboard", "-t", "image/png", "-o"},
		WriteArgv: []string{"xclip", "-selection", "clipboard", "-t", "image/png"},
	},
	"wl-clipboard": {
		Name:      "wl-clipboard",
		ReadArgv:  []string{"wl-paste", "--no-newline", "--type", "image/png"},
		WriteArgv: []string{"wl-copy", "--type", "image/png"},
	},
}

// HelperNames lists the built-in helper presets.
func HelperNames() []string {
	names := make([]string, 0, len(helperSpecs))
	for n := range helperSpecs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// CommandHelper is an ImageHelper backed by an external process.
type CommandHelper struct {
	spec    HelperSpec
	timeout time.Duration
	run     func(ctx context.Context, argv []string, stdin []byte) ([]byte, error)
}

// NewHelper returns the helper preset called name. A timeout of zero means
// helper invocations are bounded only by the caller's context.
func NewHelper(name string, timeout time.Duration) (*CommandHelper, error) {
	spec, ok := helperSpecs[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown image helper %q (want one of %s)", name, strings.Join(HelperNames(), ", "))
	}
	return &CommandHelper{spec: spec, timeout: timeout, run: runCommand}, nil
}

// Name returns the preset name.
func (h *CommandHelper) Name() string { return h.spec.Name }

// ReadImage runs the helper's read command and returns its stdout. A helper
// that starts but exits non-zero (xclip does this when the clipboard holds no
// PNG) yields whatever it printed and no error; only a helper that cannot be
// run at all is reported as an error.
func (h *CommandHelper) ReadImage(ctx context.Context) ([]byte, error) {
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	out, err := h.run(ctx, h.spec.ReadArgv, nil)
	if err == nil {
		return out, nil
	}
	if ctx.Err() != nil {
		return nil, fmt.Errorf("%s: %w", h.spec.ReadArgv[0], ctx.Err())
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return out, nil
	}
	return nil, fmt.Errorf("%s: %w", h.spec.ReadArgv[0], err)
}

// WriteImage pipes png into the helper's write command.
func (h *CommandHelper) WriteImage(ctx context.Context, png []byte) error {
	ctx, cancel := h.withTimeout(ctx)
	defer cancel()

	if _, err := h.run(ctx, h.spec.WriteArgv, png); err != nil {
		return fmt.Errorf("%s: %w", h.spec.WriteArgv[0], err)
	}
	return nil
}

func (h *CommandHelper) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.timeout)
}

func runCommand(ctx context.Context, argv []string, stdin []byte) ([]byte, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	return cmd.Output()
}
