package manager

import (
	"context"
	"log/slog"

	"go.klb.dev/clipmate/internal/history"
)

const previewLen = 120

// logCaptured logs a new history entry at INFO (type, size) and, for text,
// a preview of up to previewLen bytes at DEBUG.
func logCaptured(it history.Item, size int) {
	slog.Info("clipboard captured", "type", it.ItemType, "size_bytes", size)

	if it.ItemType != history.Text || !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	slog.Debug("clipboard item", "preview", Preview(it.Data, previewLen))
}

// Preview shortens s to at most n bytes, cutting on a rune boundary and
// marking the cut with an ellipsis.
func Preview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !isRuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }
