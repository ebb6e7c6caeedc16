// Package manager samples the clipboard, decides what is new, and keeps the
// history file in step with memory.
package manager

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"go.klb.dev/clipmate/internal/blob"
	"go.klb.dev/clipmate/internal/clip"
	"go.klb.dev/clipmate/internal/history"
)

// MinImageSize is the smallest helper payload treated as a real image.
// Anything at or below 50 bytes is an empty or placeholder response.
const MinImageSize = 51

// ErrNotFound is returned by Restore for an item number outside the history.
var ErrNotFound = errors.New("item not found in clipboard history")

// HelperState tracks whether the image helper is worth invoking.
type HelperState int

const (
	HelperAvailable HelperState = iota
	HelperUnavailable
)

func (s HelperState) String() string {
	if s == HelperUnavailable {
		return "unavailable"
	}
	return "available"
}

// Manager owns one history and bridges it to the clipboard. It is driven
// from a single goroutine and holds no locks.
type Manager struct {
	store  *history.Store
	text   clip.TextBackend
	images clip.ImageHelper
	blobs  *blob.Store
	helper HelperState
}

// New returns a Manager over an already loaded store. The image helper is
// assumed available until its first failure.
func New(store *history.Store, text clip.TextBackend, images clip.ImageHelper, blobs *blob.Store) *Manager {
	return &Manager{
		store:  store,
		text:   text,
		images: images,
		blobs:  blobs,
		helper: HelperAvailable,
	}
}

// Open loads the history at path and returns a Manager over it.
func Open(path string, text clip.TextBackend, images clip.ImageHelper, blobs *blob.Store) (*Manager, error) {
	store, err := history.Load(path)
	if err != nil {
		return nil, err
	}
	return New(store, text, images, blobs), nil
}

// HelperState reports the image helper latch.
func (m *Manager) HelperState() HelperState { return m.helper }

// Store returns the underlying history store.
func (m *Manager) Store() *history.Store { return m.store }

// List returns the full history, oldest first.
func (m *Manager) List() []history.Item { return m.store.Items() }

// SampleText records the clipboard text if it is non-empty and differs from
// the most recent text item. Read failures are logged and skipped; only a
// failed persist is returned.
func (m *Manager) SampleText(_ context.Context) error {
	text, err := m.text.ReadText()
	if err != nil {
		slog.Debug("clipboard text read failed", "backend", m.text.Name(), "err", err)
		return nil
	}
	if text == "" || text == m.store.LastText() {
		return nil
	}

	it := m.store.Append(history.Text, text)
	if err := m.store.Persist(); err != nil {
		return err
	}
	logCaptured(it, len(text))
	return nil
}

// SampleImage records the clipboard image if the helper returns one that is
// not already in the history. The first helper failure disables image
// sampling for the lifetime of m.
func (m *Manager) SampleImage(ctx context.Context) error {
	if m.helper == HelperUnavailable {
		return nil
	}

	data, err := m.images.ReadImage(ctx)
	if err != nil {
		m.helper = HelperUnavailable
		slog.Warn("image helper unavailable, image capture disabled", "err", err)
		return nil
	}
	if len(data) < MinImageSize {
		return nil
	}

	path := m.blobs.PathFor(data)
	if m.store.Contains(path) {
		return nil
	}
	if _, err := m.blobs.Write(data); err != nil {
		return err
	}

	it := m.store.Append(history.Image, path)
	if err := m.store.Persist(); err != nil {
		return err
	}
	logCaptured(it, len(data))
	return nil
}

// Sample runs one text and one image sample, in that order.
func (m *Manager) Sample(ctx context.Context) error {
	if err := m.SampleText(ctx); err != nil {
		return err
	}
	return m.SampleImage(ctx)
}

// Restore pushes the n-th item (1-based) back onto the clipboard and returns
// it. An out-of-range n returns ErrNotFound and changes nothing. Image items
// are only read back from files named the way SampleImage names them.
func (m *Manager) Restore(ctx context.Context, n int) (history.Item, error) {
	it, ok := m.store.Get(n - 1)
	if !ok {
		return history.Item{}, fmt.Errorf("item %d: %w", n, ErrNotFound)
	}

	switch it.ItemType {
	case history.Text:
		if err := m.text.WriteText(it.Data); err != nil {
			return it, fmt.Errorf("set clipboard text: %w", err)
		}
	case history.Image:
		if !blob.IsValidName(filepath.Base(it.Data)) {
			return it, fmt.Errorf("item %d: %s is not a captured image", n, it.Data)
		}
		data, err := blob.Read(it.Data)
		if err != nil {
			return it, err
		}
		if err := m.images.WriteImage(ctx, data); err != nil {
			return it, fmt.Errorf("set clipboard image: %w", err)
		}
	default:
		return it, fmt.Errorf("item %d: unsupported type %s", n, it.ItemType)
	}

	slog.Debug("clipboard restored", "item", n, "type", it.ItemType)
	return it, nil
}
