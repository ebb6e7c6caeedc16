// Package history holds the ordered clipboard log and its on-disk JSON form.
//
// The file is a single JSON document rewritten in full on every Persist:
//
//	{"items":[{"time":<ns>,"item_type":"TEXT","data":"..."}],"image_counter":0,"text_counter":1}
//
// There is no schema version field; changing the layout breaks existing files.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"
)

// FilePerm is the permission used when creating the history file.
const FilePerm os.FileMode = 0o644

// ItemType tags an Item as text or image.
type ItemType int

const (
	Text ItemType = iota
	Image
)

// String returns the tag used both in history files and in listings.
func (t ItemType) String() string {
	switch t {
	case Text:
		return "TEXT"
	case Image:
		return "IMAGE"
	default:
		return fmt.Sprintf("ItemType(%d)", int(t))
	}
}

// MarshalText encodes the tag the way existing history files spell it.
func (t ItemType) MarshalText() ([]byte, error) {
	if t != Text && t != Image {
		return nil, fmt.Errorf("unknown item type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *ItemType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "TEXT":
		*t = Text
	case "IMAGE":
		*t = Image
	default:
		return fmt.Errorf("unknown item type %q", b)
	}
	return nil
}

// Item is one captured clipboard value. For Image items Data is the path of
// the stored PNG, not the bytes.
type Item struct {
	Time     int64    `json:"time"`
	ItemType ItemType `json:"item_type"`
	Data     string   `json:"data"`
}

// CapturedAt returns Time as a wall-clock time.
func (it Item) CapturedAt() time.Time { return time.Unix(0, it.Time) }

// History is the serialised form of the log.
type History struct {
	Items        []Item `json:"items"`
	ImageCounter uint64 `json:"image_counter"`
	TextCounter  uint64 `json:"text_counter"`
}

// Store owns a History and the path it persists to. It is not safe for
// concurrent use; the manager that owns it is driven from one goroutine.
type Store struct {
	path string
	h    History
	now  func() time.Time
}

// Load reads the history at path. A missing file yields an empty history;
// a file that exists but does not parse is an error.
func Load(path string) (*Store, error) {
	s := &Store{path: path, now: time.Now}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		s.h.Items = []Item{}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read history %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &s.h); err != nil {
		return nil, fmt.Errorf("parse history %s: %w", path, err)
	}
	if s.h.Items == nil {
		s.h.Items = []Item{}
	}
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Append records a new item stamped with the current time. It does not
// deduplicate.
func (s *Store) Append(t ItemType, data string) Item {
	it := Item{
		Time:     s.now().UnixNano(),
		ItemType: t,
		Data:     data,
	}
	s.h.Items = append(s.h.Items, it)
	switch t {
	case Text:
		s.h.TextCounter++
	case Image:
		s.h.ImageCounter++
	}
	return it
}

// Get returns the item at the 0-based index.
func (s *Store) Get(index int) (Item, bool) {
	if index < 0 || index >= len(s.h.Items) {
		return Item{}, false
	}
	return s.h.Items[index], true
}

// Len returns the number of items.
func (s *Store) Len() int { return len(s.h.Items) }

// Items returns a copy of the log, oldest first.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.h.Items))
	copy(out, s.h.Items)
	return out
}

// Counters returns the per-type append counts.
func (s *Store) Counters() (text, image uint64) {
	return s.h.TextCounter, s.h.ImageCounter
}

// LastText returns the data of the most recent Text item, or "".
func (s *Store) LastText() string {
	for i := len(s.h.Items) - 1; i >= 0; i-- {
		if s.h.Items[i].ItemType == Text {
			return s.h.Items[i].Data
		}
	}
	return ""
}

// Contains reports whether any item has exactly this data.
func (s *Store) Contains(data string) bool {
	for _, it := range s.h.Items {
		if it.Data == data {
			return true
		}
	}
	return false
}

// Persist rewrites the whole history file.
func (s *Store) Persist() error {
	data, err := json.Marshal(&s.h)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := os.WriteFile(s.path, data, FilePerm); err != nil {
		return fmt.Errorf("write history %s: %w", s.path, err)
	}
	return nil
}
