package domain

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// TimestampLayout is the ISO-8601 layout used for createdAt, millisecond
// precision in UTC (e.g. 2024-05-01T09:30:00.000Z).
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Bookmark is a saved URL with its tags.
//
// A Bookmark is never mutated after creation: editing is delete + re-add.
type Bookmark struct {
	// ID is unique within a collection and increases with creation time.
	ID int64

	// URL is the user-supplied address, stored exactly as entered (trimmed).
	URL string

	// Tags are trimmed, non-empty, in the order entered. Duplicates are kept.
	Tags []string

	// Title is the URL hostname, or the raw URL when no hostname can be derived.
	Title string

	// CreatedAt is the creation instant, UTC, millisecond precision.
	CreatedAt time.Time
}

// NewBookmark builds a bookmark, deriving its title from rawURL.
func NewBookmark(id int64, rawURL string, tags []string, createdAt time.Time) Bookmark {
	return Bookmark{
		ID:        id,
		URL:       rawURL,
		Tags:      NormalizeTags(tags),
		Title:     ExtractTitle(rawURL),
		CreatedAt: createdAt.UTC().Truncate(time.Millisecond),
	}
}

// Clone returns a copy that does not share the tag slice.
func (b Bookmark) Clone() Bookmark {
	c := b
	c.Tags = append(make([]string, 0, len(b.Tags)), b.Tags...)
	return c
}

// Matches reports whether query is a case-insensitive substring of the URL
// or of any tag. An empty query matches everything.
func (b Bookmark) Matches(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(b.URL), q) {
		return true
	}
	for _, tag := range b.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// ExtractTitle returns the lowercased hostname of rawURL, or rawURL itself
// when it does not parse or has no host.
func ExtractTitle(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	host := u.Hostname()
	if host == "" {
		return rawURL
	}
	return strings.ToLower(host)
}

// wireBookmark is the persisted shape. Timestamp is the legacy name of
// createdAt and is only read, never written.
type wireBookmark struct {
	ID        int64    `json:"id"`
	URL       string   `json:"url"`
	Tags      []string `json:"tags"`
	Title     string   `json:"title"`
	CreatedAt string   `json:"createdAt"`
	Timestamp string   `json:"timestamp,omitempty"`
}

func (b Bookmark) MarshalJSON() ([]byte, error) {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(wireBookmark{
		ID:        b.ID,
		URL:       b.URL,
		Tags:      tags,
		Title:     b.Title,
		CreatedAt: formatCreatedAt(b.CreatedAt),
	})
}

// formatCreatedAt writes millisecond precision, or full precision when a
// loaded value carries more, so a stored timestamp never changes on rewrite.
func formatCreatedAt(t time.Time) string {
	t = t.UTC()
	if t.Nanosecond()%int(time.Millisecond) != 0 {
		return t.Format(time.RFC3339Nano)
	}
	return t.Format(TimestampLayout)
}

func (b *Bookmark) UnmarshalJSON(data []byte) error {
	var w wireBookmark
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	raw := w.CreatedAt
	if raw == "" {
		raw = w.Timestamp
	}
	var createdAt time.Time
	if raw != "" {
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return fmt.Errorf("invalid createdAt %q: %w", raw, err)
		}
		createdAt = t.UTC()
	}

	tags := w.Tags
	if tags == nil {
		tags = []string{}
	}

	*b = Bookmark{
		ID:        w.ID,
		URL:       w.URL,
		Tags:      tags,
		Title:     w.Title,
		CreatedAt: createdAt,
	}
	return nil
}
