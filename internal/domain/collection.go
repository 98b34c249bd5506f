package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// EncodeCollection serializes bookmarks into the persisted blob format:
// a JSON array in collection order.
func EncodeCollection(bookmarks []Bookmark) (string, error) {
	if bookmarks == nil {
		bookmarks = []Bookmark{}
	}
	data, err := json.Marshal(bookmarks)
	if err != nil {
		return "", fmt.Errorf("failed to marshal bookmarks: %w", err)
	}
	return string(data), nil
}

// DecodeCollection parses a persisted blob. A blank blob or JSON null is an
// empty collection. Anything that is not an array of bookmarks with a URL
// yields ErrCorruptBlob.
func DecodeCollection(blob string) ([]Bookmark, error) {
	if strings.TrimSpace(blob) == "" {
		return []Bookmark{}, nil
	}

	var bookmarks []Bookmark
	if err := json.Unmarshal([]byte(blob), &bookmarks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptBlob, err)
	}
	if bookmarks == nil {
		return []Bookmark{}, nil
	}

	for i, b := range bookmarks {
		if b.URL == "" {
			return nil, fmt.Errorf("%w: entry %d has no url", ErrCorruptBlob, i)
		}
	}
	return bookmarks, nil
}
