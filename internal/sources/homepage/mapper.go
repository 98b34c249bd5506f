package homepage

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// ErrNoEntries is returned when a file holds no bookmark with an href.
var ErrNoEntries = errors.New("no valid bookmarks found in config")

// Entry is one bookmark to import: its URL and the tags derived from the
// category and abbreviation.
type Entry struct {
	URL  string
	Tags []string
}

// MapEntries flattens config in file order. Tags are [category, abbr], with
// the bookmark name standing in for a missing abbr. Entries without an href
// are skipped.
func MapEntries(config BookmarksConfig) ([]Entry, error) {
	entries := make([]Entry, 0)

	for _, category := range config {
		for _, categoryName := range sortedKeys(category) {
			for _, bookmarkMap := range category[categoryName] {
				for _, bookmarkName := range sortedKeys(bookmarkMap) {
					list := bookmarkMap[bookmarkName]
					if len(list) == 0 {
						continue
					}
					entry := list[0]

					href := strings.TrimSpace(entry.Href)
					if href == "" {
						continue
					}

					abbr := strings.TrimSpace(entry.Abbr)
					if abbr == "" {
						abbr = bookmarkName
					}

					entries = append(entries, Entry{
						URL:  href,
						Tags: []string{categoryName, abbr},
					})
				}
			}
		}
	}

	if len(entries) == 0 {
		return nil, ErrNoEntries
	}
	return entries, nil
}

// sortedKeys keeps the walk deterministic when a YAML item holds several keys.
func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
