package homepage

import (
	"context"
	"errors"
	"fmt"

	"github.com/MrSnakeDoc/stash/internal/domain"
)

// Adder is the part of the bookmark store an import needs.
type Adder interface {
	Add(ctx context.Context, rawURL string, tags []string) (domain.Bookmark, error)
}

// Result counts what an import did.
type Result struct {
	Added   int
	Skipped int
}

// Import loads the file behind l and adds every entry to dst. URLs already
// saved are skipped; any other failure stops the import, keeping what was
// added so far.
func Import(ctx context.Context, l *Loader, dst Adder) (Result, error) {
	var res Result

	config, err := l.Load()
	if err != nil {
		return res, err
	}

	entries, err := MapEntries(config)
	if err != nil {
		return res, fmt.Errorf("failed to map bookmarks: %w", err)
	}

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		_, err := dst.Add(ctx, e.URL, e.Tags)
		switch {
		case err == nil:
			res.Added++
		case errors.Is(err, domain.ErrDuplicate):
			res.Skipped++
		default:
			return res, fmt.Errorf("failed to import %s: %w", e.URL, err)
		}
	}

	return res, nil
}
