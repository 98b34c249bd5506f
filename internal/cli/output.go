package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MrSnakeDoc/stash/internal/domain"
)

// printBookmarks writes items as an aligned table, or as a JSON array in the
// persisted shape when asJSON is set.
func printBookmarks(w io.Writer, items []domain.Bookmark, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if items == nil {
			items = []domain.Bookmark{}
		}
		return enc.Encode(items)
	}

	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No bookmarks.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tURL\tTAGS\tCREATED")
	for _, b := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			b.ID,
			b.Title,
			b.URL,
			strings.Join(b.Tags, ", "),
			b.CreatedAt.Local().Format(time.DateTime),
		)
	}
	return tw.Flush()
}
