package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/stash/internal/domain"
	"github.com/MrSnakeDoc/stash/internal/httpserver/deps"
	"github.com/MrSnakeDoc/stash/internal/notify"
)

const maxBodyBytes = 64 << 10

type listResponse struct {
	Count     int               `json:"count"`
	Bookmarks []domain.Bookmark `json:"bookmarks"`
}

// addRequest accepts tags either as a list or as the comma separated string
// typed into a tag field. The list wins when both are set.
type addRequest struct {
	URL       string   `json:"url"`
	Tags      []string `json:"tags"`
	TagString string   `json:"tagString"`
}

func (r addRequest) tags() []string {
	if r.Tags != nil {
		return r.Tags
	}
	return domain.ParseTags(r.TagString)
}

type clearResponse struct {
	Removed int `json:"removed"`
}

// ListBookmarks returns the whole collection, or the matches of ?q=.
func ListBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := d.Store.Search(r.URL.Query().Get("q"))
		writeJSON(w, http.StatusOK, listResponse{Count: len(items), Bookmarks: items}, d.Logger)
	}
}

func AddBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addRequest
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", "body must be a JSON object", d.Logger)
			return
		}

		b, err := d.Store.Add(r.Context(), req.URL, req.tags())
		d.Notifier.Notify(notify.ForAdd(err))
		if err != nil {
			writeStoreError(w, err, d.Logger)
			return
		}

		w.Header().Set("Location", "/api/bookmarks/"+strconv.FormatInt(b.ID, 10))
		writeJSON(w, http.StatusCreated, b, d.Logger)
	}
}

func GetBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r, d)
		if !ok {
			return
		}

		b, err := d.Store.Get(id)
		if err != nil {
			writeStoreError(w, err, d.Logger)
			return
		}
		writeJSON(w, http.StatusOK, b, d.Logger)
	}
}

func RemoveBookmark(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r, d)
		if !ok {
			return
		}

		b, err := d.Store.Remove(r.Context(), id)
		d.Notifier.Notify(notify.ForRemove(err))
		if err != nil {
			writeStoreError(w, err, d.Logger)
			return
		}
		writeJSON(w, http.StatusOK, b, d.Logger)
	}
}

func ClearBookmarks(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := d.Store.Clear(r.Context())
		if note, ok := notify.ForClear(n, err); ok {
			d.Notifier.Notify(note)
		}
		if err != nil {
			writeStoreError(w, err, d.Logger)
			return
		}
		writeJSON(w, http.StatusOK, clearResponse{Removed: n}, d.Logger)
	}
}

func parseID(w http.ResponseWriter, r *http.Request, d deps.Deps) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "id must be an integer, got "+strconv.Quote(raw), d.Logger)
		return 0, false
	}
	return id, true
}
