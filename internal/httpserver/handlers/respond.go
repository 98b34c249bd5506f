package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/stash/internal/bookmarks"
	"github.com/MrSnakeDoc/stash/internal/domain"
	"github.com/MrSnakeDoc/stash/internal/logger"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any, log logger.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Debug("failed to write response", logger.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, code, msg string, log logger.Logger) {
	writeJSON(w, status, errorResponse{Error: code, Message: msg}, log)
}

// writeStoreError maps a bookmark store error to its HTTP status. Rejected
// input is logged at debug, storage failures at error.
func writeStoreError(w http.ResponseWriter, err error, log logger.Logger) {
	if bookmarks.IsUserError(err) {
		log.Debug("bookmark request rejected", logger.Error(err))
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation", err.Error(), log)
	case errors.Is(err, domain.ErrDuplicate):
		writeError(w, http.StatusConflict, "duplicate", err.Error(), log)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error(), log)
	default:
		log.Error("bookmark store failure", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "persistence", "could not save bookmarks", log)
	}
}
