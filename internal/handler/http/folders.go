package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-read-later/internal/app"
	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/internal/remote"
	"github.com/MKhiriev/go-read-later/internal/utils"
	"github.com/MKhiriev/go-read-later/models"
	"github.com/go-chi/chi/v5"
)

func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidID, name, raw)
	}
	return id, nil
}

func (h *Handler) listFolders(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.service.ListFolders(r.Context()), http.StatusOK)
}

func (h *Handler) addFolder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.AddFolderRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.addFolder").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	folder, err := h.service.AddFolder(ctx, request.Title)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addFolder").Msg("error adding folder")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, folder, http.StatusCreated)
}

func (h *Handler) updateFolder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	folderID, err := pathID(r, "folderID")
	if err != nil {
		writeError(w, err)
		return
	}

	var update remote.FolderUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateFolder").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	folder, err := h.service.UpdateFolder(ctx, folderID, update)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateFolder").Msg("error updating folder")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, folder, http.StatusOK)
}

func (h *Handler) deleteFolder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	folderID, err := pathID(r, "folderID")
	if err != nil {
		writeError(w, err)
		return
	}

	if err = h.service.DeleteFolder(r.Context(), folderID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteFolder").Msg("error deleting folder")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listBookmarks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	folderID, err := pathID(r, "folderID")
	if err != nil {
		writeError(w, err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil || limit < 0 {
			http.Error(w, app.MsgInvalidLimit, http.StatusBadRequest)
			return
		}
	}

	articles, err := h.service.ListBookmarks(r.Context(), folderID, limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listBookmarks").Msg("error listing bookmarks")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, articles, http.StatusOK)
}
