package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-read-later/internal/app"
	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/internal/remote"
	"github.com/MKhiriev/go-read-later/internal/utils"
	"github.com/MKhiriev/go-read-later/models"
)

func (h *Handler) addBookmark(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.AddArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.addBookmark").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	article, err := h.service.AddBookmark(r.Context(), request.URL, request.Title)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addBookmark").Msg("error adding bookmark")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, article, http.StatusCreated)
}

func (h *Handler) updateBookmark(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r, "bookmarkID")
	if err != nil {
		writeError(w, err)
		return
	}

	var update remote.BookmarkUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateBookmark").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	article, err := h.service.UpdateBookmark(r.Context(), id, update)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateBookmark").Msg("error updating bookmark")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, article, http.StatusOK)
}

func (h *Handler) deleteBookmark(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r, "bookmarkID")
	if err != nil {
		writeError(w, err)
		return
	}

	if err = h.service.DeleteBookmark(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteBookmark").Msg("error deleting bookmark")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) moveBookmark(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r, "bookmarkID")
	if err != nil {
		writeError(w, err)
		return
	}

	var request models.MoveArticleRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.moveBookmark").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	article, err := h.service.MoveBookmark(r.Context(), id, request.FolderID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.moveBookmark").Msg("error moving bookmark")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, article, http.StatusOK)
}

func (h *Handler) starBookmark(w http.ResponseWriter, r *http.Request) {
	h.setLiked(w, r, true)
}

func (h *Handler) unstarBookmark(w http.ResponseWriter, r *http.Request) {
	h.setLiked(w, r, false)
}

func (h *Handler) setLiked(w http.ResponseWriter, r *http.Request, liked bool) {
	id, err := pathID(r, "bookmarkID")
	if err != nil {
		writeError(w, err)
		return
	}

	article, err := h.service.SetLiked(r.Context(), id, liked)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.setLiked").Bool("liked", liked).Msg("error changing like status")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, article, http.StatusOK)
}

func (h *Handler) updateProgress(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := pathID(r, "bookmarkID")
	if err != nil {
		writeError(w, err)
		return
	}

	var request models.ReadProgressRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.updateProgress").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	article, err := h.service.UpdateProgress(r.Context(), id, request.Progress, request.Timestamp)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateProgress").Msg("error updating read progress")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, article, http.StatusOK)
}
