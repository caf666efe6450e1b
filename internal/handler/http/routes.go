package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/folders", h.listFolders)
		r.Post("/api/folders", h.addFolder)
		r.Patch("/api/folders/{folderID}", h.updateFolder)
		r.Delete("/api/folders/{folderID}", h.deleteFolder)
		r.Get("/api/folders/{folderID}/bookmarks", h.listBookmarks)

		r.Post("/api/bookmarks", h.addBookmark)
		r.Patch("/api/bookmarks/{bookmarkID}", h.updateBookmark)
		r.Delete("/api/bookmarks/{bookmarkID}", h.deleteBookmark)
		r.Post("/api/bookmarks/{bookmarkID}/move", h.moveBookmark)
		r.Post("/api/bookmarks/{bookmarkID}/star", h.starBookmark)
		r.Post("/api/bookmarks/{bookmarkID}/unstar", h.unstarBookmark)
		r.Post("/api/bookmarks/{bookmarkID}/progress", h.updateProgress)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
