package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-read-later/internal/app"
	"github.com/MKhiriev/go-read-later/internal/remote"
)

type errorResponse struct {
	target error
	status int
	msg    string
}

var errorResponses = []errorResponse{
	{remote.ErrFolderNotFound, http.StatusNotFound, app.MsgFolderNotFound},
	{remote.ErrBookmarkNotFound, http.StatusNotFound, app.MsgBookmarkNotFound},
	{remote.ErrDuplicateFolder, http.StatusConflict, app.MsgDuplicateFolder},
	{remote.ErrEmptyTitle, http.StatusBadRequest, app.MsgEmptyTitle},
	{remote.ErrEmptyURL, http.StatusBadRequest, app.MsgEmptyURL},
	{remote.ErrInvalidProgress, http.StatusBadRequest, app.MsgInvalidProgress},
	{remote.ErrWellKnownFolder, http.StatusForbidden, app.MsgWellKnownFolder},
	{ErrInvalidID, http.StatusBadRequest, app.MsgInvalidID},
}

// responseFromError picks the status and body for err. Unknown errors are
// reported as 500 without leaking their text.
func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.msg
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	status, msg := responseFromError(err)
	http.Error(w, msg, status)
}
