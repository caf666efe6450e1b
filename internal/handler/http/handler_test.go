package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-read-later/internal/app"
	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/internal/remote"
	"github.com/MKhiriev/go-read-later/internal/utils"
	"github.com/MKhiriev/go-read-later/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "secret"

func newTestRouter(t *testing.T) (http.Handler, *remote.Service) {
	t.Helper()
	svc := remote.NewService(utils.NewUUIDGenerator(), logger.Nop())
	h := NewHandler(svc, testToken, "test-version", logger.Nop())
	return h.Init(), svc
}

func do(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+testToken)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestGetServerVersion(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test-version", rec.Body.String())
}

func TestFolders(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/api/folders", `{"title":"Go"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	folder := decode[models.RemoteFolder](t, rec)
	assert.Equal(t, "Go", folder.Title)

	rec = do(t, router, http.MethodPost, "/api/folders", `{"title":"Go"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/folders", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/folders", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []models.RemoteFolder{folder}, decode[[]models.RemoteFolder](t, rec))

	rec = do(t, router, http.MethodPatch, "/api/folders/"+itoa(folder.ServiceID), `{"sync_to_mobile":false}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[models.RemoteFolder](t, rec).ShouldSync)

	rec = do(t, router, http.MethodDelete, "/api/folders/"+itoa(folder.ServiceID), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodDelete, "/api/folders/"+itoa(folder.ServiceID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodDelete, "/api/folders/-1", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(t, router, http.MethodDelete, "/api/folders/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBookmarks(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/api/bookmarks", `{"url":"https://go.dev","title":"Go"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	article := decode[models.RemoteArticle](t, rec)
	assert.Equal(t, "Go", article.Title)
	id := itoa(article.ID)

	rec = do(t, router, http.MethodPost, "/api/bookmarks", `{"url":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/bookmarks/"+id+"/star", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[models.RemoteArticle](t, rec).Liked)

	rec = do(t, router, http.MethodGet, "/api/folders/-3/bookmarks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.RemoteArticle](t, rec), 1)

	rec = do(t, router, http.MethodPost, "/api/bookmarks/"+id+"/unstar", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[models.RemoteArticle](t, rec).Liked)

	ts := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	rec = do(t, router, http.MethodPost, "/api/bookmarks/"+id+"/progress",
		`{"progress":0.25,"progress_timestamp":"`+ts.Format(time.RFC3339)+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode[models.RemoteArticle](t, rec)
	assert.Equal(t, 0.25, updated.ReadProgress)
	assert.True(t, ts.Equal(updated.ReadProgressTimestamp))
	assert.NotEqual(t, article.Hash, updated.Hash)

	rec = do(t, router, http.MethodPost, "/api/bookmarks/"+id+"/progress", `{"progress":2}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPatch, "/api/bookmarks/"+id, `{"title":"Go, renamed"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Go, renamed", decode[models.RemoteArticle](t, rec).Title)

	rec = do(t, router, http.MethodPost, "/api/bookmarks/"+id+"/move", `{"folder_id":-2}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/bookmarks/"+id+"/move", `{"folder_id":4242}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodGet, "/api/folders/-2/bookmarks?limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]models.RemoteArticle](t, rec), 1)

	rec = do(t, router, http.MethodGet, "/api/folders/-2/bookmarks?limit=x", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodDelete, "/api/bookmarks/"+id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, router, http.MethodPost, "/api/bookmarks/"+id+"/star", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnknownMethod_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodPut, "/api/version", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantMsg    string
	}{
		{remote.ErrFolderNotFound, http.StatusNotFound, app.MsgFolderNotFound},
		{remote.ErrBookmarkNotFound, http.StatusNotFound, app.MsgBookmarkNotFound},
		{fmt.Errorf("%w: %q", remote.ErrDuplicateFolder, "Go"), http.StatusConflict, app.MsgDuplicateFolder},
		{remote.ErrWellKnownFolder, http.StatusForbidden, app.MsgWellKnownFolder},
		{ErrInvalidID, http.StatusBadRequest, app.MsgInvalidID},
		{assert.AnError, http.StatusInternalServerError, app.MsgInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			status, msg := responseFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestErrorBodies(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/api/folders", `{"title":"Unread"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, app.MsgDuplicateFolder, strings.TrimSpace(rec.Body.String()))

	rec = do(t, router, http.MethodPost, "/api/folders", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, strings.TrimSpace(rec.Body.String()))
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
