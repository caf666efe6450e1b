// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-read-later/internal/app"
	"github.com/MKhiriev/go-read-later/internal/config"
	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) RemoteService {
	t.Helper()

	a, err := NewHTTPRemoteAdapter(config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 5 * time.Second,
		Token:          "secret",
	}, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── folders ─────────────────────────────────────────────────────────────────

func TestFolderAdd_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/folders", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req models.AddFolderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Reading", req.Title)

		writeJSON(t, w, http.StatusCreated, models.RemoteFolder{ServiceID: 10, Title: "Reading", Position: 1, ShouldSync: true})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Folders().Add(context.Background(), "Reading")
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ServiceID)
	assert.True(t, got.ShouldSync)
}

func TestFolderAdd_Duplicate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("folder title already exists"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Folders().Add(context.Background(), "Reading")
	require.ErrorIs(t, err, ErrDuplicateFolder)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestFolderDelete_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/folders/77", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).Folders().Delete(context.Background(), 77)
	assert.True(t, IsNotFound(err))
}

func TestFolderList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		writeJSON(t, w, http.StatusOK, []models.RemoteFolder{{ServiceID: 1, Title: "A"}, {ServiceID: 2, Title: "B"}})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Folders().List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[1].Title)
}

// ── bookmarks ───────────────────────────────────────────────────────────────

func TestArticleList_UsesLimitAndWellKnownFolder(t *testing.T) {
	stamp := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/folders/-3/bookmarks", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		writeJSON(t, w, http.StatusOK, []models.RemoteArticle{{ID: 5, URL: "https://x/5", Liked: true, ReadProgressTimestamp: stamp}})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Articles().List(context.Background(), models.LikedFolderServiceID, 50)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Liked)
	assert.True(t, stamp.Equal(got[0].ReadProgressTimestamp))
}

func TestArticleAdd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.AddArticleRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://x/1", req.URL)
		require.NotNil(t, req.Title)
		writeJSON(t, w, http.StatusCreated, models.RemoteArticle{ID: 1, URL: req.URL, Title: *req.Title})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Articles().Add(context.Background(), "https://x/1", models.StringPtr("One"))
	require.NoError(t, err)
	assert.Equal(t, "One", got.Title)
}

func TestArticleSingleBookmarkCalls(t *testing.T) {
	var (
		mu    sync.Mutex
		calls []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls = append(calls, r.Method+" "+r.URL.Path)
		mu.Unlock()
		if r.URL.Path == "/api/bookmarks/3/move" {
			var req models.MoveArticleRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, int64(-2), req.FolderID)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	articles := newTestAdapter(t, srv.URL).Articles()
	ctx := context.Background()

	require.NoError(t, articles.Move(ctx, 3, models.ArchiveFolderServiceID))
	require.NoError(t, articles.Like(ctx, 3))
	require.NoError(t, articles.Unlike(ctx, 3))
	require.NoError(t, articles.Delete(ctx, 3))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"POST /api/bookmarks/3/move",
		"POST /api/bookmarks/3/star",
		"POST /api/bookmarks/3/unstar",
		"DELETE /api/bookmarks/3",
	}, calls)
}

func TestArticleUpdateReadProgress(t *testing.T) {
	stamp := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.ReadProgressRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 0.5, req.Progress)
		assert.True(t, stamp.Equal(req.Timestamp))
		writeJSON(t, w, http.StatusOK, models.RemoteArticle{ID: 8, ReadProgress: 0.5, ReadProgressTimestamp: stamp, Hash: "new"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Articles().UpdateReadProgress(context.Background(), 8, 0.5, stamp)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Hash)
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusGone, ErrNotFound},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusBadGateway, ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL).Articles().Like(context.Background(), 1)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMapHTTPError_Messages(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   []error
	}{
		{"duplicate folder", http.StatusConflict, app.MsgDuplicateFolder, []error{ErrConflict, ErrDuplicateFolder}},
		{"wrong token", http.StatusUnauthorized, app.MsgWrongToken, []error{ErrUnauthorized, ErrWrongToken}},
		{"invalid progress", http.StatusBadRequest, app.MsgInvalidProgress, []error{ErrBadRequest, models.ErrInvalidReadProgress}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, tt.body, tt.status)
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL).Articles().Like(context.Background(), 1)
			for _, want := range tt.want {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).Articles().Like(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL(" localhost:8080/ ")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)

	_, err = normalizeBaseURL("")
	assert.Error(t, err)

	_, err = NewHTTPRemoteAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}
