package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-read-later/internal/config"
	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/internal/utils"
	"github.com/MKhiriev/go-read-later/models"
	"github.com/go-resty/resty/v2"
)

const (
	foldersPath          = "/api/folders"
	folderPath           = "/api/folders/{folderID}"
	folderBookmarksPath  = "/api/folders/{folderID}/bookmarks"
	bookmarksPath        = "/api/bookmarks"
	bookmarkPath         = "/api/bookmarks/{bookmarkID}"
	bookmarkMovePath     = "/api/bookmarks/{bookmarkID}/move"
	bookmarkStarPath     = "/api/bookmarks/{bookmarkID}/star"
	bookmarkUnstarPath   = "/api/bookmarks/{bookmarkID}/unstar"
	bookmarkProgressPath = "/api/bookmarks/{bookmarkID}/progress"
)

type httpRemoteAdapter struct {
	client *utils.HTTPClient
	token  string
	logger *logger.Logger
}

// NewHTTPRemoteAdapter constructs the HTTP/REST implementation of
// [RemoteService]. The base URL comes from adapterCfg.HTTPAddress; a missing
// scheme defaults to http. A non-empty adapterCfg.Token is sent as a bearer
// token with every request.
func NewHTTPRemoteAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (RemoteService, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			logger.Debug().
				Str("func", "httpRemoteAdapter").
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Dur("took", resp.Time()).
				Msg("remote call finished")
			return nil
		})

	return &httpRemoteAdapter{
		client: client,
		token:  strings.TrimSpace(adapterCfg.Token),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRemoteAdapter) Folders() FolderClient {
	return (*httpFolderClient)(h)
}

func (h *httpRemoteAdapter) Articles() ArticleClient {
	return (*httpArticleClient)(h)
}

func (h *httpRemoteAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}

// ── folders ───────────────────────────────────────────────────────────────────

type httpFolderClient httpRemoteAdapter

func (f *httpFolderClient) Add(ctx context.Context, title string) (models.RemoteFolder, error) {
	var folder models.RemoteFolder

	resp, err := (*httpRemoteAdapter)(f).request(ctx).
		SetBody(models.AddFolderRequest{Title: title}).
		SetResult(&folder).
		Post(foldersPath)
	if err != nil {
		return models.RemoteFolder{}, fmt.Errorf("add folder request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrConflict) && !errors.Is(err, ErrDuplicateFolder) {
			return models.RemoteFolder{}, fmt.Errorf("%w: %w", ErrDuplicateFolder, err)
		}
		return models.RemoteFolder{}, err
	}

	return folder, nil
}

func (f *httpFolderClient) Delete(ctx context.Context, serviceID int64) error {
	resp, err := (*httpRemoteAdapter)(f).request(ctx).
		SetPathParam("folderID", strconv.FormatInt(serviceID, 10)).
		Delete(folderPath)
	if err != nil {
		return fmt.Errorf("delete folder request: %w", err)
	}

	return mapHTTPError(resp)
}

func (f *httpFolderClient) List(ctx context.Context) ([]models.RemoteFolder, error) {
	var folders []models.RemoteFolder

	resp, err := (*httpRemoteAdapter)(f).request(ctx).
		SetResult(&folders).
		Get(foldersPath)
	if err != nil {
		return nil, fmt.Errorf("list folders request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return folders, nil
}

// ── bookmarks ─────────────────────────────────────────────────────────────────

type httpArticleClient httpRemoteAdapter

func (a *httpArticleClient) bookmark(ctx context.Context, id int64) *resty.Request {
	return (*httpRemoteAdapter)(a).request(ctx).
		SetPathParam("bookmarkID", strconv.FormatInt(id, 10))
}

func (a *httpArticleClient) Add(ctx context.Context, url string, title *string) (models.RemoteArticle, error) {
	var article models.RemoteArticle

	resp, err := (*httpRemoteAdapter)(a).request(ctx).
		SetBody(models.AddArticleRequest{URL: url, Title: title}).
		SetResult(&article).
		Post(bookmarksPath)
	if err != nil {
		return models.RemoteArticle{}, fmt.Errorf("add bookmark request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteArticle{}, err
	}

	return article, nil
}

func (a *httpArticleClient) Delete(ctx context.Context, id int64) error {
	resp, err := a.bookmark(ctx, id).Delete(bookmarkPath)
	if err != nil {
		return fmt.Errorf("delete bookmark request: %w", err)
	}

	return mapHTTPError(resp)
}

func (a *httpArticleClient) Move(ctx context.Context, id int64, destinationFolderServiceID int64) error {
	resp, err := a.bookmark(ctx, id).
		SetBody(models.MoveArticleRequest{FolderID: destinationFolderServiceID}).
		Post(bookmarkMovePath)
	if err != nil {
		return fmt.Errorf("move bookmark request: %w", err)
	}

	return mapHTTPError(resp)
}

func (a *httpArticleClient) Like(ctx context.Context, id int64) error {
	resp, err := a.bookmark(ctx, id).Post(bookmarkStarPath)
	if err != nil {
		return fmt.Errorf("star bookmark request: %w", err)
	}

	return mapHTTPError(resp)
}

func (a *httpArticleClient) Unlike(ctx context.Context, id int64) error {
	resp, err := a.bookmark(ctx, id).Post(bookmarkUnstarPath)
	if err != nil {
		return fmt.Errorf("unstar bookmark request: %w", err)
	}

	return mapHTTPError(resp)
}

func (a *httpArticleClient) UpdateReadProgress(ctx context.Context, id int64, progress float64, timestamp time.Time) (models.RemoteArticle, error) {
	var article models.RemoteArticle

	resp, err := a.bookmark(ctx, id).
		SetBody(models.ReadProgressRequest{Progress: progress, Timestamp: timestamp.UTC()}).
		SetResult(&article).
		Post(bookmarkProgressPath)
	if err != nil {
		return models.RemoteArticle{}, fmt.Errorf("update read progress request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RemoteArticle{}, err
	}

	return article, nil
}

func (a *httpArticleClient) List(ctx context.Context, folderServiceID int64, limit int) ([]models.RemoteArticle, error) {
	var articles []models.RemoteArticle

	req := (*httpRemoteAdapter)(a).request(ctx).
		SetPathParam("folderID", strconv.FormatInt(folderServiceID, 10)).
		SetResult(&articles)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get(folderBookmarksPath)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return articles, nil
}
