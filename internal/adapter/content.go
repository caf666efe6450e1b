package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"codeberg.org/readeck/go-readability/v2"
	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"

	"github.com/MKhiriev/go-read-later/internal/config"
	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/internal/store"
	"github.com/MKhiriev/go-read-later/internal/utils"
	"github.com/MKhiriev/go-read-later/models"
)

const maxDescriptionRunes = 280

type contentDownloader struct {
	client  *utils.HTTPClient
	storage store.ArticleContentStorage
	policy  *bluemonday.Policy
	logger  *logger.Logger
}

// NewContentDownloader returns a [ContentDownloader] that stores article
// bodies as Markdown in storage.
func NewContentDownloader(adapterCfg config.ClientAdapter, storage store.ArticleContentStorage, logger *logger.Logger) ContentDownloader {
	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetHeader("Accept", "text/html,application/xhtml+xml")

	return &contentDownloader{
		client:  client,
		storage: storage,
		policy:  bluemonday.UGCPolicy(),
		logger:  logger,
	}
}

func (d *contentDownloader) DownloadArticle(ctx context.Context, article models.Article) (models.LocalOnlyState, error) {
	log := logger.FromContext(ctx)

	pageURL, err := url.Parse(article.URL)
	if err != nil {
		return models.LocalOnlyState{}, fmt.Errorf("parse article url: %w", err)
	}

	resp, err := d.client.R().SetContext(ctx).Get(pageURL.String())
	if err != nil {
		return models.LocalOnlyState{}, fmt.Errorf("download article request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LocalOnlyState{}, err
	}

	parsed, err := readability.FromReader(bytes.NewReader(resp.Body()), pageURL)
	if err != nil {
		return models.LocalOnlyState{}, fmt.Errorf("%w: %w", ErrEmptyContent, err)
	}

	var rendered strings.Builder
	if err = parsed.RenderHTML(&rendered); err != nil {
		return models.LocalOnlyState{}, fmt.Errorf("render article html: %w", err)
	}

	clean := d.policy.Sanitize(rendered.String())
	markdown, err := htmltomarkdown.ConvertString(clean)
	if err != nil {
		return models.LocalOnlyState{}, fmt.Errorf("convert article to markdown: %w", err)
	}
	markdown = strings.TrimSpace(markdown)
	if markdown == "" {
		return models.LocalOnlyState{}, ErrEmptyContent
	}

	path, err := d.storage.SaveContent(ctx, article.ID, []byte(markdown+"\n"))
	if err != nil {
		return models.LocalOnlyState{}, err
	}

	log.Debug().
		Str("func", "contentDownloader.DownloadArticle").
		Int64("article_id", article.ID).
		Str("path", path).
		Msg("article content stored")

	return models.LocalOnlyState{
		ArticleID:            article.ID,
		AvailableLocally:     true,
		LocalPath:            path,
		ExtractedDescription: extractDescription(clean),
	}, nil
}

// extractDescription returns the first non-empty paragraph, shortened to
// maxDescriptionRunes.
func extractDescription(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	var description string
	doc.Find("p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		description = strings.Join(strings.Fields(s.Text()), " ")
		return description == ""
	})

	if utf8.RuneCountInString(description) <= maxDescriptionRunes {
		return description
	}

	runes := []rune(description)
	return strings.TrimSpace(string(runes[:maxDescriptionRunes])) + "…"
}
