package store

import (
	"database/sql"

	"github.com/MKhiriev/go-read-later/models"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFolder(row rowScanner) (models.Folder, error) {
	var (
		folder    models.Folder
		serviceID sql.NullInt64
	)

	err := row.Scan(
		&folder.LocalID,
		&serviceID,
		&folder.Title,
		&folder.Position,
		&folder.ShouldSync,
	)
	if err != nil {
		return models.Folder{}, err
	}
	folder.ServiceID = int64PtrFromNull(serviceID)

	return folder, nil
}

func scanArticle(row rowScanner) (models.Article, error) {
	var (
		article              models.Article
		folderLocalID        sql.NullInt64
		stateArticleID       sql.NullInt64
		availableLocally     sql.NullBool
		localPath            sql.NullString
		extractedDescription sql.NullString
		articleUnavailable   sql.NullBool
		includeInMRU         sql.NullBool
	)

	err := row.Scan(
		&article.ID,
		&article.URL,
		&article.Title,
		&article.Description,
		&article.ReadProgress,
		&article.ReadProgressTimestamp,
		&article.Hash,
		&article.Liked,
		&folderLocalID,
		&stateArticleID,
		&availableLocally,
		&localPath,
		&extractedDescription,
		&articleUnavailable,
		&includeInMRU,
	)
	if err != nil {
		return models.Article{}, err
	}

	article.FolderLocalID = int64PtrFromNull(folderLocalID)
	if stateArticleID.Valid {
		article.LocalOnly = &models.LocalOnlyState{
			ArticleID:            stateArticleID.Int64,
			AvailableLocally:     availableLocally.Bool,
			LocalPath:            localPath.String,
			ExtractedDescription: extractedDescription.String,
			ArticleUnavailable:   articleUnavailable.Bool,
			IncludeInMRU:         includeInMRU.Bool,
		}
	}

	return article, nil
}

func scanLocalOnlyState(row rowScanner) (models.LocalOnlyState, error) {
	var state models.LocalOnlyState
	err := row.Scan(
		&state.ArticleID,
		&state.AvailableLocally,
		&state.LocalPath,
		&state.ExtractedDescription,
		&state.ArticleUnavailable,
		&state.IncludeInMRU,
	)
	return state, err
}

func int64PtrFromNull(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return models.Int64Ptr(v.Int64)
}

func nullableInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullableString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func stringPtrFromNull(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return models.StringPtr(v.String)
}
