package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/models"
)

func (s *entityStore) GetLocalOnlyState(ctx context.Context, articleID int64) (models.LocalOnlyState, error) {
	if err := s.db.checkReady(); err != nil {
		return models.LocalOnlyState{}, err
	}

	state, err := scanLocalOnlyState(s.querier().QueryRowContext(ctx, getLocalOnlyState, articleID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalOnlyState{}, ErrLocalOnlyStateNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "entityStore.GetLocalOnlyState").
			Int64("article_id", articleID).
			Msg("failed to scan local-only state row")
		return models.LocalOnlyState{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return state, nil
}

// SetLocalOnlyState creates or replaces the state of an existing article.
func (s *entityStore) SetLocalOnlyState(ctx context.Context, state models.LocalOnlyState) error {
	if err := s.db.checkReady(); err != nil {
		return err
	}

	_, err := s.querier().ExecContext(ctx, upsertLocalOnlyState,
		state.ArticleID,
		state.AvailableLocally,
		state.LocalPath,
		state.ExtractedDescription,
		state.ArticleUnavailable,
		state.IncludeInMRU,
	)
	if err != nil {
		if s.db.errorClassificator.IsForeignKeyViolation(err) {
			return ErrArticleNotFound
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "entityStore.SetLocalOnlyState").
			Int64("article_id", state.ArticleID).
			Msg("failed to upsert local-only state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *entityStore) DeleteLocalOnlyState(ctx context.Context, articleID int64) error {
	if err := s.db.checkReady(); err != nil {
		return err
	}

	result, err := s.querier().ExecContext(ctx, deleteLocalOnlyState, articleID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrLocalOnlyStateNotFound)
}
