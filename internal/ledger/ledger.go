// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ledger turns local entity mutations into pending-change rows.
//
// [ChangeLedger] subscribes to the tracked entity store and writes every
// intent inside the transaction of the mutation that caused it, so an intent
// never outlives a rolled back change and a committed change never lacks its
// intent.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-read-later/internal/logger"
	"github.com/MKhiriev/go-read-later/internal/store"
	"github.com/MKhiriev/go-read-later/models"
)

type ChangeLedger struct {
	entities store.EntityStore
	pending  store.PendingChangeStore
}

var _ store.EntityObserver = (*ChangeLedger)(nil)

// NewChangeLedger returns a ledger writing through pending. entities is used
// to rewrite resurrected folders and must be the tracked root store.
func NewChangeLedger(entities store.EntityStore, pending store.PendingChangeStore) *ChangeLedger {
	return &ChangeLedger{
		entities: entities,
		pending:  pending,
	}
}

// Attach creates a ledger and subscribes it to entities.
func Attach(entities store.EntityStore, pending store.PendingChangeStore) *ChangeLedger {
	l := NewChangeLedger(entities, pending)
	entities.Subscribe(l)
	return l
}

// FolderAdded either resurrects a folder deleted locally but not yet on the
// service, or records a pending add.
func (l *ChangeLedger) FolderAdded(ctx context.Context, tx *sql.Tx, folder models.Folder) error {
	if folder.IsWellKnown() {
		return nil
	}
	log := logger.FromContext(ctx)
	pending := l.pending.WithTx(tx)

	deleted, err := pending.GetPendingFolderDeleteByTitle(ctx, folder.Title)
	switch {
	case err == nil:
		if err = pending.DeletePendingFolderDelete(ctx, deleted.ServiceID); err != nil {
			return err
		}

		// the new row keeps its local id and takes over the remote identity
		folder.ServiceID = models.Int64Ptr(deleted.ServiceID)
		folder.Title = deleted.Title
		folder.Position = deleted.Position
		folder.ShouldSync = deleted.ShouldSync
		if err = l.entities.Untracked().WithTx(tx).UpdateFolder(ctx, folder); err != nil {
			return fmt.Errorf("resurrect folder: %w", err)
		}

		log.Debug().
			Str("func", "ChangeLedger.FolderAdded").
			Int64("local_id", folder.LocalID).
			Int64("service_id", deleted.ServiceID).
			Msg("folder resurrected from pending delete")
		return nil

	case !errors.Is(err, store.ErrPendingChangeNotFound):
		return err
	}

	if err = pending.CreatePendingFolderAdd(ctx, models.PendingFolderAdd{
		FolderLocalID: folder.LocalID,
		Title:         folder.Title,
	}); err != nil {
		return err
	}

	log.Debug().
		Str("func", "ChangeLedger.FolderAdded").
		Int64("local_id", folder.LocalID).
		Str("title", folder.Title).
		Msg("pending folder add recorded")

	return nil
}

func (l *ChangeLedger) FolderWillBeDeleted(ctx context.Context, tx *sql.Tx, folder models.Folder) error {
	pending := l.pending.WithTx(tx)

	moves, err := pending.ListPendingArticleMovesToFolder(ctx, folder.LocalID)
	if err != nil {
		return err
	}
	if len(moves) > 0 {
		return &FolderHasPendingArticleMoveError{FolderLocalID: folder.LocalID, Moves: len(moves)}
	}

	// a folder the service never saw needs no delete
	if err = pending.DeletePendingFolderAdd(ctx, folder.LocalID); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "ChangeLedger.FolderWillBeDeleted").
		Int64("local_id", folder.LocalID).
		Msg("folder cleared for deletion")

	return nil
}

func (l *ChangeLedger) FolderDeleted(ctx context.Context, tx *sql.Tx, folder models.Folder) error {
	if folder.ServiceID == nil {
		return nil
	}

	if err := l.pending.WithTx(tx).CreatePendingFolderDelete(ctx, models.PendingFolderDelete{
		ServiceID:  *folder.ServiceID,
		Title:      folder.Title,
		Position:   folder.Position,
		ShouldSync: folder.ShouldSync,
	}); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "ChangeLedger.FolderDeleted").
		Int64("service_id", *folder.ServiceID).
		Str("title", folder.Title).
		Msg("pending folder delete recorded")

	return nil
}

// ArticleDeleted records the delete and drops any move or like change for
// the article.
func (l *ChangeLedger) ArticleDeleted(ctx context.Context, tx *sql.Tx, article models.Article) error {
	pending := l.pending.WithTx(tx)

	if err := pending.DeletePendingArticleMove(ctx, article.ID); err != nil {
		return err
	}
	if err := pending.DeletePendingArticleStateChange(ctx, article.ID); err != nil {
		return err
	}
	if err := pending.CreatePendingArticleDelete(ctx, models.PendingArticleDelete{ArticleID: article.ID}); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "ChangeLedger.ArticleDeleted").
		Int64("article_id", article.ID).
		Msg("pending article delete recorded")

	return nil
}

// ArticleLikeStatusChanged keeps at most one state change per article. A
// change that undoes the pending one removes it.
func (l *ChangeLedger) ArticleLikeStatusChanged(ctx context.Context, tx *sql.Tx, article models.Article) error {
	log := logger.FromContext(ctx)
	pending := l.pending.WithTx(tx)

	existing, err := pending.GetPendingArticleStateChange(ctx, article.ID)
	switch {
	case err == nil:
		if err = pending.DeletePendingArticleStateChange(ctx, article.ID); err != nil {
			return err
		}
		if existing.Liked != article.Liked {
			log.Debug().
				Str("func", "ChangeLedger.ArticleLikeStatusChanged").
				Int64("article_id", article.ID).
				Msg("opposite state change annihilated")
			return nil
		}
	case !errors.Is(err, store.ErrPendingChangeNotFound):
		return err
	}

	if err = pending.CreatePendingArticleStateChange(ctx, models.PendingArticleStateChange{
		ArticleID: article.ID,
		Liked:     article.Liked,
	}); err != nil {
		return err
	}

	log.Debug().
		Str("func", "ChangeLedger.ArticleLikeStatusChanged").
		Int64("article_id", article.ID).
		Bool("liked", article.Liked).
		Msg("pending state change recorded")

	return nil
}

func (l *ChangeLedger) ArticleMovedToFolder(ctx context.Context, tx *sql.Tx, article models.Article, destinationFolderLocalID int64) error {
	pending := l.pending.WithTx(tx)

	if err := pending.DeletePendingArticleMove(ctx, article.ID); err != nil {
		return err
	}
	if err := pending.CreatePendingArticleMove(ctx, models.PendingArticleMove{
		ArticleID:                article.ID,
		DestinationFolderLocalID: destinationFolderLocalID,
	}); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "ChangeLedger.ArticleMovedToFolder").
		Int64("article_id", article.ID).
		Int64("destination_folder_local_id", destinationFolderLocalID).
		Msg("pending article move recorded")

	return nil
}

func (l *ChangeLedger) ArticleAddRequested(ctx context.Context, tx *sql.Tx, url string, title *string) error {
	if err := l.pending.WithTx(tx).CreatePendingArticleAdd(ctx, models.PendingArticleAdd{
		URL:   url,
		Title: title,
	}); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "ChangeLedger.ArticleAddRequested").
		Str("url", url).
		Msg("pending article add recorded")

	return nil
}
