package store

import (
	sq "github.com/Masterminds/squirrel"
)

var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// articleFilter narrows buildListArticlesQuery. Zero value lists everything.
type articleFilter struct {
	folderLocalID     *int64
	liked             *bool
	orphaned          bool
	withoutLocalState bool
}

func buildListArticlesQuery(filter articleFilter) (string, []any, error) {
	query := queryBuilder.
		Select(articleColumns).
		From("articles a").
		LeftJoin("article_local_only_state s ON s.article_id = a.id")

	if filter.folderLocalID != nil {
		query = query.Where(sq.Eq{"a.folder_local_id": *filter.folderLocalID})
	}
	if filter.liked != nil {
		query = query.Where(sq.Eq{"a.liked": *filter.liked})
	}
	if filter.orphaned {
		query = query.Where(sq.And{
			sq.Eq{"a.folder_local_id": nil},
			sq.Eq{"a.liked": false},
		})
	}
	if filter.withoutLocalState {
		query = query.Where(sq.Eq{"s.article_id": nil})
	}

	return query.OrderBy("a.id").ToSql()
}

// buildListPendingArticleMovesQuery lists every pending move, or only those
// targeting destination when it is set.
func buildListPendingArticleMovesQuery(destination *int64) (string, []any, error) {
	query := queryBuilder.
		Select("article_id", "destination_folder_local_id").
		From("pending_article_moves")

	if destination != nil {
		query = query.Where(sq.Eq{"destination_folder_local_id": *destination})
	}

	return query.OrderBy("rowid").ToSql()
}
