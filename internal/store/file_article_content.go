package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

const articleContentExt = ".md"

var ErrContentNotFound = errors.New("article content was not found")

// ArticleContentStorage keeps downloaded article bodies on disk, one file
// per article, outside the relational database.
type ArticleContentStorage interface {
	// SaveContent writes content for articleID and returns the file path.
	SaveContent(ctx context.Context, articleID int64, content []byte) (string, error)
	LoadContent(ctx context.Context, articleID int64) ([]byte, error)
	// DeleteContent removes the file. A missing file is not an error.
	DeleteContent(ctx context.Context, articleID int64) error
}

type articleContentFileStorage struct {
	dir string
}

func NewArticleContentFileStorage(dir string) ArticleContentStorage {
	return &articleContentFileStorage{dir: dir}
}

func (s *articleContentFileStorage) path(articleID int64) string {
	return filepath.Join(s.dir, strconv.FormatInt(articleID, 10)+articleContentExt)
}

func (s *articleContentFileStorage) SaveContent(ctx context.Context, articleID int64, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create content dir: %w", err)
	}

	target := s.path(articleID)
	tmp, err := os.CreateTemp(s.dir, "download-*")
	if err != nil {
		return "", fmt.Errorf("create temp content file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write content file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("close content file: %w", err)
	}

	if err = os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("move content file into place: %w", err)
	}

	return target, nil
}

func (s *articleContentFileStorage) LoadContent(ctx context.Context, articleID int64) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path(articleID))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrContentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}

	return data, nil
}

func (s *articleContentFileStorage) DeleteContent(ctx context.Context, articleID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Remove(s.path(articleID))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete content file: %w", err)
	}

	return nil
}
