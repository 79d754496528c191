package repository

import (
	"context"
	"fmt"

	"webblog/internal/models"
)

type CommentRepo interface {
	Create(ctx context.Context, c *models.Comment) (*models.Comment, error)
	CountByArticle(ctx context.Context, articleID int64) (int, error)
	ListByArticle(ctx context.Context, articleID int64, limit, offset int) ([]*models.Comment, error)
}

type commentRepo struct{ db PgxIface }

func NewCommentRepo(db PgxIface) CommentRepo { return &commentRepo{db: db} }

// Create добавляет комментарий; несуществующая статья даёт ErrNotFound.
func (r *commentRepo) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	const q = `
		INSERT INTO comments (article_id, author, text)
		VALUES ($1, $2, $3)
		RETURNING id, article_id, author, text, created_at, updated_at
	`
	var out models.Comment
	if err := r.db.QueryRow(ctx, q, c.ArticleID, c.Author, c.Text).Scan(
		&out.ID, &out.ArticleID, &out.Author, &out.Text, &out.CreatedAt, &out.UpdatedAt,
	); err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

func (r *commentRepo) CountByArticle(ctx context.Context, articleID int64) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM comments WHERE article_id = $1`, articleID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return n, nil
}

// ListByArticle: комментарии статьи, новые сверху.
func (r *commentRepo) ListByArticle(ctx context.Context, articleID int64, limit, offset int) ([]*models.Comment, error) {
	list := []*models.Comment{}
	if limit <= 0 {
		return list, nil
	}

	const q = `
		SELECT id, article_id, author, text, created_at, updated_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, q, articleID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.ArticleID, &c.Author, &c.Text, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
