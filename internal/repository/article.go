package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"webblog/internal/models"
	"webblog/internal/search"
)

type ArticleRepo interface {
	Create(ctx context.Context, a *models.Article, tags []string) (*models.Article, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	Update(ctx context.Context, a *models.Article, tags []string) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context, f search.Filter) (int, error)
	FindPage(ctx context.Context, f search.Filter, limit, offset int) ([]*models.Article, error)
	Find(ctx context.Context, f search.Filter) ([]*models.Article, error)
}

type articleRepo struct{ db PgxIface }

func NewArticleRepo(db PgxIface) ArticleRepo { return &articleRepo{db: db} }

const articleColumns = `a.id, a.title, a.text, a.author, a.created_at, a.updated_at`

func (r *articleRepo) Create(ctx context.Context, a *models.Article, tags []string) (*models.Article, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	const q = `
		INSERT INTO articles (title, text, author)
		VALUES ($1, $2, $3)
		RETURNING id, title, text, author, created_at, updated_at
	`
	var out models.Article
	if err := tx.QueryRow(ctx, q, a.Title, a.Text, a.Author).Scan(
		&out.ID, &out.Title, &out.Text, &out.Author, &out.CreatedAt, &out.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("insert article: %w", err)
	}

	if out.Tags, err = attachTags(ctx, tx, out.ID, tags); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return &out, nil
}

func (r *articleRepo) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	q := `SELECT ` + articleColumns + ` FROM articles a WHERE a.id = $1`

	var a models.Article
	if err := r.db.QueryRow(ctx, q, id).Scan(
		&a.ID, &a.Title, &a.Text, &a.Author, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, notFound(err)
	}

	tags, err := loadTags(ctx, r.db, []int64{id})
	if err != nil {
		return nil, err
	}
	a.Tags = tagsOf(tags, id)
	return &a, nil
}

// Update сохраняет поля статьи и заменяет набор тегов целиком.
func (r *articleRepo) Update(ctx context.Context, a *models.Article, tags []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	const q = `
		UPDATE articles
		SET title = $1, text = $2, author = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING created_at, updated_at
	`
	if err := tx.QueryRow(ctx, q, a.Title, a.Text, a.Author, a.ID).Scan(&a.CreatedAt, &a.UpdatedAt); err != nil {
		return notFound(err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM article_tags WHERE article_id = $1`, a.ID); err != nil {
		return fmt.Errorf("clear article tags: %w", err)
	}
	if a.Tags, err = attachTags(ctx, tx, a.ID, tags); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// Delete удаляет статью; комментарии и связи с тегами удаляются каскадно.
func (r *articleRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *articleRepo) Count(ctx context.Context, f search.Filter) (int, error) {
	var b sqlBuilder
	where, err := b.where(f)
	if err != nil {
		return 0, err
	}
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM articles a WHERE `+where, b.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return n, nil
}

// FindPage: статьи по фильтру, новые сверху, окно limit/offset.
func (r *articleRepo) FindPage(ctx context.Context, f search.Filter, limit, offset int) ([]*models.Article, error) {
	if limit <= 0 {
		return []*models.Article{}, nil
	}
	var b sqlBuilder
	where, err := b.where(f)
	if err != nil {
		return nil, err
	}
	q := `SELECT ` + articleColumns + ` FROM articles a WHERE ` + where +
		` ORDER BY a.created_at DESC, a.id DESC LIMIT ` + b.arg(limit) + ` OFFSET ` + b.arg(offset)
	return r.list(ctx, q, b.args)
}

// Find: все статьи по фильтру, без пагинации.
func (r *articleRepo) Find(ctx context.Context, f search.Filter) ([]*models.Article, error) {
	var b sqlBuilder
	where, err := b.where(f)
	if err != nil {
		return nil, err
	}
	q := `SELECT ` + articleColumns + ` FROM articles a WHERE ` + where + ` ORDER BY a.created_at DESC, a.id DESC`
	return r.list(ctx, q, b.args)
}

func (r *articleRepo) list(ctx context.Context, q string, args []any) ([]*models.Article, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	list := []*models.Article{}
	ids := []int64{}
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Text, &a.Author, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, &a)
		ids = append(ids, a.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	tags, err := loadTags(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for _, a := range list {
		a.Tags = tagsOf(tags, a.ID)
	}
	return list, nil
}

// attachTags находит или создаёт теги по имени и связывает их со статьёй.
func attachTags(ctx context.Context, tx pgx.Tx, articleID int64, names []string) ([]models.Tag, error) {
	out := make([]models.Tag, 0, len(names))
	for _, name := range names {
		id, err := getOrCreateTag(ctx, tx, name)
		if err != nil {
			return nil, err
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO article_tags (article_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			articleID, id,
		); err != nil {
			return nil, fmt.Errorf("link tag %q: %w", name, err)
		}
		out = append(out, models.Tag{ID: id, Name: name})
	}
	return out, nil
}

func tagsOf(m map[int64][]models.Tag, id int64) []models.Tag {
	if t, ok := m[id]; ok {
		return t
	}
	return []models.Tag{}
}

func loadTags(ctx context.Context, db querier, articleIDs []int64) (map[int64][]models.Tag, error) {
	const q = `
		SELECT at.article_id, t.id, t.name
		FROM article_tags at
		JOIN tags t ON t.id = at.tag_id
		WHERE at.article_id = ANY($1)
		ORDER BY t.name
	`
	rows, err := db.Query(ctx, q, articleIDs)
	if err != nil {
		return nil, fmt.Errorf("query article tags: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]models.Tag, len(articleIDs))
	for rows.Next() {
		var articleID int64
		var t models.Tag
		if err := rows.Scan(&articleID, &t.ID, &t.Name); err != nil {
			return nil, err
		}
		out[articleID] = append(out[articleID], t)
	}
	return out, rows.Err()
}
