package repository

import (
	"context"
	"fmt"

	"webblog/internal/models"
)

type TagRepo interface {
	GetByID(ctx context.Context, id int64) (*models.Tag, error)
}

type tagRepo struct{ db PgxIface }

func NewTagRepo(db PgxIface) TagRepo { return &tagRepo{db: db} }

func (r *tagRepo) GetByID(ctx context.Context, id int64) (*models.Tag, error) {
	var t models.Tag
	if err := r.db.QueryRow(ctx, `SELECT id, name FROM tags WHERE id = $1`, id).Scan(&t.ID, &t.Name); err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

// getOrCreateTag: поиск тега по имени с созданием при отсутствии.
// ON CONFLICT закрывает гонку двух одновременных созданий одного имени.
func getOrCreateTag(ctx context.Context, db querier, name string) (int64, error) {
	const q = `
		INSERT INTO tags (name) VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`
	var id int64
	if err := db.QueryRow(ctx, q, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("get or create tag %q: %w", name, err)
	}
	return id, nil
}
