package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"webblog/internal/logger"
	"webblog/internal/models"
	"webblog/internal/repository"
)

// ParseTags разбирает строку тегов: разделитель запятая, пробелы по краям
// обрезаются, пустые пропускаются, повторы (с учётом регистра) схлопываются.
// Порядок первого появления сохраняется.
func ParseTags(raw string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

type TagService interface {
	GetByID(ctx context.Context, id int64) (*models.Tag, error)
}

type tagService struct {
	repo repository.TagRepo
}

func NewTagService(repo repository.TagRepo) TagService {
	return &tagService{repo: repo}
}

func (s *tagService) GetByID(ctx context.Context, id int64) (*models.Tag, error) {
	log := logger.WithCtx(ctx)

	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Тег не найден (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return t, nil
}
