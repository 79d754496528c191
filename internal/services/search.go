package services

import (
	"context"

	"go.uber.org/zap"

	"webblog/internal/forms"
	"webblog/internal/logger"
	"webblog/internal/models"
	"webblog/internal/repository"
	"webblog/internal/search"
)

// SearchResult: форма расширенного поиска и найденные статьи.
// Articles == nil, если поиск ещё не выполнялся.
type SearchResult struct {
	Form     forms.FullSearchForm `json:"form"`
	Articles []*models.Article    `json:"articles"`
}

type SearchService interface {
	Initial() *SearchResult
	Search(ctx context.Context, f forms.FullSearchForm) (*SearchResult, error)
}

type searchService struct {
	repo   repository.ArticleRepo
	render renderer
}

func NewSearchService(repo repository.ArticleRepo) SearchService {
	return &searchService{repo: repo, render: newRenderer()}
}

func (s *searchService) Initial() *SearchResult {
	return &SearchResult{Form: forms.NewFullSearchForm()}
}

// Search: расширенный поиск без пагинации, каждая статья не больше одного раза.
func (s *searchService) Search(ctx context.Context, f forms.FullSearchForm) (*SearchResult, error) {
	log := logger.WithCtx(ctx)

	if err := f.Validate(); err != nil {
		log.Warn("Форма поиска не прошла валидацию", zap.Error(err))
		return nil, err
	}

	filter := search.Full(f)
	log.Debug("Расширенный поиск", zap.Stringer("filter", filter))

	list, err := s.repo.Find(ctx, filter)
	if err != nil {
		log.Error("Ошибка поиска статей (repo)", zap.Error(err))
		return nil, err
	}

	s.render.articles(list)
	log.Debug("Поиск выполнен", zap.Int("count", len(list)))
	return &SearchResult{Form: f, Articles: list}, nil
}
