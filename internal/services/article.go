package services

import (
	"context"
	"errors"
	"net/url"

	"go.uber.org/zap"

	"webblog/internal/forms"
	"webblog/internal/logger"
	"webblog/internal/models"
	"webblog/internal/pagination"
	"webblog/internal/repository"
	"webblog/internal/search"
)

const (
	listPerPage     = 5
	listOrphans     = 1
	commentsPerPage = 3
	commentsOrphans = 0
)

// ListQuery: параметры главной страницы. TagID — первичный ключ тега.
type ListQuery struct {
	Form  forms.SimpleSearchForm
	TagID *int64
	Page  string
}

type ArticleList struct {
	Articles   []*models.Article      `json:"articles"`
	Pagination pagination.Meta        `json:"pagination"`
	Form       forms.SimpleSearchForm `json:"form"`
	FormErrors forms.Errors           `json:"formErrors,omitempty"`
	Tag        *models.Tag            `json:"tag,omitempty"`
	Query      string                 `json:"query,omitempty"`
}

type ArticleDetail struct {
	Article     *models.Article   `json:"article"`
	Comments    []*models.Comment `json:"comments"`
	Pagination  pagination.Meta   `json:"pagination"`
	CommentForm forms.CommentForm `json:"commentForm"`
}

type ArticleEdit struct {
	Article *models.Article   `json:"article"`
	Form    forms.ArticleForm `json:"form"`
}

type ArticleService interface {
	List(ctx context.Context, q ListQuery) (*ArticleList, error)
	Get(ctx context.Context, id int64, commentPage string) (*ArticleDetail, error)
	GetByID(ctx context.Context, id int64) (*models.Article, error)
	EditForm(ctx context.Context, id int64) (*ArticleEdit, error)
	Create(ctx context.Context, f forms.ArticleForm) (*models.Article, error)
	Update(ctx context.Context, id int64, f forms.ArticleForm) (*models.Article, error)
	Delete(ctx context.Context, id int64) error
}

type articleService struct {
	repo     repository.ArticleRepo
	comments repository.CommentRepo
	tags     repository.TagRepo
	render   renderer
}

func NewArticleService(repo repository.ArticleRepo, comments repository.CommentRepo, tags repository.TagRepo) ArticleService {
	return &articleService{repo: repo, comments: comments, tags: tags, render: newRenderer()}
}

// List отдаёт главную страницу. При валидной форме поиска применяются search и tag (оба через AND),
// при невалидной фильтры игнорируются, а ошибки формы возвращаются в ответе.
func (s *articleService) List(ctx context.Context, q ListQuery) (*ArticleList, error) {
	log := logger.WithCtx(ctx)

	out := &ArticleList{Form: q.Form}
	filter := search.All()

	if err := q.Form.Validate(); err != nil {
		var ferrs forms.Errors
		if !errors.As(err, &ferrs) {
			return nil, err
		}
		log.Warn("Форма поиска не прошла валидацию", zap.Error(err))
		out.FormErrors = ferrs
	} else {
		if q.Form.Search != "" {
			filter = search.Simple(q.Form.Search)
			out.Query = url.Values{"search": {q.Form.Search}}.Encode()
		}
		if q.TagID != nil {
			tag, err := s.tags.GetByID(ctx, *q.TagID)
			if err != nil {
				log.Warn("Тег для фильтра не найден (repo)", zap.Int64("tag_id", *q.TagID), zap.Error(err))
				return nil, err
			}
			out.Tag = tag
			filter = search.And(filter, search.Tagged(tag.Name))
		}
	}

	log.Debug("Получение списка статей", zap.Stringer("filter", filter), zap.String("page", q.Page))

	count, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error("Ошибка подсчёта статей (repo)", zap.Error(err))
		return nil, err
	}

	page, err := pagination.New(count, listPerPage, listOrphans).Parse(q.Page)
	if err != nil {
		log.Warn("Некорректная страница списка", zap.String("page", q.Page), zap.Error(err))
		return nil, err
	}

	list, err := s.repo.FindPage(ctx, filter, page.Limit, page.Offset)
	if err != nil {
		log.Error("Ошибка получения списка статей (repo)", zap.Error(err))
		return nil, err
	}

	s.render.articles(list)
	out.Articles = list
	out.Pagination = page.Meta()
	log.Debug("Список статей получен", zap.Int("count", len(list)), zap.Int("total", count))
	return out, nil
}

// Get: статья с тегами и страницей комментариев (новые сверху).
// Номер страницы разбирается нестрого.
func (s *articleService) Get(ctx context.Context, id int64, commentPage string) (*ArticleDetail, error) {
	log := logger.WithCtx(ctx)

	a, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.comments.CountByArticle(ctx, id)
	if err != nil {
		log.Error("Ошибка подсчёта комментариев (repo)", zap.Int64("article_id", id), zap.Error(err))
		return nil, err
	}
	page := pagination.New(count, commentsPerPage, commentsOrphans).GetPage(commentPage)

	list, err := s.comments.ListByArticle(ctx, id, page.Limit, page.Offset)
	if err != nil {
		log.Error("Ошибка получения комментариев (repo)", zap.Int64("article_id", id), zap.Error(err))
		return nil, err
	}

	s.render.comments(list)

	return &ArticleDetail{
		Article:     a,
		Comments:    list,
		Pagination:  page.Meta(),
		CommentForm: forms.CommentForm{},
	}, nil
}

func (s *articleService) GetByID(ctx context.Context, id int64) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Получение статьи по ID", zap.Int64("id", id))

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("Статья не найдена (repo)", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	s.render.article(a)
	return a, nil
}

func (s *articleService) EditForm(ctx context.Context, id int64) (*ArticleEdit, error) {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ArticleEdit{Article: a, Form: forms.InitialArticle(a)}, nil
}

func (s *articleService) Create(ctx context.Context, f forms.ArticleForm) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("Создание статьи", zap.String("title", f.Title), zap.String("author", f.Author))

	if err := f.Validate(); err != nil {
		log.Warn("Форма статьи не прошла валидацию", zap.Error(err))
		return nil, err
	}

	tags := ParseTags(f.Tags)
	created, err := s.repo.Create(ctx, fromForm(0, f), tags)
	if err != nil {
		log.Error("Ошибка создания статьи (repo)", zap.Error(err))
		return nil, err
	}

	s.render.article(created)
	log.Info("Статья создана", zap.Int64("id", created.ID), zap.Strings("tags", tags))
	return created, nil
}

// Update сохраняет поля и заменяет теги статьи набором из формы.
func (s *articleService) Update(ctx context.Context, id int64, f forms.ArticleForm) (*models.Article, error) {
	log := logger.WithCtx(ctx)
	log.Info("Обновление статьи", zap.Int64("id", id), zap.String("title", f.Title))

	if err := f.Validate(); err != nil {
		log.Warn("Форма статьи не прошла валидацию", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	a := fromForm(id, f)
	tags := ParseTags(f.Tags)
	if err := s.repo.Update(ctx, a, tags); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Warn("Статья для обновления не найдена (repo)", zap.Int64("id", id))
		} else {
			log.Error("Ошибка обновления статьи (repo)", zap.Int64("id", id), zap.Error(err))
		}
		return nil, err
	}

	s.render.article(a)
	log.Info("Статья обновлена", zap.Int64("id", id), zap.Strings("tags", tags))
	return a, nil
}

func (s *articleService) Delete(ctx context.Context, id int64) error {
	log := logger.WithCtx(ctx)
	log.Info("Удаление статьи", zap.Int64("id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Warn("Ошибка удаления статьи (repo)", zap.Int64("id", id), zap.Error(err))
		return err
	}

	log.Info("Статья удалена", zap.Int64("id", id))
	return nil
}

// fromForm: текст сохраняется как есть, экранирование только при выдаче.
func fromForm(id int64, f forms.ArticleForm) *models.Article {
	return &models.Article{
		ID:     id,
		Title:  f.Title,
		Text:   f.Text,
		Author: f.Author,
	}
}
