package services

import (
	"context"
	"sort"
	"time"

	"webblog/internal/models"
	"webblog/internal/repository"
	"webblog/internal/search"
)

// Мок-хранилище в памяти: статьи, теги и комментарии.
type memStore struct {
	articles map[int64]*models.Article
	tags     map[string]int64
	comments map[int64][]*models.Comment
	nextID   int64
	creates  int
}

func newMemStore() *memStore {
	return &memStore{
		articles: map[int64]*models.Article{},
		tags:     map[string]int64{},
		comments: map[int64][]*models.Comment{},
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) tagList(names []string) []models.Tag {
	out := []models.Tag{}
	for _, n := range names {
		id, ok := m.tags[n]
		if !ok {
			id = m.id()
			m.tags[n] = id
		}
		out = append(out, models.Tag{ID: id, Name: n})
	}
	return out
}

// seed добавляет статью напрямую, минуя сервис.
func (m *memStore) seed(title, author string, tags ...string) *models.Article {
	a := &models.Article{ID: m.id(), Title: title, Text: "text", Author: author, Tags: m.tagList(tags)}
	m.articles[a.ID] = a
	return a
}

func (m *memStore) seedComments(articleID int64, n int) {
	for i := 0; i < n; i++ {
		m.comments[articleID] = append(m.comments[articleID], &models.Comment{
			ID: m.id(), ArticleID: articleID, Author: "reader", Text: "comment",
			CreatedAt: time.Now().Add(time.Duration(i) * time.Minute),
		})
	}
}

type mockArticleRepo struct{ s *memStore }

func (r *mockArticleRepo) Create(_ context.Context, a *models.Article, tags []string) (*models.Article, error) {
	r.s.creates++
	out := *a
	out.ID = r.s.id()
	out.Tags = r.s.tagList(tags)
	r.s.articles[out.ID] = &out
	return &out, nil
}

func (r *mockArticleRepo) GetByID(_ context.Context, id int64) (*models.Article, error) {
	a, ok := r.s.articles[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *mockArticleRepo) Update(_ context.Context, a *models.Article, tags []string) error {
	if _, ok := r.s.articles[a.ID]; !ok {
		return repository.ErrNotFound
	}
	a.Tags = r.s.tagList(tags)
	cp := *a
	r.s.articles[a.ID] = &cp
	return nil
}

func (r *mockArticleRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.s.articles[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.articles, id)
	delete(r.s.comments, id)
	return nil
}

func (r *mockArticleRepo) Count(ctx context.Context, f search.Filter) (int, error) {
	list, _ := r.Find(ctx, f)
	return len(list), nil
}

func (r *mockArticleRepo) FindPage(ctx context.Context, f search.Filter, limit, offset int) ([]*models.Article, error) {
	list, _ := r.Find(ctx, f)
	if offset > len(list) {
		offset = len(list)
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end], nil
}

// Find: новые (с большим ID) сверху.
func (r *mockArticleRepo) Find(_ context.Context, f search.Filter) ([]*models.Article, error) {
	out := []*models.Article{}
	for _, a := range r.s.articles {
		cp := *a
		for _, c := range r.s.comments[a.ID] {
			cp.Comments = append(cp.Comments, *c)
		}
		if f.Match(&cp) {
			cp.Comments = nil
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

type mockCommentRepo struct{ s *memStore }

func (r *mockCommentRepo) Create(_ context.Context, c *models.Comment) (*models.Comment, error) {
	if _, ok := r.s.articles[c.ArticleID]; !ok {
		return nil, repository.ErrNotFound
	}
	out := *c
	out.ID = r.s.id()
	out.CreatedAt = time.Now()
	r.s.comments[c.ArticleID] = append(r.s.comments[c.ArticleID], &out)
	return &out, nil
}

func (r *mockCommentRepo) CountByArticle(_ context.Context, articleID int64) (int, error) {
	return len(r.s.comments[articleID]), nil
}

func (r *mockCommentRepo) ListByArticle(_ context.Context, articleID int64, limit, offset int) ([]*models.Comment, error) {
	list := append([]*models.Comment{}, r.s.comments[articleID]...)
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	if offset > len(list) {
		offset = len(list)
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end], nil
}

type mockTagRepo struct{ s *memStore }

func (r *mockTagRepo) GetByID(_ context.Context, id int64) (*models.Tag, error) {
	for name, tid := range r.s.tags {
		if tid == id {
			return &models.Tag{ID: id, Name: name}, nil
		}
	}
	return nil, repository.ErrNotFound
}

func newTestServices() (*memStore, ArticleService, CommentService, SearchService) {
	s := newMemStore()
	articles := &mockArticleRepo{s: s}
	return s,
		NewArticleService(articles, &mockCommentRepo{s: s}, &mockTagRepo{s: s}),
		NewCommentService(&mockCommentRepo{s: s}),
		NewSearchService(articles)
}
