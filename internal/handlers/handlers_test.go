package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webblog/internal/forms"
	"webblog/internal/models"
	"webblog/internal/pagination"
	"webblog/internal/repository"
	"webblog/internal/services"
)

type mockArticleService struct {
	list     func(services.ListQuery) (*services.ArticleList, error)
	get      func(id int64, page string) (*services.ArticleDetail, error)
	getByID  func(id int64) (*models.Article, error)
	editForm func(id int64) (*services.ArticleEdit, error)
	create   func(forms.ArticleForm) (*models.Article, error)
	update   func(id int64, f forms.ArticleForm) (*models.Article, error)
	delete   func(id int64) error
}

func (m *mockArticleService) List(_ context.Context, q services.ListQuery) (*services.ArticleList, error) {
	return m.list(q)
}
func (m *mockArticleService) Get(_ context.Context, id int64, page string) (*services.ArticleDetail, error) {
	return m.get(id, page)
}
func (m *mockArticleService) GetByID(_ context.Context, id int64) (*models.Article, error) {
	return m.getByID(id)
}
func (m *mockArticleService) EditForm(_ context.Context, id int64) (*services.ArticleEdit, error) {
	return m.editForm(id)
}
func (m *mockArticleService) Create(_ context.Context, f forms.ArticleForm) (*models.Article, error) {
	return m.create(f)
}
func (m *mockArticleService) Update(_ context.Context, id int64, f forms.ArticleForm) (*models.Article, error) {
	return m.update(id, f)
}
func (m *mockArticleService) Delete(_ context.Context, id int64) error {
	return m.delete(id)
}

type mockCommentService struct {
	create func(articleID int64, f forms.CommentForm) (*models.Comment, error)
}

func (m *mockCommentService) Create(_ context.Context, articleID int64, f forms.CommentForm) (*models.Comment, error) {
	return m.create(articleID, f)
}

type mockSearchService struct {
	search func(forms.FullSearchForm) (*services.SearchResult, error)
}

func (m *mockSearchService) Initial() *services.SearchResult {
	return &services.SearchResult{Form: forms.NewFullSearchForm()}
}
func (m *mockSearchService) Search(_ context.Context, f forms.FullSearchForm) (*services.SearchResult, error) {
	return m.search(f)
}

type envelope struct {
	Data   json.RawMessage    `json:"data"`
	Error  string             `json:"error"`
	Errors []forms.FieldError `json:"errors"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&e))
	return e
}

func withID(r *http.Request, id string) *http.Request {
	return mux.SetURLVars(r, map[string]string{"id": id})
}

func TestArticleHandler_List_PassesQuery(t *testing.T) {
	var got services.ListQuery
	h := NewArticleHandler(&mockArticleService{list: func(q services.ListQuery) (*services.ArticleList, error) {
		got = q
		return &services.ArticleList{Articles: []*models.Article{}}, nil
	}})

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/articles?search=go&tag=3&page=last", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "go", got.Form.Search)
	require.NotNil(t, got.TagID)
	assert.Equal(t, int64(3), *got.TagID)
	assert.Equal(t, "last", got.Page)
}

func TestArticleHandler_List_BadTag(t *testing.T) {
	h := NewArticleHandler(&mockArticleService{})

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/articles?tag=abc", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestArticleHandler_List_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"страница вне диапазона", pagination.ErrEmptyPage, http.StatusNotFound},
		{"страница не число", pagination.ErrPageNotAnInteger, http.StatusNotFound},
		{"неизвестный тег", repository.ErrNotFound, http.StatusNotFound},
		{"ошибка БД", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewArticleHandler(&mockArticleService{list: func(services.ListQuery) (*services.ArticleList, error) {
				return nil, tt.err
			}})
			rec := httptest.NewRecorder()
			h.List(rec, httptest.NewRequest(http.MethodGet, "/api/articles", nil))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestArticleHandler_Create_JSON(t *testing.T) {
	var got forms.ArticleForm
	h := NewArticleHandler(&mockArticleService{create: func(f forms.ArticleForm) (*models.Article, error) {
		got = f
		return &models.Article{ID: 1, Title: f.Title, Tags: []models.Tag{}}, nil
	}})

	body := `{"title":" Hello ","text":"Body","author":"ann","tags":"a, b"}`
	req := httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Hello", got.Title)
	assert.Equal(t, "a, b", got.Tags)

	var a models.Article
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &a))
	assert.Equal(t, int64(1), a.ID)
}

func TestArticleHandler_Create_FormEncoded(t *testing.T) {
	var got forms.ArticleForm
	h := NewArticleHandler(&mockArticleService{create: func(f forms.ArticleForm) (*models.Article, error) {
		got = f
		return &models.Article{ID: 2}, nil
	}})

	body := url.Values{"title": {"T"}, "text": {"B"}, "author": {"A"}, "tags": {"x"}}.Encode()
	req := httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, forms.ArticleForm{Title: "T", Text: "B", Author: "A", Tags: "x"}, got)
}

func TestArticleHandler_Create_ValidationErrors(t *testing.T) {
	h := NewArticleHandler(&mockArticleService{create: func(f forms.ArticleForm) (*models.Article, error) {
		return nil, forms.Errors{{Field: "title", Code: "required", Message: "This field is required."}}
	}})

	req := httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	e := decode(t, rec)
	require.Len(t, e.Errors, 1)
	assert.Equal(t, "title", e.Errors[0].Field)
	assert.Equal(t, "required", e.Errors[0].Code)
}

func TestArticleHandler_Create_BadJSON(t *testing.T) {
	h := NewArticleHandler(&mockArticleService{})

	req := httptest.NewRequest(http.MethodPost, "/api/articles", strings.NewReader(`{"title":`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestArticleHandler_Get(t *testing.T) {
	h := NewArticleHandler(&mockArticleService{get: func(id int64, page string) (*services.ArticleDetail, error) {
		if id != 5 {
			return nil, repository.ErrNotFound
		}
		assert.Equal(t, "2", page)
		return &services.ArticleDetail{Article: &models.Article{ID: 5}}, nil
	}})

	rec := httptest.NewRecorder()
	h.Get(rec, withID(httptest.NewRequest(http.MethodGet, "/api/articles/5?page=2", nil), "5"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Get(rec, withID(httptest.NewRequest(http.MethodGet, "/api/articles/6", nil), "6"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestArticleHandler_Update(t *testing.T) {
	var gotID int64
	h := NewArticleHandler(&mockArticleService{update: func(id int64, f forms.ArticleForm) (*models.Article, error) {
		gotID = id
		return &models.Article{ID: id, Title: f.Title}, nil
	}})

	req := httptest.NewRequest(http.MethodPut, "/api/articles/9", strings.NewReader(`{"title":"T","text":"B","author":"A"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Update(rec, withID(req, "9"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(9), gotID)
}

func TestArticleHandler_EditForm(t *testing.T) {
	h := NewArticleHandler(&mockArticleService{editForm: func(id int64) (*services.ArticleEdit, error) {
		return &services.ArticleEdit{Article: &models.Article{ID: id}, Form: forms.ArticleForm{Tags: "go, sql"}}, nil
	}})

	rec := httptest.NewRecorder()
	h.EditForm(rec, withID(httptest.NewRequest(http.MethodGet, "/api/articles/1/edit", nil), "1"))

	require.Equal(t, http.StatusOK, rec.Code)
	var edit struct {
		Form forms.ArticleForm `json:"form"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &edit))
	assert.Equal(t, "go, sql", edit.Form.Tags)
}

func TestArticleHandler_Delete(t *testing.T) {
	h := NewArticleHandler(&mockArticleService{
		getByID: func(id int64) (*models.Article, error) { return &models.Article{ID: id}, nil },
		delete: func(id int64) error {
			if id == 1 {
				return nil
			}
			return repository.ErrNotFound
		},
	})

	rec := httptest.NewRecorder()
	h.DeleteConfirm(rec, withID(httptest.NewRequest(http.MethodGet, "/api/articles/1/delete", nil), "1"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Delete(rec, withID(httptest.NewRequest(http.MethodDelete, "/api/articles/1", nil), "1"))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = httptest.NewRecorder()
	h.Delete(rec, withID(httptest.NewRequest(http.MethodDelete, "/api/articles/2", nil), "2"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCommentHandler_Create(t *testing.T) {
	h := NewCommentHandler(&mockCommentService{create: func(articleID int64, f forms.CommentForm) (*models.Comment, error) {
		if articleID != 1 {
			return nil, repository.ErrNotFound
		}
		return &models.Comment{ID: 10, ArticleID: articleID, Author: f.Author, Text: f.Text}, nil
	}})

	newReq := func(id string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/articles/"+id+"/comments", strings.NewReader(`{"author":"eve","text":"hi"}`))
		req.Header.Set("Content-Type", "application/json")
		return withID(req, id)
	}

	rec := httptest.NewRecorder()
	h.Create(rec, newReq("1"))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	h.Create(rec, newReq("2"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchHandler_InitialForm(t *testing.T) {
	h := NewSearchHandler(&mockSearchService{search: func(forms.FullSearchForm) (*services.SearchResult, error) {
		t.Fatal("поиск не должен выполняться без параметров")
		return nil, nil
	}})

	rec := httptest.NewRecorder()
	h.Search(rec, httptest.NewRequest(http.MethodGet, "/api/search", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var res struct {
		Form     forms.FullSearchForm `json:"form"`
		Articles []*models.Article    `json:"articles"`
	}
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &res))
	assert.True(t, res.Form.InTitle)
	assert.Nil(t, res.Articles)
}

func TestSearchHandler_Search(t *testing.T) {
	var got forms.FullSearchForm
	h := NewSearchHandler(&mockSearchService{search: func(f forms.FullSearchForm) (*services.SearchResult, error) {
		got = f
		return &services.SearchResult{Form: f, Articles: []*models.Article{}}, nil
	}})

	rec := httptest.NewRecorder()
	h.Search(rec, httptest.NewRequest(http.MethodGet, "/api/search?text=foo&in_text=false", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "foo", got.Text)
	assert.True(t, got.InTitle)
	assert.False(t, got.InText)
}

func TestSearchHandler_Invalid(t *testing.T) {
	h := NewSearchHandler(&mockSearchService{search: func(f forms.FullSearchForm) (*services.SearchResult, error) {
		return nil, f.Validate()
	}})

	req := httptest.NewRequest(http.MethodPost, "/api/search", strings.NewReader(`{"text":"x","in_title":false,"in_text":false,"in_tags":false}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Search(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	e := decode(t, rec)
	require.NotEmpty(t, e.Errors)
	assert.Equal(t, forms.CodeTextCriteriaEmpty, e.Errors[0].Code)
}

type mockTagService struct{}

func (mockTagService) GetByID(_ context.Context, id int64) (*models.Tag, error) {
	if id == 1 {
		return &models.Tag{ID: 1, Name: "go"}, nil
	}
	return nil, repository.ErrNotFound
}

func TestTagHandler_Get(t *testing.T) {
	h := NewTagHandler(mockTagService{})

	rec := httptest.NewRecorder()
	h.Get(rec, withID(httptest.NewRequest(http.MethodGet, "/api/tags/1", nil), "1"))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.Get(rec, withID(httptest.NewRequest(http.MethodGet, "/api/tags/2", nil), "2"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
