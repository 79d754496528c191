package forms

import (
	"net/url"
	"strings"

	"webblog/internal/models"
)

// ArticleForm: создание и редактирование статьи. Tags — сырая строка через запятую.
type ArticleForm struct {
	Title  string `form:"title"  json:"title"  validate:"required,max=200"`
	Text   string `form:"text"   json:"text"   validate:"required,max=3000"`
	Author string `form:"author" json:"author" validate:"required,max=40"`
	Tags   string `form:"tags"   json:"tags"   validate:"max=30"`
}

func BindArticle(v url.Values) ArticleForm {
	return ArticleForm{
		Title:  stringField(v, "title"),
		Text:   stringField(v, "text"),
		Author: stringField(v, "author"),
		Tags:   strings.TrimSpace(strings.Join(v["tags"], ",")),
	}
}

// InitialArticle заполняет форму редактирования данными статьи.
func InitialArticle(a *models.Article) ArticleForm {
	return ArticleForm{
		Title:  a.Title,
		Text:   a.Text,
		Author: a.Author,
		Tags:   strings.Join(a.TagNames(), ", "),
	}
}

func (f ArticleForm) Validate() error {
	return check(f).orNil()
}
