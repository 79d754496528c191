package services

import (
	"github.com/microcosm-cc/bluemonday"

	"webblog/internal/models"
)

// renderer заполняет TextHTML при выдаче. В БД и в поиске участвует исходный текст.
type renderer struct {
	policy *bluemonday.Policy
}

// newRenderer: UGC-политика для пользовательского текста статей и комментариев.
func newRenderer() renderer {
	p := bluemonday.UGCPolicy()
	p.AllowElements("img")
	p.AllowAttrs("src", "alt").OnElements("img")
	return renderer{policy: p}
}

func (r renderer) article(a *models.Article) {
	if a != nil {
		a.TextHTML = r.policy.Sanitize(a.Text)
	}
}

func (r renderer) articles(list []*models.Article) {
	for _, a := range list {
		r.article(a)
	}
}

func (r renderer) comment(c *models.Comment) {
	if c != nil {
		c.TextHTML = r.policy.Sanitize(c.Text)
	}
}

func (r renderer) comments(list []*models.Comment) {
	for _, c := range list {
		r.comment(c)
	}
}
