package models

import "time"

type Article struct {
	ID        int64     `db:"id"         json:"id"`
	Title     string    `db:"title"      json:"title"`
	Text      string    `db:"text"       json:"text"`
	TextHTML  string    `db:"-"          json:"textHtml"`
	Author    string    `db:"author"     json:"author"`
	Tags      []Tag     `db:"-"          json:"tags"`
	// Comments нужны только для Filter.Match в памяти; в ответ не попадают,
	// комментарии статьи отдаются отдельно в ArticleDetail.
	Comments  []Comment `db:"-"          json:"-"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// TagNames — имена тегов в порядке хранения.
func (a *Article) TagNames() []string {
	out := make([]string, 0, len(a.Tags))
	for _, t := range a.Tags {
		out = append(out, t.Name)
	}
	return out
}
