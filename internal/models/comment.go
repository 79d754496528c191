package models

import "time"

type Comment struct {
	ID        int64     `db:"id"         json:"id"`
	ArticleID int64     `db:"article_id" json:"articleId"`
	Author    string    `db:"author"     json:"author"`
	Text      string    `db:"text"       json:"text"`
	TextHTML  string    `db:"-"          json:"textHtml"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
