package forms

import "net/url"

// CommentForm — комментарий к конкретной статье (статья берётся из пути).
type CommentForm struct {
	Author string `form:"author" json:"author" validate:"required,max=40"`
	Text   string `form:"text"   json:"text"   validate:"required,max=400"`
}

func BindComment(v url.Values) CommentForm {
	return CommentForm{
		Author: stringField(v, "author"),
		Text:   stringField(v, "text"),
	}
}

func (f CommentForm) Validate() error {
	return check(f).orNil()
}
