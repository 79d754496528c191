package forms

import "net/url"

// Коды ошибок расширенного поиска.
const (
	CodeTextCriteriaEmpty       = "text_search_criteria_empty"
	CodeAuthorCriteriaEmpty     = "author_search_criteria_empty"
	CodeAuthorTextCriteriaEmpty = "author_text_search_criteria_empty"
)

// SimpleSearchForm: строка поиска на главной.
type SimpleSearchForm struct {
	Search string `form:"search" json:"search" validate:"max=100"`
}

func BindSimpleSearch(v url.Values) SimpleSearchForm {
	return SimpleSearchForm{Search: stringField(v, "search")}
}

func (f SimpleSearchForm) Validate() error {
	return check(f).orNil()
}

// FullSearchForm: расширенный поиск по тексту и/или автору с областями поиска.
type FullSearchForm struct {
	Text          string `form:"text"            json:"text"            validate:"max=100"`
	InTitle       bool   `form:"in_title"        json:"in_title"`
	InText        bool   `form:"in_text"         json:"in_text"`
	InTags        bool   `form:"in_tags"         json:"in_tags"`
	InCommentText bool   `form:"in_comment_text" json:"in_comment_text"`

	Author        string `form:"author"         json:"author"         validate:"max=100"`
	ArticleAuthor bool   `form:"article_author" json:"article_author"`
	CommentAuthor bool   `form:"comment_author" json:"comment_author"`
}

// NewFullSearchForm: начальные значения (незаполненная форма).
func NewFullSearchForm() FullSearchForm {
	return FullSearchForm{
		InTitle:       true,
		InText:        true,
		InTags:        true,
		ArticleAuthor: true,
	}
}

func BindFullSearch(v url.Values) FullSearchForm {
	d := NewFullSearchForm()
	return FullSearchForm{
		Text:          stringField(v, "text"),
		InTitle:       boolField(v, "in_title", d.InTitle),
		InText:        boolField(v, "in_text", d.InText),
		InTags:        boolField(v, "in_tags", d.InTags),
		InCommentText: boolField(v, "in_comment_text", d.InCommentText),
		Author:        stringField(v, "author"),
		ArticleAuthor: boolField(v, "article_author", d.ArticleAuthor),
		CommentAuthor: boolField(v, "comment_author", d.CommentAuthor),
	}
}

// HasTextScope: выбрана ли хотя бы одна область поиска по тексту.
func (f FullSearchForm) HasTextScope() bool {
	return f.InTitle || f.InText || f.InTags || f.InCommentText
}

// HasAuthorScope: выбрана ли хотя бы одна область поиска по автору.
func (f FullSearchForm) HasAuthorScope() bool {
	return f.ArticleAuthor || f.CommentAuthor
}

// Validate проверяет поля и затем перекрёстные правила. Собираются все
// применимые ошибки, а не только первая. Поле с ошибкой считается пустым.
func (f FullSearchForm) Validate() error {
	errs := check(f)

	text, author := f.Text, f.Author
	if len(errs.For("text")) > 0 {
		text = ""
	}
	if len(errs.For("author")) > 0 {
		author = ""
	}

	if text != "" && !f.HasTextScope() {
		errs = append(errs, FieldError{
			Field:   NonFieldErrors,
			Code:    CodeTextCriteriaEmpty,
			Message: "One of the following checkboxes should be checked: In title, In text, In tags, In comment text",
		})
	}
	if author != "" && !f.HasAuthorScope() {
		errs = append(errs, FieldError{
			Field:   NonFieldErrors,
			Code:    CodeAuthorCriteriaEmpty,
			Message: "One of the following checkboxes should be checked: Article author, Comment author",
		})
	}
	if text == "" && author == "" {
		errs = append(errs, FieldError{
			Field:   NonFieldErrors,
			Code:    CodeAuthorTextCriteriaEmpty,
			Message: "At least one field must be completed, text or author",
		})
	}
	return errs.orNil()
}
