package search

import "webblog/internal/forms"

// Simple: строка поиска на главной: заголовок или автор содержат запрос,
// либо у статьи есть тег с таким именем.
func Simple(query string) Filter {
	if query == "" {
		return All()
	}
	return Or(
		Where(FieldTitle, IContains, query),
		Where(FieldAuthor, IContains, query),
		Where(FieldTagName, IExact, query),
	)
}

// Tagged: статьи с тегом name.
func Tagged(name string) Filter {
	return Where(FieldTagName, IExact, name)
}

// Full: расширенный поиск по уже проверенной форме.
// Текст и автор объединяются через AND, если заданы оба.
func Full(f forms.FullSearchForm) Filter {
	var parts []Filter
	if f.Text != "" {
		parts = append(parts, textFilter(f))
	}
	if f.Author != "" {
		parts = append(parts, authorFilter(f))
	}
	return And(parts...)
}

func textFilter(f forms.FullSearchForm) Filter {
	var or []Filter
	if f.InTitle {
		or = append(or, Where(FieldTitle, IContains, f.Text))
	}
	if f.InText {
		or = append(or, Where(FieldText, IContains, f.Text))
	}
	if f.InTags {
		or = append(or, Where(FieldTagName, IExact, f.Text))
	}
	if f.InCommentText {
		or = append(or, Where(FieldCommentText, IContains, f.Text))
	}
	return Or(or...)
}

func authorFilter(f forms.FullSearchForm) Filter {
	var or []Filter
	if f.ArticleAuthor {
		or = append(or, Where(FieldAuthor, IExact, f.Author))
	}
	if f.CommentAuthor {
		or = append(or, Where(FieldCommentAuthor, IExact, f.Author))
	}
	return Or(or...)
}
