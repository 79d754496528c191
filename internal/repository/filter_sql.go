package repository

import (
	"fmt"
	"strconv"
	"strings"

	"webblog/internal/search"
)

// Связанные таблицы проверяются через EXISTS — строка статьи не дублируется.
const (
	tagExists     = `EXISTS (SELECT 1 FROM article_tags at JOIN tags t ON t.id = at.tag_id WHERE at.article_id = a.id AND %s)`
	commentExists = `EXISTS (SELECT 1 FROM comments c WHERE c.article_id = a.id AND %s)`
)

type sqlBuilder struct {
	args []any
}

func (b *sqlBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

// where переводит фильтр в условие WHERE над таблицей articles (алиас a).
func (b *sqlBuilder) where(f search.Filter) (string, error) {
	if f.Clause != nil {
		return b.clause(f.Clause)
	}
	if len(f.Children) == 0 {
		return "TRUE", nil
	}
	op := " AND "
	if f.Op == search.OpOr {
		op = " OR "
	}
	parts := make([]string, 0, len(f.Children))
	for _, c := range f.Children {
		s, err := b.where(c)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return "(" + strings.Join(parts, op) + ")", nil
}

func (b *sqlBuilder) clause(c *search.Clause) (string, error) {
	var column, wrap string
	switch c.Field {
	case search.FieldTitle:
		column = "a.title"
	case search.FieldText:
		column = "a.text"
	case search.FieldAuthor:
		column = "a.author"
	case search.FieldTagName:
		column, wrap = "t.name", tagExists
	case search.FieldCommentText:
		column, wrap = "c.text", commentExists
	case search.FieldCommentAuthor:
		column, wrap = "c.author", commentExists
	default:
		return "", fmt.Errorf("unknown filter field %q", c.Field)
	}

	var cond string
	switch c.Lookup {
	case search.IContains:
		cond = column + " ILIKE " + b.arg("%"+escapeLike(c.Value)+"%")
	case search.IExact:
		cond = "lower(" + column + ") = lower(" + b.arg(c.Value) + ")"
	default:
		return "", fmt.Errorf("unknown filter lookup %q", c.Lookup)
	}

	if wrap != "" {
		return fmt.Sprintf(wrap, cond), nil
	}
	return cond, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
