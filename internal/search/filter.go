// Package search строит фильтры статей: дерево условий с AND/OR,
// которое репозиторий переводит в SQL, а Match вычисляет в памяти.
package search

import (
	"strings"

	"webblog/internal/models"
)

type Field string

const (
	FieldTitle         Field = "title"
	FieldText          Field = "text"
	FieldAuthor        Field = "author"
	FieldTagName       Field = "tags.name"
	FieldCommentText   Field = "comments.text"
	FieldCommentAuthor Field = "comments.author"
)

type Lookup string

const (
	// IContains: подстрока без учёта регистра.
	IContains Lookup = "icontains"
	// IExact: равенство без учёта регистра.
	IExact Lookup = "iexact"
)

type Combinator string

const (
	OpAnd Combinator = "AND"
	OpOr  Combinator = "OR"
)

type Clause struct {
	Field  Field
	Lookup Lookup
	Value  string
}

// Filter: либо одиночное условие (Clause), либо группа Children с комбинатором Op.
// Нулевое значение — пустой фильтр, которому соответствует любая статья.
type Filter struct {
	Clause   *Clause
	Op       Combinator
	Children []Filter
}

// All: пустой фильтр.
func All() Filter { return Filter{} }

func Where(field Field, lookup Lookup, value string) Filter {
	return Filter{Clause: &Clause{Field: field, Lookup: lookup, Value: value}}
}

func And(filters ...Filter) Filter { return group(OpAnd, filters) }

func Or(filters ...Filter) Filter { return group(OpOr, filters) }

func group(op Combinator, filters []Filter) Filter {
	children := make([]Filter, 0, len(filters))
	for _, f := range filters {
		if !f.IsEmpty() {
			children = append(children, f)
		}
	}
	switch len(children) {
	case 0:
		return All()
	case 1:
		return children[0]
	}
	return Filter{Op: op, Children: children}
}

func (f Filter) IsEmpty() bool {
	return f.Clause == nil && len(f.Children) == 0
}

// Match вычисляет фильтр для статьи с загруженными тегами и комментариями.
func (f Filter) Match(a *models.Article) bool {
	if f.Clause != nil {
		return f.Clause.match(a)
	}
	if len(f.Children) == 0 {
		return true
	}
	if f.Op == OpOr {
		for _, c := range f.Children {
			if c.Match(a) {
				return true
			}
		}
		return false
	}
	for _, c := range f.Children {
		if !c.Match(a) {
			return false
		}
	}
	return true
}

// String: читаемое представление для логов.
func (f Filter) String() string {
	if f.Clause != nil {
		return string(f.Clause.Field) + "__" + string(f.Clause.Lookup) + "=" + f.Clause.Value
	}
	if len(f.Children) == 0 {
		return "ALL"
	}
	parts := make([]string, 0, len(f.Children))
	for _, c := range f.Children {
		parts = append(parts, c.String())
	}
	return "(" + strings.Join(parts, " "+string(f.Op)+" ") + ")"
}

func (c *Clause) match(a *models.Article) bool {
	switch c.Field {
	case FieldTitle:
		return c.test(a.Title)
	case FieldText:
		return c.test(a.Text)
	case FieldAuthor:
		return c.test(a.Author)
	case FieldTagName:
		for _, t := range a.Tags {
			if c.test(t.Name) {
				return true
			}
		}
	case FieldCommentText:
		for _, cm := range a.Comments {
			if c.test(cm.Text) {
				return true
			}
		}
	case FieldCommentAuthor:
		for _, cm := range a.Comments {
			if c.test(cm.Author) {
				return true
			}
		}
	}
	return false
}

func (c *Clause) test(v string) bool {
	switch c.Lookup {
	case IContains:
		return strings.Contains(strings.ToLower(v), strings.ToLower(c.Value))
	case IExact:
		return strings.EqualFold(v, c.Value)
	}
	return false
}
