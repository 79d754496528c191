// Package pagination делит упорядоченный список на страницы.
// Хвостовая страница из orphans и меньшего числа элементов
// присоединяется к предыдущей.
package pagination

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrPageNotAnInteger = errors.New("page number is not an integer")
	ErrEmptyPage        = errors.New("page contains no results")
)

type Paginator struct {
	Count   int
	PerPage int
	Orphans int
}

func New(count, perPage, orphans int) *Paginator {
	if perPage < 1 {
		perPage = 1
	}
	if orphans < 0 {
		orphans = 0
	}
	return &Paginator{Count: count, PerPage: perPage, Orphans: orphans}
}

// NumPages: число страниц; у пустого списка одна пустая страница.
func (p *Paginator) NumPages() int {
	hits := p.Count - p.Orphans
	if hits < 1 {
		hits = 1
	}
	return (hits + p.PerPage - 1) / p.PerPage
}

type Page struct {
	Number   int `json:"page"`
	NumPages int `json:"numPages"`
	Count    int `json:"count"`
	PerPage  int `json:"perPage"`
	Offset   int `json:"-"`
	Limit    int `json:"-"`
}

func (pg Page) HasNext() bool     { return pg.Number < pg.NumPages }
func (pg Page) HasPrevious() bool { return pg.Number > 1 }

// HasOtherPages: страниц больше одной.
func (pg Page) HasOtherPages() bool { return pg.HasNext() || pg.HasPrevious() }

// Page возвращает страницу number (с единицы).
func (p *Paginator) Page(number int) (Page, error) {
	if number < 1 {
		return Page{}, ErrEmptyPage
	}
	if number > p.NumPages() {
		return Page{}, ErrEmptyPage
	}
	bottom := (number - 1) * p.PerPage
	top := bottom + p.PerPage
	if top+p.Orphans >= p.Count {
		top = p.Count
	}
	if bottom > top {
		bottom = top
	}
	return Page{
		Number:   number,
		NumPages: p.NumPages(),
		Count:    p.Count,
		PerPage:  p.PerPage,
		Offset:   bottom,
		Limit:    top - bottom,
	}, nil
}

// Parse разбирает параметр страницы строго: пусто — первая,
// "last" — последняя, остальное должно быть номером существующей страницы.
func (p *Paginator) Parse(raw string) (Page, error) {
	raw = strings.TrimSpace(raw)
	switch raw {
	case "":
		return p.Page(1)
	case "last":
		return p.Page(p.NumPages())
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return Page{}, ErrPageNotAnInteger
	}
	return p.Page(n)
}

// GetPage: нестрогий вариант: нечисловой номер даёт первую страницу,
// номер вне диапазона — последнюю.
func (p *Paginator) GetPage(raw string) Page {
	pg, err := p.Parse(raw)
	switch {
	case err == nil:
		return pg
	case errors.Is(err, ErrPageNotAnInteger):
		pg, _ = p.Page(1)
	default:
		pg, _ = p.Page(p.NumPages())
	}
	return pg
}

// Meta: сведения о странице для ответа API.
type Meta struct {
	Page
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
	IsPaginated bool `json:"isPaginated"`
}

func (pg Page) Meta() Meta {
	return Meta{
		Page:        pg,
		HasNext:     pg.HasNext(),
		HasPrevious: pg.HasPrevious(),
		IsPaginated: pg.HasOtherPages(),
	}
}
