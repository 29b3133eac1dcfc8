package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Три клиентских представления объекта. Каждое явно перечисляет,
// какие поля сущности наружу видны: никакого рефлексивного маппинга.

// PropertyListView - карточка объекта в списке: минимум полей
// и ровно одна фотография (первая включенная).
type PropertyListView struct {
	Slug    string
	OwnerID string
	Name    string
	Address string
	Price   decimal.Decimal
	Image   string
}

// PropertyDetailView - полная карточка. История сделок сюда
// намеренно не входит - у нее отдельный запрос.
type PropertyDetailView struct {
	ID           string
	Slug         string
	Name         string
	Address      string
	Price        decimal.Decimal
	CodeInternal string
	Year         int
	Owner        *OwnerView
	Images       []PropertyImageView
}

type PropertyImageView struct {
	ID      string
	File    string
	Enabled bool
}

// PropertyTraceView - одна запись истории сделок.
type PropertyTraceView struct {
	ID       string
	DateSale time.Time
	Name     string
	Value    decimal.Decimal
	Tax      decimal.Decimal
}

type OwnerView struct {
	ID       string
	Name     string
	Address  string
	Photo    string
	Birthday *time.Time
}

// NewPropertyListView собирает карточку списка. owners - результат
// батч-запроса владельцев страницы: если ссылка OwnerID "висячая"
// (владельца нет в коллекции), идентификатор в карточку не попадает.
func NewPropertyListView(p Property, owners map[string]Owner) PropertyListView {
	view := PropertyListView{
		Slug:    p.Slug,
		Name:    p.Name,
		Address: p.Address,
		Price:   p.Price,
		Image:   p.FirstEnabledImage(),
	}
	if _, ok := owners[p.OwnerID]; ok {
		view.OwnerID = p.OwnerID
	}
	return view
}

// NewPropertyListViews маппит страницу объектов в карточки списка.
func NewPropertyListViews(properties []Property, owners map[string]Owner) []PropertyListView {
	views := make([]PropertyListView, len(properties))
	for i, p := range properties {
		views[i] = NewPropertyListView(p, owners)
	}
	return views
}

// NewPropertyDetailView собирает полную карточку. owner может быть nil:
// объект с висячей ссылкой на владельца все равно отдается.
func NewPropertyDetailView(p Property, owner *Owner) PropertyDetailView {
	view := PropertyDetailView{
		ID:           p.ID,
		Slug:         p.Slug,
		Name:         p.Name,
		Address:      p.Address,
		Price:        p.Price,
		CodeInternal: p.CodeInternal,
		Year:         p.Year,
		Images:       make([]PropertyImageView, len(p.Images)),
	}
	// В детальной карточке видны все фотографии, включая выключенные.
	for i, img := range p.Images {
		view.Images[i] = PropertyImageView{ID: img.ID, File: img.File, Enabled: img.Enabled}
	}
	if owner != nil {
		ownerView := NewOwnerView(*owner)
		view.Owner = &ownerView
	}
	return view
}

// NewPropertyTraceViews маппит историю сделок в порядке хранения.
func NewPropertyTraceViews(traces []PropertyTrace) []PropertyTraceView {
	views := make([]PropertyTraceView, len(traces))
	for i, t := range traces {
		views[i] = PropertyTraceView{
			ID:       t.ID,
			DateSale: t.DateSale,
			Name:     t.Name,
			Value:    t.Value,
			Tax:      t.Tax,
		}
	}
	return views
}

func NewOwnerView(o Owner) OwnerView {
	return OwnerView{
		ID:       o.ID,
		Name:     o.Name,
		Address:  o.Address,
		Photo:    o.Photo,
		Birthday: o.Birthday,
	}
}

// OwnersByID индексирует результат батч-запроса владельцев.
func OwnersByID(owners []Owner) map[string]Owner {
	m := make(map[string]Owner, len(owners))
	for _, o := range owners {
		m[o.ID] = o
	}
	return m
}
