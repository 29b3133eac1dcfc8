package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Property - объект недвижимости. Владелец хранится только как ссылка
// (OwnerID), сами данные владельца лежат в отдельной коллекции.
type Property struct {
	ID           string
	Slug         string
	Name         string
	Address      string
	Price        decimal.Decimal
	CodeInternal string
	Year         int
	OwnerID      string
	Images       []PropertyImage
	Traces       []PropertyTrace
}

// PropertyImage - фотография объекта. В списке показывается только
// первая с Enabled = true, в детальной карточке - все.
type PropertyImage struct {
	ID      string
	File    string
	Enabled bool
}

// PropertyTrace - запись истории сделок по объекту (append-only).
type PropertyTrace struct {
	ID       string
	DateSale time.Time
	Name     string
	Value    decimal.Decimal
	Tax      decimal.Decimal
}

// Owner - владелец объекта. Один владелец может иметь несколько объектов.
type Owner struct {
	ID       string
	Name     string
	Address  string
	Photo    string
	Birthday *time.Time
}

// FirstEnabledImage возвращает URL первой включенной фотографии
// или пустую строку, если таких нет.
func (p *Property) FirstEnabledImage() string {
	for _, img := range p.Images {
		if img.Enabled {
			return img.File
		}
	}
	return ""
}

// OwnerIDs собирает уникальные идентификаторы владельцев для батч-запроса.
func OwnerIDs(properties []Property) []string {
	seen := make(map[string]struct{}, len(properties))
	ids := make([]string, 0, len(properties))
	for _, p := range properties {
		if p.OwnerID == "" {
			continue
		}
		if _, ok := seen[p.OwnerID]; ok {
			continue
		}
		seen[p.OwnerID] = struct{}{}
		ids = append(ids, p.OwnerID)
	}
	return ids
}
