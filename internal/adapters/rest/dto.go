package rest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Wilmaryucuma7/real-estate-api/internal/core/domain"
)

// DTO для ответов API. Денежные поля сериализуются строками
// (decimal.Decimal маршалится в кавычках), float в ответах не бывает.

// PropertyListItemResponse - карточка объекта в списке.
type PropertyListItemResponse struct {
	Slug    string          `json:"slug"`
	OwnerID string          `json:"ownerId,omitempty"`
	Name    string          `json:"name"`
	Address string          `json:"address"`
	Price   decimal.Decimal `json:"price"`
	Image   string          `json:"image,omitempty"`
}

// PropertyDetailResponse - DTO для детальной карточки объекта.
type PropertyDetailResponse struct {
	ID           string                  `json:"id"`
	Slug         string                  `json:"slug"`
	Name         string                  `json:"name"`
	Address      string                  `json:"address"`
	Price        decimal.Decimal         `json:"price"`
	CodeInternal string                  `json:"codeInternal"`
	Year         int                     `json:"year"`
	Owner        *OwnerResponse          `json:"owner,omitempty"`
	Images       []PropertyImageResponse `json:"images"`
}

type PropertyImageResponse struct {
	ID      string `json:"id"`
	File    string `json:"file"`
	Enabled bool   `json:"enabled"`
}

type PropertyTraceResponse struct {
	ID       string          `json:"id"`
	DateSale time.Time       `json:"dateSale"`
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
	Tax      decimal.Decimal `json:"tax"`
}

type OwnerResponse struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Address  string     `json:"address"`
	Photo    string     `json:"photo,omitempty"`
	Birthday *time.Time `json:"birthday,omitempty"`
}

// PaginatedResponse - DTO для ответа со списком и метаданными пагинации.
type PaginatedResponse[T any] struct {
	Data            []T   `json:"data"`
	Page            int   `json:"page"`
	PageSize        int   `json:"pageSize"`
	TotalCount      int64 `json:"totalCount"`
	TotalPages      int   `json:"totalPages"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
	HasNextPage     bool  `json:"hasNextPage"`
}

func toPropertyListItemResponse(view domain.PropertyListView) PropertyListItemResponse {
	return PropertyListItemResponse{
		Slug:    view.Slug,
		OwnerID: view.OwnerID,
		Name:    view.Name,
		Address: view.Address,
		Price:   view.Price,
		Image:   view.Image,
	}
}

func toPropertyListItemResponses(views []domain.PropertyListView) []PropertyListItemResponse {
	items := make([]PropertyListItemResponse, len(views))
	for i, v := range views {
		items[i] = toPropertyListItemResponse(v)
	}
	return items
}

func toPropertyDetailResponse(view *domain.PropertyDetailView) PropertyDetailResponse {
	resp := PropertyDetailResponse{
		ID:           view.ID,
		Slug:         view.Slug,
		Name:         view.Name,
		Address:      view.Address,
		Price:        view.Price,
		CodeInternal: view.CodeInternal,
		Year:         view.Year,
		Images:       make([]PropertyImageResponse, len(view.Images)),
	}
	if view.Owner != nil {
		owner := toOwnerResponse(*view.Owner)
		resp.Owner = &owner
	}
	for i, img := range view.Images {
		resp.Images[i] = PropertyImageResponse{ID: img.ID, File: img.File, Enabled: img.Enabled}
	}
	return resp
}

func toPropertyTraceResponses(views []domain.PropertyTraceView) []PropertyTraceResponse {
	items := make([]PropertyTraceResponse, len(views))
	for i, v := range views {
		items[i] = PropertyTraceResponse{
			ID:       v.ID,
			DateSale: v.DateSale,
			Name:     v.Name,
			Value:    v.Value,
			Tax:      v.Tax,
		}
	}
	return items
}

func toOwnerResponse(view domain.OwnerView) OwnerResponse {
	return OwnerResponse{
		ID:       view.ID,
		Name:     view.Name,
		Address:  view.Address,
		Photo:    view.Photo,
		Birthday: view.Birthday,
	}
}

func toOwnerResponses(views []domain.OwnerView) []OwnerResponse {
	items := make([]OwnerResponse, len(views))
	for i, v := range views {
		items[i] = toOwnerResponse(v)
	}
	return items
}

func toPaginatedResponse[T any, V any](result *domain.PagedResult[V], items []T) PaginatedResponse[T] {
	return PaginatedResponse[T]{
		Data:            items,
		Page:            result.Page,
		PageSize:        result.PageSize,
		TotalCount:      result.TotalCount,
		TotalPages:      result.TotalPages(),
		HasPreviousPage: result.HasPreviousPage(),
		HasNextPage:     result.HasNextPage(),
	}
}
