package domain

// PagedResult - страница результата с метаданными пагинации.
// Page и PageSize - это запрошенные клиентом значения (после применения
// значений по умолчанию), а не то, что фактически вернуло хранилище.
type PagedResult[T any] struct {
	Data       []T
	Page       int
	PageSize   int
	TotalCount int64
}

// NewPagedResult собирает страницу результата.
func NewPagedResult[T any](data []T, page, pageSize int, totalCount int64) PagedResult[T] {
	return PagedResult[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		TotalCount: totalCount,
	}
}

// TotalPages = ceil(TotalCount / PageSize).
func (r PagedResult[T]) TotalPages() int {
	if r.PageSize <= 0 {
		return 0
	}
	return int((r.TotalCount + int64(r.PageSize) - 1) / int64(r.PageSize))
}

func (r PagedResult[T]) HasPreviousPage() bool {
	return r.Page > 1
}

func (r PagedResult[T]) HasNextPage() bool {
	return r.Page < r.TotalPages()
}
