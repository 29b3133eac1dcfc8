package domain

import (
	"regexp"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Константы пагинации. Значения по умолчанию применяются,
// когда клиент не передал page/pageSize.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MinPage         = 1
	MinPageSize     = 1
	MaxPageSize     = 100

	MaxNameLength    = 100
	MaxAddressLength = 200
)

// Разрешаем буквы (включая акценты), цифры, пробелы, дефисы, запятые и точки.
var safeTextPattern = regexp.MustCompile(`^[a-zA-Z0-9\sáéíóúÁÉÍÓÚñÑüÜ,.\-]+$`)

// PropertyFilter - критерии поиска объектов. Все поля опциональны:
// nil означает "клаузу не добавлять".
type PropertyFilter struct {
	Name     *string
	Address  *string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Page     *int
	PageSize *int
}

// HasCriteria сообщает, передал ли клиент хоть один параметр.
// Запрос без параметров обрабатывается как "показать все".
func (f PropertyFilter) HasCriteria() bool {
	return f.Name != nil || f.Address != nil ||
		f.MinPrice != nil || f.MaxPrice != nil ||
		f.Page != nil || f.PageSize != nil
}

// Normalize возвращает эффективные page/pageSize с учетом значений по умолчанию.
// Вызывается только после успешной валидации.
func (f PropertyFilter) Normalize() (page, pageSize int) {
	page = DefaultPage
	if f.Page != nil {
		page = *f.Page
	}
	pageSize = DefaultPageSize
	if f.PageSize != nil {
		pageSize = *f.PageSize
	}
	return page, pageSize
}

// Validate проверяет критерии до какого-либо обращения к хранилищу.
// Возвращает *ValidationError со всеми нарушениями сразу, а не по одному.
func (f PropertyFilter) Validate() error {
	fields := make(map[string]string)

	// Лимиты считаем в символах, не в байтах: акцентированные буквы
	// занимают два байта в UTF-8.
	if f.Name != nil {
		if utf8.RuneCountInString(*f.Name) > MaxNameLength {
			fields["name"] = "property name cannot exceed 100 characters"
		} else if *f.Name != "" && !safeTextPattern.MatchString(*f.Name) {
			fields["name"] = "property name contains invalid characters"
		}
	}

	if f.Address != nil {
		if utf8.RuneCountInString(*f.Address) > MaxAddressLength {
			fields["address"] = "address cannot exceed 200 characters"
		} else if *f.Address != "" && !safeTextPattern.MatchString(*f.Address) {
			fields["address"] = "address contains invalid characters"
		}
	}

	if f.MinPrice != nil && f.MinPrice.IsNegative() {
		fields["minPrice"] = "minimum price must be greater than or equal to 0"
	}
	if f.MaxPrice != nil && f.MaxPrice.IsNegative() {
		fields["maxPrice"] = "maximum price must be greater than or equal to 0"
	}
	// Инвертированный диапазон - ошибка клиента, а не предиката.
	if f.MinPrice != nil && f.MaxPrice != nil && f.MaxPrice.LessThan(*f.MinPrice) {
		fields["maxPrice"] = "maximum price must be greater than or equal to minimum price"
	}

	if f.Page != nil && *f.Page < MinPage {
		fields["page"] = "page must be greater than 0"
	}
	if f.PageSize != nil && (*f.PageSize < MinPageSize || *f.PageSize > MaxPageSize) {
		fields["pageSize"] = "page size must be between 1 and 100"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
