package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Сентинельные ошибки ядра. Адаптеры хранилищ переводят ошибки драйвера
// в эти значения на своей границе, ядро и REST-слой работают только с ними.
var (
	// ErrPropertyNotFound - объект не найден. Это ожидаемый результат
	// поиска, а не сбой хранилища.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrOwnerNotFound - владелец не найден.
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrStorageUnavailable - хранилище недоступно (обрыв соединения,
	// таймаут). Не ретраится, отдается наверх как есть.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrSlugConflict - slug уже занят другим объектом (уникальный индекс).
	ErrSlugConflict = errors.New("slug already taken")
)

// ValidationError - нарушение ограничений во входных критериях.
// Содержит карту "поле -> сообщение", чтобы клиент получил все
// нарушения за один запрос.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, k := range keys {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", k, e.Fields[k])
	}
	return b.String()
}
