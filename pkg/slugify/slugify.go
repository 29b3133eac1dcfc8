// Package slugify превращает человекочитаемый текст в URL-безопасный
// идентификатор: "Modern Beach House" -> "modern-beach-house".
package slugify

import (
	"github.com/gosimple/slug"
)

// Make генерирует slug: нижний регистр, транслитерация акцентов,
// пробелы и спецсимволы схлопываются в дефисы. Пустой вход дает
// пустую строку, уникальность здесь не гарантируется.
func Make(text string) string {
	return slug.Make(text)
}

// IsValid сообщает, является ли строка корректным slug-ом.
func IsValid(text string) bool {
	return slug.IsSlug(text)
}
