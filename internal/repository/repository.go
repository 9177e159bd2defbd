// Package repository holds the data access layer. One interface per
// entity, each backed by a GORM implementation. Every read/write is a
// single query scoped to the request context; commit semantics come
// from the driver (one statement, one transaction).
package repository

const maxPageSize = 500

func clampLimit(limit int) int {
	if limit < 1 || limit > maxPageSize {
		return 100
	}
	return limit
}
