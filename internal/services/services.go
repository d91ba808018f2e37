// Package services holds the per-resource business logic. Every
// function receives its database scope explicitly; multi-row writes run
// inside a single transaction opened here.
package services

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// DefaultPageSize bounds list queries when the caller supplies no limit.
const DefaultPageSize = 100

// isUniqueViolation recognizes duplicate-key failures from postgres
// (code 23505) and from the sqlite driver used in tests.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// paginate applies skip/limit with the default page size.
func paginate(db *gorm.DB, skip, limit int) *gorm.DB {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	return db.Offset(skip).Limit(limit)
}
