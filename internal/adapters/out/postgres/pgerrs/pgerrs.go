// Package pgerrs maps driver and GORM errors onto the errs taxonomy.
package pgerrs

import (
	"errors"

	"manufacturing/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const uniqueViolation pq.ErrorCode = "23505"

// IsUniqueViolation recognises unique index violations from every driver in
// use: the translated gorm.ErrDuplicatedKey (pgx, sqlite) and raw lib/pq
// errors.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// Duplicate returns errs.DuplicateError for unique violations and err
// unchanged otherwise.
func Duplicate(err error, paramName string, value any) error {
	if err != nil && IsUniqueViolation(err) {
		return errs.NewDuplicateErrorWithCause(paramName, value, err)
	}
	return err
}

// NotFound returns errs.ObjectNotFoundError for gorm.ErrRecordNotFound and
// err unchanged otherwise.
func NotFound(err error, paramName string, id any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(paramName, id)
	}
	return err
}
