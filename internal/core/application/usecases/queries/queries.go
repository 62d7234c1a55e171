// Package queries contains the read side. Handlers read straight from the
// database into response models and never load aggregates; nothing here
// takes locks.
package queries

import (
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func toID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func optionalID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	return id.Validate()
}

func requireID(paramName string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(paramName, err)
	}
	return nil
}

// first reports errs.ObjectNotFoundError when the single-row query matched
// nothing.
func first[T any](tx *gorm.DB, dest *[]T, paramName string, id kernel.UUID) (T, error) {
	var zero T
	if err := tx.Limit(1).Scan(dest).Error; err != nil {
		return zero, err
	}
	if len(*dest) == 0 {
		return zero, errs.NewObjectNotFoundError(paramName, id.String())
	}
	return (*dest)[0], nil
}
