package allocationrepo

import (
	"context"
	"fmt"

	"manufacturing/internal/adapters/out/postgres/pgerrs"
	"manufacturing/internal/core/domain/model/allocation"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormAllocationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormAllocationRepository(db *gorm.DB, tracker aggregateTracker) *GormAllocationRepository {
	return &GormAllocationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the link. A second link for the same order and production
// violates idx_allocations_order_production and surfaces as DuplicateError.
func (r *GormAllocationRepository) Add(ctx context.Context, a *allocation.Allocation) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := FromDomain(a)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Duplicate(err, "allocation",
			fmt.Sprintf("order %s, production %s", a.OrderID(), a.ProductionID()))
	}

	r.tracker.TrackAggregate(a.ID(), a)
	return nil
}

func (r *GormAllocationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&AllocationDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("allocation", id.String())
	}

	return nil
}

func (r *GormAllocationRepository) Get(ctx context.Context, id kernel.UUID) (*allocation.Allocation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AllocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerrs.NotFound(err, "allocation", id.String())
	}

	return ToDomain(dto)
}

func (r *GormAllocationRepository) FindOrderIDsByProduction(
	ctx context.Context,
	productionID kernel.UUID,
) ([]kernel.UUID, error) {
	return r.pluckDistinct(ctx, "order_id", "production_id = ?", productionID)
}

func (r *GormAllocationRepository) FindProductionIDsByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]kernel.UUID, error) {
	return r.pluckDistinct(ctx, "production_id", "order_id = ?", orderID)
}

func (r *GormAllocationRepository) pluckDistinct(
	ctx context.Context,
	column, where string,
	id kernel.UUID,
) ([]kernel.UUID, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var raw []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&AllocationDTO{}).
		Where(where, id.Bytes()).
		Distinct(column).
		Order(column).
		Pluck(column, &raw).Error; err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, v := range raw {
		parsed, err := kernel.UUIDFromBytes(v[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, parsed)
	}

	return ids, nil
}
