package executionrepo

import (
	"context"

	"manufacturing/internal/adapters/out/postgres/pgerrs"
	"manufacturing/internal/core/domain/model/execution"
	"manufacturing/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormProcessExecutionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormProcessExecutionRepository(db *gorm.DB, tracker aggregateTracker) *GormProcessExecutionRepository {
	return &GormProcessExecutionRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormProcessExecutionRepository) Add(ctx context.Context, aggregate *execution.ProcessExecution) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Duplicate(err, "processExecution", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormProcessExecutionRepository) Update(ctx context.Context, aggregate *execution.ProcessExecution) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ProcessExecutionDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormProcessExecutionRepository) Get(ctx context.Context, id kernel.UUID) (*execution.ProcessExecution, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProcessExecutionDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerrs.NotFound(err, "processExecution", id.String())
	}

	return toDomain(dto)
}

func (r *GormProcessExecutionRepository) CountNotCompletedByProduction(
	ctx context.Context,
	productionID kernel.UUID,
) (int64, error) {
	if err := productionID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&ProcessExecutionDTO{}).
		Where("production_id = ? AND status <> ?", productionID.Bytes(), int(execution.Completed)).
		Count(&count).Error

	return count, err
}
