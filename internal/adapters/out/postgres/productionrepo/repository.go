package productionrepo

import (
	"context"

	"manufacturing/internal/adapters/out/postgres/pgerrs"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/production"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormProductionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormProductionRepository(db *gorm.DB, tracker aggregateTracker) *GormProductionRepository {
	return &GormProductionRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormProductionRepository) Add(ctx context.Context, aggregate *production.Production) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgerrs.Duplicate(err, "production", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormProductionRepository) Update(ctx context.Context, aggregate *production.Production) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ProductionDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit(clause.Associations).
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

// Get locks the production row until the transaction ends.
func (r *GormProductionRepository) Get(ctx context.Context, id kernel.UUID) (*production.Production, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductionDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Allocations").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerrs.NotFound(err, "production", id.String())
	}

	return toDomain(dto)
}

func (r *GormProductionRepository) GetStatuses(
	ctx context.Context,
	ids []kernel.UUID,
) (map[kernel.UUID]production.Status, error) {
	statuses := make(map[kernel.UUID]production.Status, len(ids))
	if len(ids) == 0 {
		return statuses, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var rows []struct {
		ID     uuid.UUID
		Status int
	}
	if err := r.db.WithContext(ctx).
		Model(&ProductionDTO{}).
		Select("id, status").
		Where("id IN ?", raw).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		statuses[id] = production.Status(row.Status)
	}

	return statuses, nil
}
