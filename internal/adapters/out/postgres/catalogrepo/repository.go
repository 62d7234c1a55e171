package catalogrepo

import (
	"context"

	"manufacturing/internal/adapters/out/postgres/pgerrs"
	"manufacturing/internal/core/domain/model/catalog"
	"manufacturing/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

type GormVehicleModelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormVehicleModelRepository(db *gorm.DB, tracker aggregateTracker) *GormVehicleModelRepository {
	return &GormVehicleModelRepository{db: db, tracker: tracker}
}

func (r *GormVehicleModelRepository) Add(ctx context.Context, m *catalog.VehicleModel) error {
	if err := m.Validate(); err != nil {
		return err
	}

	dto := vehicleModelFromDomain(m)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Duplicate(err, "vehicleModel", m.ID().String())
	}

	r.tracker.TrackAggregate(m.ID(), m)
	return nil
}

func (r *GormVehicleModelRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.VehicleModel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleModelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerrs.NotFound(err, "vehicleModel", id.String())
	}

	return vehicleModelToDomain(dto)
}

type GormProcessTypeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormProcessTypeRepository(db *gorm.DB, tracker aggregateTracker) *GormProcessTypeRepository {
	return &GormProcessTypeRepository{db: db, tracker: tracker}
}

func (r *GormProcessTypeRepository) Add(ctx context.Context, pt *catalog.ProcessType) error {
	if err := pt.Validate(); err != nil {
		return err
	}

	dto := processTypeFromDomain(pt)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgerrs.Duplicate(err, "processOrder", pt.ProcessOrder())
	}

	r.tracker.TrackAggregate(pt.ID(), pt)
	return nil
}

func (r *GormProcessTypeRepository) Update(ctx context.Context, pt *catalog.ProcessType) error {
	if err := pt.Validate(); err != nil {
		return err
	}

	dto := processTypeFromDomain(pt)
	result := r.db.WithContext(ctx).
		Model(&ProcessTypeDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit(clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return pgerrs.Duplicate(result.Error, "processOrder", pt.ProcessOrder())
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(pt.ID(), pt)
	return nil
}

func (r *GormProcessTypeRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.ProcessType, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProcessTypeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerrs.NotFound(err, "processType", id.String())
	}

	return processTypeToDomain(dto)
}

func (r *GormProcessTypeRepository) ExistsByProcessOrder(ctx context.Context, processOrder int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ProcessTypeDTO{}).
		Where("process_order = ?", processOrder).
		Count(&count).Error

	return count > 0, err
}

type GormEquipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormEquipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormEquipmentRepository {
	return &GormEquipmentRepository{db: db, tracker: tracker}
}

func (r *GormEquipmentRepository) Add(ctx context.Context, e *catalog.Equipment) error {
	if err := e.Validate(); err != nil {
		return err
	}

	dto := equipmentFromDomain(e)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Duplicate(err, "equipment", e.ID().String())
	}

	r.tracker.TrackAggregate(e.ID(), e)
	return nil
}

func (r *GormEquipmentRepository) Update(ctx context.Context, e *catalog.Equipment) error {
	if err := e.Validate(); err != nil {
		return err
	}

	dto := equipmentFromDomain(e)
	result := r.db.WithContext(ctx).
		Model(&EquipmentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(e.ID(), e)
	return nil
}

func (r *GormEquipmentRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Equipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EquipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerrs.NotFound(err, "equipment", id.String())
	}

	return equipmentToDomain(dto)
}
