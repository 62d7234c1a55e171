package queries

import (
	"context"
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGetProductionVehicleQueryIsNotConstructed = errors.New(
		"GetProductionVehicleQuery must be created via NewGetProductionVehicleQuery constructor",
	)
	ErrListProductionVehiclesQueryIsNotConstructed = errors.New(
		"ListProductionVehiclesQuery must be created via NewListProductionVehiclesQuery constructor",
	)
)

type ProductionVehicleResponse struct {
	ID           kernel.UUID
	ProductionID kernel.UUID
	SerialNumber string
	CompletedAt  time.Time
}

type vehicleRow struct {
	ID           uuid.UUID
	ProductionID uuid.UUID
	SerialNumber string
	CompletedAt  time.Time
}

func (r vehicleRow) toResponse() (ProductionVehicleResponse, error) {
	id, err := toID(r.ID)
	if err != nil {
		return ProductionVehicleResponse{}, err
	}
	productionID, err := toID(r.ProductionID)
	if err != nil {
		return ProductionVehicleResponse{}, err
	}
	return ProductionVehicleResponse{
		ID:           id,
		ProductionID: productionID,
		SerialNumber: r.SerialNumber,
		CompletedAt:  r.CompletedAt,
	}, nil
}

func selectVehicles(db *gorm.DB) *gorm.DB {
	return db.Table("production_vehicles").Select("id, production_id, serial_number, completed_at")
}

type GetProductionVehicleQuery struct {
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetProductionVehicleQuery(vehicleID kernel.UUID) (GetProductionVehicleQuery, error) {
	if err := requireID("vehicleID", vehicleID); err != nil {
		return GetProductionVehicleQuery{}, err
	}
	return GetProductionVehicleQuery{vehicleID: vehicleID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductionVehicleQuery) Validate() error {
	return q.guard.Validate(ErrGetProductionVehicleQueryIsNotConstructed)
}

type GetProductionVehicleQueryHandler struct {
	db *gorm.DB
}

func NewGetProductionVehicleQueryHandler(db *gorm.DB) GetProductionVehicleQueryHandler {
	return GetProductionVehicleQueryHandler{db: db}
}

func (h GetProductionVehicleQueryHandler) Handle(
	ctx context.Context,
	query GetProductionVehicleQuery,
) (ProductionVehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductionVehicleResponse{}, err
	}

	var rows []vehicleRow
	row, err := first(
		selectVehicles(h.db.WithContext(ctx)).Where("id = ?", query.vehicleID.Bytes()),
		&rows, "productionVehicle", query.vehicleID,
	)
	if err != nil {
		return ProductionVehicleResponse{}, err
	}
	return row.toResponse()
}

type ListProductionVehiclesQuery struct {
	productionID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewListProductionVehiclesQuery(productionID *kernel.UUID) (ListProductionVehiclesQuery, error) {
	if err := optionalID(productionID); err != nil {
		return ListProductionVehiclesQuery{}, err
	}
	return ListProductionVehiclesQuery{productionID: productionID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListProductionVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrListProductionVehiclesQueryIsNotConstructed)
}

type ListProductionVehiclesQueryHandler struct {
	db *gorm.DB
}

func NewListProductionVehiclesQueryHandler(db *gorm.DB) ListProductionVehiclesQueryHandler {
	return ListProductionVehiclesQueryHandler{db: db}
}

func (h ListProductionVehiclesQueryHandler) Handle(
	ctx context.Context,
	query ListProductionVehiclesQuery,
) ([]ProductionVehicleResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := selectVehicles(h.db.WithContext(ctx))
	if query.productionID != nil {
		tx = tx.Where("production_id = ?", query.productionID.Bytes())
	}

	var rows []vehicleRow
	if err := tx.Order("serial_number").Scan(&rows).Error; err != nil {
		return nil, err
	}

	vehicles := make([]ProductionVehicleResponse, 0, len(rows))
	for _, r := range rows {
		resp, err := r.toResponse()
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, resp)
	}
	return vehicles, nil
}
