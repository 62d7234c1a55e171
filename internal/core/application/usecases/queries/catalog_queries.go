package queries

import (
	"context"
	"errors"

	"manufacturing/internal/core/domain/model/catalog"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGetVehicleModelQueryIsNotConstructed = errors.New(
		"GetVehicleModelQuery must be created via NewGetVehicleModelQuery constructor",
	)
	ErrListProcessTypesQueryIsNotConstructed = errors.New(
		"ListProcessTypesQuery must be created via NewListProcessTypesQuery constructor",
	)
	ErrListEquipmentQueryIsNotConstructed = errors.New(
		"ListEquipmentQuery must be created via NewListEquipmentQuery constructor",
	)
)

type VehicleModelResponse struct {
	ID   kernel.UUID
	Name string
}

type GetVehicleModelQuery struct {
	vehicleModelID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetVehicleModelQuery(vehicleModelID kernel.UUID) (GetVehicleModelQuery, error) {
	if err := requireID("vehicleModelID", vehicleModelID); err != nil {
		return GetVehicleModelQuery{}, err
	}
	return GetVehicleModelQuery{vehicleModelID: vehicleModelID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetVehicleModelQuery) Validate() error {
	return q.guard.Validate(ErrGetVehicleModelQueryIsNotConstructed)
}

type GetVehicleModelQueryHandler struct {
	db *gorm.DB
}

func NewGetVehicleModelQueryHandler(db *gorm.DB) GetVehicleModelQueryHandler {
	return GetVehicleModelQueryHandler{db: db}
}

func (h GetVehicleModelQueryHandler) Handle(ctx context.Context, query GetVehicleModelQuery) (VehicleModelResponse, error) {
	if err := query.Validate(); err != nil {
		return VehicleModelResponse{}, err
	}

	type row struct {
		ID   uuid.UUID
		Name string
	}

	var rows []row
	r, err := first(
		h.db.WithContext(ctx).Table("vehicle_models").Select("id, name").
			Where("id = ?", query.vehicleModelID.Bytes()),
		&rows, "vehicleModel", query.vehicleModelID,
	)
	if err != nil {
		return VehicleModelResponse{}, err
	}

	id, err := toID(r.ID)
	if err != nil {
		return VehicleModelResponse{}, err
	}
	return VehicleModelResponse{ID: id, Name: r.Name}, nil
}

type ProcessTypeResponse struct {
	ID           kernel.UUID
	Name         string
	ProcessOrder int
	Active       bool
}

// ListProcessTypesQuery lists process types in line order.
type ListProcessTypesQuery struct {
	activeOnly bool

	guard guard.ConstructorGuard
}

func NewListProcessTypesQuery(activeOnly bool) ListProcessTypesQuery {
	return ListProcessTypesQuery{activeOnly: activeOnly, guard: guard.NewConstructorGuard()}
}

func (q ListProcessTypesQuery) Validate() error {
	return q.guard.Validate(ErrListProcessTypesQueryIsNotConstructed)
}

type ListProcessTypesQueryHandler struct {
	db *gorm.DB
}

func NewListProcessTypesQueryHandler(db *gorm.DB) ListProcessTypesQueryHandler {
	return ListProcessTypesQueryHandler{db: db}
}

func (h ListProcessTypesQueryHandler) Handle(
	ctx context.Context,
	query ListProcessTypesQuery,
) ([]ProcessTypeResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("process_types").Select("id, name, process_order, active")
	if query.activeOnly {
		tx = tx.Where("active = ?", true)
	}

	rows, err := tx.Order("process_order").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	processTypes := make([]ProcessTypeResponse, 0)
	for rows.Next() {
		var pt ProcessTypeResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &pt.Name, &pt.ProcessOrder, &pt.Active); err != nil {
			return nil, err
		}

		if pt.ID, err = toID(id); err != nil {
			return nil, err
		}
		processTypes = append(processTypes, pt)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return processTypes, nil
}

type EquipmentResponse struct {
	ID            kernel.UUID
	Name          string
	ProcessTypeID kernel.UUID
	Status        catalog.EquipmentStatus
}

// ListEquipmentQuery filters equipment by process type and status; both
// filters are optional.
type ListEquipmentQuery struct {
	processTypeID *kernel.UUID
	status        *catalog.EquipmentStatus

	guard guard.ConstructorGuard
}

func NewListEquipmentQuery(
	processTypeID *kernel.UUID,
	status *catalog.EquipmentStatus,
) (ListEquipmentQuery, error) {
	errList := []error{optionalID(processTypeID)}
	if status != nil {
		errList = append(errList, status.Validate())
	}
	if err := errors.Join(errList...); err != nil {
		return ListEquipmentQuery{}, err
	}

	return ListEquipmentQuery{
		processTypeID: processTypeID,
		status:        status,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (q ListEquipmentQuery) Validate() error {
	return q.guard.Validate(ErrListEquipmentQueryIsNotConstructed)
}

type ListEquipmentQueryHandler struct {
	db *gorm.DB
}

func NewListEquipmentQueryHandler(db *gorm.DB) ListEquipmentQueryHandler {
	return ListEquipmentQueryHandler{db: db}
}

func (h ListEquipmentQueryHandler) Handle(ctx context.Context, query ListEquipmentQuery) ([]EquipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := h.db.WithContext(ctx).Table("equipment").Select("id, name, process_type_id, status")
	if query.processTypeID != nil {
		tx = tx.Where("process_type_id = ?", query.processTypeID.Bytes())
	}
	if query.status != nil {
		tx = tx.Where("status = ?", int(*query.status))
	}

	type row struct {
		ID            uuid.UUID
		Name          string
		ProcessTypeID uuid.UUID
		Status        int
	}

	var rows []row
	if err := tx.Order("name, id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	equipment := make([]EquipmentResponse, 0, len(rows))
	for _, r := range rows {
		id, err := toID(r.ID)
		if err != nil {
			return nil, err
		}
		processTypeID, err := toID(r.ProcessTypeID)
		if err != nil {
			return nil, err
		}
		equipment = append(equipment, EquipmentResponse{
			ID:            id,
			Name:          r.Name,
			ProcessTypeID: processTypeID,
			Status:        catalog.EquipmentStatus(r.Status),
		})
	}
	return equipment, nil
}
