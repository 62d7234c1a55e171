package queries

import (
	"context"
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/execution"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const executionCompleted = execution.Completed

var (
	ErrGetProcessExecutionQueryIsNotConstructed = errors.New(
		"GetProcessExecutionQuery must be created via NewGetProcessExecutionQuery constructor",
	)
	ErrListProcessExecutionsQueryIsNotConstructed = errors.New(
		"ListProcessExecutionsQuery must be created via NewListProcessExecutionsQuery constructor",
	)
)

type ProcessExecutionResponse struct {
	ID              kernel.UUID
	ProductionID    kernel.UUID
	ProcessTypeID   kernel.UUID
	ProcessTypeName string
	EquipmentID     kernel.UUID
	EquipmentName   string
	StartDate       time.Time
	EndDate         *time.Time
	ExecutionOrder  int
	Status          execution.Status
	DurationMinutes int64
}

type executionRow struct {
	ID              uuid.UUID
	ProductionID    uuid.UUID
	ProcessTypeID   uuid.UUID
	ProcessTypeName string
	EquipmentID     uuid.UUID
	EquipmentName   string
	StartDate       time.Time
	EndDate         *time.Time
	ExecutionOrder  int
	Status          int
}

func (r executionRow) toResponse() (ProcessExecutionResponse, error) {
	ids := make([]kernel.UUID, 4)
	for i, raw := range []uuid.UUID{r.ID, r.ProductionID, r.ProcessTypeID, r.EquipmentID} {
		id, err := toID(raw)
		if err != nil {
			return ProcessExecutionResponse{}, err
		}
		ids[i] = id
	}

	resp := ProcessExecutionResponse{
		ID:              ids[0],
		ProductionID:    ids[1],
		ProcessTypeID:   ids[2],
		ProcessTypeName: r.ProcessTypeName,
		EquipmentID:     ids[3],
		EquipmentName:   r.EquipmentName,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		ExecutionOrder:  r.ExecutionOrder,
		Status:          execution.Status(r.Status),
	}
	if r.EndDate != nil {
		resp.DurationMinutes = int64(r.EndDate.Sub(r.StartDate) / time.Minute)
	}
	return resp, nil
}

func selectExecutions(db *gorm.DB) *gorm.DB {
	return db.Table("process_executions AS pe").
		Select(`
			pe.id,
			pe.production_id,
			pe.process_type_id,
			pt.name AS process_type_name,
			pe.equipment_id,
			e.name AS equipment_name,
			pe.start_date,
			pe.end_date,
			pe.execution_order,
			pe.status`).
		Joins("JOIN process_types pt ON pt.id = pe.process_type_id").
		Joins("JOIN equipment e ON e.id = pe.equipment_id")
}

type GetProcessExecutionQuery struct {
	executionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetProcessExecutionQuery(executionID kernel.UUID) (GetProcessExecutionQuery, error) {
	if err := requireID("executionID", executionID); err != nil {
		return GetProcessExecutionQuery{}, err
	}
	return GetProcessExecutionQuery{executionID: executionID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProcessExecutionQuery) Validate() error {
	return q.guard.Validate(ErrGetProcessExecutionQueryIsNotConstructed)
}

type GetProcessExecutionQueryHandler struct {
	db *gorm.DB
}

func NewGetProcessExecutionQueryHandler(db *gorm.DB) GetProcessExecutionQueryHandler {
	return GetProcessExecutionQueryHandler{db: db}
}

func (h GetProcessExecutionQueryHandler) Handle(
	ctx context.Context,
	query GetProcessExecutionQuery,
) (ProcessExecutionResponse, error) {
	if err := query.Validate(); err != nil {
		return ProcessExecutionResponse{}, err
	}

	var rows []executionRow
	row, err := first(
		selectExecutions(h.db.WithContext(ctx)).Where("pe.id = ?", query.executionID.Bytes()),
		&rows, "processExecution", query.executionID,
	)
	if err != nil {
		return ProcessExecutionResponse{}, err
	}
	return row.toResponse()
}

// ListProcessExecutionsQuery lists the steps of one production in execution
// order, or every step when productionID is nil.
type ListProcessExecutionsQuery struct {
	productionID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewListProcessExecutionsQuery(productionID *kernel.UUID) (ListProcessExecutionsQuery, error) {
	if err := optionalID(productionID); err != nil {
		return ListProcessExecutionsQuery{}, err
	}
	return ListProcessExecutionsQuery{productionID: productionID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListProcessExecutionsQuery) Validate() error {
	return q.guard.Validate(ErrListProcessExecutionsQueryIsNotConstructed)
}

type ListProcessExecutionsQueryHandler struct {
	db *gorm.DB
}

func NewListProcessExecutionsQueryHandler(db *gorm.DB) ListProcessExecutionsQueryHandler {
	return ListProcessExecutionsQueryHandler{db: db}
}

func (h ListProcessExecutionsQueryHandler) Handle(
	ctx context.Context,
	query ListProcessExecutionsQuery,
) ([]ProcessExecutionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := selectExecutions(h.db.WithContext(ctx))
	if query.productionID != nil {
		tx = tx.Where("pe.production_id = ?", query.productionID.Bytes())
	}

	var rows []executionRow
	if err := tx.Order("pe.production_id, pe.execution_order, pe.id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	executions := make([]ProcessExecutionResponse, 0, len(rows))
	for _, r := range rows {
		resp, err := r.toResponse()
		if err != nil {
			return nil, err
		}
		executions = append(executions, resp)
	}
	return executions, nil
}
