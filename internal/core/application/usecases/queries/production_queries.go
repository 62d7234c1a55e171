package queries

import (
	"context"
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/production"
	"manufacturing/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGetProductionQueryIsNotConstructed = errors.New(
		"GetProductionQuery must be created via NewGetProductionQuery constructor",
	)
	ErrListProductionsQueryIsNotConstructed = errors.New(
		"ListProductionsQuery must be created via NewListProductionsQuery constructor",
	)
)

type ProductionResponse struct {
	ID                kernel.UUID
	StartDate         time.Time
	EndDate           *time.Time
	Status            production.Status
	AllocatedQuantity int
	OpenExecutions    int
}

type productionRow struct {
	ID                uuid.UUID
	StartDate         time.Time
	EndDate           *time.Time
	Status            int
	AllocatedQuantity int
	OpenExecutions    int
}

func (r productionRow) toResponse() (ProductionResponse, error) {
	id, err := toID(r.ID)
	if err != nil {
		return ProductionResponse{}, err
	}
	return ProductionResponse{
		ID:                id,
		StartDate:         r.StartDate,
		EndDate:           r.EndDate,
		Status:            production.Status(r.Status),
		AllocatedQuantity: r.AllocatedQuantity,
		OpenExecutions:    r.OpenExecutions,
	}, nil
}

func selectProductions(db *gorm.DB) *gorm.DB {
	return db.Table("productions AS p").Select(`
		p.id,
		p.start_date,
		p.end_date,
		p.status,
		COALESCE((SELECT SUM(a.quantity) FROM allocations a WHERE a.production_id = p.id), 0) AS allocated_quantity,
		(SELECT COUNT(*) FROM process_executions pe
			WHERE pe.production_id = p.id AND pe.status <> ?) AS open_executions`,
		int(executionCompleted))
}

type GetProductionQuery struct {
	productionID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetProductionQuery(productionID kernel.UUID) (GetProductionQuery, error) {
	if err := requireID("productionID", productionID); err != nil {
		return GetProductionQuery{}, err
	}
	return GetProductionQuery{productionID: productionID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetProductionQuery) Validate() error {
	return q.guard.Validate(ErrGetProductionQueryIsNotConstructed)
}

type GetProductionQueryHandler struct {
	db *gorm.DB
}

func NewGetProductionQueryHandler(db *gorm.DB) GetProductionQueryHandler {
	return GetProductionQueryHandler{db: db}
}

func (h GetProductionQueryHandler) Handle(ctx context.Context, query GetProductionQuery) (ProductionResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductionResponse{}, err
	}

	var rows []productionRow
	row, err := first(
		selectProductions(h.db.WithContext(ctx)).Where("p.id = ?", query.productionID.Bytes()),
		&rows, "production", query.productionID,
	)
	if err != nil {
		return ProductionResponse{}, err
	}
	return row.toResponse()
}

type ListProductionsQuery struct {
	status *production.Status

	guard guard.ConstructorGuard
}

func NewListProductionsQuery(status *production.Status) (ListProductionsQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListProductionsQuery{}, err
		}
	}
	return ListProductionsQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q ListProductionsQuery) Validate() error {
	return q.guard.Validate(ErrListProductionsQueryIsNotConstructed)
}

type ListProductionsQueryHandler struct {
	db *gorm.DB
}

func NewListProductionsQueryHandler(db *gorm.DB) ListProductionsQueryHandler {
	return ListProductionsQueryHandler{db: db}
}

func (h ListProductionsQueryHandler) Handle(ctx context.Context, query ListProductionsQuery) ([]ProductionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := selectProductions(h.db.WithContext(ctx))
	if query.status != nil {
		tx = tx.Where("p.status = ?", int(*query.status))
	}

	var rows []productionRow
	if err := tx.Order("p.start_date, p.id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	productions := make([]ProductionResponse, 0, len(rows))
	for _, r := range rows {
		resp, err := r.toResponse()
		if err != nil {
			return nil, err
		}
		productions = append(productions, resp)
	}
	return productions, nil
}
