package http

import (
	"net/http"

	"manufacturing/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetProductionVehicle handles GET /api/v1/production-vehicles/{id}.
func (s *Server) GetProductionVehicle(ctx echo.Context) error {
	vehicleID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetProductionVehicleQuery(vehicleID)
	if err != nil {
		return s.fail(ctx, err)
	}

	v, err := s.queries.GetProductionVehicle.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, vehicleToAPI(v))
}

// ListProductionVehicles handles GET /api/v1/production-vehicles?productionId=.
func (s *Server) ListProductionVehicles(ctx echo.Context) error {
	productionID, err := queryID(ctx, "productionId")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListProductionVehiclesQuery(productionID)
	if err != nil {
		return s.fail(ctx, err)
	}

	vehicles, err := s.queries.ListProductionVehicles.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]ProductionVehicle, len(vehicles))
	for i, v := range vehicles {
		response[i] = vehicleToAPI(v)
	}

	return ctx.JSON(http.StatusOK, response)
}

func vehicleToAPI(v queries.ProductionVehicleResponse) ProductionVehicle {
	return ProductionVehicle{
		Id:           toAPI(v.ID),
		ProductionId: toAPI(v.ProductionID),
		SerialNumber: v.SerialNumber,
		CompletedAt:  v.CompletedAt,
	}
}
