package http

import (
	"net/http"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/application/usecases/queries"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/production"

	"github.com/labstack/echo/v4"
)

// CreateProduction handles POST /api/v1/productions.
func (s *Server) CreateProduction(ctx echo.Context) error {
	var body NewProduction
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	productionID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductionCommand(productionID, body.StartDate)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.commands.CreateProduction.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IdResponse{Id: toAPI(productionID)})
}

// RescheduleProduction handles PATCH /api/v1/productions/{id}.
func (s *Server) RescheduleProduction(ctx echo.Context) error {
	productionID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body ProductionSchedule
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRescheduleProductionCommand(productionID, body.StartDate)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.commands.RescheduleProduction.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, IdResponse{Id: toAPI(productionID)})
}

func (s *Server) StartProduction(ctx echo.Context) error {
	return s.changeProductionStatus(ctx, commands.StartProduction)
}

func (s *Server) StopProduction(ctx echo.Context) error {
	return s.changeProductionStatus(ctx, commands.StopProduction)
}

func (s *Server) RestartProduction(ctx echo.Context) error {
	return s.changeProductionStatus(ctx, commands.RestartProduction)
}

func (s *Server) CancelProduction(ctx echo.Context) error {
	return s.changeProductionStatus(ctx, commands.CancelProduction)
}

func (s *Server) changeProductionStatus(ctx echo.Context, action commands.ProductionAction) error {
	productionID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeProductionStatusCommand(productionID, action)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.commands.ChangeProductionStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, IdResponse{Id: toAPI(productionID)})
}

// CompleteProduction handles PATCH /api/v1/productions/{id}/complete. It
// registers the built vehicles and completes every order the production
// fulfils.
func (s *Server) CompleteProduction(ctx echo.Context) error {
	productionID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body ProductionCompletion
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteProductionCommand(productionID, body.EndDate, body.SerialNumbers)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.commands.CompleteProduction.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, IdResponse{Id: toAPI(productionID)})
}

// GetProduction handles GET /api/v1/productions/{id}.
func (s *Server) GetProduction(ctx echo.Context) error {
	productionID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetProductionQuery(productionID)
	if err != nil {
		return s.fail(ctx, err)
	}

	p, err := s.queries.GetProduction.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productionToAPI(p))
}

// ListProductions handles GET /api/v1/productions?status=.
func (s *Server) ListProductions(ctx echo.Context) error {
	raw, err := queryString(ctx, "status")
	if err != nil {
		return s.fail(ctx, err)
	}

	status, err := parseOptional(raw, production.ParseStatus)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListProductionsQuery(status)
	if err != nil {
		return s.fail(ctx, err)
	}

	productions, err := s.queries.ListProductions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Production, len(productions))
	for i, p := range productions {
		response[i] = productionToAPI(p)
	}

	return ctx.JSON(http.StatusOK, response)
}

func productionToAPI(p queries.ProductionResponse) Production {
	return Production{
		Id:                toAPI(p.ID),
		StartDate:         p.StartDate,
		EndDate:           p.EndDate,
		Status:            p.Status.String(),
		AllocatedQuantity: p.AllocatedQuantity,
		OpenExecutions:    p.OpenExecutions,
	}
}
