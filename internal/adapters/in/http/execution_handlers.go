package http

import (
	"errors"
	"net/http"
	"time"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/application/usecases/queries"
	"manufacturing/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

func planFromAPI(body ExecutionPlan) (commands.ExecutionPlanArgs, error) {
	productionID, errProduction := fromAPI("productionId", body.ProductionId)
	processTypeID, errProcessType := fromAPI("processTypeId", body.ProcessTypeId)
	equipmentID, errEquipment := fromAPI("equipmentId", body.EquipmentId)
	if err := errors.Join(errProduction, errProcessType, errEquipment); err != nil {
		return commands.ExecutionPlanArgs{}, err
	}

	return commands.ExecutionPlanArgs{
		ProductionID:   productionID,
		ProcessTypeID:  processTypeID,
		EquipmentID:    equipmentID,
		StartDate:      body.StartDate,
		EndDate:        body.EndDate,
		ExecutionOrder: body.ExecutionOrder,
	}, nil
}

// CreateProcessExecution handles POST /api/v1/process-executions.
func (s *Server) CreateProcessExecution(ctx echo.Context) error {
	var body ExecutionPlan
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	args, err := planFromAPI(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	executionID := kernel.NewUUID()
	cmd, err := commands.NewCreateProcessExecutionCommand(executionID, args)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.commands.CreateProcessExecution.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IdResponse{Id: toAPI(executionID)})
}

// UpdateProcessExecution handles PATCH /api/v1/process-executions/{id}.
func (s *Server) UpdateProcessExecution(ctx echo.Context) error {
	executionID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body ExecutionPlan
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	args, err := planFromAPI(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateProcessExecutionCommand(executionID, args)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.commands.UpdateProcessExecution.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, IdResponse{Id: toAPI(executionID)})
}

func (s *Server) OperateProcessExecution(ctx echo.Context) error {
	return s.changeExecutionStatus(ctx, commands.OperateExecution, time.Time{})
}

func (s *Server) StopProcessExecution(ctx echo.Context) error {
	return s.changeExecutionStatus(ctx, commands.StopExecution, time.Time{})
}

// CompleteProcessExecution handles PATCH /api/v1/process-executions/{id}/complete.
func (s *Server) CompleteProcessExecution(ctx echo.Context) error {
	var body ExecutionCompletion
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	return s.changeExecutionStatus(ctx, commands.CompleteExecution, body.EndDate)
}

func (s *Server) changeExecutionStatus(ctx echo.Context, action commands.ExecutionAction, endDate time.Time) error {
	executionID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeProcessExecutionStatusCommand(executionID, action, endDate)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.commands.ChangeProcessExecutionStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, IdResponse{Id: toAPI(executionID)})
}

// GetProcessExecution handles GET /api/v1/process-executions/{id}.
func (s *Server) GetProcessExecution(ctx echo.Context) error {
	executionID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetProcessExecutionQuery(executionID)
	if err != nil {
		return s.fail(ctx, err)
	}

	pe, err := s.queries.GetProcessExecution.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, executionToAPI(pe))
}

// ListProcessExecutions handles GET /api/v1/process-executions?productionId=.
func (s *Server) ListProcessExecutions(ctx echo.Context) error {
	productionID, err := queryID(ctx, "productionId")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListProcessExecutionsQuery(productionID)
	if err != nil {
		return s.fail(ctx, err)
	}

	executions, err := s.queries.ListProcessExecutions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]ProcessExecution, len(executions))
	for i, pe := range executions {
		response[i] = executionToAPI(pe)
	}

	return ctx.JSON(http.StatusOK, response)
}

func executionToAPI(pe queries.ProcessExecutionResponse) ProcessExecution {
	return ProcessExecution{
		Id:              toAPI(pe.ID),
		ProductionId:    toAPI(pe.ProductionID),
		ProcessTypeId:   toAPI(pe.ProcessTypeID),
		ProcessTypeName: pe.ProcessTypeName,
		EquipmentId:     toAPI(pe.EquipmentID),
		EquipmentName:   pe.EquipmentName,
		StartDate:       pe.StartDate,
		EndDate:         pe.EndDate,
		ExecutionOrder:  pe.ExecutionOrder,
		Status:          pe.Status.String(),
		DurationMinutes: pe.DurationMinutes,
	}
}
