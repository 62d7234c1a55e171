package http

import (
	"net/http"
	"strconv"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/application/usecases/queries"
	"manufacturing/internal/core/domain/model/catalog"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateVehicleModel handles POST /api/v1/vehicle-models.
func (s *Server) CreateVehicleModel(ctx echo.Context) error {
	var body NewVehicleModel
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vehicleModelID := kernel.NewUUID()
	cmd, err := commands.NewCreateVehicleModelCommand(vehicleModelID, body.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.commands.CreateVehicleModel.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IdResponse{Id: toAPI(vehicleModelID)})
}

// GetVehicleModel handles GET /api/v1/vehicle-models/{id}.
func (s *Server) GetVehicleModel(ctx echo.Context) error {
	vehicleModelID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetVehicleModelQuery(vehicleModelID)
	if err != nil {
		return s.fail(ctx, err)
	}

	vm, err := s.queries.GetVehicleModel.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, VehicleModel{Id: toAPI(vm.ID), Name: vm.Name})
}

// CreateProcessType handles POST /api/v1/process-types.
func (s *Server) CreateProcessType(ctx echo.Context) error {
	var body NewProcessType
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	processTypeID := kernel.NewUUID()
	cmd, err := commands.NewCreateProcessTypeCommand(processTypeID, body.Name, body.ProcessOrder)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.commands.CreateProcessType.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IdResponse{Id: toAPI(processTypeID)})
}

// DeactivateProcessType handles PATCH /api/v1/process-types/{id}/deactivate.
func (s *Server) DeactivateProcessType(ctx echo.Context) error {
	processTypeID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeactivateProcessTypeCommand(processTypeID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.commands.DeactivateProcessType.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, IdResponse{Id: toAPI(processTypeID)})
}

// ListProcessTypes handles GET /api/v1/process-types?active=true. Active
// types come back in process order.
func (s *Server) ListProcessTypes(ctx echo.Context) error {
	raw, err := queryString(ctx, "active")
	if err != nil {
		return s.fail(ctx, err)
	}

	activeOnly := false
	if raw != nil {
		if activeOnly, err = strconv.ParseBool(*raw); err != nil {
			return s.fail(ctx, errs.NewValueIsInvalidErrorWithCause("active", err))
		}
	}

	processTypes, err := s.queries.ListProcessTypes.Handle(
		ctx.Request().Context(),
		queries.NewListProcessTypesQuery(activeOnly),
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]ProcessType, len(processTypes))
	for i, pt := range processTypes {
		response[i] = ProcessType{
			Id:           toAPI(pt.ID),
			Name:         pt.Name,
			ProcessOrder: pt.ProcessOrder,
			Active:       pt.Active,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateEquipment handles POST /api/v1/equipment.
func (s *Server) CreateEquipment(ctx echo.Context) error {
	var body NewEquipment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	processTypeID, err := fromAPI("processTypeId", body.ProcessTypeId)
	if err != nil {
		return s.fail(ctx, err)
	}

	equipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateEquipmentCommand(equipmentID, body.Name, processTypeID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.commands.CreateEquipment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IdResponse{Id: toAPI(equipmentID)})
}

// ChangeEquipmentStatus handles PATCH /api/v1/equipment/{id}/status.
func (s *Server) ChangeEquipmentStatus(ctx echo.Context) error {
	equipmentID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body EquipmentStatusChange
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := catalog.ParseEquipmentStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeEquipmentStatusCommand(equipmentID, status)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.commands.ChangeEquipmentStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, IdResponse{Id: toAPI(equipmentID)})
}

// ListEquipment handles GET /api/v1/equipment?processTypeId=&status=.
func (s *Server) ListEquipment(ctx echo.Context) error {
	processTypeID, err := queryID(ctx, "processTypeId")
	if err != nil {
		return s.fail(ctx, err)
	}

	raw, err := queryString(ctx, "status")
	if err != nil {
		return s.fail(ctx, err)
	}

	status, err := parseOptional(raw, catalog.ParseEquipmentStatus)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListEquipmentQuery(processTypeID, status)
	if err != nil {
		return s.fail(ctx, err)
	}

	equipment, err := s.queries.ListEquipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Equipment, len(equipment))
	for i, e := range equipment {
		response[i] = Equipment{
			Id:            toAPI(e.ID),
			Name:          e.Name,
			ProcessTypeId: toAPI(e.ProcessTypeID),
			Status:        e.Status.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
