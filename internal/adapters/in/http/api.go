package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Wire models of openapi.json. Statuses travel as their String() names.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type IdResponse struct {
	Id openapi_types.UUID `json:"id"`
}

type NewOrder struct {
	VehicleModelId openapi_types.UUID `json:"vehicleModelId"`
	OrderDate      time.Time          `json:"orderDate"`
	DueDate        time.Time          `json:"dueDate"`
	Quantity       int                `json:"quantity"`
}

type OrderInfo struct {
	OrderDate time.Time `json:"orderDate"`
	DueDate   time.Time `json:"dueDate"`
	Quantity  int       `json:"quantity"`
}

type Order struct {
	Id                openapi_types.UUID `json:"id"`
	VehicleModelId    openapi_types.UUID `json:"vehicleModelId"`
	OrderDate         time.Time          `json:"orderDate"`
	DueDate           time.Time          `json:"dueDate"`
	Quantity          int                `json:"quantity"`
	AllocatedQuantity int                `json:"allocatedQuantity"`
	Status            string             `json:"status"`
}

type NewProduction struct {
	StartDate time.Time `json:"startDate"`
}

type ProductionSchedule struct {
	StartDate time.Time `json:"startDate"`
}

type ProductionCompletion struct {
	EndDate       time.Time `json:"endDate"`
	SerialNumbers []string  `json:"serialNumbers"`
}

type Production struct {
	Id                openapi_types.UUID `json:"id"`
	StartDate         time.Time          `json:"startDate"`
	EndDate           *time.Time         `json:"endDate,omitempty"`
	Status            string             `json:"status"`
	AllocatedQuantity int                `json:"allocatedQuantity"`
	OpenExecutions    int                `json:"openExecutions"`
}

type ExecutionPlan struct {
	ProductionId   openapi_types.UUID `json:"productionId"`
	ProcessTypeId  openapi_types.UUID `json:"processTypeId"`
	EquipmentId    openapi_types.UUID `json:"equipmentId"`
	StartDate      time.Time          `json:"startDate"`
	EndDate        *time.Time         `json:"endDate,omitempty"`
	ExecutionOrder int                `json:"executionOrder"`
}

type ExecutionCompletion struct {
	EndDate time.Time `json:"endDate"`
}

type ProcessExecution struct {
	Id              openapi_types.UUID `json:"id"`
	ProductionId    openapi_types.UUID `json:"productionId"`
	ProcessTypeId   openapi_types.UUID `json:"processTypeId"`
	ProcessTypeName string             `json:"processTypeName"`
	EquipmentId     openapi_types.UUID `json:"equipmentId"`
	EquipmentName   string             `json:"equipmentName"`
	StartDate       time.Time          `json:"startDate"`
	EndDate         *time.Time         `json:"endDate,omitempty"`
	ExecutionOrder  int                `json:"executionOrder"`
	Status          string             `json:"status"`
	DurationMinutes int64              `json:"durationMinutes"`
}

type NewAllocation struct {
	OrderId      openapi_types.UUID `json:"orderId"`
	ProductionId openapi_types.UUID `json:"productionId"`
	Quantity     int                `json:"quantity"`
}

type Allocation struct {
	Id               openapi_types.UUID `json:"id"`
	OrderId          openapi_types.UUID `json:"orderId"`
	ProductionId     openapi_types.UUID `json:"productionId"`
	Quantity         int                `json:"quantity"`
	OrderStatus      string             `json:"orderStatus"`
	ProductionStatus string             `json:"productionStatus"`
}

type ProductionVehicle struct {
	Id           openapi_types.UUID `json:"id"`
	ProductionId openapi_types.UUID `json:"productionId"`
	SerialNumber string             `json:"serialNumber"`
	CompletedAt  time.Time          `json:"completedAt"`
}

type NewVehicleModel struct {
	Name string `json:"name"`
}

type VehicleModel struct {
	Id   openapi_types.UUID `json:"id"`
	Name string             `json:"name"`
}

type NewProcessType struct {
	Name         string `json:"name"`
	ProcessOrder int    `json:"processOrder"`
}

type ProcessType struct {
	Id           openapi_types.UUID `json:"id"`
	Name         string             `json:"name"`
	ProcessOrder int                `json:"processOrder"`
	Active       bool               `json:"active"`
}

type NewEquipment struct {
	Name          string             `json:"name"`
	ProcessTypeId openapi_types.UUID `json:"processTypeId"`
}

type EquipmentStatusChange struct {
	Status string `json:"status"`
}

type Equipment struct {
	Id            openapi_types.UUID `json:"id"`
	Name          string             `json:"name"`
	ProcessTypeId openapi_types.UUID `json:"processTypeId"`
	Status        string             `json:"status"`
}
