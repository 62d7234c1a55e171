package postgres

import (
	"manufacturing/internal/adapters/out/postgres/allocationrepo"
	"manufacturing/internal/adapters/out/postgres/catalogrepo"
	"manufacturing/internal/adapters/out/postgres/executionrepo"
	"manufacturing/internal/adapters/out/postgres/orderrepo"
	"manufacturing/internal/adapters/out/postgres/productionrepo"
	"manufacturing/internal/adapters/out/postgres/vehiclerepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table, index and foreign key. Owners are
// listed before the tables that reference them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalogrepo.VehicleModelDTO{},
		&catalogrepo.ProcessTypeDTO{},
		&catalogrepo.EquipmentDTO{},
		&orderrepo.OrderDTO{},
		&productionrepo.ProductionDTO{},
		&allocationrepo.AllocationDTO{},
		&executionrepo.ProcessExecutionDTO{},
		&vehiclerepo.ProductionVehicleDTO{},
	)
}
