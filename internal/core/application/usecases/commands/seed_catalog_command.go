package commands

import (
	"context"
	"errors"

	"manufacturing/internal/core/domain/model/catalog"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
	"manufacturing/internal/pkg/guard"
	"manufacturing/internal/pkg/logger"
)

var ErrSeedCatalogCommandIsNotConstructed = errors.New(
	"SeedCatalogCommand must be created via NewSeedCatalogCommand constructor",
)

type (
	SeedVehicleModel struct {
		ID   kernel.UUID
		Name string
	}

	SeedEquipment struct {
		ID     kernel.UUID
		Name   string
		Status catalog.EquipmentStatus
	}

	SeedProcessType struct {
		ID           kernel.UUID
		Name         string
		ProcessOrder int
		Equipment    []SeedEquipment
	}
)

// SeedCatalogCommand loads reference data. Entries whose id already exists
// are left untouched, so the same seed can be applied repeatedly.
type SeedCatalogCommand struct { //nolint:recvcheck //using for validation
	vehicleModels []*catalog.VehicleModel
	processTypes  []*catalog.ProcessType
	equipment     []*catalog.Equipment

	guard guard.ConstructorGuard
}

func NewSeedCatalogCommand(
	vehicleModels []SeedVehicleModel,
	processTypes []SeedProcessType,
) (SeedCatalogCommand, error) {
	cmd := SeedCatalogCommand{guard: guard.NewConstructorGuard()}
	var errList []error

	for _, vm := range vehicleModels {
		m, err := catalog.NewVehicleModel(vm.ID, vm.Name)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		cmd.vehicleModels = append(cmd.vehicleModels, m)
	}

	orders := make(map[int]struct{}, len(processTypes))
	for _, spt := range processTypes {
		pt, err := catalog.NewProcessType(spt.ID, spt.Name, spt.ProcessOrder)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		if _, ok := orders[pt.ProcessOrder()]; ok {
			errList = append(errList, errs.NewDuplicateError("processOrder", pt.ProcessOrder()))
			continue
		}
		orders[pt.ProcessOrder()] = struct{}{}
		cmd.processTypes = append(cmd.processTypes, pt)

		for _, se := range spt.Equipment {
			e, eqErr := newSeedEquipment(se, pt.ID())
			if eqErr != nil {
				errList = append(errList, eqErr)
				continue
			}
			cmd.equipment = append(cmd.equipment, e)
		}
	}

	if err := errors.Join(errList...); err != nil {
		return SeedCatalogCommand{}, err
	}
	return cmd, nil
}

func newSeedEquipment(se SeedEquipment, processTypeID kernel.UUID) (*catalog.Equipment, error) {
	status := se.Status
	if status == catalog.UnknownEquipmentStatus {
		status = catalog.Normal
	}
	return catalog.RestoreEquipment(se.ID, se.Name, processTypeID, status)
}

func (c SeedCatalogCommand) Validate() error {
	return c.guard.Validate(ErrSeedCatalogCommandIsNotConstructed)
}

type SeedCatalogCommandHandler struct {
	uowFactory CatalogUoWFactory
	log        *logger.Logger
}

func NewSeedCatalogCommandHandler(uowFactory CatalogUoWFactory, log *logger.Logger) SeedCatalogCommandHandler {
	return SeedCatalogCommandHandler{
		uowFactory: uowFactory,
		log:        log.With("component", "seed-catalog"),
	}
}

func (h *SeedCatalogCommandHandler) Handle(ctx context.Context, cmd SeedCatalogCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	added := 0

	for _, m := range cmd.vehicleModels {
		created, err := addIfMissing(ctx, func(ctx context.Context) error {
			_, getErr := uow.VehicleModelRepository().Get(ctx, m.ID())
			return getErr
		}, func(ctx context.Context) error {
			return uow.VehicleModelRepository().Add(ctx, m)
		})
		if err != nil {
			return err
		}
		added += created
	}

	for _, pt := range cmd.processTypes {
		created, err := addIfMissing(ctx, func(ctx context.Context) error {
			_, getErr := uow.ProcessTypeRepository().Get(ctx, pt.ID())
			return getErr
		}, func(ctx context.Context) error {
			return addProcessType(ctx, uow, pt)
		})
		if err != nil {
			return err
		}
		added += created
	}

	for _, e := range cmd.equipment {
		created, err := addIfMissing(ctx, func(ctx context.Context) error {
			_, getErr := uow.EquipmentRepository().Get(ctx, e.ID())
			return getErr
		}, func(ctx context.Context) error {
			return uow.EquipmentRepository().Add(ctx, e)
		})
		if err != nil {
			return err
		}
		added += created
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	h.log.Info("catalog seeded",
		"vehicle_models", len(cmd.vehicleModels),
		"process_types", len(cmd.processTypes),
		"equipment", len(cmd.equipment),
		"added", added,
	)
	return nil
}

// addIfMissing runs add when get reports the entry as not found.
func addIfMissing(ctx context.Context, get, add func(context.Context) error) (int, error) {
	err := get(ctx)
	if err == nil {
		return 0, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return 0, err
	}
	if err = add(ctx); err != nil {
		return 0, err
	}
	return 1, nil
}
