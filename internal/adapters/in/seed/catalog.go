// Package seed reads catalog reference data from YAML files.
package seed

import (
	"errors"
	"fmt"
	"io"
	"os"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/domain/model/catalog"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	VehicleModels []vehicleModelEntry `yaml:"vehicleModels"`
	ProcessTypes  []processTypeEntry  `yaml:"processTypes"`
}

type vehicleModelEntry struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type processTypeEntry struct {
	ID           string           `yaml:"id"`
	Name         string           `yaml:"name"`
	ProcessOrder int              `yaml:"processOrder"`
	Equipment    []equipmentEntry `yaml:"equipment"`
}

type equipmentEntry struct {
	ID     string `yaml:"id"`
	Name   string `yaml:"name"`
	Status string `yaml:"status"`
}

// LoadCatalogFile parses the file at path into a seed command.
func LoadCatalogFile(path string) (commands.SeedCatalogCommand, error) {
	f, err := os.Open(path)
	if err != nil {
		return commands.SeedCatalogCommand{}, err
	}
	defer f.Close()

	return ReadCatalog(f)
}

// ReadCatalog parses a catalog document. Equipment without a status starts
// as Normal.
func ReadCatalog(r io.Reader) (commands.SeedCatalogCommand, error) {
	var file catalogFile
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return commands.SeedCatalogCommand{}, fmt.Errorf("decode catalog: %w", err)
	}

	var errList []error

	vehicleModels := make([]commands.SeedVehicleModel, 0, len(file.VehicleModels))
	for i, vm := range file.VehicleModels {
		id, err := parseID(fmt.Sprintf("vehicleModels[%d].id", i), vm.ID)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		vehicleModels = append(vehicleModels, commands.SeedVehicleModel{ID: id, Name: vm.Name})
	}

	processTypes := make([]commands.SeedProcessType, 0, len(file.ProcessTypes))
	for i, pt := range file.ProcessTypes {
		id, err := parseID(fmt.Sprintf("processTypes[%d].id", i), pt.ID)
		if err != nil {
			errList = append(errList, err)
			continue
		}

		seeded := commands.SeedProcessType{ID: id, Name: pt.Name, ProcessOrder: pt.ProcessOrder}
		for j, e := range pt.Equipment {
			equipment, err := parseEquipment(fmt.Sprintf("processTypes[%d].equipment[%d]", i, j), e)
			if err != nil {
				errList = append(errList, err)
				continue
			}
			seeded.Equipment = append(seeded.Equipment, equipment)
		}
		processTypes = append(processTypes, seeded)
	}

	if err := errors.Join(errList...); err != nil {
		return commands.SeedCatalogCommand{}, err
	}

	return commands.NewSeedCatalogCommand(vehicleModels, processTypes)
}

func parseEquipment(path string, e equipmentEntry) (commands.SeedEquipment, error) {
	id, err := parseID(path+".id", e.ID)
	if err != nil {
		return commands.SeedEquipment{}, err
	}

	status := catalog.Normal
	if e.Status != "" {
		if status, err = catalog.ParseEquipmentStatus(e.Status); err != nil {
			return commands.SeedEquipment{}, errs.NewValueIsInvalidErrorWithCause(path+".status", err)
		}
	}

	return commands.SeedEquipment{ID: id, Name: e.Name, Status: status}, nil
}

func parseID(path, raw string) (kernel.UUID, error) {
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(path)
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(path, err)
	}
	return id, nil
}
