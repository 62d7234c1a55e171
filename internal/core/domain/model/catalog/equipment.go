package catalog

import (
	"errors"
	"fmt"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
)

var ErrEquipmentIsNotConstructed = errors.New("Equipment must be created via NewEquipment constructor")

// EquipmentStatus is the operational health of a machine.
type EquipmentStatus int

const (
	UnknownEquipmentStatus EquipmentStatus = iota
	Normal
	Warning
	Stop
)

func getEquipmentStatusStrings() map[EquipmentStatus]string {
	return map[EquipmentStatus]string{
		UnknownEquipmentStatus: "Unknown",
		Normal:                 "Normal",
		Warning:                "Warning",
		Stop:                   "Stop",
	}
}

func (s EquipmentStatus) Validate() error {
	if s <= UnknownEquipmentStatus || s > Stop {
		return errs.NewValueIsOutOfRangeError("equipment status", int(s), int(Normal), int(Stop))
	}
	return nil
}

func (s EquipmentStatus) String() string {
	if str, ok := getEquipmentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func ParseEquipmentStatus(name string) (EquipmentStatus, error) {
	for status, str := range getEquipmentStatusStrings() {
		if status != UnknownEquipmentStatus && str == name {
			return status, nil
		}
	}
	return UnknownEquipmentStatus, errs.NewValueIsInvalidErrorWithCause(
		"equipment status", fmt.Errorf("%q is not a valid status", name),
	)
}

// Equipment is a machine serving one process type.
type Equipment struct {
	id            kernel.UUID
	name          string
	processTypeID kernel.UUID
	status        EquipmentStatus

	isConstructed bool
}

// NewEquipment creates equipment in Normal status.
func NewEquipment(id kernel.UUID, name string, processTypeID kernel.UUID) (*Equipment, error) {
	var errList []error
	errList = append(errList, id.Validate(), validateName("name", name))
	if err := processTypeID.Validate(); err != nil {
		errList = append(errList, errs.NewValueIsRequiredErrorWithCause("processTypeID", err))
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Equipment{
		id:            id,
		name:          name,
		processTypeID: processTypeID,
		status:        Normal,
		isConstructed: true,
	}, nil
}

func RestoreEquipment(
	id kernel.UUID,
	name string,
	processTypeID kernel.UUID,
	status EquipmentStatus,
) (*Equipment, error) {
	e, err := NewEquipment(id, name, processTypeID)
	if err != nil {
		return nil, err
	}
	if err = e.ChangeStatus(status); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Equipment) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEquipmentIsNotConstructed
	}
	return nil
}

func (e *Equipment) ID() kernel.UUID {
	return e.id
}

func (e *Equipment) Name() string {
	return e.name
}

func (e *Equipment) ProcessTypeID() kernel.UUID {
	return e.processTypeID
}

func (e *Equipment) Status() EquipmentStatus {
	return e.status
}

// ChangeStatus sets any valid status; equipment may move freely between
// Normal, Warning and Stop.
func (e *Equipment) ChangeStatus(status EquipmentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}
