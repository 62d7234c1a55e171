package catalog

import (
	"errors"
	"fmt"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
)

var ErrProcessTypeIsNotConstructed = errors.New("ProcessType must be created via NewProcessType constructor")

// ProcessType is one stage of the line (press, welding, painting...).
// processOrder positions the stage and is unique across process types.
type ProcessType struct {
	id           kernel.UUID
	name         string
	processOrder int
	active       bool

	isConstructed bool
}

// NewProcessType creates an active process type.
func NewProcessType(id kernel.UUID, name string, processOrder int) (*ProcessType, error) {
	pt := &ProcessType{active: true, isConstructed: true}

	if err := errors.Join(
		id.Validate(),
		pt.setName(name),
		pt.setProcessOrder(processOrder),
	); err != nil {
		return nil, err
	}

	pt.id = id
	return pt, nil
}

func RestoreProcessType(id kernel.UUID, name string, processOrder int, active bool) (*ProcessType, error) {
	pt, err := NewProcessType(id, name, processOrder)
	if err != nil {
		return nil, err
	}
	pt.active = active
	return pt, nil
}

func (pt *ProcessType) Validate() error {
	if pt == nil || !pt.isConstructed {
		return ErrProcessTypeIsNotConstructed
	}
	return nil
}

func (pt *ProcessType) ID() kernel.UUID {
	return pt.id
}

func (pt *ProcessType) Name() string {
	return pt.name
}

func (pt *ProcessType) ProcessOrder() int {
	return pt.processOrder
}

func (pt *ProcessType) IsActive() bool {
	return pt.active
}

// Deactivate hides the process type from the active list. Existing
// executions keep referring to it.
func (pt *ProcessType) Deactivate() {
	pt.active = false
}

func (pt *ProcessType) setName(name string) error {
	if err := validateName("name", name); err != nil {
		return err
	}
	pt.name = name
	return nil
}

func (pt *ProcessType) setProcessOrder(processOrder int) error {
	if processOrder <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"processOrder", fmt.Errorf("%d is not greater than 0", processOrder),
		)
	}
	pt.processOrder = processOrder
	return nil
}
