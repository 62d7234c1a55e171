package order

import (
	"fmt"

	"manufacturing/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Created <──> PartiallyAllocated <──> FullyAllocated ──> Completed
//	   │                 │                     │
//	   └─────────────────┴──────> Cancelled <──┘
//
// Created, PartiallyAllocated and FullyAllocated are derived from the
// allocated quantity (see DeriveStatus). Cancelled and Completed are set
// explicitly and are never re-derived.
type Status int

const (
	Unknown Status = iota
	Created
	PartiallyAllocated
	FullyAllocated
	Cancelled
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:            "Unknown",
		Created:            "Created",
		PartiallyAllocated: "PartiallyAllocated",
		FullyAllocated:     "FullyAllocated",
		Cancelled:          "Cancelled",
		Completed:          "Completed",
	}
}

// Validate rejects Unknown and any value outside of the declared constants.
func (s Status) Validate() error {
	if s <= Unknown || s > Completed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus maps a name produced by String back to its Status.
func ParseStatus(name string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", name))
}

// IsTerminal reports whether the status is no longer driven by allocations.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s == Completed
}

// Cancel moves any non completed status to Cancelled. Cancelling twice is
// allowed and keeps Cancelled.
func (s Status) Cancel() (Status, error) {
	if s == Completed {
		return Unknown, errs.NewStateConflictErrorf("order", "%s is not a valid status to cancel", s)
	}
	return Cancelled, nil
}

// Complete is only allowed from FullyAllocated.
func (s Status) Complete() (Status, error) {
	if s != FullyAllocated {
		return Unknown, errs.NewStateConflictErrorf("order", "%s is not a valid status to complete", s)
	}
	return Completed, nil
}

// DeriveStatus returns the status an order with quantity and allocated sum
// should have. Terminal statuses are returned unchanged.
func DeriveStatus(allocated, quantity int, current Status) Status {
	if current.IsTerminal() {
		return current
	}

	switch {
	case allocated <= 0:
		return Created
	case allocated < quantity:
		return PartiallyAllocated
	default:
		return FullyAllocated
	}
}
