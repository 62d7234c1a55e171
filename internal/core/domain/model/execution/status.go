package execution

import (
	"fmt"

	"manufacturing/internal/pkg/errs"
)

// Status of a single process step.
//
//	Ready ──> InProgress ──> Completed
//	             │   ^
//	             v   │
//	            Stopped
type Status int

const (
	Unknown Status = iota
	Ready
	InProgress
	Completed
	Stopped
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Ready:      "Ready",
		InProgress: "InProgress",
		Completed:  "Completed",
		Stopped:    "Stopped",
	}
}

func (s Status) Validate() error {
	if s <= Unknown || s > Stopped {
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

func ParseStatus(name string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", name))
}

// Operate starts a Ready step or resumes a Stopped one.
func (s Status) Operate() (Status, error) {
	if s != Ready && s != Stopped {
		return Unknown, s.conflict("operate")
	}
	return InProgress, nil
}

func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return Unknown, s.conflict("complete")
	}
	return Completed, nil
}

func (s Status) Stop() (Status, error) {
	if s != InProgress {
		return Unknown, s.conflict("stop")
	}
	return Stopped, nil
}

func (s Status) conflict(action string) error {
	return errs.NewStateConflictErrorf("process execution", "%s is not a valid status to %s", s, action)
}
