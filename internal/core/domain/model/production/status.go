package production

import (
	"fmt"

	"manufacturing/internal/pkg/errs"
)

// Status is the lifecycle state of a production run.
//
//	Planned ──> InProgress ──> Completed
//	   │          │   ^
//	   │          v   │
//	   │         Stopped
//	   v
//	Cancelled
type Status int

const (
	Unknown Status = iota
	Planned
	InProgress
	Completed
	Stopped
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Planned:    "Planned",
		InProgress: "InProgress",
		Completed:  "Completed",
		Stopped:    "Stopped",
		Cancelled:  "Cancelled",
	}
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
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

func (s Status) Start() (Status, error) {
	return s.transition(InProgress, "start", Planned)
}

func (s Status) Complete() (Status, error) {
	return s.transition(Completed, "complete", InProgress)
}

func (s Status) Stop() (Status, error) {
	return s.transition(Stopped, "stop", InProgress)
}

func (s Status) Restart() (Status, error) {
	return s.transition(InProgress, "restart", Stopped)
}

func (s Status) Cancel() (Status, error) {
	return s.transition(Cancelled, "cancel", Planned)
}

func (s Status) transition(to Status, action string, from Status) (Status, error) {
	if s != from {
		return Unknown, errs.NewStateConflictErrorf("production", "%s is not a valid status to %s", s, action)
	}
	return to, nil
}
