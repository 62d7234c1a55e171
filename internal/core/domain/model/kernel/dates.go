package kernel

import (
	"fmt"
	"time"

	"manufacturing/internal/pkg/errs"
)

// ValidateDate rejects the zero time under paramName.
func ValidateDate(paramName string, t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError(paramName)
	}
	return nil
}

// ValidateNotBefore reports a ValueIsInvalidError for paramName when end is
// earlier than start. Equal instants are accepted.
func ValidateNotBefore(paramName string, start, end time.Time) error {
	if end.Before(start) {
		return errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("%s is before %s", end.Format(time.RFC3339), start.Format(time.RFC3339)),
		)
	}
	return nil
}
