// Package errs holds the error taxonomy shared by the domain, the use cases
// and the adapters of the manufacturing service.
//
// Every kind is a sentinel plus a struct carrying details:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: bad input (see IsValidation)
//   - StateConflictError: the operation is not allowed in the current lifecycle state
//   - ObjectNotFoundError: a lookup by id matched nothing
//   - DuplicateError: a uniqueness rule was violated
//
// Unwrap returns the sentinel, so callers classify with errors.Is and inspect
// details with errors.As.
package errs
