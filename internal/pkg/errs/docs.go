// Package errs provides standardized error types for the dispatch application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the outcomes a dispatch operation can have:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: malformed input
//   - ObjectNotFoundError: a referenced request or driver does not exist
//   - ForbiddenError: role or ownership mismatch
//   - ConflictError: a precondition on current state failed
//   - TransientStoreError: a retryable storage failure (deadlock, lock timeout)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrConflict) for errors.Is classification
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel
//
// TransientStoreError is the only outcome that is safe for a caller to blindly
// retry; every operation runs as one atomic unit of work, so nothing partial
// survives a failed attempt.
package errs
