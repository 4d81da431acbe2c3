// Package errs provides standardized error types shared across the service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying the error details
//   - Constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Handlers classify failures with errors.Is against the sentinels instead of
// matching message strings.
package errs
