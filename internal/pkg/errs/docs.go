// Package errs provides the error types shared by the catalog service.
//
// Every type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct carrying the details (e.g. ObjectNotFoundError)
//   - a constructor plus a WithCause variant
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The sentinels let the HTTP edge classify failures with errors.Is without
// knowing which layer produced them:
//   - ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange: input errors
//   - ErrIntegrityViolation: a write rejected by a database constraint
//   - ErrObjectNotFound: the addressed row does not exist
package errs
