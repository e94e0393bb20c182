// Package errs provides standardized error types for the eligibility service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside of its allowed range
//   - ObjectNotFoundError: For when an object cannot be found
//   - MalformedRuleError: For a service rule rejected while it is being loaded
//   - InvalidPackageError: For package measurements that cannot be evaluated
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works across layers
//
// MalformedRuleError is only ever produced at rule-load time. Evaluating a valid rule
// against a valid package cannot fail; "no eligible service" is an empty result, not an error.
package errs
