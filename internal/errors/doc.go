// Package errors provides structured error handling for the warband-api
// project.
//
// It distinguishes two taxonomies:
//   - Programming and data-integrity errors (unknown catalog keys, broken
//     configuration) travel as *Error values with a Code and optional
//     metadata. They abort the operation that hit them.
//   - User rule violations (an illegal warband) are not errors at all; the
//     engine returns them as values. See internal/engine.RuleViolation.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("warband not found")
//	err := errors.Internalf("unknown weapon %q", name)
//
// Adding metadata:
//
//	err := errors.NotFound("warband not found").
//	    WithMeta("warband_id", id)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get warband")
//	}
//
// Type checking:
//
//	if errors.IsNotFound(err) {
//	    // handle missing warband
//	}
//
// # Validation Errors
//
// Input validation (not game-rule validation) uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", input.Name, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # HTTP Integration
//
// Handlers map codes to status lines with Code.HTTPStatus:
//
//	status := errors.GetCode(err).HTTPStatus()
package errors
