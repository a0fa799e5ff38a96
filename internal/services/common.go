package services

import "wanderlust-backend/internal/domain"

// wrapInternal lets domain errors pass through untouched and wraps anything
// else (driver failures, aborted transactions) as infrastructure errors the
// caller may safely retry.
func wrapInternal(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case domain.IsValidation(err),
		domain.IsNotFound(err),
		domain.IsForbidden(err),
		domain.IsNoRooms(err),
		domain.IsInvalidState(err),
		domain.IsConflict(err),
		domain.IsInternal(err):
		return err
	}
	return domain.InternalError{Err: err}
}
