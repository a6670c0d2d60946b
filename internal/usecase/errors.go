package usecase

import (
	"errors"
	"fmt"

	"atelier_ops/internal/domain/pricing"
	"atelier_ops/internal/domain/workflow"
)

// Error kinds returned by the use cases. Callers match them with errors.Is;
// wrapped context never changes the kind.
var (
	ErrTicketNotFound   = errors.New("ticket not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrMaterialNotFound = errors.New("material not found")
	ErrSettingsNotFound = errors.New("pricing settings not found")

	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidState = errors.New("invalid state")
	ErrNotOwner     = errors.New("caller does not own the product")
	ErrForbidden    = errors.New("actor role not allowed")

	ErrStorageFailure      = errors.New("storage failure")
	ErrPartialBatchFailure = errors.New("partial batch failure")

	// ErrSettingsSavedNotRepriced means UpdateSettings stored the new settings
	// but no record was repriced; a later BulkRecompute catches them up.
	ErrSettingsSavedNotRepriced = errors.New("pricing settings saved, records not repriced")

	ErrInvalidTransition = workflow.ErrInvalidTransition
	ErrUnknownSkillLevel = pricing.ErrUnknownSkillLevel
	ErrMissingRate       = pricing.ErrMissingRate
)

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorageFailure, op, err)
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
