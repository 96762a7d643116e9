package service

import (
	"errors"
	"fmt"

	"github.com/lorenzobuompane/Software-Engineering-Project/internal/wms/repository"
	"gorm.io/gorm"
)

// Error kinds returned by the order engines. Test with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
	ErrStore        = errors.New("store failure")
)

func validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func invalidStatef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, fmt.Sprintf(format, args...))
}

func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStore, op, err)
}

// lookupError turns a repository miss into ErrNotFound for what, and any
// other failure into ErrStore.
func lookupError(err error, format string, args ...interface{}) error {
	what := fmt.Sprintf(format, args...)
	if errors.Is(err, repository.ErrNotFound) {
		return notFoundf("%s", what)
	}
	if typed(err) {
		return err
	}
	return storeError("find "+what, err)
}

// asStoreError leaves typed errors alone and wraps the rest, e.g. a failed commit.
func asStoreError(op string, err error) error {
	if err == nil || typed(err) {
		return err
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return validationf("%s: duplicate key", op)
	}
	return storeError(op, err)
}

func typed(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvalidState) ||
		errors.Is(err, ErrStore)
}
