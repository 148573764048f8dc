package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Error kinds. Handlers switch on these with errors.Is.
var (
	ErrNotFound  = errors.New("not found")
	ErrConflict  = errors.New("conflict")
	ErrForbidden = errors.New("forbidden")
	ErrInvalid   = errors.New("invalid input")
)

var (
	ErrUserNotFound     = fmt.Errorf("user %w", ErrNotFound)
	ErrFieldNotFound    = fmt.Errorf("field %w", ErrNotFound)
	ErrSubfieldNotFound = fmt.Errorf("subfield %w", ErrNotFound)
	ErrProblemNotFound  = fmt.Errorf("problem %w", ErrNotFound)
	ErrProjectNotFound  = fmt.Errorf("project %w", ErrNotFound)
	ErrPostNotFound     = fmt.Errorf("post %w", ErrNotFound)
	ErrRequestNotFound  = fmt.Errorf("collaboration request %w", ErrNotFound)

	ErrRequestAlreadyResolved = fmt.Errorf("collaboration request already resolved: %w", ErrConflict)
	ErrEmailTaken             = fmt.Errorf("email already registered: %w", ErrConflict)
	ErrFieldExists            = fmt.Errorf("field already exists: %w", ErrConflict)

	ErrNotRequestReceiver = fmt.Errorf("only the receiver can respond to this request: %w", ErrForbidden)

	ErrInvalidUserType = fmt.Errorf("unknown user type: %w", ErrInvalid)
	ErrInvalidSeverity = fmt.Errorf("unknown severity: %w", ErrInvalid)
	ErrNameRequired    = fmt.Errorf("name is required: %w", ErrInvalid)
)

// lookupErr maps a missing row to notFound and wraps anything else.
func lookupErr(err error, notFound error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return fmt.Errorf("failed to find %s: %w", what, err)
}
