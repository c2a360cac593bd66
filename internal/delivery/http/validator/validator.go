// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"performiq/internal/domain/entity"
	"performiq/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates request DTOs bound by echo.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a validator with the project's custom tags registered.
//
//	provider:   one of the supported providers
//	event_type: one of the normalized event types
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("provider", func(fl validator.FieldLevel) bool {
		return entity.Provider(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("event_type", func(fl validator.FieldLevel) bool {
		return entity.EventType(fl.Field().String()).Valid()
	})

	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
