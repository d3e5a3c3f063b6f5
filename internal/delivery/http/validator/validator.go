// Package validator wires go-playground/validator into echo's Validator hook.
package validator

import (
	domainerrors "gatekeeper/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type customValidator struct {
	validate *playground.Validate
}

// New builds the echo.Validator used by every handler's c.Validate call.
func New() echo.Validator {
	return &customValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks the struct tags and converts failures into the domain's
// validation error so the error middleware renders a proper 400 envelope.
func (v *customValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
