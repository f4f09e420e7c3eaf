// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	"net/http"

	playgroundvalidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type customValidator struct {
	validate *playgroundvalidator.Validate
}

// New creates the request validator installed on every Echo server.
func New() echo.Validator {
	return &customValidator{
		validate: playgroundvalidator.New(),
	}
}

// Validate runs struct tag validation and maps failures to a 400.
func (v *customValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
