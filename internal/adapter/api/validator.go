package api

import (
	"github.com/labstack/echo/v4"

	"huhu/pkg/validation"
)

// Validator adapts the shared struct validator to echo's c.Validate.
type Validator struct {
	validator *validation.Validator
}

var _ echo.Validator = (*Validator)(nil)

func NewValidator() *Validator {
	return &Validator{validator: validation.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validator.ValidateStruct(i)
}
