package handler

import (
	"github.com/tradeready/portal/internal/pkg/validation"
)

// echoValidator wraps the validation package so Echo can call c.Validate(req).
// Field failures surface as *domain.ValidationError and render as a 422 with
// the field list.
type echoValidator struct {
	v *validation.Validator
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator(v *validation.Validator) *echoValidator {
	if v == nil {
		v = validation.New()
	}
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	return ev.v.Struct(i)
}
