package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/smsportal/console-gateway/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// Besides the built-in tags it knows "sessionkey" (one of the managed
// session store keys) and "route" (an absolute path).
func NewValidator() *echoValidator {
	v := validator.New()
	_ = v.RegisterValidation("sessionkey", func(fl validator.FieldLevel) bool {
		return domain.IsSessionKey(fl.Field().String())
	})
	_ = v.RegisterValidation("route", func(fl validator.FieldLevel) bool {
		return strings.HasPrefix(fl.Field().String(), "/")
	})
	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			msgs := make([]string, 0, len(ve))
			for _, fe := range ve {
				msgs = append(msgs, fieldError(fe))
			}
			return fmt.Errorf("%s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "sessionkey":
		return fmt.Sprintf("%s must be one of: %s, %s, %s", field, domain.KeyAuthToken, domain.KeyUserSession, domain.KeyAuthChecking)
	case "route":
		return field + " must be an absolute path"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
