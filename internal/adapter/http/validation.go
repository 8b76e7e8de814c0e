package http

import (
	"regexp"

	loanDomain "github.com/Jaswanth86/Credit/internal/domain/loan"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type ErrorResponse struct {
	Error   string                  `json:"error"`
	Details []loanDomain.FieldError `json:"details,omitempty"`
}

var (
	reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)
	rePhone = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// ids = 32-char lowercase hex
	_ = v.RegisterValidation("hex32", func(fl validator.FieldLevel) bool {
		return reHex32.MatchString(fl.Field().String())
	})
	// phone numbers: digits with optional + prefix
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return rePhone.MatchString(fl.Field().String())
	})
	// loan category enum
	_ = v.RegisterValidation("loantype", func(fl validator.FieldLevel) bool {
		return loanDomain.ValidType(loanDomain.Type(fl.Field().String()))
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []loanDomain.FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []loanDomain.FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]loanDomain.FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, loanDomain.FieldError{Field: field, Message: "is required"})
		case "hex32":
			out = append(out, loanDomain.FieldError{Field: field, Message: "must be 32-char lowercase hex"})
		case "phone":
			out = append(out, loanDomain.FieldError{Field: field, Message: "must be a valid phone number"})
		case "loantype":
			out = append(out, loanDomain.FieldError{Field: field, Message: "must be a valid loan category"})
		case "email":
			out = append(out, loanDomain.FieldError{Field: field, Message: "must be a valid email address"})
		case "gte":
			out = append(out, loanDomain.FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, loanDomain.FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		default:
			out = append(out, loanDomain.FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
