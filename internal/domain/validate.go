package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateGeneralSettings checks an assembled GeneralSettings document
// against the struct tags before it is emitted.
func ValidateGeneralSettings(gs *GeneralSettings) error {
	if err := validate.Struct(gs); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidOutput, formatValidationError(err))
	}
	return nil
}

// ValidateCurrencySettings checks an assembled CurrencySettings document.
func ValidateCurrencySettings(cs *CurrencySettings) error {
	if err := validate.Struct(cs); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidOutput, formatValidationError(err))
	}
	return nil
}

// ValidateCategory checks a single category document.
func ValidateCategory(c *Category) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidOutput, formatValidationError(err))
	}
	return nil
}

// ValidateProduct checks a single product document.
func ValidateProduct(p *Product) error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidOutput, formatValidationError(err))
	}
	return nil
}

// formatValidationError flattens validator errors into a compact message
// naming the offending fields without leaking struct internals.
func formatValidationError(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	msg := ""
	for i, e := range verrs {
		if i > 0 {
			msg += "; "
		}
		msg += fmt.Sprintf("%s failed %q", e.Field(), e.Tag())
	}
	return msg
}
