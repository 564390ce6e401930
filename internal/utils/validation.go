package utils

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Tax ids are stored bare: 11 digits for a person, 14 for a company.
var taxIDPattern = regexp.MustCompile(`^(\d{11}|\d{14})$`)

// IsValidTaxID reports whether the value is a well-formed tax id.
func IsValidTaxID(value string) bool {
	return taxIDPattern.MatchString(value)
}

// RegisterCustomValidators installs the custom binding rules on gin's
// validator engine. Call once at startup before routes are registered.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("taxid", func(fl validator.FieldLevel) bool {
		return IsValidTaxID(fl.Field().String())
	})
}
