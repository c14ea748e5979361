package config

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/colorhelper/internal/notation"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("notation", func(fl validator.FieldLevel) bool {
			_, ok := notation.Default().Lookup(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator instance for use outside the
// config package. It knows the "notation" rule.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
