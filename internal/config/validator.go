package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	colorerrors "github.com/alexisbeaulieu97/colorhelper/pkg/errors"
)

// ValidateConfig performs schema validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return colorerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return ConvertValidationError(err)
	}

	return nil
}

// ConvertValidationError turns the first validator failure into a
// ValidationError naming the offending field.
func ConvertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "notation" {
			msg = fmt.Sprintf("%s: unknown notation %q", field, ve.Value())
		}
		return colorerrors.NewValidationError(field, msg, err)
	}

	return colorerrors.NewValidationError("config", err.Error(), err)
}

var fieldNames = map[string]string{
	"StoreDir":        "store_dir",
	"StatsPath":       "stats_path",
	"FormatsOrder":    "formats_order",
	"LogLevel":        "log_level",
	"DefaultNotation": "default_notation",
}

func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		base, index, _ := strings.Cut(part, "[")
		if name, ok := fieldNames[base]; ok {
			base = name
		} else {
			base = strings.ToLower(base)
		}
		if index != "" {
			base += "[" + index
		}
		parts[i] = base
	}
	return strings.Join(parts, ".")
}
