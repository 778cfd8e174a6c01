package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	tavlaerrors "github.com/kiran-8287/tavla/pkg/errors"
)

// ValidateSettings performs schema validation on the settings document.
func ValidateSettings(settings *Settings) error {
	if settings == nil {
		return tavlaerrors.NewValidationError("settings", "settings document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(settings); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return tavlaerrors.NewValidationError(field, msg, err)
	}

	return tavlaerrors.NewValidationError("settings", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
