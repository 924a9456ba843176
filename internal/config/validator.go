package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	botkeepererrors "github.com/botkeeper/botkeeper/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	langCodePattern = regexp.MustCompile(`^[a-z]{2}$`)
	fileExtPattern  = regexp.MustCompile(`^\.[A-Za-z0-9]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("lang_code", func(fl validator.FieldLevel) bool {
			return langCodePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("file_ext", func(fl validator.FieldLevel) bool {
			return fileExtPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema validation on the configuration document.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return botkeepererrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

// convertValidationError normalizes validator errors into botkeeper validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve.Field())
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return botkeepererrors.NewValidationError(field, msg, err)
	}

	return botkeepererrors.NewValidationError("config", err.Error(), err)
}

var fieldNameBoundary = regexp.MustCompile(`([a-z0-9])([A-Z])`)

func yamlishFieldName(goField string) string {
	return strings.ToLower(fieldNameBoundary.ReplaceAllString(goField, "${1}_${2}"))
}
