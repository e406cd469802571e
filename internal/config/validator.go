package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/reveal/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("env"), ",")
			if name == "" || name == "-" {
				return field.Name
			}
			return EnvPrefix + name
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks value ranges and enumerations.
func Validate(cfg Config) error {
	if err := validatorInstance().Struct(cfg); err != nil {
		if ves, ok := err.(validator.ValidationErrors); ok {
			ve := ves[0]
			msg := fmt.Sprintf("%s failed validation for tag '%s' (got %v)", ve.Field(), ve.Tag(), ve.Value())
			return errors.NewValidationError(ve.Field(), msg, err)
		}
		return errors.NewValidationError("config", err.Error(), err)
	}
	return nil
}
