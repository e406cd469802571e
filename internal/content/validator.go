package content

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/reveal/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	anchorPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("anchor", func(fl validator.FieldLevel) bool {
			return anchorPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("anchor_ref", func(fl validator.FieldLevel) bool {
			ref := fl.Field().String()
			return strings.HasPrefix(ref, "#") && anchorPattern.MatchString(ref[1:])
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the schema and that section ids are unique.
func Validate(doc *Document) error {
	if doc == nil {
		return errors.NewValidationError("document", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(doc.Sections))
	for i, section := range doc.Sections {
		if first, ok := seen[section.ID]; ok {
			return errors.NewValidationError(
				fmt.Sprintf("sections[%d].id", i),
				fmt.Sprintf("duplicate section id %q (first at sections[%d])", section.ID, first),
				nil,
			)
		}
		seen[section.ID] = i
	}

	return nil
}

// convertValidationError normalizes validator errors into content validation errors.
func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return errors.NewValidationError(field, msg, err)
	}

	return errors.NewValidationError("document", err.Error(), err)
}

func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
