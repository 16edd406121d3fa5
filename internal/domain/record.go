package domain

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

// TranslationRecord is one localized string under evaluation.
type TranslationRecord struct {
	Key      string `json:"key"    validate:"required"`
	Source   string `json:"source"`
	Target   string `json:"target"`
	Language string `json:"lang"   validate:"required,langtag"`
}

var (
	recordValidator     *validator.Validate
	recordValidatorOnce sync.Once
)

func getRecordValidator() *validator.Validate {
	recordValidatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// Codes are opaque identifiers: well-formed but unregistered tags
		// such as "zz" or "en-XA" are accepted.
		_ = v.RegisterValidation("langtag", func(fl validator.FieldLevel) bool {
			_, err := language.Parse(fl.Field().String())
			var unknown language.ValueError
			return err == nil || errors.As(err, &unknown)
		})
		recordValidator = v
	})
	return recordValidator
}

// Validate checks the record shape. index is the record's position in its
// batch and is only used to build the error.
func (r TranslationRecord) Validate(index int) error {
	err := getRecordValidator().Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &RecordError{Index: index, Key: r.Key, Field: "record", Reason: err.Error()}
	}

	fe := verrs[0]
	re := &RecordError{Index: index, Key: r.Key, Field: fieldName(fe.Field())}
	switch fe.Tag() {
	case "required":
		re.Reason = "is required"
	case "langtag":
		re.Reason = "is not a well-formed language code: " + r.Language
	default:
		re.Reason = "failed " + fe.Tag() + " validation"
	}
	return re
}

func fieldName(structField string) string {
	switch structField {
	case "Key":
		return "key"
	case "Language":
		return "lang"
	case "Source":
		return "source"
	case "Target":
		return "target"
	default:
		return structField
	}
}
