package webutil

import (
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"study_assist/internal/model"
)

// Validator is the shared validator instance for request DTOs.
var Validator *validator.Validate

// Trans translates validation errors into client-facing messages.
var Trans ut.Translator

func init() {
	Validator = validator.New()

	// Report field names from json tags so error messages match the wire
	// format.
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	var found bool
	Trans, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}

	if err := en_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}
}

// NewValidationAppError converts validation errors into an AppError carrying
// the first failing field and its translated message.
func NewValidationAppError(errs validator.ValidationErrors) *model.AppError {
	first := errs[0]
	return model.NewAppError(
		"VALIDATION_ERROR",
		first.Translate(Trans),
		first.Field(),
		model.ErrInvalidInput,
	)
}
