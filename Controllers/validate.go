package Controllers

import (
	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"
)

var (
	validate  *validator.Validate
	traductor ut.Translator
)

func init() {
	validate = validator.New()
	esLocale := es.New()
	uni := ut.New(esLocale, esLocale)
	traductor, _ = uni.GetTranslator("es")
	es_translations.RegisterDefaultTranslations(validate, traductor)
}

// Validar runs struct validation and returns the failures as Spanish
// messages, or nil when the input is valid.
func Validar(s interface{}) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	mensajes := make([]string, 0, len(errs))
	for _, e := range errs {
		mensajes = append(mensajes, e.Translate(traductor))
	}
	return mensajes
}
