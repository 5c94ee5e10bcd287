package validate

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/google/uuid"
)

var validate *validator.Validate

var translator ut.Translator

func init() {

	validate = validator.New()

	// Report fields by their wire name rather than the Go identifier.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	translator, _ = ut.New(en.New(), en.New()).GetTranslator("en")
	en_translations.RegisterDefaultTranslations(validate, translator)
}

// FieldErrors maps a wire field name to its translated failure message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	msgs := make([]string, 0, len(fe))
	for field, msg := range fe {
		msgs = append(msgs, field+": "+msg)
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}

// Check validates val against its struct tags, returning FieldErrors with
// one entry per failing field.
func Check(val any) error {
	if err := validate.Struct(val); err != nil {

		verrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}

		if len(verrors) < 1 {
			return nil
		}

		fields := make(FieldErrors, len(verrors))
		for _, verr := range verrors {
			fields[verr.Field()] = verr.Translate(translator)
		}

		return fields
	}

	return nil
}

// Fields extracts the per-field messages from an error produced by Check.
func Fields(err error) (map[string]string, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

func GenerateID() string {
	return uuid.NewString()
}
