package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/Werneck0live/brhelpers/pkg/brasil"
)

var v *validator.Validate

// Tags customizadas, todas apoiadas no pacote brasil. Vazio passa (omitempty/required decidem).
var customTags = map[string]func(string) bool{
	"cpf":       brasil.ValidCPF,
	"cnpj":      brasil.ValidCNPJ,
	"document":  brasil.ValidDocument,
	"ddd":       brasil.ValidDDD,
	"phone_br":  validPhoneWithDDD,
	"date_br":   validDate,
	"number_br": validNumber,
}

var messages = map[string]string{
	"required":  "This field is required",
	"notblank":  "Must not be blank",
	"cpf":       "Invalid CPF",
	"cnpj":      "Invalid CNPJ",
	"document":  "Invalid CPF or CNPJ",
	"ddd":       "Invalid DDD",
	"phone_br":  "Invalid phone (use DDD + number, e.g. (11) 98888-8888)",
	"date_br":   "Invalid date (use dd/mm/yyyy or yyyy-mm-dd)",
	"number_br": "Invalid number (e.g. 1.234,56)",
}

func init() {
	v = validator.New(validator.WithRequiredStructEnabled())

	// nome do campo = tag json
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// só espaços conta como vazio (nome "   ")
	mustRegister("notblank", validators.NotBlank)

	for tag, fn := range customTags {
		fn := fn
		mustRegister(tag, func(fl validator.FieldLevel) bool {
			val := strings.TrimSpace(fl.Field().String())
			if val == "" {
				return true
			}
			return fn(val)
		})
	}
}

// mustRegister derruba o processo no init: tag não registrada quebra todo DTO que a usa.
func mustRegister(tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %q: %v", tag, err))
	}
}

// validPhoneWithDDD exige formato válido e DDD existente.
func validPhoneWithDDD(s string) bool {
	if !brasil.ValidPhone(s) {
		return false
	}
	ddd := brasil.PhoneDDD(s)
	return ddd != "" && brasil.ValidDDD(ddd)
}

func validDate(s string) bool {
	_, err := brasil.ParseDate(s, "")
	return err == nil
}

func validNumber(s string) bool {
	_, err := brasil.ParseNumber(s, 0)
	return err == nil
}

// Validate devolve map[campo][]mensagens; nil quando está tudo certo.
func Validate(s any) (map[string][]string, error) {
	err := v.Struct(s)
	if err == nil {
		return nil, nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil, err
	}
	out := make(map[string][]string)
	for _, e := range ve {
		field := e.Field()
		out[field] = append(out[field], message(e))
	}
	return out, nil
}

func message(e validator.FieldError) string {
	if m, ok := messages[e.Tag()]; ok {
		return m
	}
	switch e.Tag() {
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters", e.Param())
		}
		return fmt.Sprintf("Must be at most %s", e.Param())
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("Must be at least %s", e.Param())
	case "oneof":
		return "Value is not allowed"
	}
	return e.Error()
}
