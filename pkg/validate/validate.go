// Package validate expone un singleton de go-playground/validator con los
// ajustes de la aplicación: nombres de campo JSON en los mensajes y soporte
// para montos decimal.Decimal en las tags numéricas.
package validate

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()

	// Usar el nombre de la tag json en los mensajes de error
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// decimal.Decimal se valida como float64 para poder usar gt/gte/required
	val.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return val
}

// Struct valida las tags `validate` de un DTO. Devuelve el error crudo del
// validador; el llamador arma el mensaje hacia el cliente.
func Struct(s interface{}) error {
	return v.Struct(s)
}
