// internal/utils/validator.go
package utils

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"

	"github.com/javajoker/storefront-admin/internal/i18n"
	"github.com/javajoker/storefront-admin/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(fieldLabel)
	validate.RegisterValidation("notblank", validators.NotBlank)
	validate.RegisterValidation("decimal", validateDecimal)
	validate.RegisterValidation("decimal_min", validateDecimalMin)
	validate.RegisterValidation("int", validateInt)
	validate.RegisterValidation("int_min", validateIntMin)
	validate.RegisterValidation("int_max", validateIntMax)
	validate.RegisterValidation("order_status", validateOrderStatus)
}

// ValidateStruct checks s against its validate tags. The returned error,
// when not nil, is a ValidationErrors.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errs := GetValidationErrors(s, err)
	if len(errs) == 0 {
		return err
	}
	return errs
}

// fieldLabel names fields in messages after their label tag.
func fieldLabel(field reflect.StructField) string {
	if label := field.Tag.Get("label"); label != "" {
		return label
	}
	return jsonName(field)
}

func jsonName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return strings.ToLower(field.Name)
	}
	return name
}

// Form inputs are raw strings; the numeric rules parse them first.
func validateDecimal(fl validator.FieldLevel) bool {
	_, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	return err == nil
}

func validateDecimalMin(fl validator.FieldLevel) bool {
	value, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return false
	}
	min, err := decimal.NewFromString(fl.Param())
	if err != nil {
		return false
	}
	return value.GreaterThanOrEqual(min)
}

func validateInt(fl validator.FieldLevel) bool {
	_, err := strconv.ParseInt(strings.TrimSpace(fl.Field().String()), 10, 64)
	return err == nil
}

func validateIntMin(fl validator.FieldLevel) bool {
	value, bound, ok := intAndParam(fl)
	return ok && value >= bound
}

func validateIntMax(fl validator.FieldLevel) bool {
	value, bound, ok := intAndParam(fl)
	return ok && value <= bound
}

func intAndParam(fl validator.FieldLevel) (int64, int64, bool) {
	value, err := strconv.ParseInt(strings.TrimSpace(fl.Field().String()), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	bound, err := strconv.ParseInt(fl.Param(), 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return value, bound, true
}

func validateOrderStatus(fl validator.FieldLevel) bool {
	return models.OrderStatus(fl.Field().String()).Valid()
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
	label   string
}

// ValidationErrors lists every failed field, in struct order. Its Error text
// is the first field's English message.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	return v[0].Message
}

// Localize returns a copy with every message rendered in lang.
func (v ValidationErrors) Localize(lang string) ValidationErrors {
	out := make(ValidationErrors, len(v))
	for i, e := range v {
		e.Message = validationMessage(lang, e.Tag, e.label, e.Param)
		out[i] = e
	}
	return out
}

func GetValidationErrors(s interface{}, err error) ValidationErrors {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	t := reflect.Indirect(reflect.ValueOf(s)).Type()

	var out ValidationErrors
	for _, e := range validationErrs {
		field := strings.ToLower(e.StructField())
		if t.Kind() == reflect.Struct {
			if sf, ok := t.FieldByName(e.StructField()); ok {
				field = jsonName(sf)
			}
		}
		out = append(out, ValidationError{
			Field:   field,
			Tag:     e.Tag(),
			Param:   e.Param(),
			Message: validationMessage("en", e.Tag(), e.Field(), e.Param()),
			label:   e.Field(),
		})
	}
	return out
}

func validationMessage(lang, tag, label, param string) string {
	switch tag {
	case "required", "notblank":
		return i18n.T(lang, i18n.KeyValidationRequired, label)
	case "email":
		return i18n.T(lang, i18n.KeyValidationEmail)
	case "decimal_min", "int_min":
		return i18n.T(lang, i18n.KeyValidationTooSmall, label, param)
	case "int_max":
		return i18n.T(lang, i18n.KeyValidationTooLarge, label, param)
	case "order_status":
		return i18n.T(lang, i18n.KeyValidationStatus, label)
	default:
		return i18n.T(lang, i18n.KeyValidationInvalid, label)
	}
}
