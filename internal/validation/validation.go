// Package validation checks user-supplied request structs with
// go-playground/validator and reports the first failure as an
// *apperror.ValidationError.
//
// Besides the stock tags it registers:
//
//	flexdate  a date ParseFlexibleDate accepts
//	money     a currency amount that parses, fits in cents and is not negative
//	percent   a decimal between 0 and 100
//	hunttype  one of the offered hunt types, any case
//
// A field may carry a `msg` tag; its text replaces the generated reason.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/Kjohnson1213/outfitter-finance/internal/apperror"
	"github.com/Kjohnson1213/outfitter-finance/internal/currencyutils"
	"github.com/Kjohnson1213/outfitter-finance/internal/dateutils"
	"github.com/Kjohnson1213/outfitter-finance/internal/models"
)

var (
	once     sync.Once
	instance *validator.Validate

	hundred = decimal.NewFromInt(100)
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their json name.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		mustRegister(v, "flexdate", isFlexDate)
		mustRegister(v, "money", isMoney)
		mustRegister(v, "percent", isPercent)
		mustRegister(v, "hunttype", isHuntType)
		instance = v
	})
	return instance
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func isFlexDate(fl validator.FieldLevel) bool {
	_, ok := dateutils.ParseFlexibleDate(fl.Field().String())
	return ok
}

// isMoney accepts what ParseMinorUnits can represent, so a valid total never
// silently becomes zero.
func isMoney(fl validator.FieldLevel) bool {
	d, ok := currencyutils.ParseAmount(fl.Field().String())
	return ok && !d.IsNegative()
}

func isPercent(fl validator.FieldLevel) bool {
	d, ok := currencyutils.ParseDecimal(fl.Field().String())
	return ok && !d.IsNegative() && d.LessThanOrEqual(hundred)
}

func isHuntType(fl validator.FieldLevel) bool {
	_, err := models.ParseHuntType(fl.Field().String())
	return err == nil
}

// Struct validates s. It returns nil or an *apperror.ValidationError for the
// first failing field.
func Struct(s interface{}) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	reason := message(fe)
	if custom := customMessage(s, fe); custom != "" {
		reason = custom
	}
	return &apperror.ValidationError{Field: fe.Field(), Reason: reason}
}

func customMessage(s interface{}, fe validator.FieldError) string {
	t := reflect.TypeOf(s)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return ""
	}
	f, ok := t.FieldByName(fe.StructField())
	if !ok {
		return ""
	}
	return f.Tag.Get("msg")
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "flexdate":
		return "Use YYYY-MM-DD or MM/DD/YYYY"
	case "money":
		return "Must be a non-negative amount"
	case "percent":
		return "Must be between 0 and 100"
	case "hunttype":
		return "Must be one of: Elk, Deer, Turkey, Bear"
	case "max":
		return "Must be at most " + fe.Param() + " characters"
	default:
		return "Invalid value"
	}
}
