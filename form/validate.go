package form

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"vedic-admin/model"
)

// Errors maps a form field name to the message shown under it. The key
// "submit" carries a form-level message.
type Errors map[string]string

const SubmitKey = "submit"

func (e Errors) Any() bool {
	return len(e) > 0
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "notblank", validators.NotBlank)
	mustRegister(v, "intrange", intRange)
	mustRegister(v, "floatrange", floatRange)
	mustRegister(v, "minint", minInt)
	mustRegister(v, "contactstatus", func(fl validator.FieldLevel) bool {
		return model.ValidContactStatus(fl.Field().String())
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// check runs the struct rules of f and translates the failures through
// messages, keyed "field.tag". Only the first failing rule of a field is
// reported.
func check(f any, messages map[string]string) Errors {
	errs := Errors{}
	err := validate.Struct(f)
	if err == nil {
		return errs
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs[SubmitKey] = err.Error()
		return errs
	}
	for _, fe := range verrs {
		if _, ok := errs[fe.Field()]; ok {
			continue
		}
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		errs[fe.Field()] = msg
	}
	return errs
}

// intRange checks "lo hi" bounds on a string parsed the way a browser's
// parseInt would. A value with no leading number fails.
func intRange(fl validator.FieldLevel) bool {
	lo, hi, ok := bounds(fl.Param())
	if !ok {
		return false
	}
	n, ok := ParseInt(fl.Field().String())
	return ok && float64(n) >= lo && float64(n) <= hi
}

func floatRange(fl validator.FieldLevel) bool {
	lo, hi, ok := bounds(fl.Param())
	if !ok {
		return false
	}
	n, ok := ParseFloat(fl.Field().String())
	return ok && n >= lo && n <= hi
}

func minInt(fl validator.FieldLevel) bool {
	lo, ok := ParseFloat(fl.Param())
	if !ok {
		return false
	}
	n, ok := ParseInt(fl.Field().String())
	return ok && float64(n) >= lo
}

func bounds(param string) (float64, float64, bool) {
	loText, hiText, found := strings.Cut(param, " ")
	if !found {
		return 0, 0, false
	}
	lo, ok := ParseFloat(loText)
	if !ok {
		return 0, 0, false
	}
	hi, ok := ParseFloat(hiText)
	return lo, hi, ok
}
