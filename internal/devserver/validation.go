package devserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const maxDecimals = 2

// decimalText holds a salary as sent by the client: a JSON number or a
// quoted decimal. Parsing is left to the validator so a bad value becomes a
// field error rather than a malformed body.
type decimalText string

func (d *decimalText) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*d = decimalText(strings.TrimSpace(s))
		return nil
	}
	*d = decimalText(strings.TrimSpace(string(b)))
	return nil
}

func (d decimalText) float() float64 {
	v, _ := strconv.ParseFloat(string(d), 64)
	return v
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	custom := map[string]validator.Func{
		"notblank": func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		},
		"decimal": func(fl validator.FieldLevel) bool {
			f, err := strconv.ParseFloat(fl.Field().String(), 64)
			return err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
		},
		"positive": func(fl validator.FieldLevel) bool {
			f, err := strconv.ParseFloat(fl.Field().String(), 64)
			return err == nil && f > 0
		},
		"places": func(fl validator.FieldLevel) bool {
			return decimalPlaces(fl.Field().String()) <= maxDecimals
		},
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register %s validator: %v", tag, err))
		}
	}
	return v
}

func decimalPlaces(text string) int {
	if i := strings.IndexAny(text, "eE"); i >= 0 {
		exp, err := strconv.Atoi(text[i+1:])
		if err != nil {
			return 0
		}
		n := decimalPlaces(text[:i]) - exp
		if n < 0 {
			return 0
		}
		return n
	}
	_, frac, ok := strings.Cut(text, ".")
	if !ok {
		return 0
	}
	return len(strings.TrimRight(frac, "0"))
}

// checkStruct validates req and converts failures into 422 detail entries,
// one per field, in declaration order.
func checkStruct(req any) []fieldError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []fieldError{{Loc: []any{"body"}, Msg: err.Error(), Type: "value_error"}}
	}

	out := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, toFieldError(fe))
	}
	return out
}

func toFieldError(fe validator.FieldError) fieldError {
	msg, typ := describe(fe)
	return fieldError{Loc: []any{"body", fe.Field()}, Msg: msg, Type: typ}
}

func describe(fe validator.FieldError) (string, string) {
	switch fe.Tag() {
	case "required":
		return "Field required", "missing"
	case "min":
		return fmt.Sprintf("String should have at least %s character", fe.Param()), "string_too_short"
	case "max":
		return fmt.Sprintf("String should have at most %s characters", fe.Param()), "string_too_long"
	case "notblank":
		return "Value error, Field cannot be empty or whitespace only", "value_error"
	case "gte":
		return "Input should be greater than or equal to " + fe.Param(), "greater_than_equal"
	case "lte":
		return "Input should be less than or equal to " + fe.Param(), "less_than_equal"
	case "decimal":
		return "Input should be a valid decimal", "decimal_parsing"
	case "positive":
		return "Input should be greater than 0", "greater_than"
	case "places":
		return "Decimal input should have no more than 2 decimal places", "decimal_max_places"
	}
	return "Value error, " + fe.Error(), "value_error"
}

// validateCreate checks every field and returns the cleaned cat together with
// all failures found.
func validateCreate(req createRequest) (Cat, []fieldError) {
	if errs := checkStruct(req); len(errs) > 0 {
		return Cat{}, errs
	}
	return Cat{
		Name:              strings.TrimSpace(*req.Name),
		YearsOfExperience: *req.YearsOfExperience,
		Breed:             strings.TrimSpace(*req.Breed),
		Salary:            req.Salary.float(),
	}, nil
}
