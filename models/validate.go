package models

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Violation codes. Stable identifiers shared by the endpoint and the form.
const (
	CodeEmptyField  = "EmptyField"
	CodeWrongCount  = "WrongCount"
	CodeEmptyOption = "EmptyOption"
	CodeOutOfRange  = "OutOfRange"
)

// Violation is one reported reason a candidate record fails validation,
// scoped to a single field.
type Violation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report wire names (json tags), not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks a candidate record and returns every violation found.
// It never short-circuits: all failing fields are reported together.
// A nil slice means the record is valid. Pure; safe to call from both the
// endpoint and the form.
func Validate(req SubmitQuestionRequest) []Violation {
	var out []Violation

	// The id is checked by hand: the validator cannot tell a supplied empty
	// string from an absent field once the pointer is dereferenced.
	if req.ID != nil && *req.ID == "" {
		out = append(out, Violation{Field: "id", Code: CodeEmptyField, Message: "id must not be empty"})
	}

	// Element emptiness is checked by hand too, so each element fails
	// independently even when the count is wrong (a dive tag would be
	// skipped once len fails).
	for i, opt := range req.Options {
		if opt == "" {
			field := fmt.Sprintf("options[%d]", i)
			out = append(out, Violation{Field: field, Code: CodeEmptyOption, Message: field + " must not be empty"})
		}
	}

	err := validate.Struct(req)
	if err == nil {
		return out
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Only reachable with a broken schema definition, not bad input.
		return append(out, Violation{Code: CodeEmptyField, Message: err.Error()})
	}
	for _, fe := range verrs {
		out = append(out, toViolation(fe))
	}
	return out
}

// IndexOutOfRange is the violation for a correctAnswerIndex that is not an
// integer in range. The endpoint also reports it when the body carries a
// non-integer value for the field.
func IndexOutOfRange() Violation {
	return Violation{
		Field:   "correctAnswerIndex",
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("correctAnswerIndex must be an integer between 0 and %d", OptionCount-1),
	}
}

func toViolation(fe validator.FieldError) Violation {
	field := fieldPath(fe)
	switch {
	case field == "correctAnswerIndex":
		return IndexOutOfRange()
	case fe.Tag() == "len":
		return Violation{Field: field, Code: CodeWrongCount,
			Message: fmt.Sprintf("options must contain exactly %d entries", OptionCount)}
	default:
		return Violation{Field: field, Code: CodeEmptyField,
			Message: field + " must not be empty"}
	}
}

// fieldPath strips the request type prefix from the validator namespace,
// leaving the wire path, e.g. "options[2]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
