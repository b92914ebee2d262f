package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BindingErrors converte erros de binding do Gin em erros de campo
// para o documento de problema (RFC 7807)
func BindingErrors(err error) []ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	result := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		result = append(result, ValidationError{
			Field:   strings.ToLower(fe.Field()),
			Message: validationMessage(fe),
			Tag:     fe.Tag(),
		})
	}
	return result
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "invalid value"
	}
}
