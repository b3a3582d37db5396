package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError indicates a required profile or posting field is
// missing or malformed at the boundary. The operation is aborted before
// persistence or matching.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// validateStruct runs validator tags and converts the first failure
// into a *ValidationError.
func validateStruct(v any) error {
	validate := validator.New()
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		fe := verrs[0]
		return &ValidationError{
			Field:   strings.ToLower(fe.Field()),
			Message: fmt.Sprintf("failed %q constraint", fe.Tag()),
		}
	}
	return &ValidationError{Field: "struct", Message: err.Error()}
}
