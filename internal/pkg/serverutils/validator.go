// FILE: internal/pkg/serverutils/validator.go
package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and maps the first failure to
// a 400 APIError.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok && len(ve) > 0 {
			f := ve[0]
			return NewBadRequest(fmt.Sprintf("Field '%s' failed on the '%s' rule", f.Field(), f.Tag()))
		}
		return NewBadRequest("Invalid request payload")
	}
	return nil
}
