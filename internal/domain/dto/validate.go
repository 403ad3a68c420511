package dto

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/campushub/api/internal/domain/common/errorz"
)

var validate = validator.New()

// check runs struct-tag validation and folds failures into the invalid-input
// error class so the transport layer maps them to 400.
func check(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", errorz.InvalidInput, err)
	}
	return nil
}
