package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/campushub/api/internal/domain/common/errorz"
)

// translateError maps gorm's record-not-found onto the domain taxonomy so the
// service layer stays driver-agnostic.
func translateError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errorz.NotFound
	}
	return err
}
