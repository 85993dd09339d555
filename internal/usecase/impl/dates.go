package impl

import (
	"time"

	domainerrors "wishlist/internal/domain/errors"

	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// parseDate converts a calendar date string (YYYY-MM-DD) into a *time.Time.
// An empty string means the caller did not supply the field and yields nil.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "invalid date %q", value)
	}

	return &parsed, nil
}
