package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ndewijer/surebet-tracker/internal/apperrors"
)

// MaxIDLength is the longest accepted operation or leg identifier.
const MaxIDLength = 64

// Operation IDs are generated as UUIDs, but imported documents may carry other
// identifiers, so any short token of URL-safe characters is accepted.
var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateID checks that id is a non-empty, URL-safe identifier.
func ValidateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return apperrors.ErrEmptyID
	}
	if len(id) > MaxIDLength || !idPattern.MatchString(id) {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidID, id)
	}
	return nil
}
