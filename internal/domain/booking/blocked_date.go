package booking

import (
	"strings"

	"github.com/Evidive-blue/evidive/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBlockedDateRequired = errs.Sentinel("blocked_date or start_date required", errs.ErrValidation)
	ErrInvalidBlockedDate  = errs.Sentinel("invalid date format, expected YYYY-MM-DD", errs.ErrValidation)
	ErrDateAlreadyBlocked  = errs.Sentinel("this date is already blocked", errs.ErrConflict)
	ErrBlockedDateNotFound = errs.Sentinel("blocked date not found", errs.ErrNotFound)
)

// BlockedDate closes a center for a whole calendar day; every slot of that
// day reports ReasonDateBlocked and new bookings on it are refused.
type BlockedDate struct {
	CenterID uuid.UUID
	Date     Date
	Reason   *string
}

// NewBlockedDate drops a blank reason instead of storing an empty string.
func NewBlockedDate(centerID uuid.UUID, rawDate string, reason *string) (BlockedDate, error) {
	if strings.TrimSpace(rawDate) == "" {
		return BlockedDate{}, ErrBlockedDateRequired
	}
	date, err := ParseDate(rawDate)
	if err != nil {
		return BlockedDate{}, ErrInvalidBlockedDate
	}

	var r *string
	if reason != nil {
		if trimmed := strings.TrimSpace(*reason); trimmed != "" {
			r = &trimmed
		}
	}
	return BlockedDate{CenterID: centerID, Date: date, Reason: r}, nil
}
