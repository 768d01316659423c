//go:build unit

package booking_test

import (
	"github.com/Evidive-blue/evidive/internal/pkg/clock"
	"github.com/Evidive-blue/evidive/tests/common/builder"
)

func fixedClock(b *builder.BookingBuilder) clock.Clock {
	return clock.NewMockClock(b.Now)
}
