//go:build unit

package booking_test

import (
	"testing"

	"github.com/Evidive-blue/evidive/internal/domain/booking"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slotCmp = cmp.Comparer(func(a, b booking.TimeSlot) bool { return a.String() == b.String() })

func TestCandidateSlots(t *testing.T) {
	slots := booking.CandidateSlots()
	require.Len(t, slots, 10)
	assert.Equal(t, "08:00", slots[0].String())
	assert.Equal(t, "17:00", slots[len(slots)-1].String())
}

func TestIsSlotAvailable(t *testing.T) {
	assert.True(t, booking.IsSlotAvailable(false, false))
	assert.False(t, booking.IsSlotAvailable(false, true))
	assert.False(t, booking.IsSlotAvailable(true, false))
	assert.False(t, booking.IsSlotAvailable(true, true))
}

func TestEvaluateDay(t *testing.T) {
	t.Run("blocked day has no slots", func(t *testing.T) {
		got := booking.EvaluateDay(true, nil)
		want := booking.DayAvailability{Available: false, Reason: booking.ReasonDateBlocked, Slots: []booking.SlotAvailability{}}
		assert.Empty(t, cmp.Diff(want, got, slotCmp))
	})

	t.Run("taken slots are marked", func(t *testing.T) {
		got := booking.EvaluateDay(false, []booking.TimeSlot{booking.NewTimeSlot(8, 0), booking.NewTimeSlot(13, 0)})
		require.True(t, got.Available)
		assert.Empty(t, got.Reason)

		var taken []string
		for _, s := range got.Slots {
			if !s.Available {
				taken = append(taken, s.Slot.String())
			}
		}
		assert.Equal(t, []string{"08:00", "13:00"}, taken)
	})

	t.Run("fully booked day is unavailable", func(t *testing.T) {
		got := booking.EvaluateDay(false, booking.CandidateSlots())
		assert.False(t, got.Available)
		assert.Len(t, got.Slots, 10)
	})

	t.Run("off-grid bookings do not affect candidates", func(t *testing.T) {
		got := booking.EvaluateDay(false, []booking.TimeSlot{booking.NewTimeSlot(8, 30)})
		want := booking.EvaluateDay(false, nil)
		assert.Empty(t, cmp.Diff(want, got, slotCmp))
	})
}
