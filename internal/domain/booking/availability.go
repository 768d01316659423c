package booking

const (
	firstSlotHour = 8
	lastSlotHour  = 17

	ReasonDateBlocked = "date_blocked"
)

// CandidateSlots are the hourly start times offered per day.
func CandidateSlots() []TimeSlot {
	slots := make([]TimeSlot, 0, lastSlotHour-firstSlotHour+1)
	for h := firstSlotHour; h <= lastSlotHour; h++ {
		slots = append(slots, NewTimeSlot(h, 0))
	}
	return slots
}

type SlotAvailability struct {
	Slot      TimeSlot
	Available bool
}

type DayAvailability struct {
	Available bool
	Reason    string
	Slots     []SlotAvailability
}

// IsSlotAvailable: a blocked day has no free slot; otherwise the slot is free
// unless a non-cancelled booking occupies it.
func IsSlotAvailable(dateBlocked, slotTaken bool) bool {
	return !dateBlocked && !slotTaken
}

// EvaluateDay builds the per-slot view for a day given the occupied slots.
func EvaluateDay(dateBlocked bool, taken []TimeSlot) DayAvailability {
	if dateBlocked {
		return DayAvailability{Available: false, Reason: ReasonDateBlocked, Slots: []SlotAvailability{}}
	}

	occupied := make(map[TimeSlot]struct{}, len(taken))
	for _, s := range taken {
		occupied[s] = struct{}{}
	}

	day := DayAvailability{}
	for _, slot := range CandidateSlots() {
		_, isTaken := occupied[slot]
		free := IsSlotAvailable(false, isTaken)
		day.Slots = append(day.Slots, SlotAvailability{Slot: slot, Available: free})
		day.Available = day.Available || free
	}
	return day
}
