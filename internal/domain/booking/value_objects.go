package booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Evidive-blue/evidive/internal/pkg/errs"
	"github.com/Evidive-blue/evidive/internal/pkg/patch"
)

const (
	dateLayout    = "2006-01-02"
	maxNoteLength = 2000
)

var (
	ErrInvalidDate     = errs.Sentinel("invalid booking date, expected YYYY-MM-DD", errs.ErrValidation)
	ErrInvalidTimeSlot = errs.Sentinel("invalid time slot, expected HH:MM", errs.ErrValidation)
	ErrNoteTooLong     = errs.Sentinel("client note is too long", errs.ErrValidation)
)

// Date is a calendar day without a time-of-day component.
type Date struct {
	t time.Time
}

func ParseDate(raw string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(raw))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

func DateOf(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) Time() time.Time        { return d.t }
func (d Date) String() string         { return d.t.Format(dateLayout) }
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) IsZero() bool           { return d.t.IsZero() }

// TimeSlot is a wall-clock start time in HH:MM form.
type TimeSlot struct {
	hour   int
	minute int
}

func ParseTimeSlot(raw string) (TimeSlot, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(raw))
	if err != nil {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{hour: t.Hour(), minute: t.Minute()}, nil
}

func NewTimeSlot(hour, minute int) TimeSlot {
	return TimeSlot{hour: hour, minute: minute}
}

func (s TimeSlot) String() string {
	return fmt.Sprintf("%02d:%02d", s.hour, s.minute)
}

func (s TimeSlot) Hour() int   { return s.hour }
func (s TimeSlot) Minute() int { return s.minute }

type Note struct {
	value string
}

// NewNote trims the note; a blank note is the same as none.
func NewNote(raw *string) (Note, error) {
	v := patch.Coalesce(patch.TrimmedOrNil(raw), "")
	if utf8.RuneCountInString(v) > maxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: v}, nil
}

func (n Note) String() string { return n.value }
func (n Note) IsEmpty() bool  { return n.value == "" }

// Ptr returns nil for an empty note so it is stored as NULL.
func (n Note) Ptr() *string {
	if n.value == "" {
		return nil
	}
	v := n.value
	return &v
}
