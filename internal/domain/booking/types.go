package booking

import "github.com/Evidive-blue/evidive/internal/pkg/errs"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

var ErrUnknownStatus = errs.Sentinel("unknown booking status", errs.ErrValidation)

// transitions is the complete lifecycle; anything not listed is rejected.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseStatus decodes a stored or user-supplied status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", errs.Wrapf(ErrUnknownStatus, "status %q", raw)
	}
	return s, nil
}

// GuardFor lists the statuses a row must currently hold for a transition into
// next to apply. It is the WHERE status IN (...) guard of the conditional update.
func GuardFor(next Status) []Status {
	var from []Status
	for _, src := range []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted} {
		if src.CanTransitionTo(next) {
			from = append(from, src)
		}
	}
	return from
}

func StatusStrings(statuses []Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
