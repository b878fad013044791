package domain

import "time"

const (
	scheduleDateLayout = "2006-01-02"
	scheduleTimeLayout = "15:04"

	// The check-in window is a fixed tolerance around the scheduled start,
	// independent of the lesson duration.
	CheckInOpensBefore = 15 * time.Minute
	CheckInClosesAfter = 30 * time.Minute

	// DefaultExpiryTolerance is how long past its start a lesson stays
	// visible before it counts as expired.
	DefaultExpiryTolerance = 30 * time.Minute
)

type WindowReason string

const (
	WindowReasonTooEarly  WindowReason = "too_early"
	WindowReasonTooLate   WindowReason = "too_late"
	WindowReasonAvailable WindowReason = "available"
)

// CheckInWindow is the live answer to "may this booking be checked in right now".
type CheckInWindow struct {
	Available bool         `json:"available"`
	Reason    WindowReason `json:"reason"`
}

// LessonStartsAt combines a calendar date ("2006-01-02") and a local
// time-of-day ("15:04") into a single UTC instant.
func LessonStartsAt(scheduledDate, scheduledTime string) (time.Time, error) {
	return time.Parse(scheduleDateLayout+" "+scheduleTimeLayout, scheduledDate+" "+scheduledTime)
}

// LessonExpired reports whether now is past start+tolerance. An unparseable
// schedule returns false: a bad record must never hide a lesson from view.
func LessonExpired(scheduledDate, scheduledTime string, tolerance time.Duration, now time.Time) bool {
	start, err := LessonStartsAt(scheduledDate, scheduledTime)
	if err != nil {
		return false
	}
	return now.After(start.Add(tolerance))
}

// CheckInEligibility evaluates the check-in window at now. The window opens
// CheckInOpensBefore the scheduled start and closes CheckInClosesAfter it.
// An unparseable schedule fails closed with too_late: unlike visibility,
// check-in requires certainty.
func CheckInEligibility(scheduledDate, scheduledTime string, now time.Time) CheckInWindow {
	start, err := LessonStartsAt(scheduledDate, scheduledTime)
	if err != nil {
		return CheckInWindow{Available: false, Reason: WindowReasonTooLate}
	}

	opens := start.Add(-CheckInOpensBefore)
	closes := start.Add(CheckInClosesAfter)

	switch {
	case now.Before(opens):
		return CheckInWindow{Available: false, Reason: WindowReasonTooEarly}
	case now.After(closes):
		return CheckInWindow{Available: false, Reason: WindowReasonTooLate}
	default:
		return CheckInWindow{Available: true, Reason: WindowReasonAvailable}
	}
}
