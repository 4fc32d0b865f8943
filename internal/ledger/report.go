package ledger

import (
	"time"
)

// Range selects the time window for report aggregation
type Range string

const (
	RangeAll   Range = "all"   // full history
	RangeWeek  Range = "week"  // trailing 7 days
	RangeMonth Range = "month" // trailing calendar month
)

// ParseRange validates a report range string; an empty string means all-time
func ParseRange(s string) (Range, error) {
	switch Range(s) {
	case RangeAll, "":
		return RangeAll, nil
	case RangeWeek:
		return RangeWeek, nil
	case RangeMonth:
		return RangeMonth, nil
	default:
		return "", &ValidationError{Field: "range", Reason: "must be all, week or month"}
	}
}

// KidActivity aggregates one kid's point events inside a report window
type KidActivity struct {
	KidID  string `json:"kid_id"`
	Name   string `json:"name"`
	Earned int    `json:"earned"`
	Lost   int    `json:"lost"`
	Events int    `json:"events"`
}

// Report is the windowed per-kid earned/lost aggregation with family totals
type Report struct {
	Range       Range         `json:"range"`
	Kids        []KidActivity `json:"kids"`
	TotalEarned int           `json:"total_earned"`
	TotalLost   int           `json:"total_lost"`
	MostActive  *KidActivity  `json:"most_active,omitempty"`
}

// Report aggregates point history inside the given window: per kid the sum
// of positive events ("earned") and the absolute sum of negative events
// ("lost"), plus the kid with the most events in the window. Ties on event
// count go to the first-encountered kid.
func (s *Store) Report(rng Range) Report {
	now := time.Now()
	var cutoff time.Time // zero means no cutoff
	switch rng {
	case RangeWeek:
		cutoff = now.Add(-7 * 24 * time.Hour)
	case RangeMonth:
		cutoff = now.AddDate(0, -1, 0)
	}

	report := Report{Range: rng}
	for _, kid := range s.Kids() {
		activity := KidActivity{KidID: kid.ID, Name: kid.Name}
		for _, event := range kid.PointHistory {
			if !cutoff.IsZero() && event.Date.Before(cutoff) {
				continue
			}
			activity.Events++
			if event.Points > 0 {
				activity.Earned += event.Points
			} else {
				activity.Lost += -event.Points
			}
		}

		report.TotalEarned += activity.Earned
		report.TotalLost += activity.Lost
		if activity.Events > 0 && (report.MostActive == nil || activity.Events > report.MostActive.Events) {
			a := activity
			report.MostActive = &a
		}
		report.Kids = append(report.Kids, activity)
	}

	return report
}
