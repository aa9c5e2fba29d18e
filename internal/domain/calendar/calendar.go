// Package calendar detects scheduling conflicts in a technician's agenda.
package calendar

import (
	"slices"
	"strings"
	"time"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
)

type Policy int

const (
	// ExactTime flags appointments sharing the same date and time string.
	ExactTime Policy = iota
	// IntervalOverlap flags appointments whose [start, start+duration) intervals intersect.
	// Appointments starting at the same instant always conflict.
	IntervalOverlap
)

func (p Policy) String() string {
	if p == IntervalOverlap {
		return "interval_overlap"
	}
	return "exact_time"
}

// ParsePolicy maps a configuration value to a Policy, defaulting to ExactTime.
func ParsePolicy(s string) Policy {
	if strings.EqualFold(strings.TrimSpace(s), IntervalOverlap.String()) {
		return IntervalOverlap
	}
	return ExactTime
}

// Detector compares appointments under a Policy. The zero value uses ExactTime in UTC.
type Detector struct {
	Policy   Policy
	Location *time.Location
}

// Entry is an appointment annotated with its conflict flag.
type Entry struct {
	Appointment entities.Appointment `json:"appointment"`
	Conflict    bool                 `json:"conflict"`
}

// HasConflict reports whether a clashes with any other appointment in all under ExactTime.
func HasConflict(a entities.Appointment, all []entities.Appointment) bool {
	return Detector{}.HasConflict(a, all)
}

func (d Detector) HasConflict(a entities.Appointment, all []entities.Appointment) bool {
	for _, b := range all {
		if b.ID != a.ID && d.clash(a, b) {
			return true
		}
	}
	return false
}

// Conflicts returns the ids of every appointment in conflict, in input order.
func (d Detector) Conflicts(all []entities.Appointment) []string {
	var ids []string
	for _, a := range all {
		if d.HasConflict(a, all) {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// Agenda returns the appointments on date sorted by time, each flagged against
// the whole day.
func (d Detector) Agenda(all []entities.Appointment, date string) []Entry {
	day := ForDate(all, date)
	out := make([]Entry, 0, len(day))
	for _, a := range day {
		out = append(out, Entry{Appointment: a, Conflict: d.HasConflict(a, day)})
	}
	return out
}

// ForDate returns the appointments on date ordered by their time string.
func ForDate(all []entities.Appointment, date string) []entities.Appointment {
	out := make([]entities.Appointment, 0, len(all))
	for _, a := range all {
		if a.Date == date {
			out = append(out, a)
		}
	}
	slices.SortStableFunc(out, func(a, b entities.Appointment) int {
		return strings.Compare(a.Time, b.Time)
	})
	return out
}

func (d Detector) clash(a, b entities.Appointment) bool {
	if d.Policy != IntervalOverlap {
		return a.Date == b.Date && a.Time == b.Time
	}
	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}
	aStart, errA := a.Start(loc)
	bStart, errB := b.Start(loc)
	if errA != nil || errB != nil {
		// unparsable entries fall back to string equality
		return a.Date == b.Date && a.Time == b.Time
	}
	if aStart.Equal(bStart) {
		return true
	}
	aEnd := aStart.Add(time.Duration(a.DurationMinutes) * time.Minute)
	bEnd := bStart.Add(time.Duration(b.DurationMinutes) * time.Minute)
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
