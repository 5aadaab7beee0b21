// Package timeslot implements HH:mm clock arithmetic and the start/end time
// derivation rule used when authoring schedule entries.
package timeslot

import (
	"fmt"
	"time"
)

// Layout is the fixed-width time-of-day format used throughout the system.
const Layout = "15:04"

const minutesPerDay = 24 * 60

// fallbacks applied when a seva carries no usable defaults.
const (
	fallbackStartTime       = "06:00"
	fallbackDurationMinutes = 60
)

// Valid reports whether value is a well-formed HH:mm time of day.
func Valid(value string) bool {
	_, err := time.Parse(Layout, value)
	return err == nil && len(value) == len(Layout)
}

// AddMinutes returns start advanced by the given number of minutes, wrapping
// around midnight with ordinary clock arithmetic (23:30 + 90 yields 01:00).
// Day rollover information is deliberately lost; only a time of day is kept.
func AddMinutes(start string, minutes int) (string, error) {
	t, err := time.Parse(Layout, start)
	if err != nil {
		return "", fmt.Errorf("timeslot: parse %q: %w", start, err)
	}
	total := (t.Hour()*60 + t.Minute() + minutes) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

// Draft tracks the start and end time of an entry being authored.
//
// The end time is derived from the start time plus the selected seva's
// default duration until the caller sets it explicitly. Selecting a seva or
// changing the start time always re-derives the end and clears any manual
// override; editing the end directly derives nothing. This matches the
// one-directional rule of the authoring form.
type Draft struct {
	start           string
	end             string
	durationMinutes int
	endOverridden   bool
}

// NewDraft returns a draft seeded from a seva's defaults. An empty start time
// or non-positive duration falls back to 06:00 and 60 minutes.
func NewDraft(defaultStart string, durationMinutes int) (Draft, error) {
	d := Draft{}
	if err := d.ApplySeva(defaultStart, durationMinutes); err != nil {
		return Draft{}, err
	}
	return d, nil
}

// ApplySeva adopts the seva's default start time when one is set, records its
// duration, and re-derives the end time.
func (d *Draft) ApplySeva(defaultStart string, durationMinutes int) error {
	if durationMinutes <= 0 {
		durationMinutes = fallbackDurationMinutes
	}
	d.durationMinutes = durationMinutes

	if defaultStart != "" {
		d.start = defaultStart
	}
	if d.start == "" {
		d.start = fallbackStartTime
	}
	return d.deriveEnd()
}

// SetStart updates the start time and re-derives the end from the currently
// selected seva's duration, discarding any manual end edit.
func (d *Draft) SetStart(start string) error {
	if !Valid(start) {
		return fmt.Errorf("timeslot: invalid start time %q", start)
	}
	d.start = start
	return d.deriveEnd()
}

// SetEnd overrides the end time. No derivation happens afterwards until a
// start time or seva change resets the rule.
func (d *Draft) SetEnd(end string) error {
	if !Valid(end) {
		return fmt.Errorf("timeslot: invalid end time %q", end)
	}
	d.end = end
	d.endOverridden = true
	return nil
}

func (d *Draft) deriveEnd() error {
	end, err := AddMinutes(d.start, d.durationMinutes)
	if err != nil {
		return err
	}
	d.end = end
	d.endOverridden = false
	return nil
}

// Start returns the current start time.
func (d Draft) Start() string { return d.start }

// End returns the current end time.
func (d Draft) End() string { return d.end }

// EndOverridden reports whether the end time was set manually rather than
// derived.
func (d Draft) EndOverridden() bool { return d.endOverridden }
