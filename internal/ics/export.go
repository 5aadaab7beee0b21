package ics

import (
	"fmt"
	"time"

	ical "github.com/arran4/golang-ical"
)

const (
	productID  = "-//SevaConnect//Seva Schedule//EN"
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// EventStatus is the subset of iCalendar statuses the export emits.
type EventStatus string

const (
	StatusConfirmed EventStatus = "CONFIRMED"
	StatusCancelled EventStatus = "CANCELLED"
)

// Event is one exportable calendar entry. Date is YYYY-MM-DD and the times
// are HH:mm wall-clock values; an end at or before the start is taken to roll
// over into the next day.
type Event struct {
	UID         string
	Summary     string
	Description string
	Date        string
	StartTime   string
	EndTime     string
	Status      EventStatus
}

// Export renders the events as a VCALENDAR payload. Timestamps are built in
// the local timezone; now stamps DTSTAMP/CREATED on every VEVENT.
func Export(events []Event, now time.Time) (string, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	for _, event := range events {
		start, end, err := eventTimes(event)
		if err != nil {
			return "", fmt.Errorf("event %s: %w", event.UID, err)
		}

		ve := cal.AddEvent(event.UID)
		ve.SetCreatedTime(now)
		ve.SetDtStampTime(now)
		ve.SetStartAt(start)
		ve.SetEndAt(end)
		ve.SetSummary(event.Summary)
		if event.Description != "" {
			ve.SetDescription(event.Description)
		}
		if event.Status == StatusCancelled {
			ve.SetStatus(ical.ObjectStatusCancelled)
		} else {
			ve.SetStatus(ical.ObjectStatusConfirmed)
		}
	}

	return cal.Serialize(), nil
}

func eventTimes(event Event) (time.Time, time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, event.Date, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q", event.Date)
	}
	startClock, err := time.Parse(timeLayout, event.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start time %q", event.StartTime)
	}
	endClock, err := time.Parse(timeLayout, event.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end time %q", event.EndTime)
	}

	start := day.Add(time.Duration(startClock.Hour())*time.Hour + time.Duration(startClock.Minute())*time.Minute)
	end := day.Add(time.Duration(endClock.Hour())*time.Hour + time.Duration(endClock.Minute())*time.Minute)
	if !end.After(start) {
		end = end.Add(24 * time.Hour)
	}
	return start, end, nil
}
