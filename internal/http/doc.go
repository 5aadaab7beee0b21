// Package http provides HTTP handlers and middleware for the SevaConnect API.
//
// The router exposes the following endpoints:
//   - GET /people, POST /people, DELETE /people/{id}: volunteer roster
//     endpoints exchanging the `personDTO` payload defined in person_handler.go.
//   - GET /sevas, POST /sevas, DELETE /sevas/{id}: seva catalog endpoints
//     exchanging the `sevaDTO` payload defined in seva_handler.go.
//   - GET /entries, POST /entries, PUT /entries/{id}/status: schedule
//     authoring endpoints exchanging the `entryDTO` payload defined in
//     schedule_handler.go. Creation accepts a single day or a recurring
//     weekday pattern and reports when the expansion window was truncated.
//   - GET /dashboard/month, GET /dashboard/upcoming: calendar views with
//     entries resolved against the roster and catalog.
//   - POST /entries/{id}/reminder, GET /summaries/daily: AI-drafted reminder
//     and daily summary text with explicit fallback states.
//   - GET /calendar.ics: iCalendar export of the full schedule.
//   - GET /healthz: liveness probe.
//
// Request/response DTOs live alongside their respective handlers so tests and
// documentation share the same ground truth.
package http
