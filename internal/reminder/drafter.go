package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/example/seva-scheduler/internal/models"
)

// DraftState classifies how a draft was produced.
type DraftState string

const (
	// StateGenerated means the text came back from the model.
	StateGenerated DraftState = "GENERATED"
	// StateUnavailable means no API key is configured.
	StateUnavailable DraftState = "UNAVAILABLE"
	// StateFailed means the generation call errored.
	StateFailed DraftState = "FAILED"
)

// Fallback strings shown to coordinators when generation cannot happen. The
// reminder path surfaces explicit error text while the summary path degrades
// to a neutral header; the asymmetry is intentional.
const (
	reminderMissingKeyText = "Error: API Key is missing. Cannot generate AI message."
	reminderFailureText    = "Error generating message. Please check your connection."
	reminderEmptyText      = "Could not generate message."
	summaryMissingKeyText  = "API Key missing."
	summaryFailureText     = "Here is the schedule for tomorrow."
)

// Draft is the outcome of a drafting request. Text always holds something
// presentable; State tells the caller whether it is model output or fallback.
type Draft struct {
	State DraftState `json:"state"`
	Text  string     `json:"text"`
}

// Message returns the presentable text.
func (d Draft) Message() string {
	return d.Text
}

// TextGenerator is the slice of the Gemini client the drafter needs.
type TextGenerator interface {
	Configured() bool
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Drafter turns schedule context into reminder and summary text. Generation
// failures never escape: every call returns a usable Draft.
type Drafter struct {
	generator TextGenerator
	logger    *slog.Logger
}

// NewDrafter constructs a drafter over the given generator.
func NewDrafter(generator TextGenerator) *Drafter {
	return NewDrafterWithLogger(generator, nil)
}

// NewDrafterWithLogger constructs a drafter with a specified logger.
func NewDrafterWithLogger(generator TextGenerator, logger *slog.Logger) *Drafter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Drafter{generator: generator, logger: logger}
}

// DraftReminder writes a reminder for one volunteer's assignment. The channel
// hint shapes the tone: WhatsApp asks for a concise message with emoji,
// anything else for a formal-but-warm email without a subject line.
func (d *Drafter) DraftReminder(ctx context.Context, person models.Person, seva models.Seva, date, startTime string) Draft {
	if d == nil || d.generator == nil || !d.generator.Configured() {
		return Draft{State: StateUnavailable, Text: reminderMissingKeyText}
	}

	channelHint := "Email (formal but warm)"
	if person.PreferredChannel == models.ChannelWhatsApp {
		channelHint = "WhatsApp (keep it concise, include emoji)"
	}

	prompt := fmt.Sprintf(`You are a helpful assistant for a Temple/Prayer House.
Write a warm, respectful, and spiritual reminder message for a volunteer.

Details:
- Volunteer Name: %s
- Seva (Service): %s
- Date: %s
- Time: %s
- Channel: %s

The message should remind them to prepare and arrive on time.
Do not include subject lines if it is WhatsApp.`,
		person.FullName, seva.Name, date, startTime, channelHint)

	text, err := d.generator.GenerateText(ctx, prompt)
	if err != nil {
		d.logger.ErrorContext(ctx, "reminder generation failed", "error", err)
		return Draft{State: StateFailed, Text: reminderFailureText}
	}
	if strings.TrimSpace(text) == "" {
		return Draft{State: StateFailed, Text: reminderEmptyText}
	}
	return Draft{State: StateGenerated, Text: text}
}

// DraftDailySummary writes a short header for one day's schedule.
func (d *Drafter) DraftDailySummary(ctx context.Context, date string, scheduleCount int) Draft {
	if d == nil || d.generator == nil || !d.generator.Configured() {
		return Draft{State: StateUnavailable, Text: summaryMissingKeyText}
	}

	prompt := fmt.Sprintf(`Write a brief, uplifting daily summary header for the Temple Seva Schedule for date: %s.
There are %d sevas scheduled for tomorrow.
Encourage the team. Max 2 sentences.`, date, scheduleCount)

	text, err := d.generator.GenerateText(ctx, prompt)
	if err != nil {
		d.logger.ErrorContext(ctx, "daily summary generation failed", "error", err)
		return Draft{State: StateFailed, Text: summaryFailureText}
	}
	if strings.TrimSpace(text) == "" {
		return Draft{State: StateGenerated, Text: ""}
	}
	return Draft{State: StateGenerated, Text: text}
}
