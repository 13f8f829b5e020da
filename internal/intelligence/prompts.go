package intelligence

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/timebox/internal/domain"
)

const scheduleSystemPrompt = `You are a productivity coach specializing in ADHD and Executive Function. You generate schedules strictly in the user's local time context without UTC adjustments.

You MUST output ONLY a JSON object with exactly these fields:
{
  "schedule": [
    {
      "title": "Write report",
      "startTime": "2025-12-30T09:00:00",
      "endTime": "2025-12-30T10:00:00",
      "type": "FOCUS",
      "description": "optional short description",
      "notes": "optional execution tips"
    }
  ],
  "summary": "A brief encouraging summary of the plan.",
  "feedback": "Succinct response (<100 words) explaining specific changes made or acknowledging the setup.",
  "suggestions": "Approximately 100 words of freestanding productivity advice specific to this user's task list."
}

## Field Constraints

schedule[].title: required, non-empty
schedule[].startTime, schedule[].endTime: ISO 8601 date-time strings in LOCAL TIME. Never append "Z" or a UTC offset.
schedule[].type: one of "FOCUS", "BREAK", "ROUTINE", "SOCIAL", "ADMIN"
summary, feedback, suggestions: required, non-empty

Output ONLY the JSON object. No markdown fences. No explanation text outside the JSON.`

// buildGeneratePrompt shapes the initial scheduling request.
func buildGeneratePrompt(windowStart, windowEnd time.Time, tasks, preferences string) string {
	var b strings.Builder

	b.WriteString("Create a detailed, ADHD-friendly timeboxed schedule in LOCAL TIME.\n")
	b.WriteString("Do not add UTC offsets or assume Z (Zulu) time.\n\n")
	fmt.Fprintf(&b, "Window: %s to %s\n", domain.FormatWallTime(windowStart), domain.FormatWallTime(windowEnd))
	fmt.Fprintf(&b, "Tasks: %q\n", tasks)
	fmt.Fprintf(&b, "Preferences: %q\n\n", preferences)
	b.WriteString("Guidelines:\n")
	b.WriteString("1. Break tasks into manageable blocks.\n")
	b.WriteString("2. Provide 15m buffers between high-intensity blocks.\n")
	b.WriteString("3. Use ISO 8601 strings for times (e.g. 2025-12-30T09:00:00).\n")

	return b.String()
}

// buildRefinePrompt shapes a refinement request carrying the current schedule
// as context so the model updates rather than regenerates.
func buildRefinePrompt(windowStart, windowEnd time.Time, plan *domain.TimeboxPlan, instruction string) string {
	var b strings.Builder

	b.WriteString("You are an expert scheduler. Update the following JSON schedule based on the user's request.\n\n")
	b.WriteString("IMPORTANT: Treat all times as LOCAL TIME. Do not shift them based on UTC.\n")
	fmt.Fprintf(&b, "The period is %s to %s.\n\n", domain.FormatWallTime(windowStart), domain.FormatWallTime(windowEnd))
	fmt.Fprintf(&b, "User Refinement Request: %q\n\n", instruction)
	fmt.Fprintf(&b, "Current Schedule JSON: %s\n", marshalScheduleContext(plan))

	return b.String()
}

// marshalScheduleContext serializes the current items in the same wire shape
// the model is asked to produce.
func marshalScheduleContext(plan *domain.TimeboxPlan) string {
	if plan == nil {
		return "[]"
	}
	wire := make([]aiScheduleItem, len(plan.Schedule))
	for i, item := range plan.Schedule {
		wire[i] = aiScheduleItem{
			Title:       item.Title,
			StartTime:   domain.FormatWallTime(item.StartTime),
			EndTime:     domain.FormatWallTime(item.EndTime),
			Type:        string(item.Type),
			Description: item.Description,
			Notes:       item.Notes,
		}
	}
	data, err := json.Marshal(wire)
	if err != nil {
		return "[]"
	}
	return string(data)
}
