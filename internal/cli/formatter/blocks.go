package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/timebox/internal/domain"
	"github.com/alexanderramin/timebox/internal/schedule"
	"github.com/charmbracelet/lipgloss"
)

// BlockStyle returns the lipgloss style for a block type.
func BlockStyle(t domain.BlockType) lipgloss.Style {
	switch t {
	case domain.BlockFocus:
		return StyleBlue
	case domain.BlockBreak:
		return StyleGreen
	case domain.BlockRoutine:
		return StyleYellow
	case domain.BlockSocial:
		return StylePurple
	case domain.BlockAdmin:
		return StyleRed
	default:
		return StyleDim
	}
}

// BlockIcon returns a one-character marker for a block type.
func BlockIcon(t domain.BlockType) string {
	switch t {
	case domain.BlockFocus:
		return BlockStyle(t).Render("◆")
	case domain.BlockBreak:
		return BlockStyle(t).Render("○")
	case domain.BlockRoutine:
		return BlockStyle(t).Render("▣")
	case domain.BlockSocial:
		return BlockStyle(t).Render("◈")
	case domain.BlockAdmin:
		return BlockStyle(t).Render("▤")
	default:
		return StyleDim.Render("·")
	}
}

// Duration renders minutes as "1h 30m", "45m", or "2h".
func Duration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// TimeRange renders a block's span as "09:00–10:30".
func TimeRange(item domain.ScheduleItem) string {
	return item.StartTime.Format("15:04") + "–" + item.EndTime.Format("15:04")
}

// DayHeading renders a bucket date as "Monday, Jan 5".
func DayHeading(bucket schedule.DayBucket) string {
	return bucket.Date.Format("Monday, Jan 2")
}

// ScheduleLines renders a plan's items grouped by day, one line per block,
// for non-interactive output.
func ScheduleLines(items []domain.ScheduleItem) string {
	buckets := schedule.GroupByDay(items)
	if len(buckets) == 0 {
		return Dim("No blocks scheduled.")
	}

	var b strings.Builder
	for i, bucket := range buckets {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(StyleHeader.Render(DayHeading(bucket)))
		b.WriteByte('\n')
		for _, item := range bucket.Items {
			fmt.Fprintf(&b, "  %s %s  %s %s\n",
				BlockIcon(item.Type),
				Dim(TimeRange(item)),
				item.Title,
				Dim("("+Duration(item.DurationMinutes())+")"),
			)
		}
	}
	return b.String()
}

// PlanSummary renders the narrative portion of a plan.
func PlanSummary(plan domain.TimeboxPlan) string {
	var sections []string
	if plan.Summary != "" {
		sections = append(sections, Header("Summary")+"\n"+plan.Summary)
	}
	if plan.Feedback != "" {
		sections = append(sections, Header("Feedback")+"\n"+plan.Feedback)
	}
	if plan.Suggestions != "" {
		sections = append(sections, Header("Suggestions")+"\n"+plan.Suggestions)
	}
	return strings.Join(sections, "\n\n")
}
