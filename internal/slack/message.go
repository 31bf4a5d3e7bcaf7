package slack

import (
	"fmt"
	"strings"

	"github.com/adenhq/meeting-notes-agent/internal/report"
)

// unknownDate is the normalizer's placeholder for a missing meeting date;
// the metadata block omits it.
const unknownDate = "Unknown Date"

var priorityEmoji = map[report.Priority]string{
	report.PriorityHigh:   "🔴",
	report.PriorityMedium: "🟡",
	report.PriorityLow:    "🟢",
}

// neutral indicator for priority values outside the enum
const neutralEmoji = "⚪"

// BuildMessage renders a report into the fixed block layout: header,
// optional metadata, summary, then one divider+section pair per non-empty
// category, and a footer attribution.
func BuildMessage(r report.Report, meetingName, meetingDate string) Message {
	blocks := []Block{Header("🐝 " + meetingName)}

	var meta []string
	if meetingDate != "" && meetingDate != unknownDate {
		meta = append(meta, fmt.Sprintf("📅 *%s*", meetingDate))
	}
	if len(r.Attendees) > 0 {
		meta = append(meta, "👥 "+strings.Join(r.Attendees, ", "))
	}
	if len(meta) > 0 {
		blocks = append(blocks, Section(strings.Join(meta, "  |  ")))
	}

	blocks = append(blocks,
		Divider(),
		Section("*📋 Summary*\n"+r.Summary),
	)

	if len(r.Decisions) > 0 {
		blocks = append(blocks, Divider(), Section("*✅ Key Decisions*\n"+bulleted("• ", r.Decisions)))
	}

	if len(r.ActionItems) > 0 {
		blocks = append(blocks, Divider(), Section("*⚡ Action Items*"))
		for _, item := range r.ActionItems {
			blocks = append(blocks, Section(formatActionItem(item)))
		}
	}

	if len(r.Blockers) > 0 {
		blocks = append(blocks, Divider(), Section("*🚧 Blockers*\n"+bulleted("⚠️ ", r.Blockers)))
	}

	if len(r.FollowUps) > 0 {
		blocks = append(blocks, Divider(), Section("*🔁 Follow-ups*\n"+bulleted("→ ", r.FollowUps)))
	}

	blocks = append(blocks,
		Divider(),
		Context("_Generated by Aden Hive Meeting Notes Agent · https://adenhq.com_"),
	)

	return Message{
		Blocks: blocks,
		Text:   fmt.Sprintf(":bee: *%s* — Meeting Notes Ready", meetingName),
	}
}

func formatActionItem(item report.ActionItem) string {
	emoji, ok := priorityEmoji[item.Priority]
	if !ok {
		emoji = neutralEmoji
	}
	return fmt.Sprintf("%s *%s*\n   👤 %s   📅 %s   `%s`",
		emoji, item.Task, item.Owner, item.Due, strings.ToUpper(string(item.Priority)))
}

func bulleted(marker string, lines []string) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = marker + line
	}
	return strings.Join(out, "\n")
}
