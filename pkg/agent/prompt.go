package agent

import "fmt"

const extractionPromptTemplate = `You are a professional meeting analyst. Analyse the provided meeting transcript and return ONLY a valid JSON object. No markdown fences, no preamble, no trailing text — pure JSON only.

JSON structure:
{
  "summary": "2-3 sentence executive summary of the meeting",
  "attendees": ["Name (Role)", "..."],
  "decisions": ["Decision agreed upon..."],
  "action_items": [
    {
      "task": "Clear actionable task description",
      "owner": "Person's name",
      "due": "Due date or timeframe (e.g. EOD Tuesday, by Friday, next Monday)",
      "priority": "high|medium|low"
    }
  ],
  "blockers": ["Unresolved issue preventing progress..."],
  "follow_ups": ["Item needing future attention but not yet formally assigned..."]
}

Rules:
- ONLY extract what is explicitly stated. Never fabricate names, tasks, or dates.
- Priority: urgent/today/asap/critical = high; this week/by Friday/soon = medium; otherwise low.
- Blockers = things preventing progress right now.
- Follow-ups = items for future attention not formally assigned.
- If no attendees listed, set attendees to [].
- If no blockers, decisions, or follow-ups exist, return empty arrays [].

Meeting Title: %s
Date: %s

Transcript:
%s`

// BuildExtractionPrompt renders the extraction instruction template.
// Deterministic for identical inputs; no side effects.
func BuildExtractionPrompt(transcript, meetingName, meetingDate string) string {
	return fmt.Sprintf(extractionPromptTemplate, meetingName, meetingDate, transcript)
}
