package gemini

import (
	"fmt"
	"strings"

	"smart-task-manager/pkg/datemath"
)

// TaskParsingSystemPrompt is the instruction sent to Gemini for single-task parsing.
const TaskParsingSystemPrompt = `You are a task parsing assistant for a personal to-do app. Users write in Portuguese or English.
Extract ONE task from the user's text.

RULES:
1. Return ONLY a JSON object with these fields:
   - title: short imperative description, at most 60 characters (required)
   - description: extra details, omit when there are none
   - dueDate: local date-time "YYYY-MM-DDTHH:MM:SS" resolved against the date context below; omit when no date is mentioned
   - priority: exactly one of "P1" (urgent), "P2" (high), "P3" (medium), "P4" (low); omit when not implied
   - projectName: the project the task belongs to, copied from the project list when one fits; omit otherwise
2. When only a day is mentioned and no time, use 09:00:00.
3. Do not invent information that is not in the text.

EXAMPLE INPUT:
"Comprar pão amanhã às 8h urgente"

EXAMPLE OUTPUT:
{"title": "Comprar pão", "dueDate": "2024-05-02T08:00:00", "priority": "P1"}`

// SubtaskSuggestionPrompt asks for a JSON array of subtask titles.
const SubtaskSuggestionPrompt = `You help break a task into smaller steps for a personal to-do app.
Suggest between 3 and 5 short, concrete subtasks for the task below, in the same language as the task.
Return ONLY a JSON array of strings. No markdown, no explanation.

EXAMPLE OUTPUT:
["Listar convidados", "Reservar local", "Enviar convites"]`

// BuildTaskParsingPrompt builds the full prompt for task parsing.
func BuildTaskParsingPrompt(userInput string, dc datemath.DateContext, projects []string) string {
	var sb strings.Builder
	sb.WriteString(TaskParsingSystemPrompt)

	sb.WriteString("\n\nDATE CONTEXT (USE FOR RELATIVE DATE/TIME RESOLUTION):\n")
	sb.WriteString(fmt.Sprintf("- Now: %s (%s, timezone %s)\n", dc.Now.Format("2006-01-02T15:04:05"), dc.Weekday, dc.Timezone))
	sb.WriteString(fmt.Sprintf("- Today: %s\n", dc.Today))
	sb.WriteString(fmt.Sprintf("- Tomorrow: %s\n", dc.Tomorrow))
	sb.WriteString(fmt.Sprintf("- This week: %s to %s\n", dc.WeekStart, dc.WeekEnd))

	if len(projects) > 0 {
		sb.WriteString("\nAVAILABLE PROJECTS:\n")
		for _, p := range projects {
			sb.WriteString("- ")
			sb.WriteString(p)
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\nNow parse the following input and return ONLY the JSON object:\n")
	sb.WriteString(userInput)
	return sb.String()
}

// BuildSubtaskPrompt builds the prompt for subtask suggestions.
func BuildSubtaskPrompt(title, description string) string {
	var sb strings.Builder
	sb.WriteString(SubtaskSuggestionPrompt)
	sb.WriteString("\n\nTASK: ")
	sb.WriteString(title)
	if strings.TrimSpace(description) != "" {
		sb.WriteString("\nDETAILS: ")
		sb.WriteString(description)
	}
	return sb.String()
}
