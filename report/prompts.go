package report

import (
	"encoding/json"
	"strings"
)

const plannerSystemPrompt = `You are a research strategist. Design a list of
web search questions that would deepen the given analysis.

Rules:
- Each question focuses on exactly one point and is short and clear.
- Assign a category to each question (e.g. trends, positioning, audience,
  pricing, format).
- Assign priority 1-3, where 1 is most important for strengthening the
  analysis.

Respond with JSON only: an array of objects with "category", "question",
and "priority" fields. Do not add any explanation.`

const researcherSystemPrompt = `You are a senior market analyst. Summarize
the provided search results for the given question.

Structure your answer as:
1) Key summary (3-5 lines)
2) Main keywords and examples
3) Implications (opportunities and risks)
Cite source URLs from the results where available.`

const strategistSystemPrompt = `You are a strategy consultant. Using the
subject profile, the analysis, and the research notes, write a complete
strategy report in markdown.

Structure the report with these sections:
1. Overview and current positioning
2. Relevant trend summary
3. Fit and gap analysis
4. Concept proposals
5. Content and campaign ideas
6. Risks and caveats

Respond with markdown only. Do not add any explanation.`

// plannerUserPrompt lays out the subject profile and analysis for question
// planning.
func plannerUserPrompt(meta map[string]string, insight string) string {
	var b strings.Builder
	b.WriteString("Design web research questions for the following subject.\n\n")
	b.WriteString("[Subject profile]\n")
	b.WriteString(metaJSON(meta))
	b.WriteString("\n\n[Analysis]\n")
	b.WriteString(insight)
	b.WriteString("\n\nCreate efficient search questions that would take this analysis one level deeper.")
	return b.String()
}

// researcherUserPrompt pairs a question with its raw search results.
func researcherUserPrompt(question, results string) string {
	var b strings.Builder
	b.WriteString("[Question] ")
	b.WriteString(question)
	b.WriteString("\n\n[Search results]\n")
	b.WriteString(results)
	b.WriteString("\n\nSummarize the results for this question in the requested structure.")
	return b.String()
}

// strategistUserPrompt assembles everything the synthesis stage needs.
func strategistUserPrompt(meta map[string]string, insight string, notes []Note) string {
	var b strings.Builder
	b.WriteString("[Subject profile]\n")
	b.WriteString(metaJSON(meta))
	b.WriteString("\n\n[Analysis]\n")
	b.WriteString(insight)
	b.WriteString("\n\n[Research notes]\n")
	b.WriteString(notesJSON(notes))
	b.WriteString("\n\nWrite the full strategy report based on the above.")
	return b.String()
}

func metaJSON(meta map[string]string) string {
	if len(meta) == 0 {
		return "{}"
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}

func notesJSON(notes []Note) string {
	data, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return "[]"
	}
	return string(data)
}
