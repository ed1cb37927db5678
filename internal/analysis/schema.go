package analysis

import "github.com/abhisek/learnsense/internal/llm"

func stringList(description string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": description,
	}
}

// AnalysisSchema defines the JSON schema for an understanding diagnostic.
// Option count and score range are enforced after decoding.
var AnalysisSchema = &llm.Schema{
	Name:        "understanding-analysis",
	Description: "Diagnostic of a learner's explanation of a topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"detectedMisconceptions": stringList("Specific wrong beliefs present in the learner's explanation"),
			"missingPrerequisites":   stringList("Foundational concepts the learner appears to lack"),
			"simplifiedExplanation": map[string]any{
				"type":        "string",
				"description": "A corrected explanation written in the requested learning style",
			},
			"invisibleConfusion": map[string]any{
				"type":        "string",
				"description": "The single hidden gap the learner does not know they have",
			},
			"nextSteps": stringList("3-5 concrete actions to close the gaps"),
			"clarityScore": map[string]any{
				"type":        "number",
				"description": "How clear and correct the learner's understanding is, from 0 to 100",
			},
			"studyNotes": map[string]any{
				"type":        "string",
				"description": "Concise markdown study notes on the topic",
			},
			"youtubeSearchQueries": stringList("2-3 search queries for explanatory videos"),
			"practiceProblems": map[string]any{
				"type":        "array",
				"description": "3 multiple choice questions targeting the detected gaps",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"options":  stringList("Exactly 4 answer options"),
						"correctOptionIndex": map[string]any{
							"type":        "integer",
							"description": "Zero-based index of the correct option (0-3)",
						},
						"hint": map[string]any{
							"type":        "string",
							"description": "A nudge that does not reveal the answer",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct option is correct",
						},
					},
					"required":             []any{"question", "options", "correctOptionIndex", "hint", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required": []any{
			"detectedMisconceptions", "missingPrerequisites", "simplifiedExplanation",
			"invisibleConfusion", "nextSteps", "clarityScore", "studyNotes",
			"youtubeSearchQueries", "practiceProblems",
		},
		"additionalProperties": false,
	},
}
