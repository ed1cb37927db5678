package analysis

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an expert tutor who diagnoses how well a learner understands a topic. You read the learner's own explanation, find what is wrong or missing, and identify the "invisible confusion": the hidden gap that blocks understanding but which the learner cannot see.`

func buildUserMessage(req Request) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", strings.TrimSpace(req.Topic)))
	b.WriteString(fmt.Sprintf("Learning style: %s\n", req.LearningStyle))
	b.WriteString("\nLearner's current understanding:\n")
	b.WriteString(strings.TrimSpace(req.UserUnderstanding))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf(`
Instructions:
1. List the misconceptions you detect. Quote or paraphrase the learner where possible. Use an empty list if there are none.
2. List missing prerequisite concepts.
3. Write a simplified explanation of the topic. %s
4. Name the invisible confusion in 1-3 sentences.
5. Give 3-5 next steps.
6. Score the clarity of the learner's understanding from 0 (none) to 100 (complete and correct).
7. Write short study notes in markdown.
8. Suggest 2-3 video search queries.
9. Write 3 practice problems. Each has exactly 4 options, the zero-based index of the correct option, a hint and an explanation.`,
		req.LearningStyle.Instruction()))

	return b.String()
}
