package analysis

import (
	"encoding/json"
	"fmt"
	"strings"
)

// LearningStyle selects the register of the simplified explanation.
type LearningStyle string

const (
	StyleAnalogy         LearningStyle = "Analogy-based"
	StyleFirstPrinciples LearningStyle = "First Principles"
	StyleELI5            LearningStyle = "Explain Like I'm 5"
	StyleVisual          LearningStyle = "Visual Description"
)

// DefaultLearningStyle is preselected when nothing else is configured.
const DefaultLearningStyle = StyleAnalogy

var allStyles = []LearningStyle{StyleAnalogy, StyleFirstPrinciples, StyleELI5, StyleVisual}

var styleKeys = map[LearningStyle]string{
	StyleAnalogy:         "analogy",
	StyleFirstPrinciples: "first-principles",
	StyleELI5:            "eli5",
	StyleVisual:          "visual",
}

var styleInstructions = map[LearningStyle]string{
	StyleAnalogy:         "Explain through a concrete analogy drawn from everyday life, then map each part of the analogy back to the real concept.",
	StyleFirstPrinciples: "Build the explanation from first principles: start from the most basic facts and derive each step so nothing is taken on faith.",
	StyleELI5:            "Explain as if to a curious five-year-old: short sentences, familiar words, no jargon.",
	StyleVisual:          "Describe a picture or diagram the learner can imagine, naming what is where and how the parts move or connect.",
}

// LearningStyles returns all styles in display order.
func LearningStyles() []LearningStyle {
	out := make([]LearningStyle, len(allStyles))
	copy(out, allStyles)
	return out
}

// ParseLearningStyle accepts the display value, the CLI key, or a
// hyphenated spelling such as "Explain-Like-I'm-5".
func ParseLearningStyle(s string) (LearningStyle, error) {
	want := foldStyle(s)
	if want == "" {
		return "", fmt.Errorf("%w: empty", ErrUnknownStyle)
	}
	for _, ls := range allStyles {
		if foldStyle(string(ls)) == want || foldStyle(styleKeys[ls]) == want {
			return ls, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

func foldStyle(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '-', '_', '\'', '’':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Valid reports whether s is one of the four known styles.
func (s LearningStyle) Valid() bool {
	_, ok := styleKeys[s]
	return ok
}

func (s LearningStyle) String() string { return string(s) }

// Key returns the short CLI identifier, e.g. "eli5".
func (s LearningStyle) Key() string { return styleKeys[s] }

// Instruction returns the register guidance given to the model.
func (s LearningStyle) Instruction() string { return styleInstructions[s] }

// Next cycles forward through LearningStyles, wrapping at the end.
func (s LearningStyle) Next() LearningStyle {
	return allStyles[(s.index()+1)%len(allStyles)]
}

// Prev cycles backward through LearningStyles, wrapping at the start.
func (s LearningStyle) Prev() LearningStyle {
	return allStyles[(s.index()+len(allStyles)-1)%len(allStyles)]
}

func (s LearningStyle) index() int {
	for i, ls := range allStyles {
		if ls == s {
			return i
		}
	}
	return 0
}

func (s LearningStyle) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *LearningStyle) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseLearningStyle(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Request is what the learner submits.
type Request struct {
	Topic             string        `json:"topic"`
	UserUnderstanding string        `json:"userUnderstanding"`
	LearningStyle     LearningStyle `json:"learningStyle"`
}

// Validate rejects blank input and unknown styles. It runs before any
// model call.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Topic) == "" || strings.TrimSpace(r.UserUnderstanding) == "" {
		return ErrEmptyInput
	}
	if !r.LearningStyle.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownStyle, string(r.LearningStyle))
	}
	return nil
}

// Response is the structured diagnostic returned by the model.
type Response struct {
	DetectedMisconceptions []string          `json:"detectedMisconceptions"`
	MissingPrerequisites   []string          `json:"missingPrerequisites"`
	SimplifiedExplanation  string            `json:"simplifiedExplanation"`
	InvisibleConfusion     string            `json:"invisibleConfusion"`
	NextSteps              []string          `json:"nextSteps"`
	ClarityScore           int               `json:"clarityScore"`
	StudyNotes             string            `json:"studyNotes"`
	YoutubeSearchQueries   []string          `json:"youtubeSearchQueries"`
	PracticeProblems       []PracticeProblem `json:"practiceProblems"`
}

// OptionCount is the number of choices every practice problem carries.
const OptionCount = 4

// PracticeProblem is a four-option multiple choice question.
type PracticeProblem struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`
	Hint               string   `json:"hint"`
	Explanation        string   `json:"explanation"`
}

// Validate checks the option count and the correct index.
func (p PracticeProblem) Validate() error {
	if len(p.Options) != OptionCount {
		return fmt.Errorf("practice problem %q has %d options, want %d", p.Question, len(p.Options), OptionCount)
	}
	if p.CorrectOptionIndex < 0 || p.CorrectOptionIndex >= OptionCount {
		return fmt.Errorf("practice problem %q has correct index %d, want 0-%d", p.Question, p.CorrectOptionIndex, OptionCount-1)
	}
	return nil
}

// CorrectOption returns the text of the correct option, or "" when the
// problem is malformed.
func (p PracticeProblem) CorrectOption() string {
	if p.Validate() != nil {
		return ""
	}
	return p.Options[p.CorrectOptionIndex]
}
