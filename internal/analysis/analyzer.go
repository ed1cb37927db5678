package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/learnsense/internal/llm"
)

// Purpose is the label attached to analysis calls in request logs.
const Purpose = "analysis"

// Config holds generation settings for analysis calls.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for analysis.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   4096,
		Temperature: 0.4,
	}
}

// Analyzer turns a Request into a validated Response with one model call.
type Analyzer struct {
	provider llm.Provider
	cfg      Config
	log      *zap.SugaredLogger
}

// NewAnalyzer creates an Analyzer. A nil logger discards output.
func NewAnalyzer(provider llm.Provider, cfg Config, log *zap.SugaredLogger) *Analyzer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Analyzer{provider: provider, cfg: cfg, log: log}
}

// ModelID reports the model behind the analyzer.
func (a *Analyzer) ModelID() string {
	return a.provider.ModelID()
}

// rawResponse mirrors Response but accepts a fractional score.
type rawResponse struct {
	DetectedMisconceptions []string          `json:"detectedMisconceptions"`
	MissingPrerequisites   []string          `json:"missingPrerequisites"`
	SimplifiedExplanation  string            `json:"simplifiedExplanation"`
	InvisibleConfusion     string            `json:"invisibleConfusion"`
	NextSteps              []string          `json:"nextSteps"`
	ClarityScore           float64           `json:"clarityScore"`
	StudyNotes             string            `json:"studyNotes"`
	YoutubeSearchQueries   []string          `json:"youtubeSearchQueries"`
	PracticeProblems       []PracticeProblem `json:"practiceProblems"`
}

// Analyze validates req, asks the model for a diagnostic and returns it.
// Every error satisfies errors.Is(err, ErrAnalysisFailed).
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, failed("validate request", err)
	}

	ctx = llm.WithPurpose(ctx, Purpose)

	resp, err := a.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(req)},
		},
		Schema:      AnalysisSchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		a.log.Warnw("analysis call failed", "model", a.provider.ModelID(), "error", err)
		return nil, failed("generate", err)
	}

	out, err := Decode(resp.Content)
	if err != nil {
		a.log.Warnw("analysis response rejected", "model", resp.Model, "error", err)
		return nil, failed("decode", err)
	}

	a.log.Debugw("analysis complete",
		"model", resp.Model,
		"clarity", out.ClarityScore,
		"problems", len(out.PracticeProblems),
	)
	return out, nil
}

// Decode parses and normalizes model output. Strings are trimmed, empty
// list entries dropped and the score clamped to [0,100]. Any malformed
// practice problem rejects the whole response.
func Decode(content json.RawMessage) (*Response, error) {
	var raw rawResponse
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("parse analysis response: %w", err)
	}

	out := &Response{
		DetectedMisconceptions: cleanList(raw.DetectedMisconceptions),
		MissingPrerequisites:   cleanList(raw.MissingPrerequisites),
		SimplifiedExplanation:  strings.TrimSpace(raw.SimplifiedExplanation),
		InvisibleConfusion:     strings.TrimSpace(raw.InvisibleConfusion),
		NextSteps:              cleanList(raw.NextSteps),
		ClarityScore:           ClampScore(raw.ClarityScore),
		StudyNotes:             strings.TrimSpace(raw.StudyNotes),
		YoutubeSearchQueries:   cleanList(raw.YoutubeSearchQueries),
		PracticeProblems:       make([]PracticeProblem, 0, len(raw.PracticeProblems)),
	}

	for i, p := range raw.PracticeProblems {
		p.Question = strings.TrimSpace(p.Question)
		p.Hint = strings.TrimSpace(p.Hint)
		p.Explanation = strings.TrimSpace(p.Explanation)
		for j := range p.Options {
			p.Options[j] = strings.TrimSpace(p.Options[j])
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("problem %d: %w", i+1, err)
		}
		out.PracticeProblems = append(out.PracticeProblems, p)
	}

	return out, nil
}

// ClampScore rounds v and limits it to [0,100].
func ClampScore(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	r := math.Round(v)
	switch {
	case r < 0:
		return 0
	case r > 100:
		return 100
	}
	return int(r)
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
