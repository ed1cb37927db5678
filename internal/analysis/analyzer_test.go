package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/learnsense/internal/llm"
)

func photosynthesisJSON() json.RawMessage {
	return json.RawMessage(`{
		"detectedMisconceptions": ["Plants eat sunlight like food"],
		"missingPrerequisites": ["What energy is"],
		"simplifiedExplanation": "Plants use light to make their own sugar.",
		"invisibleConfusion": "Thinking light is the food rather than the energy source.",
		"nextSteps": ["Learn about chlorophyll"],
		"clarityScore": 35,
		"studyNotes": "# Photosynthesis\n- light + water + CO2 -> sugar + oxygen",
		"youtubeSearchQueries": ["photosynthesis for kids"],
		"practiceProblems": [{
			"question": "What do plants make during photosynthesis?",
			"options": ["Sugar", "Soil", "Rocks", "Salt"],
			"correctOptionIndex": 0,
			"hint": "It is sweet.",
			"explanation": "Plants turn light energy into sugar."
		}]
	}`)
}

func withScore(t *testing.T, score any) json.RawMessage {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(photosynthesisJSON(), &m))
	m["clarityScore"] = score
	data, err := json.Marshal(m)
	require.NoError(t, err)
	return data
}

func photosynthesisRequest() Request {
	return Request{
		Topic:             "Photosynthesis",
		UserUnderstanding: "Plants eat sunlight",
		LearningStyle:     StyleELI5,
	}
}

func TestAnalyze_Photosynthesis(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: photosynthesisJSON()})
	a := NewAnalyzer(mock, DefaultConfig(), nil)

	resp, err := a.Analyze(context.Background(), photosynthesisRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"Plants eat sunlight like food"}, resp.DetectedMisconceptions)
	assert.Equal(t, []string{"What energy is"}, resp.MissingPrerequisites)
	assert.Equal(t, "Plants use light to make their own sugar.", resp.SimplifiedExplanation)
	assert.Equal(t, "Thinking light is the food rather than the energy source.", resp.InvisibleConfusion)
	assert.Equal(t, []string{"Learn about chlorophyll"}, resp.NextSteps)
	assert.Equal(t, 35, resp.ClarityScore)
	assert.Equal(t, "# Photosynthesis\n- light + water + CO2 -> sugar + oxygen", resp.StudyNotes)
	assert.Equal(t, []string{"photosynthesis for kids"}, resp.YoutubeSearchQueries)
	require.Len(t, resp.PracticeProblems, 1)
	assert.Equal(t, "Sugar", resp.PracticeProblems[0].CorrectOption())

	call, ok := mock.LastCall()
	require.True(t, ok)
	assert.Equal(t, AnalysisSchema, call.Schema)
	assert.Equal(t, DefaultConfig().MaxTokens, call.MaxTokens)
	require.Len(t, call.Messages, 1)
	msg := call.Messages[0].Content
	assert.Contains(t, msg, "Topic: Photosynthesis")
	assert.Contains(t, msg, "Plants eat sunlight")
	assert.Contains(t, msg, "Explain Like I'm 5")
	assert.Contains(t, msg, StyleELI5.Instruction())
}

func TestAnalyze_EmptyInputMakesNoCall(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: photosynthesisJSON()})
	a := NewAnalyzer(mock, DefaultConfig(), nil)

	_, err := a.Analyze(context.Background(), Request{Topic: "  ", UserUnderstanding: "x", LearningStyle: StyleAnalogy})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAnalysisFailed)
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Equal(t, 0, mock.CallCount())
}

func TestAnalyze_ClampsScore(t *testing.T) {
	tests := []struct {
		name  string
		score any
		want  int
	}{
		{"above range", 150, 100},
		{"below range", -5, 0},
		{"fractional", 72.6, 73},
		{"edge high", 100, 100},
		{"edge low", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: withScore(t, tt.score)})
			resp, err := NewAnalyzer(mock, DefaultConfig(), nil).Analyze(context.Background(), photosynthesisRequest())
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.ClarityScore)
		})
	}
}

func TestAnalyze_ProviderErrorIsGeneric(t *testing.T) {
	cause := &llm.ErrProviderUnavailable{Err: errors.New("connection reset")}
	mock := llm.NewMockProvider(llm.MockResponse{Err: cause})
	a := NewAnalyzer(mock, DefaultConfig(), nil)

	_, err := a.Analyze(context.Background(), photosynthesisRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAnalysisFailed)

	var unavailable *llm.ErrProviderUnavailable
	assert.True(t, errors.As(err, &unavailable), "cause stays reachable")
	assert.Equal(t, FailureMessage, UserMessage(err))
	assert.Equal(t, 1, mock.CallCount(), "no automatic retry")
}

func TestAnalyze_Timeout(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: photosynthesisJSON(), Delay: time.Second})
	a := NewAnalyzer(mock, DefaultConfig(), nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := a.Analyze(ctx, photosynthesisRequest())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAnalysisFailed)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestAnalyze_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"clarityScore": "high"`)})
	_, err := NewAnalyzer(mock, DefaultConfig(), nil).Analyze(context.Background(), photosynthesisRequest())
	assert.ErrorIs(t, err, ErrAnalysisFailed)
}

func TestDecode_RejectsBadProblems(t *testing.T) {
	tests := []struct {
		name    string
		problem string
	}{
		{"three options", `{"question":"q","options":["a","b","c"],"correctOptionIndex":0,"hint":"h","explanation":"e"}`},
		{"five options", `{"question":"q","options":["a","b","c","d","e"],"correctOptionIndex":0,"hint":"h","explanation":"e"}`},
		{"index too high", `{"question":"q","options":["a","b","c","d"],"correctOptionIndex":4,"hint":"h","explanation":"e"}`},
		{"negative index", `{"question":"q","options":["a","b","c","d"],"correctOptionIndex":-1,"hint":"h","explanation":"e"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := `{"detectedMisconceptions":[],"missingPrerequisites":[],"simplifiedExplanation":"s","invisibleConfusion":"i","nextSteps":[],"clarityScore":50,"studyNotes":"n","youtubeSearchQueries":[],"practiceProblems":[` + tt.problem + `]}`
			_, err := Decode(json.RawMessage(content))
			assert.Error(t, err)
		})
	}
}

func TestDecode_Normalizes(t *testing.T) {
	content := `{"detectedMisconceptions":["  a  ",""," "],"missingPrerequisites":null,"simplifiedExplanation":"  s ","invisibleConfusion":"i","nextSteps":["x"],"clarityScore":50,"studyNotes":"n","youtubeSearchQueries":[],"practiceProblems":[]}`
	resp, err := Decode(json.RawMessage(content))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, resp.DetectedMisconceptions)
	assert.NotNil(t, resp.MissingPrerequisites)
	assert.Empty(t, resp.MissingPrerequisites)
	assert.Equal(t, "s", resp.SimplifiedExplanation)
	assert.NotNil(t, resp.PracticeProblems)
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, 100, ClampScore(150))
	assert.Equal(t, 0, ClampScore(-5))
	assert.Equal(t, 50, ClampScore(49.5))
	assert.Equal(t, 0, ClampScore(-0.4))
}

type purposeRecorder struct {
	llm.Provider
	purpose string
}

func (p *purposeRecorder) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	p.purpose = llm.PurposeFrom(ctx)
	return p.Provider.Generate(ctx, req)
}

func TestAnalyze_TagsPurpose(t *testing.T) {
	rec := &purposeRecorder{Provider: llm.NewMockProvider(llm.MockResponse{Content: photosynthesisJSON()})}
	_, err := NewAnalyzer(rec, DefaultConfig(), nil).Analyze(context.Background(), photosynthesisRequest())
	require.NoError(t, err)
	assert.Equal(t, Purpose, rec.purpose)
}

func TestBuildUserMessage_TrimsInput(t *testing.T) {
	msg := buildUserMessage(Request{Topic: "  Gravity  ", UserUnderstanding: "\nThings fall\n", LearningStyle: StyleVisual})
	assert.True(t, strings.HasPrefix(msg, "Topic: Gravity\n"))
	assert.Contains(t, msg, "Things fall\n")
	assert.Contains(t, msg, "exactly 4 options")
}
