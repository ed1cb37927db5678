package analysis

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLearningStyle(t *testing.T) {
	tests := []struct {
		in   string
		want LearningStyle
	}{
		{"Analogy-based", StyleAnalogy},
		{"analogy", StyleAnalogy},
		{"First Principles", StyleFirstPrinciples},
		{"First-Principles", StyleFirstPrinciples},
		{"first_principles", StyleFirstPrinciples},
		{"Explain Like I'm 5", StyleELI5},
		{"Explain-Like-I'm-5", StyleELI5},
		{"ELI5", StyleELI5},
		{"Visual-Description", StyleVisual},
		{" visual ", StyleVisual},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLearningStyle(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLearningStyle_Unknown(t *testing.T) {
	for _, in := range []string{"", "socratic", "   "} {
		_, err := ParseLearningStyle(in)
		assert.ErrorIs(t, err, ErrUnknownStyle, "input %q", in)
	}
}

func TestLearningStyle_Cycle(t *testing.T) {
	styles := LearningStyles()
	require.Len(t, styles, 4)
	assert.Equal(t, StyleAnalogy, styles[0])

	s := StyleAnalogy
	for i := 0; i < len(styles); i++ {
		s = s.Next()
	}
	assert.Equal(t, StyleAnalogy, s, "four Next calls return to start")
	assert.Equal(t, StyleVisual, StyleAnalogy.Prev())
	assert.Equal(t, StyleFirstPrinciples, StyleAnalogy.Next())
}

func TestLearningStyle_KeysAndInstructions(t *testing.T) {
	for _, s := range LearningStyles() {
		assert.True(t, s.Valid())
		assert.NotEmpty(t, s.Key())
		assert.NotEmpty(t, s.Instruction())

		parsed, err := ParseLearningStyle(s.Key())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	assert.False(t, LearningStyle("Socratic").Valid())
}

func TestLearningStyle_JSON(t *testing.T) {
	data, err := json.Marshal(Request{Topic: "t", UserUnderstanding: "u", LearningStyle: StyleELI5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"topic":"t","userUnderstanding":"u","learningStyle":"Explain Like I'm 5"}`, string(data))

	var req Request
	require.NoError(t, json.Unmarshal([]byte(`{"topic":"t","userUnderstanding":"u","learningStyle":"first-principles"}`), &req))
	assert.Equal(t, StyleFirstPrinciples, req.LearningStyle)

	err = json.Unmarshal([]byte(`{"learningStyle":"Socratic"}`), &req)
	assert.ErrorIs(t, err, ErrUnknownStyle)
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"valid", Request{"Photosynthesis", "Plants eat sunlight", StyleELI5}, nil},
		{"empty topic", Request{"", "something", StyleAnalogy}, ErrEmptyInput},
		{"blank understanding", Request{"Gravity", " \n\t", StyleAnalogy}, ErrEmptyInput},
		{"unknown style", Request{"Gravity", "Things fall", "Socratic"}, ErrUnknownStyle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestPracticeProblemValidate(t *testing.T) {
	ok := PracticeProblem{Question: "q", Options: []string{"a", "b", "c", "d"}, CorrectOptionIndex: 3}
	require.NoError(t, ok.Validate())
	assert.Equal(t, "d", ok.CorrectOption())

	three := ok
	three.Options = []string{"a", "b", "c"}
	assert.Error(t, three.Validate())
	assert.Empty(t, three.CorrectOption())

	badIndex := ok
	badIndex.CorrectOptionIndex = 4
	assert.Error(t, badIndex.Validate())

	negative := ok
	negative.CorrectOptionIndex = -1
	assert.Error(t, negative.Validate())
}

func TestUserMessage(t *testing.T) {
	assert.Empty(t, UserMessage(nil))
	assert.Equal(t, "Analysis failed. Please try again. Make sure your input isn't empty.", UserMessage(errors.New("x")))
}
