package cmd

import (
	"encoding/json"
	"time"

	"github.com/abhisek/learnsense/internal/llm"
)

var demoAnalysis = map[string]any{
	"clarityScore":       58,
	"invisibleConfusion": "You describe sunlight as something plants eat. Light is the energy source that powers sugar making, not the food itself.",
	"detectedMisconceptions": []string{
		"Plants eat sunlight",
		"Growth comes directly from light",
	},
	"missingPrerequisites": []string{
		"Energy versus matter",
		"What glucose is",
	},
	"simplifiedExplanation": "A plant is a tiny kitchen. Sunlight is the stove's heat, water and air are the ingredients, and sugar is the meal it cooks for itself.",
	"nextSteps": []string{
		"Separate where the energy comes from and where the mass comes from",
		"Write the photosynthesis equation and label each part",
	},
	"studyNotes":           "Light gives energy. Carbon dioxide and water give the atoms. Chlorophyll captures light. Glucose and oxygen come out.",
	"youtubeSearchQueries": []string{"photosynthesis explained simply", "where does a tree's mass come from"},
	"practiceProblems": []map[string]any{
		{
			"question":           "What does sunlight provide in photosynthesis?",
			"options":            []string{"Food", "Energy", "Water", "Soil"},
			"correctOptionIndex": 1,
			"hint":               "Think of it as power, not ingredients.",
			"explanation":        "Light supplies the energy that drives the reaction. The plant builds sugar from carbon dioxide and water.",
		},
		{
			"question":           "Where does most of a plant's mass come from?",
			"options":            []string{"Soil", "Sunlight", "Carbon dioxide from the air", "Fertilizer"},
			"correctOptionIndex": 2,
			"hint":               "It is invisible and all around you.",
			"explanation":        "Carbon atoms from carbon dioxide make up most of the dry mass of a plant.",
		},
	},
}

// demoProvider returns a mock provider that answers every request with
// the same canned analysis, for trying the app without an API key.
func demoProvider() *llm.MockProvider {
	content, err := json.Marshal(demoAnalysis)
	if err != nil {
		panic(err)
	}
	p := llm.NewMockProvider()
	p.Repeat(llm.MockResponse{
		Content: content,
		Usage:   llm.Usage{InputTokens: 420, OutputTokens: 610},
		Delay:   600 * time.Millisecond,
	})
	return p
}
