package quiz

import "fmt"

type Option struct {
	Value Dosha  `json:"value"`
	Text  string `json:"text"`
}

type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// Answers maps question id to the chosen dosha.
type Answers map[string]Dosha

type Variant string

const (
	VariantFull  Variant = "full"
	VariantShort Variant = "short"
)

var fullQuestions = []Question{
	{
		ID:   "body",
		Text: "Which best describes your body frame?",
		Options: []Option{
			{Vata, "Thin, light, difficult to gain weight"},
			{Pitta, "Medium build, moderate weight"},
			{Kapha, "Solid, heavy, tendency to gain weight"},
		},
	},
	{
		ID:   "skin",
		Text: "How would you describe your skin?",
		Options: []Option{
			{Vata, "Dry, rough, thin"},
			{Pitta, "Warm, reddish, sensitive"},
			{Kapha, "Thick, oily, cool and pale"},
		},
	},
	{
		ID:   "appetite",
		Text: "How is your appetite generally?",
		Options: []Option{
			{Vata, "Variable, irregular, sometimes forget to eat"},
			{Pitta, "Strong, sharp, gets irritable if meals are missed"},
			{Kapha, "Steady, can skip meals easily"},
		},
	},
	{
		ID:   "sleep",
		Text: "How would you describe your sleep pattern?",
		Options: []Option{
			{Vata, "Light sleeper, tendency to wake up"},
			{Pitta, "Moderate sleep, wake up feeling refreshed"},
			{Kapha, "Heavy sleeper, difficult to wake up"},
		},
	},
	{
		ID:   "mind",
		Text: "How would you describe your mind?",
		Options: []Option{
			{Vata, "Quick, creative, easily distracted"},
			{Pitta, "Focused, determined, competitive"},
			{Kapha, "Calm, loyal, methodical"},
		},
	},
}

// Questions returns the ordered question list for a variant. The short
// variant is the first three questions of the full one.
func Questions(v Variant) ([]Question, error) {
	switch v {
	case VariantFull, "":
		return fullQuestions, nil
	case VariantShort:
		return fullQuestions[:3], nil
	}
	return nil, fmt.Errorf("unknown quiz variant %q", v)
}
