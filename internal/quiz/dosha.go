package quiz

import (
	"errors"
	"strings"
)

type Dosha string

const (
	Vata  Dosha = "vata"
	Pitta Dosha = "pitta"
	Kapha Dosha = "kapha"
)

// Doshas lists the labels in tie-break precedence order.
var Doshas = []Dosha{Vata, Pitta, Kapha}

var ErrInvalidDosha = errors.New("invalid dosha")

func ParseDosha(s string) (Dosha, error) {
	d := Dosha(strings.ToLower(strings.TrimSpace(s)))
	switch d {
	case Vata, Pitta, Kapha:
		return d, nil
	}
	return "", ErrInvalidDosha
}

func (d Dosha) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

var profiles = map[Dosha]string{
	Vata:  "Vata types are creative, energetic, and quick-thinking. Your products should include warming herbs and foods, nourishing oils, and grounding spices.",
	Pitta: "Pitta types are focused, passionate, and driven. Your products should include cooling herbs, soothing spices, and balancing foods.",
	Kapha: "Kapha types are steady, compassionate, and grounded. Your products should include stimulating herbs, warming spices, and light, energizing foods.",
}

// Profile is the description shown alongside a result.
func Profile(d Dosha) string {
	return profiles[d]
}
