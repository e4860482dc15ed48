package quiz

// Classify returns the dosha with the strictly greatest count. Ties go
// to the earlier label in vata, pitta, kapha order, so an empty input
// classifies as vata.
func Classify(answers []Dosha) Dosha {
	counts := make(map[Dosha]int, len(Doshas))
	for _, a := range answers {
		counts[a]++
	}

	leader := Doshas[0]
	best := counts[leader]
	for _, d := range Doshas[1:] {
		if counts[d] > best {
			leader = d
			best = counts[d]
		}
	}
	return leader
}

// ClassifyAnswers scores answers keyed by question id.
func ClassifyAnswers(answers Answers) Dosha {
	list := make([]Dosha, 0, len(answers))
	for _, d := range answers {
		list = append(list, d)
	}
	return Classify(list)
}
