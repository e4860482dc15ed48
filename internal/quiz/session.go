package quiz

import (
	"errors"
	"time"
)

var ErrQuizComplete = errors.New("quiz already complete")

// Session walks a shopper through the questions one at a time.
//
// It is either awaiting the answer to Step or, once the last question is
// answered, holds a Result. Reset returns it to the first question with
// no answers from either state.
type Session struct {
	ID        string
	Variant   Variant
	Step      int
	Answers   Answers
	Result    *Dosha
	UpdatedAt time.Time

	questions []Question
}

func NewSession(id string, v Variant) (*Session, error) {
	qs, err := Questions(v)
	if err != nil {
		return nil, err
	}
	if v == "" {
		v = VariantFull
	}
	return &Session{
		ID:        id,
		Variant:   v,
		Answers:   Answers{},
		UpdatedAt: time.Now(),
		questions: qs,
	}, nil
}

func (s *Session) Done() bool {
	return s.Result != nil
}

// Current is the question awaiting an answer, nil once resulted.
func (s *Session) Current() *Question {
	if s.Done() {
		return nil
	}
	return &s.questions[s.Step]
}

func (s *Session) Total() int {
	return len(s.questions)
}

func (s *Session) Answer(d Dosha) error {
	if s.Done() {
		return ErrQuizComplete
	}
	if _, err := ParseDosha(string(d)); err != nil {
		return err
	}

	s.Answers[s.questions[s.Step].ID] = d
	s.UpdatedAt = time.Now()

	if s.Step == len(s.questions)-1 {
		result := ClassifyAnswers(s.Answers)
		s.Result = &result
		return nil
	}

	s.Step++
	return nil
}

func (s *Session) Reset() {
	s.Step = 0
	s.Answers = Answers{}
	s.Result = nil
	s.UpdatedAt = time.Now()
}
