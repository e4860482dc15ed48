package quiz

import (
	"fmt"
	"strings"

	"prakruti/internal/catalog"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MissingAnswersError lists the questions left unanswered on a form
// submission.
type MissingAnswersError struct {
	QuestionIDs []string
}

func (e *MissingAnswersError) Error() string {
	return "please answer: " + strings.Join(e.QuestionIDs, ", ")
}

type Recommender interface {
	Filter(category string) []catalog.Product
}

type Outcome struct {
	Dosha       Dosha             `json:"dosha"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Products    []catalog.Product `json:"products"`
}

// View is the JSON shape of a session.
type View struct {
	ID       string    `json:"id"`
	Variant  Variant   `json:"variant"`
	Step     int       `json:"step"`
	Total    int       `json:"total"`
	Question *Question `json:"question,omitempty"`
	Answers  Answers   `json:"answers"`
	Result   *Outcome  `json:"result,omitempty"`
}

type Service struct {
	store       *SessionStore
	recommender Recommender
	log         *zap.Logger
}

func NewService(store *SessionStore, recommender Recommender, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, recommender: recommender, log: log}
}

func (s *Service) Start(v Variant) (*View, error) {
	sess, err := NewSession(uuid.New().String(), v)
	if err != nil {
		return nil, err
	}
	snap := sess.snapshot()
	s.store.Create(sess)
	return s.view(&snap), nil
}

func (s *Service) Get(id string) (*View, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return s.view(&sess), nil
}

func (s *Service) Answer(id string, raw string) (*View, error) {
	d, err := ParseDosha(raw)
	if err != nil {
		return nil, err
	}

	sess, err := s.store.Update(id, func(sess *Session) error {
		return sess.Answer(d)
	})
	if err != nil {
		return nil, err
	}

	if sess.Done() {
		s.log.Info("[QUIZ] completed",
			zap.String("session", id),
			zap.String("dosha", string(*sess.Result)),
		)
	}
	return s.view(&sess), nil
}

func (s *Service) Reset(id string) (*View, error) {
	sess, err := s.store.Update(id, func(sess *Session) error {
		sess.Reset()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.view(&sess), nil
}

// Submit scores a whole form at once. Every question of the variant must
// be answered with a valid dosha; nothing is scored otherwise.
func (s *Service) Submit(v Variant, form map[string]string) (*Outcome, error) {
	qs, err := Questions(v)
	if err != nil {
		return nil, err
	}

	answers := make(Answers, len(qs))
	var missing []string
	for _, q := range qs {
		raw, ok := form[q.ID]
		if !ok || strings.TrimSpace(raw) == "" {
			missing = append(missing, q.ID)
			continue
		}
		d, err := ParseDosha(raw)
		if err != nil {
			return nil, fmt.Errorf("question %s: %w", q.ID, err)
		}
		answers[q.ID] = d
	}
	if len(missing) > 0 {
		return nil, &MissingAnswersError{QuestionIDs: missing}
	}

	return s.outcome(ClassifyAnswers(answers)), nil
}

func (s *Service) outcome(d Dosha) *Outcome {
	o := &Outcome{
		Dosha:       d,
		Title:       d.Title(),
		Description: Profile(d),
	}
	if s.recommender != nil {
		o.Products = s.recommender.Filter(string(d))
	}
	return o
}

func (s *Service) view(sess *Session) *View {
	v := &View{
		ID:       sess.ID,
		Variant:  sess.Variant,
		Step:     sess.Step,
		Total:    sess.Total(),
		Question: sess.Current(),
		Answers:  sess.Answers,
	}
	if sess.Result != nil {
		v.Result = s.outcome(*sess.Result)
	}
	return v
}
