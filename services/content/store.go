package content

import (
	"github.com/samber/lo"
)

// TotalSlides is the size of the fixed deck. Slide numbers run 1..TotalSlides.
const TotalSlides = 7

// NotAvailable is the sentinel returned for lookups outside the deck, so
// composition code can degrade instead of failing.
const NotAvailable = "This slide content is not available."

type Slide struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Body    string `json:"body"`
	Context string `json:"context"`
}

type Choice struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

type QuizQuestion struct {
	ID      string   `json:"id"`
	Slide   int      `json:"slide"`
	Text    string   `json:"text"`
	Choices []Choice `json:"choices"`
}

// CorrectChoice returns the single correct choice of the question.
func (q QuizQuestion) CorrectChoice() Choice {
	choice, _ := lo.Find(q.Choices, func(c Choice) bool { return c.Correct })
	return choice
}

// Store is the immutable slide and quiz dataset. All lookups are read-only
// and safe for concurrent use.
type Store struct {
	slides    map[int]Slide
	questions []QuizQuestion
}

func NewStore() *Store {
	slides := make(map[int]Slide, len(carvedilolSlides))
	for _, slide := range carvedilolSlides {
		slides[slide.Number] = slide
	}
	return &Store{
		slides:    slides,
		questions: carvedilolQuestions,
	}
}

// SlideBody returns the presentation script for slide n, or the NotAvailable
// sentinel when n is outside the deck.
func (s *Store) SlideBody(n int) string {
	slide, ok := s.slides[n]
	if !ok {
		return NotAvailable
	}
	return slide.Body
}

// SlideContext returns the title and the extended background text used to
// ground content questions. Misses return the sentinel, never an error.
func (s *Store) SlideContext(n int) (title, details string) {
	slide, ok := s.slides[n]
	if !ok {
		return NotAvailable, NotAvailable
	}
	return slide.Title, slide.Context
}

// Slide returns the full slide record.
func (s *Store) Slide(n int) (Slide, bool) {
	slide, ok := s.slides[n]
	return slide, ok
}

// QuestionsForSlide returns the quiz questions attached to slide n in dataset
// order. Slides without questions return an empty slice.
func (s *Store) QuestionsForSlide(n int) []QuizQuestion {
	return lo.Filter(s.questions, func(q QuizQuestion, _ int) bool {
		return q.Slide == n
	})
}

// QuestionByID looks a question up across the whole deck.
func (s *Store) QuestionByID(id string) (QuizQuestion, bool) {
	return lo.Find(s.questions, func(q QuizQuestion) bool { return q.ID == id })
}

// FirstUnanswered returns the first question for slide n not yet in answered,
// falling back to the slide's first question when all are answered. The
// second return is false when the slide has no questions at all.
func (s *Store) FirstUnanswered(n int, answered map[string]struct{}) (QuizQuestion, bool) {
	questions := s.QuestionsForSlide(n)
	if len(questions) == 0 {
		return QuizQuestion{}, false
	}
	for _, q := range questions {
		if _, done := answered[q.ID]; !done {
			return q, true
		}
	}
	return questions[0], true
}

// AllQuestions returns the whole question bank in dataset order.
func (s *Store) AllQuestions() []QuizQuestion {
	return s.questions
}
