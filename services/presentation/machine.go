package presentation

import (
	"strings"

	"slidechat/models"
	"slidechat/services/content"
	"slidechat/services/intent"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

type ActionType string

const (
	ActionNone                  ActionType = "none"
	ActionShowWelcome           ActionType = "show_welcome"
	ActionShowSlide             ActionType = "show_slide"
	ActionAskQuestion           ActionType = "ask_question"
	ActionAnswerContentQuestion ActionType = "answer_content_question"
	ActionEvaluateAnswer        ActionType = "evaluate_answer"
	ActionShowTransition        ActionType = "show_transition"
	ActionShowDefault           ActionType = "show_default"
)

// Action describes what the composer should produce for this turn.
type Action struct {
	Type       ActionType
	Slide      int
	Question   *content.QuizQuestion
	Utterance  string
	Evaluation *AnswerEvaluation
}

// AnswerEvaluation is the graded outcome of a quiz answer. Selected is nil
// when the utterance matched none of the choices.
type AnswerEvaluation struct {
	Question content.QuizQuestion
	Selected *content.Choice
	Correct  bool
}

// Machine applies intents to presentation state. Transition is pure with
// respect to its inputs: it never mutates the state it is given and the
// caller owns applying the returned state.
type Machine struct {
	store *content.Store
}

func NewMachine(store *content.Store) *Machine {
	return &Machine{store: store}
}

func (m *Machine) Transition(state models.PresentationState, in intent.Intent) (models.PresentationState, Action) {
	next := state.Clone()
	next.LastContentQuestion = false

	if !state.Active() {
		if in.Kind == intent.KindStart {
			return startState(in.TargetSlide)
		}
		return next, Action{Type: ActionNone}
	}

	switch in.Kind {
	case intent.KindStart:
		// Restarting an active presentation resets quiz progress.
		return startState(in.TargetSlide)

	case intent.KindExit:
		return models.NewPresentationState(), Action{Type: ActionNone}

	case intent.KindNavigateNext, intent.KindNavigatePrev, intent.KindNavigateTo:
		target := clampSlide(in.TargetSlide)
		next.CurrentSlide = target
		next.AwaitingQuizAnswer = false
		return next, Action{Type: ActionShowSlide, Slide: target}

	case intent.KindQuizRequest:
		question, ok := m.store.FirstUnanswered(state.CurrentSlide, state.AnsweredQuestionIDs)
		if !ok {
			return next, Action{Type: ActionShowDefault, Slide: state.CurrentSlide}
		}
		next.AwaitingQuizAnswer = true
		return next, Action{Type: ActionAskQuestion, Slide: state.CurrentSlide, Question: &question}

	case intent.KindQuizAnswer:
		question, ok := m.store.FirstUnanswered(state.CurrentSlide, state.AnsweredQuestionIDs)
		if !ok {
			next.AwaitingQuizAnswer = false
			return next, Action{Type: ActionShowDefault, Slide: state.CurrentSlide}
		}
		selected, correct := gradeAnswer(question, in.Utterance)
		next.AwaitingQuizAnswer = false
		next.AnsweredQuestionIDs[question.ID] = struct{}{}
		if correct {
			next.CorrectCount++
		}
		return next, Action{
			Type:  ActionEvaluateAnswer,
			Slide: state.CurrentSlide,
			Evaluation: &AnswerEvaluation{
				Question: question,
				Selected: selected,
				Correct:  correct,
			},
		}

	case intent.KindContentQuestion:
		next.LastContentQuestion = true
		return next, Action{Type: ActionAnswerContentQuestion, Slide: state.CurrentSlide, Utterance: in.Utterance}

	case intent.KindDeclineContinue:
		next.AwaitingQuizAnswer = false
		return next, Action{Type: ActionShowTransition, Slide: state.CurrentSlide}

	default:
		return next, Action{Type: ActionShowDefault, Slide: state.CurrentSlide}
	}
}

// gradeAnswer matches an utterance against the question's choices: a bare
// choice letter, a 1-based position, or a fuzzy match on the choice text.
func gradeAnswer(question content.QuizQuestion, utterance string) (*content.Choice, bool) {
	normalized := strings.ToLower(strings.TrimSpace(utterance))
	normalized = strings.Trim(normalized, " ?!.)")

	for i := range question.Choices {
		choice := &question.Choices[i]
		if normalized == strings.ToLower(choice.ID) {
			return choice, choice.Correct
		}
	}

	if ordinal := parseOrdinal(normalized); ordinal >= 1 && ordinal <= len(question.Choices) {
		choice := &question.Choices[ordinal-1]
		return choice, choice.Correct
	}

	bestRank := -1
	var best *content.Choice
	for i := range question.Choices {
		choice := &question.Choices[i]
		lowered := strings.ToLower(choice.Text)
		if strings.Contains(normalized, lowered) || strings.Contains(lowered, normalized) {
			return choice, choice.Correct
		}
		if rank := fuzzy.RankMatchNormalizedFold(normalized, choice.Text); rank >= 0 {
			if bestRank == -1 || rank < bestRank {
				bestRank = rank
				best = choice
			}
		}
	}
	if best != nil {
		return best, best.Correct
	}
	return nil, false
}

func parseOrdinal(normalized string) int {
	switch normalized {
	case "1", "one", "first", "the first", "the first one":
		return 1
	case "2", "two", "second", "the second", "the second one":
		return 2
	case "3", "three", "third", "the third", "the third one":
		return 3
	case "4", "four", "fourth", "the fourth", "the fourth one":
		return 4
	}
	return 0
}

// startState builds a fresh active presentation. A start targeting a slide
// past the first opens on that slide directly instead of the welcome.
func startState(target int) (models.PresentationState, Action) {
	next := models.NewPresentationState()
	next.Mode = models.ModeActive
	if target > 1 {
		slide := clampSlide(target)
		next.CurrentSlide = slide
		return next, Action{Type: ActionShowSlide, Slide: slide}
	}
	return next, Action{Type: ActionShowWelcome, Slide: 1}
}

func clampSlide(n int) int {
	if n < 1 {
		return 1
	}
	if n > content.TotalSlides {
		return content.TotalSlides
	}
	return n
}
