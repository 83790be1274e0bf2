package presentation

import (
	"testing"

	"slidechat/models"
	"slidechat/services/content"
	"slidechat/services/intent"
)

func activeState(slide int) models.PresentationState {
	state := models.NewPresentationState()
	state.Mode = models.ModeActive
	state.CurrentSlide = slide
	return state
}

func TestStartFromInactive(t *testing.T) {
	machine := NewMachine(content.NewStore())

	next, action := machine.Transition(models.NewPresentationState(), intent.Intent{Kind: intent.KindStart, TargetSlide: 1})

	if !next.Active() {
		t.Error("expected active state after start")
	}
	if next.CurrentSlide != 1 {
		t.Errorf("CurrentSlide = %d, expected 1", next.CurrentSlide)
	}
	if action.Type != ActionShowWelcome {
		t.Errorf("action = %s, expected %s", action.Type, ActionShowWelcome)
	}
}

func TestStartAtTargetSlide(t *testing.T) {
	machine := NewMachine(content.NewStore())

	next, action := machine.Transition(models.NewPresentationState(), intent.Intent{Kind: intent.KindStart, TargetSlide: 4})

	if !next.Active() {
		t.Error("expected active state after start")
	}
	if next.CurrentSlide != 4 {
		t.Errorf("CurrentSlide = %d, expected 4", next.CurrentSlide)
	}
	if action.Type != ActionShowSlide || action.Slide != 4 {
		t.Errorf("action = %s(%d), expected %s(4)", action.Type, action.Slide, ActionShowSlide)
	}

	next, _ = machine.Transition(models.NewPresentationState(), intent.Intent{Kind: intent.KindStart, TargetSlide: 42})
	if next.CurrentSlide != content.TotalSlides {
		t.Errorf("CurrentSlide = %d, expected clamp to %d", next.CurrentSlide, content.TotalSlides)
	}
}

func TestNavigateToEverySlide(t *testing.T) {
	machine := NewMachine(content.NewStore())

	for n := 1; n <= content.TotalSlides; n++ {
		next, action := machine.Transition(activeState(3), intent.Intent{Kind: intent.KindNavigateTo, TargetSlide: n})
		if next.CurrentSlide != n {
			t.Errorf("NavigateTo(%d): CurrentSlide = %d", n, next.CurrentSlide)
		}
		if action.Type != ActionShowSlide || action.Slide != n {
			t.Errorf("NavigateTo(%d): action = %s(%d)", n, action.Type, action.Slide)
		}
		if next.AwaitingQuizAnswer {
			t.Errorf("NavigateTo(%d): navigation should clear awaiting flag", n)
		}
	}
}

func TestNavigationClamping(t *testing.T) {
	machine := NewMachine(content.NewStore())

	tests := []struct {
		name      string
		state     models.PresentationState
		in        intent.Intent
		wantSlide int
	}{
		{
			name:      "next from last slide stays",
			state:     activeState(content.TotalSlides),
			in:        intent.Intent{Kind: intent.KindNavigateNext, TargetSlide: content.TotalSlides},
			wantSlide: content.TotalSlides,
		},
		{
			name:      "previous from first slide stays",
			state:     activeState(1),
			in:        intent.Intent{Kind: intent.KindNavigatePrev, TargetSlide: 1},
			wantSlide: 1,
		},
		{
			name:      "defensive clamp on an impossible target",
			state:     activeState(2),
			in:        intent.Intent{Kind: intent.KindNavigateTo, TargetSlide: 42},
			wantSlide: content.TotalSlides,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _ := machine.Transition(tt.state, tt.in)
			if next.CurrentSlide != tt.wantSlide {
				t.Errorf("CurrentSlide = %d, expected %d", next.CurrentSlide, tt.wantSlide)
			}
		})
	}
}

func TestExitResetsState(t *testing.T) {
	machine := NewMachine(content.NewStore())

	state := activeState(5)
	state.AwaitingQuizAnswer = true
	state.AnsweredQuestionIDs["q-mech-1"] = struct{}{}
	state.CorrectCount = 1

	next, action := machine.Transition(state, intent.Intent{Kind: intent.KindExit})

	if next.Active() {
		t.Error("expected inactive state after exit")
	}
	if action.Type != ActionNone {
		t.Errorf("action = %s, expected %s", action.Type, ActionNone)
	}
	if len(next.AnsweredQuestionIDs) != 0 || next.CorrectCount != 0 {
		t.Error("exit should reset quiz progress")
	}
}

func TestQuizRequestAsksFirstUnanswered(t *testing.T) {
	store := content.NewStore()
	machine := NewMachine(store)
	questions := store.QuestionsForSlide(2)

	next, action := machine.Transition(activeState(2), intent.Intent{Kind: intent.KindQuizRequest})

	if !next.AwaitingQuizAnswer {
		t.Error("expected awaiting flag set")
	}
	if action.Type != ActionAskQuestion {
		t.Fatalf("action = %s, expected %s", action.Type, ActionAskQuestion)
	}
	if action.Question == nil || action.Question.ID != questions[0].ID {
		t.Errorf("asked question = %v, expected %s", action.Question, questions[0].ID)
	}
}

func TestQuizRequestOnSlideWithoutQuestions(t *testing.T) {
	machine := NewMachine(content.NewStore())

	next, action := machine.Transition(activeState(1), intent.Intent{Kind: intent.KindQuizRequest})

	if next.AwaitingQuizAnswer {
		t.Error("no question to await on slide 1")
	}
	if action.Type != ActionShowDefault {
		t.Errorf("action = %s, expected %s", action.Type, ActionShowDefault)
	}
}

func TestQuizAnswerGrading(t *testing.T) {
	store := content.NewStore()
	machine := NewMachine(store)
	// q-mech-1 on slide 2: correct choice is "b".
	tests := []struct {
		name        string
		utterance   string
		wantCorrect bool
	}{
		{name: "correct letter", utterance: "b", wantCorrect: true},
		{name: "correct letter with punctuation", utterance: "B.", wantCorrect: true},
		{name: "correct ordinal", utterance: "the second one", wantCorrect: true},
		{name: "correct text fragment", utterance: "non-selective beta blockade with alpha-1 blockade", wantCorrect: true},
		{name: "wrong letter", utterance: "a", wantCorrect: false},
		{name: "unmatched answer", utterance: "xylophone paradox", wantCorrect: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := activeState(2)
			state.AwaitingQuizAnswer = true

			next, action := machine.Transition(state, intent.Intent{Kind: intent.KindQuizAnswer, Utterance: tt.utterance})

			if next.AwaitingQuizAnswer {
				t.Error("answer should clear awaiting flag")
			}
			if action.Type != ActionEvaluateAnswer || action.Evaluation == nil {
				t.Fatalf("action = %s, expected evaluation", action.Type)
			}
			if action.Evaluation.Correct != tt.wantCorrect {
				t.Errorf("Correct = %v, expected %v", action.Evaluation.Correct, tt.wantCorrect)
			}
			if _, answered := next.AnsweredQuestionIDs["q-mech-1"]; !answered {
				t.Error("answered set should record the question")
			}
			wantCount := 0
			if tt.wantCorrect {
				wantCount = 1
			}
			if next.CorrectCount != wantCount {
				t.Errorf("CorrectCount = %d, expected %d", next.CorrectCount, wantCount)
			}
		})
	}
}

func TestAnsweredSetIsMonotone(t *testing.T) {
	store := content.NewStore()
	machine := NewMachine(store)
	questions := store.QuestionsForSlide(2)

	state := activeState(2)
	for i := range questions {
		var action Action
		state, action = machine.Transition(state, intent.Intent{Kind: intent.KindQuizRequest})
		if action.Type != ActionAskQuestion {
			t.Fatalf("round %d: action = %s", i, action.Type)
		}
		if action.Question.ID != questions[i].ID {
			t.Errorf("round %d: asked %s, expected %s", i, action.Question.ID, questions[i].ID)
		}
		state, _ = machine.Transition(state, intent.Intent{Kind: intent.KindQuizAnswer, Utterance: "b"})
		if len(state.AnsweredQuestionIDs) != i+1 {
			t.Errorf("round %d: answered set size = %d, expected %d", i, len(state.AnsweredQuestionIDs), i+1)
		}
	}
}

func TestContentQuestionFlagIsOneTurnLived(t *testing.T) {
	machine := NewMachine(content.NewStore())

	state, action := machine.Transition(activeState(4), intent.Intent{Kind: intent.KindContentQuestion, Utterance: "how fast is titration?"})
	if action.Type != ActionAnswerContentQuestion {
		t.Fatalf("action = %s", action.Type)
	}
	if !state.LastContentQuestion {
		t.Error("expected content-question flag set")
	}

	state, _ = machine.Transition(state, intent.Intent{Kind: intent.KindNavigateNext, TargetSlide: 5})
	if state.LastContentQuestion {
		t.Error("content-question flag should clear on the next transition")
	}
}

func TestDeclineContinue(t *testing.T) {
	machine := NewMachine(content.NewStore())

	state := activeState(3)
	state.AwaitingQuizAnswer = true

	next, action := machine.Transition(state, intent.Intent{Kind: intent.KindDeclineContinue})

	if next.AwaitingQuizAnswer {
		t.Error("decline should clear awaiting flag")
	}
	if action.Type != ActionShowTransition || action.Slide != 3 {
		t.Errorf("action = %s(%d), expected %s(3)", action.Type, action.Slide, ActionShowTransition)
	}
}

func TestTransitionDoesNotMutateInput(t *testing.T) {
	machine := NewMachine(content.NewStore())

	state := activeState(2)
	state.AwaitingQuizAnswer = true
	machine.Transition(state, intent.Intent{Kind: intent.KindQuizAnswer, Utterance: "b"})

	if len(state.AnsweredQuestionIDs) != 0 {
		t.Error("Transition mutated the input state's answered set")
	}
}
