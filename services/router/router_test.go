package router

import (
	"testing"

	"slidechat/models"
	"slidechat/services/content"
	"slidechat/services/intent"
)

func humanTurn(text string) *models.TurnRequest {
	return &models.TurnRequest{
		Messages: []models.ConversationMessage{models.NewHumanMessage(text)},
	}
}

func activeState(slide int) models.PresentationState {
	state := models.NewPresentationState()
	state.Mode = models.ModeActive
	state.CurrentSlide = slide
	return state
}

func TestExplicitFlagsSkipClassification(t *testing.T) {
	r := New(content.NewStore())

	active := true
	slide := 4
	// The utterance says "exit" but the explicit flags win.
	req := humanTurn("exit presentation")
	req.PresentationMode = &active
	req.PresentationSlide = &slide

	decision, in, err := r.Route(req, activeState(2))
	if err != nil {
		t.Fatalf("Route returned error: %v", err)
	}
	if decision.Next != models.NodePresentation {
		t.Errorf("Next = %s, expected %s", decision.Next, models.NodePresentation)
	}
	if decision.PresentationSlide != 4 {
		t.Errorf("PresentationSlide = %d, expected 4", decision.PresentationSlide)
	}
	if in.Kind != intent.KindNavigateTo || in.TargetSlide != 4 {
		t.Errorf("intent = %s(%d), expected navigate_to(4)", in.Kind, in.TargetSlide)
	}
}

func TestExplicitExitFlag(t *testing.T) {
	r := New(content.NewStore())

	inactive := false
	req := humanTurn("")
	req.PresentationMode = &inactive

	decision, in, err := r.Route(req, activeState(5))
	if err != nil {
		t.Fatalf("Route returned error: %v", err)
	}
	if decision.Next != models.NodePresentation {
		t.Errorf("Next = %s, expected presentation to process the exit", decision.Next)
	}
	if in.Kind != intent.KindExit {
		t.Errorf("intent = %s, expected exit", in.Kind)
	}
}

func TestExplicitQuestionFlag(t *testing.T) {
	r := New(content.NewStore())

	show := true
	req := humanTurn("")
	req.ShowPresentationQuestion = &show

	decision, in, err := r.Route(req, activeState(3))
	if err != nil {
		t.Fatalf("Route returned error: %v", err)
	}
	if !decision.ShowPresentationQuestion {
		t.Error("decision should carry the question flag")
	}
	if in.Kind != intent.KindQuizRequest {
		t.Errorf("intent = %s, expected quiz_request", in.Kind)
	}
}

func TestExplicitSlideWhileInactiveStartsThere(t *testing.T) {
	r := New(content.NewStore())

	active := true
	slide := 4
	req := humanTurn("")
	req.PresentationMode = &active
	req.PresentationSlide = &slide

	decision, in, err := r.Route(req, models.NewPresentationState())
	if err != nil {
		t.Fatalf("Route returned error: %v", err)
	}
	if in.Kind != intent.KindStart || in.TargetSlide != 4 {
		t.Errorf("intent = %s(%d), expected start(4)", in.Kind, in.TargetSlide)
	}
	if decision.PresentationSlide != 4 {
		t.Errorf("PresentationSlide = %d, expected the slide the session opens on", decision.PresentationSlide)
	}
	if decision.Next != models.NodePresentation {
		t.Errorf("Next = %s, expected presentation", decision.Next)
	}
}

func TestActiveTurnsAreClassified(t *testing.T) {
	r := New(content.NewStore())

	tests := []struct {
		name      string
		utterance string
		wantNext  string
		wantKind  intent.Kind
	}{
		{name: "navigation", utterance: "go to slide 4", wantNext: models.NodePresentation, wantKind: intent.KindNavigateTo},
		{name: "content question", utterance: "why take it with food?", wantNext: models.NodePresentation, wantKind: intent.KindContentQuestion},
		{name: "quiz request", utterance: "quiz me", wantNext: models.NodePresentation, wantKind: intent.KindQuizRequest},
		{name: "unclassifiable falls back to agent", utterance: "hm", wantNext: models.NodeAgent, wantKind: intent.KindFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, in, err := r.Route(humanTurn(tt.utterance), activeState(2))
			if err != nil {
				t.Fatalf("Route returned error: %v", err)
			}
			if decision.Next != tt.wantNext {
				t.Errorf("Next = %s, expected %s", decision.Next, tt.wantNext)
			}
			if in.Kind != tt.wantKind {
				t.Errorf("intent = %s, expected %s", in.Kind, tt.wantKind)
			}
		})
	}
}

func TestDecisionCarriesSlideSnapshot(t *testing.T) {
	store := content.NewStore()
	r := New(store)

	decision, _, err := r.Route(humanTurn("go to slide 4"), activeState(2))
	if err != nil {
		t.Fatalf("Route returned error: %v", err)
	}
	if decision.SlideContent != store.SlideBody(4) {
		t.Error("SlideContent should snapshot the target slide body")
	}
	_, details := store.SlideContext(4)
	if decision.SlideContext != details {
		t.Error("SlideContext should snapshot the target slide context")
	}
}

func TestInactiveStartRoutesToPresentation(t *testing.T) {
	r := New(content.NewStore())

	decision, in, err := r.Route(humanTurn("start carvedilol presentation"), models.NewPresentationState())
	if err != nil {
		t.Fatalf("Route returned error: %v", err)
	}
	if decision.Next != models.NodePresentation {
		t.Errorf("Next = %s, expected presentation", decision.Next)
	}
	if in.Kind != intent.KindStart {
		t.Errorf("intent = %s, expected start", in.Kind)
	}
}

func TestInactiveDefaultRoutesToAgent(t *testing.T) {
	r := New(content.NewStore())

	decision, _, err := r.Route(humanTurn("write me a limerick about Go"), models.NewPresentationState())
	if err != nil {
		t.Fatalf("Route returned error: %v", err)
	}
	if decision.Next != models.NodeAgent {
		t.Errorf("Next = %s, expected agent", decision.Next)
	}
}

func TestCollaboratorCheckClaimsTurn(t *testing.T) {
	check := func(req *models.TurnRequest) (string, bool) {
		if req.LatestHumanContent() == "rewrite the theme" {
			return "theme", true
		}
		return "", false
	}
	r := New(content.NewStore(), check)

	decision, _, err := r.Route(humanTurn("rewrite the theme"), models.NewPresentationState())
	if err != nil {
		t.Fatalf("Route returned error: %v", err)
	}
	if decision.Next != "theme" {
		t.Errorf("Next = %s, expected collaborator node", decision.Next)
	}

	decision, _, err = r.Route(humanTurn("unrelated"), models.NewPresentationState())
	if err != nil {
		t.Fatalf("Route returned error: %v", err)
	}
	if decision.Next != models.NodeAgent {
		t.Errorf("Next = %s, expected agent fallback past the check", decision.Next)
	}
}

func TestEmptyNodeFromCheckIsContractError(t *testing.T) {
	check := func(req *models.TurnRequest) (string, bool) {
		return "", true
	}
	r := New(content.NewStore(), check)

	_, _, err := r.Route(humanTurn("anything at all here"), models.NewPresentationState())
	if err != ErrNoRoute {
		t.Errorf("err = %v, expected ErrNoRoute", err)
	}
}
