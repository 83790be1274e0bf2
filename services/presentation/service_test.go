package presentation

import (
	"context"
	"strings"
	"testing"

	"slidechat/models"
	"slidechat/services/content"
	"slidechat/services/intent"
)

func newTestService() *Service {
	return NewServiceWithModel(content.NewStore(), &fakeModel{reply: "Grounded answer."})
}

func TestRespondStart(t *testing.T) {
	service := newTestService()

	state, msg := service.Respond(context.Background(), models.NewPresentationState(), intent.Intent{Kind: intent.KindStart, TargetSlide: 1})

	if !state.Active() {
		t.Error("expected active state")
	}
	if msg.Role != models.RoleAssistant {
		t.Errorf("Role = %s", msg.Role)
	}
	if !msg.Metadata.PresentationMode || msg.Metadata.CurrentSlide != 1 {
		t.Errorf("metadata = %+v, expected presentation mode on slide 1", msg.Metadata)
	}
	if msg.Metadata.CurrentSlideContent == "" {
		t.Error("metadata should carry the slide script")
	}
}

func TestRespondExit(t *testing.T) {
	service := newTestService()

	active := models.NewPresentationState()
	active.Mode = models.ModeActive
	active.CurrentSlide = 5

	state, msg := service.Respond(context.Background(), active, intent.Intent{Kind: intent.KindExit})

	if state.Active() {
		t.Error("expected inactive state")
	}
	if msg.Metadata.PresentationMode {
		t.Error("exit reply should not flag presentation mode")
	}
	if !strings.Contains(msg.Content, "start presentation") {
		t.Errorf("exit acknowledgement should point back to the start command, got %q", msg.Content)
	}
}

func TestRespondInactiveNonExitDoesNotClaimAnExit(t *testing.T) {
	service := newTestService()

	state, msg := service.Respond(context.Background(), models.NewPresentationState(), intent.Intent{Kind: intent.KindQuizRequest})

	if state.Active() {
		t.Error("a quiz request before starting must not activate the presentation")
	}
	if strings.Contains(msg.Content, "left the presentation") {
		t.Errorf("reply claims an exit that never happened: %q", msg.Content)
	}
	if !strings.Contains(msg.Content, "start presentation") {
		t.Errorf("reply should point at the start command, got %q", msg.Content)
	}
}

func TestRespondQuizRequestFlagsQuestion(t *testing.T) {
	service := newTestService()

	active := models.NewPresentationState()
	active.Mode = models.ModeActive
	active.CurrentSlide = 2

	state, msg := service.Respond(context.Background(), active, intent.Intent{Kind: intent.KindQuizRequest})

	if !state.AwaitingQuizAnswer {
		t.Error("expected awaiting flag set")
	}
	if !msg.Metadata.ShowQuestion {
		t.Error("metadata should flag the multiple-choice question")
	}
	if msg.Metadata.IsContentQuestion {
		t.Error("quiz question is not a content question")
	}
}

func TestRespondContentQuestionFlagsMetadata(t *testing.T) {
	service := newTestService()

	active := models.NewPresentationState()
	active.Mode = models.ModeActive
	active.CurrentSlide = 4

	_, msg := service.Respond(context.Background(), active, intent.Intent{Kind: intent.KindContentQuestion, Utterance: "how fast can I titrate?"})

	if !msg.Metadata.IsContentQuestion {
		t.Error("metadata should flag the content question")
	}
	if !strings.Contains(msg.Content, "Grounded answer.") {
		t.Errorf("reply should carry the model answer, got %q", msg.Content)
	}
}
