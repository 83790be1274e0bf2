package presentation

import (
	"context"
	"fmt"
	"log"

	"slidechat/models"
	"slidechat/services/content"
	"slidechat/services/intent"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const (
	exitAcknowledgement = "You've left the presentation. Feel free to ask me anything else, or say \"start presentation\" to pick it back up."
	notRunningPrompt    = "The presentation isn't running right now. Say \"start presentation\" whenever you'd like to begin."
)

// Service is the presentation-mode turn handler: it applies one intent to
// the session state and composes the assistant reply for it.
type Service struct {
	store    *content.Store
	machine  *Machine
	composer *Composer
}

func NewService(store *content.Store, apiKey string) *Service {
	llm, err := openai.New(
		openai.WithModel("gpt-4o-mini"),
		openai.WithToken(apiKey),
	)
	if err != nil {
		panic(fmt.Sprintf("Failed to create OpenAI client: %v", err))
	}
	return NewServiceWithModel(store, llm)
}

// NewServiceWithModel wires an explicit model, used by tests and callers
// that manage their own client.
func NewServiceWithModel(store *content.Store, llm llms.Model) *Service {
	return &Service{
		store:    store,
		machine:  NewMachine(store),
		composer: NewComposer(store, llm),
	}
}

func (s *Service) Machine() *Machine {
	return s.machine
}

// Respond runs one presentation turn. The returned state is a snapshot the
// caller applies; the returned message carries the metadata snapshot the UI
// renders from.
func (s *Service) Respond(ctx context.Context, state models.PresentationState, in intent.Intent) (models.PresentationState, models.ConversationMessage) {
	next, action := s.machine.Transition(state, in)
	log.Printf("[INFO] Presentation transition: intent=%s action=%s slide=%d", in.Kind, action.Type, action.Slide)

	text := s.composer.Compose(ctx, action)
	if action.Type == ActionNone {
		if in.Kind == intent.KindExit {
			text = exitAcknowledgement
		} else {
			text = notRunningPrompt
		}
	}

	slide := action.Slide
	if slide == 0 {
		slide = next.CurrentSlide
	}

	meta := models.MessageMetadata{
		PresentationMode:    next.Active(),
		CurrentSlide:        slide,
		CurrentSlideContent: s.store.SlideBody(slide),
		ShowQuestion:        action.Type == ActionAskQuestion,
		IsContentQuestion:   action.Type == ActionAnswerContentQuestion,
	}

	return next, models.NewAssistantMessage(text, meta)
}
