package models

type PresentationMode string

const (
	ModeInactive PresentationMode = "inactive"
	ModeActive   PresentationMode = "active"
)

// PresentationState is the per-conversation dialogue state for presentation
// mode. It is mutated only by applying state machine transitions; every other
// component reads it or holds a snapshot.
type PresentationState struct {
	Mode                PresentationMode    `json:"mode"`
	CurrentSlide        int                 `json:"currentSlide"`
	AwaitingQuizAnswer  bool                `json:"awaitingQuizAnswer"`
	LastContentQuestion bool                `json:"lastContentQuestion"`
	AnsweredQuestionIDs map[string]struct{} `json:"-"`
	CorrectCount        int                 `json:"correctCount"`
}

func NewPresentationState() PresentationState {
	return PresentationState{
		Mode:                ModeInactive,
		CurrentSlide:        1,
		AnsweredQuestionIDs: map[string]struct{}{},
	}
}

func (s PresentationState) Active() bool {
	return s.Mode == ModeActive
}

// Clone returns a copy whose answered-question set is independent of the
// receiver, so transitions can return new state without aliasing.
func (s PresentationState) Clone() PresentationState {
	answered := make(map[string]struct{}, len(s.AnsweredQuestionIDs))
	for id := range s.AnsweredQuestionIDs {
		answered[id] = struct{}{}
	}
	s.AnsweredQuestionIDs = answered
	return s
}

// TurnRequest is the inbound request for one conversation turn. The optional
// presentation fields are the UI escape hatch: when any of them is set the
// router uses them verbatim and skips intent classification.
type TurnRequest struct {
	ConversationID           string                `json:"conversationId,omitempty"`
	Messages                 []ConversationMessage `json:"messages"`
	PresentationMode         *bool                 `json:"presentationMode,omitempty"`
	PresentationSlide        *int                  `json:"presentationSlide,omitempty"`
	ShowPresentationQuestion *bool                 `json:"showPresentationQuestion,omitempty"`
	IsContentQuestion        *bool                 `json:"isContentQuestion,omitempty"`
}

func (r *TurnRequest) HasExplicitFlags() bool {
	return r.PresentationMode != nil || r.PresentationSlide != nil ||
		r.ShowPresentationQuestion != nil || r.IsContentQuestion != nil
}

// LatestHumanContent returns the content of the newest human message.
func (r *TurnRequest) LatestHumanContent() string {
	for i := len(r.Messages) - 1; i >= 0; i-- {
		if r.Messages[i].Role == RoleHuman {
			return r.Messages[i].Content
		}
	}
	return ""
}

// Downstream handler node names. Next must always be one of these; an empty
// Next in a routing decision is a contract violation.
const (
	NodePresentation = "presentation"
	NodeAgent        = "agent"
)

type RoutingDecision struct {
	Next                     string `json:"next"`
	PresentationMode         bool   `json:"presentationMode"`
	PresentationSlide        int    `json:"presentationSlide"`
	ShowPresentationQuestion bool   `json:"showPresentationQuestion"`
	IsContentQuestion        bool   `json:"isContentQuestion"`
	SlideContent             string `json:"slideContent,omitempty"`
	SlideContext             string `json:"slideContext,omitempty"`
}
