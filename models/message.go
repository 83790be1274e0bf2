package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleHuman     Role = "human"
	RoleAssistant Role = "assistant"
)

// MessageMetadata is the side channel carried on every conversation message.
// Presentation fields are a snapshot taken at composition time; they may be
// stale relative to the live session state and readers must tolerate that.
type MessageMetadata struct {
	PresentationMode    bool   `json:"presentationMode,omitempty"`
	CurrentSlide        int    `json:"currentSlide,omitempty"`
	CurrentSlideContent string `json:"currentSlideContent,omitempty"`
	ShowQuestion        bool   `json:"showQuestion,omitempty"`
	IsContentQuestion   bool   `json:"isContentQuestion,omitempty"`
	Synthesized         bool   `json:"synthesized,omitempty"`
}

type ConversationMessage struct {
	ID        string          `json:"id"`
	Role      Role            `json:"role"`
	Content   string          `json:"content"`
	Metadata  MessageMetadata `json:"metadata"`
	CreatedAt time.Time       `json:"createdAt"`
}

func NewHumanMessage(content string) ConversationMessage {
	return ConversationMessage{
		ID:        uuid.NewString(),
		Role:      RoleHuman,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}

func NewAssistantMessage(content string, meta MessageMetadata) ConversationMessage {
	return ConversationMessage{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Content:   content,
		Metadata:  meta,
		CreatedAt: time.Now().UTC(),
	}
}
