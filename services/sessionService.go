package services

import (
	"fmt"
	"log"
	"sync"

	"slidechat/db"
	"slidechat/models"
	"slidechat/services/events"
	"slidechat/services/uisync"

	"github.com/google/uuid"
)

// ErrTurnInFlight is returned when a turn arrives while another one for the
// same conversation is still being processed.
var ErrTurnInFlight = fmt.Errorf("a turn is already in flight for this conversation")

// Session is one conversation's live state: the presentation dialogue state,
// the rendered message log, and the UI reconciler. All mutation goes through
// SessionService so there is a single writer per session.
type Session struct {
	ID         string
	State      models.PresentationState
	Messages   []models.ConversationMessage
	Reconciler *uisync.Reconciler

	mu        sync.Mutex
	inFlight  bool
	latestSeq uint64
}

// SessionService owns every active conversation session. Turns are
// serialized per session with an in-flight guard, and each turn carries a
// monotonic sequence number so a late completion from a superseded turn is
// detected and dropped.
type SessionService struct {
	mu       sync.Mutex
	sessions map[string]*Session
	repo     db.ThreadRepository
	bus      *events.Bus
}

func NewSessionService(repo db.ThreadRepository, bus *events.Bus) *SessionService {
	return &SessionService{
		sessions: map[string]*Session{},
		repo:     repo,
		bus:      bus,
	}
}

// GetOrCreate returns the session for id, creating it (with a fresh id when
// empty) on first use.
func (s *SessionService) GetOrCreate(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		id = uuid.NewString()
	}
	if session, ok := s.sessions[id]; ok {
		return session
	}

	log.Printf("[INFO] Creating session %s", id)
	session := &Session{
		ID:         id,
		State:      models.NewPresentationState(),
		Reconciler: uisync.NewReconciler(),
	}
	s.sessions[id] = session
	return session
}

// BeginTurn claims the session for one turn and returns its sequence number.
// A second turn while one is in flight is rejected; the UI's processing
// guard makes this the exceptional path, not the normal one.
func (s *SessionService) BeginTurn(session *Session) (uint64, error) {
	session.mu.Lock()
	defer session.mu.Unlock()

	if session.inFlight {
		return 0, ErrTurnInFlight
	}
	session.inFlight = true
	session.latestSeq++
	return session.latestSeq, nil
}

// AbandonTurn releases the in-flight guard without applying anything, used
// when a turn fails before producing output. A later turn gets a higher
// sequence, so if the abandoned turn's work still arrives it is dropped.
func (s *SessionService) AbandonTurn(session *Session, seq uint64) {
	session.mu.Lock()
	defer session.mu.Unlock()

	if seq == session.latestSeq {
		session.inFlight = false
	}
}

// CompleteTurn applies a finished turn: new presentation state plus the
// messages it produced. A completion whose sequence is no longer the latest
// belongs to a superseded turn and is dropped.
func (s *SessionService) CompleteTurn(session *Session, seq uint64, state models.PresentationState, messages ...models.ConversationMessage) error {
	session.mu.Lock()

	if seq != session.latestSeq {
		session.mu.Unlock()
		log.Printf("[INFO] Dropping stale turn completion for session %s (seq %d, latest %d)", session.ID, seq, session.latestSeq)
		return nil
	}
	session.inFlight = false

	wasActive := session.State.Active()
	previousSlide := session.State.CurrentSlide
	wasAwaiting := session.State.AwaitingQuizAnswer
	session.State = state
	session.Messages = append(session.Messages, messages...)
	session.mu.Unlock()

	for i := range messages {
		if err := s.persistAppend(session.ID, &messages[i]); err != nil {
			log.Printf("[ERROR] Failed to persist message %s: %v", messages[i].ID, err)
		}
	}

	// Debounce the reconciler against the slide we just produced, so the
	// echoed slideChanged event cannot re-trigger a navigation turn.
	session.Reconciler.ObserveSlide(state.CurrentSlide)

	if s.bus != nil {
		if wasActive != state.Active() {
			s.bus.Publish(session.ID, events.PresentationModeChange{IsActive: state.Active()})
			if !state.Active() {
				s.bus.Publish(session.ID, events.ExitPresentation{})
			}
		}
		if state.Active() && previousSlide != state.CurrentSlide {
			s.bus.Publish(session.ID, events.SlideChanged{SlideNumber: state.CurrentSlide})
		}
		if wasAwaiting != state.AwaitingQuizAnswer {
			s.bus.Publish(session.ID, events.MultipleChoiceModeChange{IsActive: state.AwaitingQuizAnswer})
		}
	}

	return nil
}

// SynthesizeNavigationTurn reacts to a goToSlide event from the embedded
// frame: it produces the outbound "go to slide N" human turn at most once
// per distinct slide. The caller feeds it through the normal turn pipeline,
// which appends and persists it like any typed message.
func (s *SessionService) SynthesizeNavigationTurn(session *Session, slide int) (models.ConversationMessage, bool) {
	msg, ok := session.Reconciler.ObserveSlide(slide)
	if !ok {
		return models.ConversationMessage{}, false
	}
	log.Printf("[INFO] Synthesized navigation turn for session %s: slide %d", session.ID, slide)
	return msg, true
}

// ReplaceMessage swaps a message in place by id. Ordering is preserved; a
// miss is reported, not ignored, because replacement targets must exist.
func (s *SessionService) ReplaceMessage(session *Session, msg models.ConversationMessage) error {
	session.mu.Lock()
	replaced := false
	for i := range session.Messages {
		if session.Messages[i].ID == msg.ID {
			session.Messages[i] = msg
			replaced = true
			break
		}
	}
	session.mu.Unlock()

	if !replaced {
		return fmt.Errorf("message with id %s not found in session %s", msg.ID, session.ID)
	}

	if err := s.persistReplace(session.ID, &msg); err != nil {
		log.Printf("[ERROR] Failed to persist replaced message %s: %v", msg.ID, err)
	}
	return nil
}

// RefreshAll runs the periodic reconciliation pass over every session. It
// only touches messages that are not part of an in-flight turn: sessions
// currently authoring a reply are skipped and picked up next tick.
func (s *SessionService) RefreshAll() {
	s.mu.Lock()
	sessions := make([]*Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		sessions = append(sessions, session)
	}
	s.mu.Unlock()

	for _, session := range sessions {
		session.mu.Lock()
		if session.inFlight {
			session.mu.Unlock()
			continue
		}
		refreshed, count := session.Reconciler.Refresh(session.Messages)
		session.Messages = refreshed
		session.mu.Unlock()

		if count > 0 {
			log.Printf("[INFO] Refreshed %d stale messages in session %s", count, session.ID)
		}
	}
}

// Snapshot returns copies of the session's state and message log for
// rendering, without exposing the live slices.
func (s *SessionService) Snapshot(session *Session) (models.PresentationState, []models.ConversationMessage) {
	session.mu.Lock()
	defer session.mu.Unlock()

	messages := make([]models.ConversationMessage, len(session.Messages))
	copy(messages, session.Messages)
	return session.State.Clone(), messages
}

// AppendHuman records the inbound human message for a turn.
func (s *SessionService) AppendHuman(session *Session, msg models.ConversationMessage) {
	session.mu.Lock()
	session.Messages = append(session.Messages, msg)
	session.mu.Unlock()

	if err := s.persistAppend(session.ID, &msg); err != nil {
		log.Printf("[ERROR] Failed to persist human message %s: %v", msg.ID, err)
	}
}

func (s *SessionService) persistAppend(threadID string, msg *models.ConversationMessage) error {
	if s.repo == nil {
		return nil
	}
	return s.repo.AppendMessage(threadID, msg)
}

func (s *SessionService) persistReplace(threadID string, msg *models.ConversationMessage) error {
	if s.repo == nil {
		return nil
	}
	return s.repo.ReplaceMessage(threadID, msg)
}
