package uisync

import (
	"fmt"
	"sync"

	"slidechat/models"
)

// Reconciler keeps one conversation's rendered message log consistent with
// state machine output. Processed and refreshed markers are keyed sets owned
// here, never flags mutated on the shared message objects, so every guard is
// at-most-once by construction.
type Reconciler struct {
	mu                 sync.Mutex
	processed          map[string]struct{}
	refreshed          map[string]struct{}
	lastProcessedSlide int
}

func NewReconciler() *Reconciler {
	return &Reconciler{
		processed: map[string]struct{}{},
		refreshed: map[string]struct{}{},
	}
}

// MarkProcessed records a message id and reports whether this was its first
// processing pass. Later passes over the same id are no-ops.
func (r *Reconciler) MarkProcessed(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, seen := r.processed[id]; seen {
		return false
	}
	r.processed[id] = struct{}{}
	return true
}

// ObserveSlide synthesizes the outbound navigation turn for a slide change
// exactly once per change. The guard compares slide numbers against the last
// processed one instead of re-deriving intent, so a downstream event that
// echoes the same slide cannot re-trigger navigation.
func (r *Reconciler) ObserveSlide(slide int) (models.ConversationMessage, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if slide == r.lastProcessedSlide {
		return models.ConversationMessage{}, false
	}
	r.lastProcessedSlide = slide

	msg := models.NewHumanMessage(fmt.Sprintf("go to slide %d", slide))
	msg.Metadata.Synthesized = true
	return msg, true
}

// LastProcessedSlide returns the debounce marker, mainly for tests.
func (r *Reconciler) LastProcessedSlide() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastProcessedSlide
}

// Refresh replaces, in place and by id, every assistant message that has not
// been refreshed yet, returning fresh copies to defeat referential-equality
// staleness in the renderer. The pass is idempotent: a second call refreshes
// nothing and the log is never reordered or duplicated.
func (r *Reconciler) Refresh(messages []models.ConversationMessage) ([]models.ConversationMessage, int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	refreshedCount := 0
	out := make([]models.ConversationMessage, len(messages))
	for i, msg := range messages {
		if msg.Role != models.RoleAssistant {
			out[i] = msg
			continue
		}
		if _, done := r.refreshed[msg.ID]; done {
			out[i] = msg
			continue
		}
		r.refreshed[msg.ID] = struct{}{}
		refreshed := msg
		out[i] = refreshed
		refreshedCount++
	}
	return out, refreshedCount
}
