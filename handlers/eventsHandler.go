package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"slidechat/models"
	"slidechat/services/events"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The embedded presentation frame is served from a different origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type wsEvent struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// EventsHandler bridges the server-side event bus and the embedded
// presentation frame over a websocket: slideChanged and mode changes go out,
// goToSlide commands come in. Delivery is best-effort in both directions.
type EventsHandler struct {
	bus   *events.Bus
	turns *TurnHandler
}

func NewEventsHandler(bus *events.Bus, turns *TurnHandler) *EventsHandler {
	return &EventsHandler{bus: bus, turns: turns}
}

func (h *EventsHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/events/ws", h.Serve).Methods("GET")
}

func (h *EventsHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conversationID := r.URL.Query().Get("conversation")
	if conversationID == "" {
		writeErrorResponse(w, http.StatusBadRequest, "conversation query parameter is required")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ERROR] Websocket upgrade failed: %v", err)
		return
	}
	log.Printf("[INFO] Websocket connected for conversation %s", conversationID)

	sub, unsubscribe := h.bus.Subscribe(conversationID, 16)
	done := make(chan struct{})

	go h.writeLoop(conn, sub, done)
	h.readLoop(conn, conversationID)

	close(done)
	unsubscribe()
	conn.Close()
	log.Printf("[INFO] Websocket closed for conversation %s", conversationID)
}

func (h *EventsHandler) writeLoop(conn *websocket.Conn, sub <-chan events.Event, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case event, ok := <-sub:
			if !ok {
				return
			}
			payload, err := json.Marshal(event)
			if err != nil {
				log.Printf("[ERROR] Failed to marshal %s event: %v", event.EventName(), err)
				continue
			}
			if err := conn.WriteJSON(wsEvent{Event: event.EventName(), Payload: payload}); err != nil {
				log.Printf("[ERROR] Failed to write %s event: %v", event.EventName(), err)
				return
			}
		}
	}
}

func (h *EventsHandler) readLoop(conn *websocket.Conn, conversationID string) {
	for {
		var incoming wsEvent
		if err := conn.ReadJSON(&incoming); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ERROR] Websocket read failed: %v", err)
			}
			return
		}

		switch incoming.Event {
		case "goToSlide":
			var goTo events.GoToSlide
			if err := json.Unmarshal(incoming.Payload, &goTo); err != nil {
				log.Printf("[ERROR] Invalid goToSlide payload: %v", err)
				continue
			}
			h.handleGoToSlide(conversationID, goTo.SlideNumber)
		default:
			log.Printf("[INFO] Ignoring unknown client event %q", incoming.Event)
		}
	}
}

// handleGoToSlide turns a frame navigation event into a real conversation
// turn, at most once per distinct slide. The reconciler's slide debounce
// stops echoes of a slide we already navigated to.
func (h *EventsHandler) handleGoToSlide(conversationID string, slide int) {
	session := h.turns.sessions.GetOrCreate(conversationID)
	msg, ok := h.turns.sessions.SynthesizeNavigationTurn(session, slide)
	if !ok {
		return
	}

	req := &models.TurnRequest{
		ConversationID: conversationID,
		Messages:       []models.ConversationMessage{msg},
	}
	if _, err := h.turns.RunTurn(context.Background(), req); err != nil {
		log.Printf("[ERROR] Synthesized navigation turn failed: %v", err)
	}
}
