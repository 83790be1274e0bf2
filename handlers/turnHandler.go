package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"slidechat/models"
	"slidechat/services"
	"slidechat/services/agent"
	"slidechat/services/presentation"
	"slidechat/services/router"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
)

const sessionCookieName = "slidechat-session"

type TurnResponse struct {
	ConversationID string                       `json:"conversationId"`
	Decision       models.RoutingDecision       `json:"decision"`
	Messages       []models.ConversationMessage `json:"messages"`
}

// TurnHandler is the HTTP entry point for conversation turns. Every inbound
// utterance, whether typed or synthesized by the UI, goes through RunTurn.
type TurnHandler struct {
	sessions     *services.SessionService
	router       *router.Router
	presentation *presentation.Service
	agent        *agent.Service
	cookies      *sessions.CookieStore
}

func NewTurnHandler(sessionService *services.SessionService, rt *router.Router, pres *presentation.Service, ag *agent.Service, sessionSecret string) *TurnHandler {
	return &TurnHandler{
		sessions:     sessionService,
		router:       rt,
		presentation: pres,
		agent:        ag,
		cookies:      sessions.NewCookieStore([]byte(sessionSecret)),
	}
}

func (h *TurnHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/turn", h.HandleTurn).Methods("POST")
	r.HandleFunc("/conversations/{id}/messages", h.GetMessages).Methods("GET")
}

func (h *TurnHandler) HandleTurn(w http.ResponseWriter, r *http.Request) {
	log.Printf("[INFO] Received turn request")

	var req models.TurnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[ERROR] Failed to decode turn request JSON: %v", err)
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	req.ConversationID = h.resolveConversationID(w, r, &req)

	response, err := h.RunTurn(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTurnInFlight):
			writeErrorResponse(w, http.StatusConflict, err.Error())
		case errors.Is(err, router.ErrNoRoute):
			log.Printf("[ERROR] Routing contract violation: %v", err)
			writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		default:
			log.Printf("[ERROR] Turn processing failed: %v", err)
			writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	log.Printf("[INFO] Turn completed: next=%s", response.Decision.Next)
	writeJSONResponse(w, http.StatusOK, response)
}

// RunTurn is the transport-independent turn pipeline: claim the session,
// record the human message, route, dispatch to the presentation or the
// agent, and apply the result.
func (h *TurnHandler) RunTurn(ctx context.Context, req *models.TurnRequest) (*TurnResponse, error) {
	session := h.sessions.GetOrCreate(req.ConversationID)

	seq, err := h.sessions.BeginTurn(session)
	if err != nil {
		return nil, err
	}

	if human, ok := latestHuman(req.Messages); ok {
		h.sessions.AppendHuman(session, human)
	}

	state, _ := h.sessions.Snapshot(session)

	decision, in, err := h.router.Route(req, state)
	if err != nil {
		h.sessions.AbandonTurn(session, seq)
		return nil, err
	}

	var reply models.ConversationMessage
	newState := state

	switch decision.Next {
	case models.NodePresentation:
		newState, reply = h.presentation.Respond(ctx, state, in)

	case models.NodeAgent:
		text, err := h.agent.ProcessMessages(ctx, req.Messages)
		if err != nil {
			h.sessions.AbandonTurn(session, seq)
			return nil, err
		}
		reply = models.NewAssistantMessage(text, models.MessageMetadata{})

	default:
		h.sessions.AbandonTurn(session, seq)
		return nil, router.ErrNoRoute
	}

	if err := h.sessions.CompleteTurn(session, seq, newState, reply); err != nil {
		return nil, err
	}

	return &TurnResponse{
		ConversationID: session.ID,
		Decision:       decision,
		Messages:       []models.ConversationMessage{reply},
	}, nil
}

func (h *TurnHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	session := h.sessions.GetOrCreate(id)
	state, messages := h.sessions.Snapshot(session)

	writeJSONResponse(w, http.StatusOK, map[string]any{
		"conversationId": session.ID,
		"state":          state,
		"messages":       messages,
	})
}

// resolveConversationID prefers the request's explicit id, then the browser
// session cookie, then mints a fresh id and stores it in the cookie.
func (h *TurnHandler) resolveConversationID(w http.ResponseWriter, r *http.Request, req *models.TurnRequest) string {
	if req.ConversationID != "" {
		return req.ConversationID
	}

	cookieSession, _ := h.cookies.Get(r, sessionCookieName)
	if id, ok := cookieSession.Values["conversationId"].(string); ok && id != "" {
		return id
	}

	id := uuid.NewString()
	cookieSession.Values["conversationId"] = id
	if err := cookieSession.Save(r, w); err != nil {
		log.Printf("[ERROR] Failed to save session cookie: %v", err)
	}
	return id
}

func latestHuman(messages []models.ConversationMessage) (models.ConversationMessage, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == models.RoleHuman {
			msg := messages[i]
			if msg.ID == "" {
				msg.ID = uuid.NewString()
			}
			return msg, true
		}
	}
	return models.ConversationMessage{}, false
}

func writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
