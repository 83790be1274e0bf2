package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"slidechat/models"
	"slidechat/services/content"

	"github.com/gorilla/mux"
)

// PresentationHandler exposes the UI-shortcut endpoints: button clicks that
// already know the target state and bypass intent classification by sending
// explicit control flags through the normal turn pipeline.
type PresentationHandler struct {
	turns *TurnHandler
	store *content.Store
}

func NewPresentationHandler(turns *TurnHandler, store *content.Store) *PresentationHandler {
	return &PresentationHandler{turns: turns, store: store}
}

func (h *PresentationHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/presentation/start", h.Start).Methods("POST")
	r.HandleFunc("/presentation/exit", h.Exit).Methods("POST")
	r.HandleFunc("/presentation/goto", h.GoTo).Methods("POST")
	r.HandleFunc("/presentation/question", h.Question).Methods("POST")
	r.HandleFunc("/presentation/slides/{n}", h.GetSlide).Methods("GET")
}

type controlRequest struct {
	ConversationID string `json:"conversationId,omitempty"`
	Slide          int    `json:"slide,omitempty"`
}

func (h *PresentationHandler) Start(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.decodeControl(w, r)
	if !ok {
		return
	}
	active := true
	first := 1
	h.runControlTurn(w, r, &models.TurnRequest{
		ConversationID:    ctrl.ConversationID,
		PresentationMode:  &active,
		PresentationSlide: &first,
	})
}

func (h *PresentationHandler) Exit(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.decodeControl(w, r)
	if !ok {
		return
	}
	active := false
	h.runControlTurn(w, r, &models.TurnRequest{
		ConversationID:   ctrl.ConversationID,
		PresentationMode: &active,
	})
}

func (h *PresentationHandler) GoTo(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.decodeControl(w, r)
	if !ok {
		return
	}
	if ctrl.Slide < 1 || ctrl.Slide > content.TotalSlides {
		writeErrorResponse(w, http.StatusBadRequest, "slide out of range")
		return
	}
	active := true
	h.runControlTurn(w, r, &models.TurnRequest{
		ConversationID:    ctrl.ConversationID,
		PresentationMode:  &active,
		PresentationSlide: &ctrl.Slide,
	})
}

func (h *PresentationHandler) Question(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.decodeControl(w, r)
	if !ok {
		return
	}
	show := true
	h.runControlTurn(w, r, &models.TurnRequest{
		ConversationID:           ctrl.ConversationID,
		ShowPresentationQuestion: &show,
	})
}

func (h *PresentationHandler) GetSlide(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(mux.Vars(r)["n"])
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "invalid slide number")
		return
	}

	slide, ok := h.store.Slide(n)
	if !ok {
		writeErrorResponse(w, http.StatusNotFound, content.NotAvailable)
		return
	}
	writeJSONResponse(w, http.StatusOK, slide)
}

func (h *PresentationHandler) decodeControl(w http.ResponseWriter, r *http.Request) (controlRequest, bool) {
	var ctrl controlRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&ctrl); err != nil {
			log.Printf("[ERROR] Failed to decode control request JSON: %v", err)
			writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON payload")
			return ctrl, false
		}
	}
	return ctrl, true
}

func (h *PresentationHandler) runControlTurn(w http.ResponseWriter, r *http.Request, req *models.TurnRequest) {
	req.ConversationID = h.turns.resolveConversationID(w, r, req)

	response, err := h.turns.RunTurn(r.Context(), req)
	if err != nil {
		log.Printf("[ERROR] Control turn failed: %v", err)
		writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSONResponse(w, http.StatusOK, response)
}
