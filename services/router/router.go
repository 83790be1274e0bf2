package router

import (
	"errors"
	"log"

	"slidechat/models"
	"slidechat/services/content"
	"slidechat/services/intent"
)

// ErrNoRoute means no downstream node could be resolved for a turn. Given the
// exhaustive agent fallback it should be unreachable; hitting it is a logic
// gap, not a user condition.
var ErrNoRoute = errors.New("no route resolved for turn")

// RouteCheck is an external collaborator's routing probe (code-artifact
// editing, theme rewriting, web search and the like). It returns its node
// name and whether it claims the turn.
type RouteCheck func(req *models.TurnRequest) (string, bool)

// Router is the single entry point per inbound turn. Precedence: explicit
// control flags from the UI, then intent classification while the
// presentation is active, then registered collaborator checks, then the
// default agent node.
type Router struct {
	store  *content.Store
	checks []RouteCheck
}

func New(store *content.Store, checks ...RouteCheck) *Router {
	return &Router{store: store, checks: checks}
}

// Route decides the downstream node for a turn and, when the presentation
// owns it, the intent to apply. The returned intent is only meaningful when
// the decision's Next is NodePresentation.
func (r *Router) Route(req *models.TurnRequest, state models.PresentationState) (models.RoutingDecision, intent.Intent, error) {
	if req.HasExplicitFlags() {
		decision, in := r.routeExplicit(req, state)
		log.Printf("[INFO] Routed turn via explicit flags: next=%s slide=%d", decision.Next, decision.PresentationSlide)
		return r.finish(decision, in)
	}

	if state.Active() {
		in := intent.Classify(req.LatestHumanContent(), intent.Context{
			Active:         true,
			CurrentSlide:   state.CurrentSlide,
			TotalSlides:    content.TotalSlides,
			AwaitingAnswer: state.AwaitingQuizAnswer,
		})
		if in.Kind == intent.KindFallback {
			log.Printf("[INFO] Active presentation turn fell back to agent")
			return r.finish(r.agentDecision(state), in)
		}
		decision := r.presentationDecision(state, in)
		log.Printf("[INFO] Routed active presentation turn: intent=%s slide=%d", in.Kind, decision.PresentationSlide)
		return r.finish(decision, in)
	}

	// Inactive with no flags: a start command still belongs to the
	// presentation; everything else goes through the collaborator checks.
	in := intent.Classify(req.LatestHumanContent(), intent.Context{
		Active:       false,
		CurrentSlide: state.CurrentSlide,
		TotalSlides:  content.TotalSlides,
	})
	if in.Kind == intent.KindStart {
		log.Printf("[INFO] Start command recognized, routing to presentation")
		return r.finish(r.presentationDecision(state, in), in)
	}

	for _, check := range r.checks {
		if node, ok := check(req); ok {
			log.Printf("[INFO] Collaborator check claimed turn: next=%s", node)
			return r.finish(models.RoutingDecision{Next: node}, in)
		}
	}

	return r.finish(r.agentDecision(state), in)
}

// routeExplicit converts UI control flags into a decision and a synthesized
// intent, so button clicks flow through the same state machine as typed
// commands without reclassification.
func (r *Router) routeExplicit(req *models.TurnRequest, state models.PresentationState) (models.RoutingDecision, intent.Intent) {
	if req.PresentationMode != nil && !*req.PresentationMode {
		return r.presentationDecision(state, intent.Intent{Kind: intent.KindExit}), intent.Intent{Kind: intent.KindExit}
	}

	in := intent.Intent{Kind: intent.KindStart, TargetSlide: 1}
	switch {
	case req.ShowPresentationQuestion != nil && *req.ShowPresentationQuestion:
		in = intent.Intent{Kind: intent.KindQuizRequest}
	case req.IsContentQuestion != nil && *req.IsContentQuestion:
		in = intent.Intent{Kind: intent.KindContentQuestion, Utterance: req.LatestHumanContent()}
	case req.PresentationSlide != nil && state.Active():
		in = intent.Intent{Kind: intent.KindNavigateTo, TargetSlide: *req.PresentationSlide}
	case req.PresentationSlide != nil:
		// Starting with a target slide opens there directly, so the decision's
		// slide and the resulting state agree.
		in = intent.Intent{Kind: intent.KindStart, TargetSlide: *req.PresentationSlide}
	}

	decision := r.presentationDecision(state, in)
	if req.PresentationSlide != nil {
		decision.PresentationSlide = *req.PresentationSlide
	}
	if req.ShowPresentationQuestion != nil {
		decision.ShowPresentationQuestion = *req.ShowPresentationQuestion
	}
	if req.IsContentQuestion != nil {
		decision.IsContentQuestion = *req.IsContentQuestion
	}
	return decision, in
}

func (r *Router) presentationDecision(state models.PresentationState, in intent.Intent) models.RoutingDecision {
	slide := state.CurrentSlide
	if in.TargetSlide != 0 {
		slide = in.TargetSlide
	}
	_, details := r.store.SlideContext(slide)
	return models.RoutingDecision{
		Next:                     models.NodePresentation,
		PresentationMode:         true,
		PresentationSlide:        slide,
		ShowPresentationQuestion: in.Kind == intent.KindQuizRequest,
		IsContentQuestion:        in.Kind == intent.KindContentQuestion,
		SlideContent:             r.store.SlideBody(slide),
		SlideContext:             details,
	}
}

func (r *Router) agentDecision(state models.PresentationState) models.RoutingDecision {
	return models.RoutingDecision{
		Next:              models.NodeAgent,
		PresentationMode:  state.Active(),
		PresentationSlide: state.CurrentSlide,
	}
}

func (r *Router) finish(decision models.RoutingDecision, in intent.Intent) (models.RoutingDecision, intent.Intent, error) {
	if decision.Next == "" {
		return decision, in, ErrNoRoute
	}
	return decision, in, nil
}
