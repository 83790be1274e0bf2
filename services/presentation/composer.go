package presentation

import (
	"context"
	"fmt"
	"log"
	"strings"

	"slidechat/services/content"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

const (
	ctaContinue = "Would you like to continue to the next slide?"
	ctaQuiz     = "Would you like to test your knowledge with a question about this slide?"

	apologyLine = "I'm sorry, I wasn't able to answer that just now."

	contentQuestionSystemPrompt = `You are presenting a medical slide deck about carvedilol to a clinician audience. Answer the user's question using ONLY the slide script and background context provided. Be accurate, concise, and conversational. If the provided material does not cover the question, say so plainly rather than guessing. Do not mention that you were given a script or context.`
)

// callToActionPhrases are the known phrasings of the trailing prompt. If any
// of them already occurs in a text, the composer must not append another.
var callToActionPhrases = []string{
	ctaContinue,
	ctaQuiz,
	"continue to the next slide",
	"test your knowledge",
}

// Composer turns state machine actions into assistant text. Deterministic
// actions are templated locally; content questions go to the model grounded
// in the slide corpus.
type Composer struct {
	store *content.Store
	llm   llms.Model
}

func NewComposer(store *content.Store, llm llms.Model) *Composer {
	return &Composer{store: store, llm: llm}
}

// CallToAction returns the trailing prompt for a slide: the first slide
// steers to navigation, every later slide steers to the quiz.
func (c *Composer) CallToAction(slide int) string {
	if slide <= 1 {
		return ctaContinue
	}
	return ctaQuiz
}

// EnsureCallToAction appends the slide's call-to-action unless the text
// already contains a known phrasing. Applying it twice yields the same text
// as applying it once.
func (c *Composer) EnsureCallToAction(text string, slide int) string {
	lowered := strings.ToLower(text)
	for _, phrase := range callToActionPhrases {
		if strings.Contains(lowered, strings.ToLower(phrase)) {
			return text
		}
	}
	trimmed := strings.TrimRight(text, " \n")
	if trimmed == "" {
		return c.CallToAction(slide)
	}
	return trimmed + "\n\n" + c.CallToAction(slide)
}

// Compose produces the assistant text for an action. It never returns an
// error for deterministic actions; for content questions a model failure is
// recovered into an apology that still carries the call-to-action.
func (c *Composer) Compose(ctx context.Context, action Action) string {
	switch action.Type {
	case ActionShowWelcome:
		var b strings.Builder
		b.WriteString("Welcome! Let's walk through carvedilol together, slide by slide.\n\n")
		b.WriteString(c.store.SlideBody(1))
		return c.EnsureCallToAction(b.String(), 1)

	case ActionShowSlide:
		title, _ := c.store.SlideContext(action.Slide)
		var b strings.Builder
		b.WriteString(fmt.Sprintf("Slide %d: %s\n\n", action.Slide, title))
		b.WriteString(c.store.SlideBody(action.Slide))
		return c.EnsureCallToAction(b.String(), action.Slide)

	case ActionAskQuestion:
		return composeQuestion(*action.Question)

	case ActionEvaluateAnswer:
		return c.EnsureCallToAction(composeEvaluation(*action.Evaluation), action.Slide)

	case ActionShowTransition:
		text := "No problem, we can come back to that whenever you like."
		return c.EnsureCallToAction(text, action.Slide)

	case ActionShowDefault:
		text := "We're looking at slide " + fmt.Sprint(action.Slide) + " of the carvedilol presentation. You can ask me anything about this slide, or navigate with \"next\", \"previous\", or \"go to slide N\"."
		return c.EnsureCallToAction(text, action.Slide)

	case ActionAnswerContentQuestion:
		return c.answerContentQuestion(ctx, action)

	default:
		return ""
	}
}

func composeQuestion(question content.QuizQuestion) string {
	var b strings.Builder
	b.WriteString("Here's a question about this slide:\n\n")
	b.WriteString(question.Text)
	b.WriteString("\n")
	for _, choice := range question.Choices {
		b.WriteString(fmt.Sprintf("\n%s) %s", choice.ID, choice.Text))
	}
	b.WriteString("\n\nReply with the letter of your answer.")
	return b.String()
}

func composeEvaluation(eval AnswerEvaluation) string {
	var b strings.Builder
	correct := eval.Question.CorrectChoice()
	if eval.Correct {
		b.WriteString(fmt.Sprintf("That's right! %s) %s is the correct answer.", correct.ID, correct.Text))
	} else {
		if eval.Selected != nil {
			b.WriteString(fmt.Sprintf("Not quite. You picked %s) %s. ", eval.Selected.ID, eval.Selected.Text))
		} else {
			b.WriteString("I couldn't match that to one of the choices. ")
		}
		b.WriteString(fmt.Sprintf("The correct answer is %s) %s.", correct.ID, correct.Text))
	}
	return b.String()
}

// answerContentQuestion asks the model to answer grounded in the slide
// corpus. The slide script and extended context ride along in the prompt,
// and the reply gets the same trailing call-to-action treatment as the
// deterministic paths.
func (c *Composer) answerContentQuestion(ctx context.Context, action Action) string {
	title, details := c.store.SlideContext(action.Slide)

	var prompt strings.Builder
	prompt.WriteString(fmt.Sprintf("The audience is currently on slide %d (%s).\n\n", action.Slide, title))
	prompt.WriteString("Slide script:\n")
	prompt.WriteString(c.store.SlideBody(action.Slide))
	prompt.WriteString("\n\nBackground context:\n")
	prompt.WriteString(details)
	prompt.WriteString("\n\nAudience question: ")
	prompt.WriteString(action.Utterance)

	messageHistory := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, contentQuestionSystemPrompt),
		llms.TextParts(schema.ChatMessageTypeHuman, prompt.String()),
	}

	resp, err := c.llm.GenerateContent(ctx, messageHistory, llms.WithTemperature(0.3))
	if err != nil {
		log.Printf("[ERROR] Content question model call failed for slide %d: %v", action.Slide, err)
		return c.EnsureCallToAction(apologyLine, action.Slide)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Content) == "" {
		log.Printf("[ERROR] Content question model returned no content for slide %d", action.Slide)
		return c.EnsureCallToAction(apologyLine, action.Slide)
	}

	return c.EnsureCallToAction(strings.TrimSpace(resp.Choices[0].Content), action.Slide)
}
