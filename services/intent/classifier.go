package intent

import (
	"regexp"
	"strconv"
	"strings"
)

type Kind string

const (
	KindStart           Kind = "start"
	KindExit            Kind = "exit"
	KindNavigateNext    Kind = "navigate_next"
	KindNavigatePrev    Kind = "navigate_prev"
	KindNavigateTo      Kind = "navigate_to"
	KindQuizRequest     Kind = "quiz_request"
	KindQuizAnswer      Kind = "quiz_answer"
	KindDeclineContinue Kind = "decline_continue"
	KindContentQuestion Kind = "content_question"
	KindFallback        Kind = "fallback"
)

// Intent is the classified purpose of one user utterance. TargetSlide is set
// only for navigation kinds and is always within [1, TotalSlides].
type Intent struct {
	Kind        Kind
	TargetSlide int
	Utterance   string
}

// Context is the dialogue state the classifier conditions on.
type Context struct {
	Active         bool
	CurrentSlide   int
	TotalSlides    int
	AwaitingAnswer bool
}

var (
	startPhrases = []string{
		"start presentation",
		"begin presentation",
		"show presentation",
		"start slides",
	}
	// Covers "start <topic> presentation" phrasings such as
	// "start carvedilol presentation".
	startTopicPattern = regexp.MustCompile(`\bstart\b.*\bpresentation\b`)

	// Any utterance containing "exit" as a word is an exit command while the
	// presentation is active: "exit", "exit now", "please exit".
	exitPattern = regexp.MustCompile(`\bexit\b`)

	nextPhrases = []string{"next slide", "go to next"}
	prevPhrases = []string{"previous slide", "go back", "prior slide"}

	goToSlidePattern = regexp.MustCompile(`go to slide (\d+)`)
	bareSlidePattern = regexp.MustCompile(`^slide (\d+)$`)

	quizPhrases = []string{"question", "quiz", "test", "knowledge", "challenge"}
	// Short affirmatives match as whole utterances only, so "ok" cannot fire
	// inside an unrelated word.
	quizExact = []string{"yes", "sure", "ok", "okay", "please"}

	declineExact   = []string{"no", "skip", "continue"}
	declinePhrases = []string{"not now", "move on"}
)

const (
	quizRequestMaxLen     = 50
	contentQuestionMinLen = 5
)

// Classify maps a raw utterance to a single intent. The rule chain is ordered
// and first-match-wins: command lexicons pre-empt the quiz lexicon, a pending
// quiz answer pre-empts the quiz lexicon, and the content-question catch-all
// runs last so it cannot swallow commands.
func Classify(raw string, ctx Context) Intent {
	utterance := strings.ToLower(strings.TrimSpace(raw))
	exact := strings.Trim(utterance, " ?!.")

	if matchesStart(utterance) {
		return Intent{Kind: KindStart, TargetSlide: 1, Utterance: raw}
	}

	if exitPattern.MatchString(utterance) {
		if ctx.Active {
			return Intent{Kind: KindExit, Utterance: raw}
		}
		return Intent{Kind: KindFallback, Utterance: raw}
	}

	if !ctx.Active {
		return Intent{Kind: KindFallback, Utterance: raw}
	}

	if containsAny(utterance, nextPhrases) || exact == "next" {
		return Intent{Kind: KindNavigateNext, TargetSlide: clamp(ctx.CurrentSlide+1, ctx.TotalSlides), Utterance: raw}
	}

	if containsAny(utterance, prevPhrases) || exact == "previous" || exact == "back" {
		return Intent{Kind: KindNavigatePrev, TargetSlide: clamp(ctx.CurrentSlide-1, ctx.TotalSlides), Utterance: raw}
	}

	if target, ok := parseSlideTarget(utterance, ctx.TotalSlides); ok {
		return Intent{Kind: KindNavigateTo, TargetSlide: target, Utterance: raw}
	}

	// A pending question claims the reply before the quiz lexicon can: "b"
	// or "the second one" is an answer, not a request for another question.
	if ctx.AwaitingAnswer {
		return Intent{Kind: KindQuizAnswer, Utterance: raw}
	}

	if len(utterance) < quizRequestMaxLen && (containsAny(utterance, quizPhrases) || matchesExact(exact, quizExact)) {
		return Intent{Kind: KindQuizRequest, Utterance: raw}
	}

	if matchesExact(exact, declineExact) || containsAny(utterance, declinePhrases) {
		return Intent{Kind: KindDeclineContinue, Utterance: raw}
	}

	if len(utterance) > contentQuestionMinLen {
		return Intent{Kind: KindContentQuestion, Utterance: raw}
	}

	return Intent{Kind: KindFallback, Utterance: raw}
}

func matchesStart(utterance string) bool {
	return containsAny(utterance, startPhrases) || startTopicPattern.MatchString(utterance)
}

// parseSlideTarget extracts an explicit slide number. Out-of-range numbers
// are not navigation: the utterance falls through to later rules.
func parseSlideTarget(utterance string, totalSlides int) (int, bool) {
	for _, pattern := range []*regexp.Regexp{goToSlidePattern, bareSlidePattern} {
		match := pattern.FindStringSubmatch(utterance)
		if match == nil {
			continue
		}
		n, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if n >= 1 && n <= totalSlides {
			return n, true
		}
	}
	return 0, false
}

func containsAny(utterance string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(utterance, phrase) {
			return true
		}
	}
	return false
}

func matchesExact(exact string, tokens []string) bool {
	for _, token := range tokens {
		if exact == token {
			return true
		}
	}
	return false
}

func clamp(n, total int) int {
	if n < 1 {
		return 1
	}
	if n > total {
		return total
	}
	return n
}
