package intent

import "testing"

const totalSlides = 7

func activeCtx(slide int) Context {
	return Context{Active: true, CurrentSlide: slide, TotalSlides: totalSlides}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		utterance  string
		ctx        Context
		wantKind   Kind
		wantTarget int
	}{
		{
			name:      "start presentation from inactive",
			utterance: "start presentation",
			ctx:       Context{Active: false, CurrentSlide: 1, TotalSlides: totalSlides},
			wantKind:  KindStart,
		},
		{
			name:      "start with topic",
			utterance: "start carvedilol presentation",
			ctx:       Context{Active: false, CurrentSlide: 1, TotalSlides: totalSlides},
			wantKind:  KindStart,
		},
		{
			name:      "begin presentation",
			utterance: "Begin Presentation",
			ctx:       Context{Active: false, CurrentSlide: 1, TotalSlides: totalSlides},
			wantKind:  KindStart,
		},
		{
			name:      "exit while active",
			utterance: "exit presentation",
			ctx:       activeCtx(3),
			wantKind:  KindExit,
		},
		{
			name:      "bare exit while active",
			utterance: "exit",
			ctx:       activeCtx(3),
			wantKind:  KindExit,
		},
		{
			name:      "exit with trailing words",
			utterance: "exit now",
			ctx:       activeCtx(3),
			wantKind:  KindExit,
		},
		{
			name:      "exit with leading words",
			utterance: "please exit",
			ctx:       activeCtx(5),
			wantKind:  KindExit,
		},
		{
			name:      "exit embedded in a sentence",
			utterance: "can we exit the presentation?",
			ctx:       activeCtx(2),
			wantKind:  KindExit,
		},
		{
			name:      "exit while inactive falls back",
			utterance: "exit",
			ctx:       Context{Active: false, CurrentSlide: 1, TotalSlides: totalSlides},
			wantKind:  KindFallback,
		},
		{
			name:       "next slide",
			utterance:  "next slide please",
			ctx:        activeCtx(2),
			wantKind:   KindNavigateNext,
			wantTarget: 3,
		},
		{
			name:       "bare next",
			utterance:  "next",
			ctx:        activeCtx(2),
			wantKind:   KindNavigateNext,
			wantTarget: 3,
		},
		{
			name:       "next clamps at last slide",
			utterance:  "next slide",
			ctx:        activeCtx(totalSlides),
			wantKind:   KindNavigateNext,
			wantTarget: totalSlides,
		},
		{
			name:       "previous slide",
			utterance:  "go back",
			ctx:        activeCtx(4),
			wantKind:   KindNavigatePrev,
			wantTarget: 3,
		},
		{
			name:       "previous clamps at first slide",
			utterance:  "previous",
			ctx:        activeCtx(1),
			wantKind:   KindNavigatePrev,
			wantTarget: 1,
		},
		{
			name:       "go to slide in range",
			utterance:  "go to slide 4",
			ctx:        activeCtx(2),
			wantKind:   KindNavigateTo,
			wantTarget: 4,
		},
		{
			name:       "bare slide number",
			utterance:  "slide 6",
			ctx:        activeCtx(2),
			wantKind:   KindNavigateTo,
			wantTarget: 6,
		},
		{
			name:      "go to slide out of range falls through to content question",
			utterance: "go to slide 9",
			ctx:       activeCtx(3),
			wantKind:  KindContentQuestion,
		},
		{
			name:      "quiz lexicon",
			utterance: "give me a question",
			ctx:       activeCtx(2),
			wantKind:  KindQuizRequest,
		},
		{
			name:      "short affirmative maps to quiz request",
			utterance: "yes",
			ctx:       activeCtx(1),
			wantKind:  KindQuizRequest,
		},
		{
			name:      "okay maps to quiz request",
			utterance: "okay",
			ctx:       activeCtx(3),
			wantKind:  KindQuizRequest,
		},
		{
			name:      "long utterance mentioning quiz stays content question",
			utterance: "I would like to understand how this drug is tested in clinical trials and what the quiz evidence says",
			ctx:       activeCtx(3),
			wantKind:  KindContentQuestion,
		},
		{
			name:      "pending answer claims the reply",
			utterance: "b",
			ctx:       Context{Active: true, CurrentSlide: 2, TotalSlides: totalSlides, AwaitingAnswer: true},
			wantKind:  KindQuizAnswer,
		},
		{
			name:       "navigation beats pending answer",
			utterance:  "next slide",
			ctx:        Context{Active: true, CurrentSlide: 2, TotalSlides: totalSlides, AwaitingAnswer: true},
			wantKind:   KindNavigateNext,
			wantTarget: 3,
		},
		{
			name:      "exit beats pending answer",
			utterance: "exit presentation",
			ctx:       Context{Active: true, CurrentSlide: 5, TotalSlides: totalSlides, AwaitingAnswer: true},
			wantKind:  KindExit,
		},
		{
			name:      "decline",
			utterance: "not now",
			ctx:       activeCtx(2),
			wantKind:  KindDeclineContinue,
		},
		{
			name:      "bare no declines",
			utterance: "no",
			ctx:       activeCtx(2),
			wantKind:  KindDeclineContinue,
		},
		{
			name:      "skip declines",
			utterance: "skip",
			ctx:       activeCtx(2),
			wantKind:  KindDeclineContinue,
		},
		{
			name:      "content question while active",
			utterance: "why does carvedilol cause dizziness?",
			ctx:       activeCtx(6),
			wantKind:  KindContentQuestion,
		},
		{
			name:      "ok inside a word does not trigger quiz",
			utterance: "what about stroke risk?",
			ctx:       activeCtx(3),
			wantKind:  KindContentQuestion,
		},
		{
			name:      "tiny utterance falls back",
			utterance: "hm",
			ctx:       activeCtx(3),
			wantKind:  KindFallback,
		},
		{
			name:      "inactive non-command falls back",
			utterance: "write me a haiku about rain",
			ctx:       Context{Active: false, CurrentSlide: 1, TotalSlides: totalSlides},
			wantKind:  KindFallback,
		},
		{
			name:      "inactive navigation falls back",
			utterance: "next slide",
			ctx:       Context{Active: false, CurrentSlide: 1, TotalSlides: totalSlides},
			wantKind:  KindFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.utterance, tt.ctx)
			if got.Kind != tt.wantKind {
				t.Errorf("Classify(%q).Kind = %s, expected %s", tt.utterance, got.Kind, tt.wantKind)
			}
			if tt.wantTarget != 0 && got.TargetSlide != tt.wantTarget {
				t.Errorf("Classify(%q).TargetSlide = %d, expected %d", tt.utterance, got.TargetSlide, tt.wantTarget)
			}
		})
	}
}

func TestClassifyPreservesUtterance(t *testing.T) {
	raw := "Why is the first dose taken with food?"
	got := Classify(raw, activeCtx(4))
	if got.Kind != KindContentQuestion {
		t.Fatalf("expected content question, got %s", got.Kind)
	}
	if got.Utterance != raw {
		t.Errorf("Utterance = %q, expected the raw input preserved", got.Utterance)
	}
}
