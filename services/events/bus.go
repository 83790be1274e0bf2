package events

import (
	"log"
	"sync"
)

// Event is a typed cross-component notification. Delivery is best-effort and
// fire-and-forget: a slow subscriber drops events rather than blocking the
// publisher.
type Event interface {
	EventName() string
}

type PresentationModeChange struct {
	IsActive bool `json:"isActive"`
}

func (PresentationModeChange) EventName() string { return "presentationModeChange" }

type ExitPresentation struct{}

func (ExitPresentation) EventName() string { return "exitPresentation" }

type MultipleChoiceModeChange struct {
	IsActive bool `json:"isActive"`
}

func (MultipleChoiceModeChange) EventName() string { return "multipleChoiceModeChange" }

type SlideChanged struct {
	SlideNumber int `json:"slideNumber"`
}

func (SlideChanged) EventName() string { return "slideChanged" }

type GoToSlide struct {
	SlideNumber int `json:"slideNumber"`
}

func (GoToSlide) EventName() string { return "goToSlide" }

// Bus is a process-wide publish/subscribe hub with explicit teardown, owned
// by the server and torn down with it. Events are scoped to a conversation:
// a subscriber only sees the conversation it registered for, so one browser
// session's slide changes cannot drive another's embedded frame.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]*subscriber
	closed bool
}

type subscriber struct {
	ch           chan Event
	conversation string
}

func NewBus() *Bus {
	return &Bus{subs: map[int]*subscriber{}}
}

// Subscribe registers a listener for one conversation and returns its channel
// plus an unsubscribe function. An empty conversation subscribes to every
// event. The buffer absorbs bursts; overflow is dropped.
func (b *Bus) Subscribe(conversation string, buffer int) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if buffer < 1 {
		buffer = 1
	}
	id := b.nextID
	b.nextID++
	ch := make(chan Event, buffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	b.subs[id] = &subscriber{ch: ch, conversation: conversation}

	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub.ch)
		}
	}
}

// Publish fans the event out to the conversation's subscribers without
// blocking. An empty conversation broadcasts to everyone.
func (b *Bus) Publish(conversation string, event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	for id, sub := range b.subs {
		if sub.conversation != "" && conversation != "" && sub.conversation != conversation {
			continue
		}
		select {
		case sub.ch <- event:
		default:
			log.Printf("[INFO] Dropping %s event for slow subscriber %d", event.EventName(), id)
		}
	}
}

// Close tears the bus down and closes all subscriber channels.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, sub := range b.subs {
		delete(b.subs, id)
		close(sub.ch)
	}
}
