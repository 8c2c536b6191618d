package game

import "github.com/iamasit07/4-in-a-row/engine/internal/domain"

// Observer receives board snapshots. It runs on the caller's goroutine while
// the engine operation is still in progress, so it must not issue intents.
type Observer func(domain.Board)

type SubscriptionID uint64

type subscription struct {
	id      SubscriptionID
	observe Observer
}

// broadcaster holds the latest snapshot and an ordered list of observers.
// Subscribing delivers the latest value at once; publish delivers to every
// observer in subscription order before returning.
type broadcaster struct {
	current   domain.Board
	observers []subscription
	nextID    SubscriptionID
}

func newBroadcaster(initial domain.Board) *broadcaster {
	return &broadcaster{current: initial}
}

// reset starts a new stream. Earlier subscriptions stop receiving values but
// ids keep counting, so a stale id can never cancel a new subscription.
func (b *broadcaster) reset(initial domain.Board) {
	b.current = initial
	b.observers = nil
}

func (b *broadcaster) subscribe(observe Observer) SubscriptionID {
	b.nextID++
	id := b.nextID
	b.observers = append(b.observers, subscription{id: id, observe: observe})
	observe(b.current)
	return id
}

func (b *broadcaster) unsubscribe(id SubscriptionID) bool {
	for i, s := range b.observers {
		if s.id == id {
			b.observers = append(b.observers[:i:i], b.observers[i+1:]...)
			return true
		}
	}
	return false
}

func (b *broadcaster) publish(board domain.Board) {
	b.current = board
	// observers may unsubscribe themselves or others while we deliver
	observers := b.observers
	for _, s := range observers {
		if !b.active(s.id) {
			continue
		}
		s.observe(board)
	}
}

func (b *broadcaster) active(id SubscriptionID) bool {
	for _, s := range b.observers {
		if s.id == id {
			return true
		}
	}
	return false
}

func (b *broadcaster) size() int {
	return len(b.observers)
}
