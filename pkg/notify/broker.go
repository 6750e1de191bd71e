package notify

import (
	"fmt"
	"sync"
)

const (
	KindBalance    = "balance"
	KindWithdrawal = "withdrawal"
)

const subscriberBuffer = 16

type Event struct {
	Kind      string `json:"kind"`
	AccountID int    `json:"account_id"`
	Points    int64  `json:"points,omitempty"`
	RequestID string `json:"request_id,omitempty"`
	Status    string `json:"status,omitempty"`
}

func AccountTopic(accountID int) string {
	return fmt.Sprintf("account:%d", accountID)
}

// Broker is an in-process topic bus for live display updates. Delivery is
// best effort: Publish never blocks and slow subscribers lose events, so
// nothing that matters for correctness may depend on it.
type Broker struct {
	mu     sync.RWMutex
	subs   map[string]map[int]chan Event
	nextID int
	closed bool
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[int]chan Event),
	}
}

func (b *Broker) Subscribe(topic string) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	b.nextID++
	id := b.nextID
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]chan Event)
	}
	b.subs[topic][id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[topic][id]; ok {
			delete(b.subs[topic], id)
			close(sub)
		}
	}
	return ch, cancel
}

func (b *Broker) Publish(topic string, event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}
	for _, ch := range b.subs[topic] {
		select {
		case ch <- event:
		default:
		}
	}
}

func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for topic, subs := range b.subs {
		for id, ch := range subs {
			delete(subs, id)
			close(ch)
		}
		delete(b.subs, topic)
	}
}
