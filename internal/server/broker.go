package server

import (
	"encoding/json"
	"sync"

	"github.com/playperu/scoreboard/internal/scoreboard"
)

// Broker is an in-process pub/sub that fans board snapshots out to SSE
// and WebSocket subscribers. It implements scoreboard.Notifier.
type Broker struct {
	mu   sync.RWMutex
	subs map[chan []byte]struct{}
}

func NewBroker() *Broker {
	return &Broker{
		subs: make(map[chan []byte]struct{}),
	}
}

// Subscribe returns a channel that receives JSON-encoded BoardResponse values.
func (b *Broker) Subscribe() chan []byte {
	ch := make(chan []byte, 16)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *Broker) Unsubscribe(ch chan []byte) {
	b.mu.Lock()
	delete(b.subs, ch)
	b.mu.Unlock()
}

// Notify publishes snap to every subscriber.
func (b *Broker) Notify(snap scoreboard.Snapshot) {
	data, _ := json.Marshal(newBoardResponse(snap))
	b.mu.RLock()
	for ch := range b.subs {
		select {
		case ch <- data:
		default:
			// Drop if subscriber is slow; the next snapshot supersedes it.
		}
	}
	b.mu.RUnlock()
}
