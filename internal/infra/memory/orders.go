package memory

import (
	"sync"
	"time"
)

// OrderMemory is the in-process duplicate-suppression and velocity state
// for the payment webhook. It is a best-effort optimization: it starts
// empty on every process instance and grows for the life of the process.
// The stateless claim-channel scan remains the durable duplicate defense.
type OrderMemory struct {
	mu          sync.Mutex
	processed   map[string]struct{}
	lastByEmail map[string]time.Time
}

func NewOrderMemory() *OrderMemory {
	return &OrderMemory{
		processed:   make(map[string]struct{}),
		lastByEmail: make(map[string]time.Time),
	}
}

// MarkProcessed records an order id and reports whether it had already been
// handled by this instance.
func (m *OrderMemory) MarkProcessed(orderID string) (already bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.processed[orderID]; ok {
		return true
	}
	m.processed[orderID] = struct{}{}
	return false
}

// TouchEmail records a completed order for the email at now, reporting
// whether the previous one landed inside the window.
func (m *OrderMemory) TouchEmail(email string, now time.Time, window time.Duration) (rapid bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if last, ok := m.lastByEmail[email]; ok && now.Sub(last) < window {
		rapid = true
	}
	m.lastByEmail[email] = now
	return rapid
}
