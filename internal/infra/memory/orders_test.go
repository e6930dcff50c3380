//go:build unit

package memory_test

import (
	"sync"
	"testing"
	"time"

	"topdog-boost/internal/infra/memory"

	"github.com/stretchr/testify/assert"
)

func TestMarkProcessed(t *testing.T) {
	m := memory.NewOrderMemory()

	assert.False(t, m.MarkProcessed("TD-1"))
	assert.True(t, m.MarkProcessed("TD-1"))
	assert.False(t, m.MarkProcessed("TD-2"))
}

func TestMarkProcessedConcurrent(t *testing.T) {
	m := memory.NewOrderMemory()

	const workers = 32
	var wg sync.WaitGroup
	firsts := make(chan struct{}, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if !m.MarkProcessed("TD-RACE") {
				firsts <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(firsts)

	// Exactly one caller may win the first-processing slot.
	assert.Len(t, firsts, 1)
}

func TestTouchEmail(t *testing.T) {
	m := memory.NewOrderMemory()
	window := 2 * time.Minute
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.False(t, m.TouchEmail("a@example.com", base, window))
	assert.True(t, m.TouchEmail("a@example.com", base.Add(time.Minute), window))
	assert.False(t, m.TouchEmail("a@example.com", base.Add(4*time.Minute), window))

	// Other addresses have independent windows.
	assert.False(t, m.TouchEmail("b@example.com", base.Add(time.Minute), window))
}
