package idgen

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeGeneratorFrozenClock(t *testing.T) {
	frozen := time.UnixMilli(1_700_000_000_000)
	g := &TimeGenerator{now: func() time.Time { return frozen }}

	assert.Equal(t, "1700000000000", g.Next())
	assert.Equal(t, "1700000000001", g.Next())
	assert.Equal(t, "1700000000002", g.Next())
}

func TestTimeGeneratorClockStepsBack(t *testing.T) {
	current := time.UnixMilli(5000)
	g := &TimeGenerator{now: func() time.Time { return current }}

	assert.Equal(t, "5000", g.Next())
	current = time.UnixMilli(1000)
	assert.Equal(t, "5001", g.Next())
}

func TestTimeGeneratorConcurrentUnique(t *testing.T) {
	g := NewTimeGenerator()
	const workers, perWorker = 8, 200

	var mu sync.Mutex
	seen := make(map[string]bool, workers*perWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := g.Next()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}

func TestNew(t *testing.T) {
	_, err := uuid.Parse(New("uuid").Next())
	require.NoError(t, err)

	_, ok := New("time").(*TimeGenerator)
	assert.True(t, ok)
	_, ok = New("").(*TimeGenerator)
	assert.True(t, ok)
}
