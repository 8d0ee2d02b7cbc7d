package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"sync"
	"time"
)

// Shuffler handles the random event draw for the game
type Shuffler struct {
	rng *rand.Rand
}

// NewShuffler creates a shuffler. A zero seed draws one from the clock.
func NewShuffler(seed int64) *Shuffler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// Non-cryptographic PRNG is intentional so draws can be replayed from a seed.
	// #nosec G404
	return &Shuffler{
		rng: rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b"))),
	}
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// Shuffle permutes n elements with Fisher-Yates, calling swap for each exchange
func (s *Shuffler) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		swap(i, j)
	}
}

// TickerScheduler runs callbacks on real time
type TickerScheduler struct{}

// NewTickerScheduler creates a new scheduler
func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{}
}

// Every starts a ticker goroutine that calls fn until cancelled
func (ts *TickerScheduler) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	stopChan := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				fn()
			case <-stopChan:
				ticker.Stop()
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(stopChan) })
	}
}

// After calls fn once after delay unless cancelled first
func (ts *TickerScheduler) After(delay time.Duration, fn func()) func() {
	timer := time.AfterFunc(delay, fn)
	return func() {
		timer.Stop()
	}
}
