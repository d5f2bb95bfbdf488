package broadcast

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func collect[T any](wg *sync.WaitGroup, ch <-chan T, dst *[]T) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		for v := range ch {
			*dst = append(*dst, v)
		}
	}()
}

func TestBroadcastToAllListeners(t *testing.T) {
	source := make(chan int)
	b := NewBroadcastServer("test", source)

	var wg sync.WaitGroup
	var got1, got2 []int
	collect(&wg, b.Subscribe(), &got1)
	collect(&wg, b.Subscribe(), &got2)

	for i := range 3 {
		source <- i
	}
	b.Close()
	wg.Wait()

	assert.Equal(t, []int{0, 1, 2}, got1)
	assert.Equal(t, []int{0, 1, 2}, got2)
	assert.Equal(t, Stats{Received: 3, Sent: 6}, b.Stats())
}

func TestCancelSubscription(t *testing.T) {
	source := make(chan string)
	b := NewBroadcastServer("test", source)
	defer b.Close()

	ch := b.Subscribe()
	assert.Eventually(t, func() bool { return b.Stats().Listeners == 1 },
		time.Second, time.Millisecond)
	b.CancelSubscription(ch)

	_, ok := <-ch
	assert.False(t, ok, "channel should be closed")
	assert.Equal(t, int64(0), b.Stats().Listeners)
}

func TestSlowListenerIsSkipped(t *testing.T) {
	source := make(chan int)
	b := NewBroadcastServer("test", source, WithSendTimeout[int](time.Millisecond))

	_ = b.Subscribe() // never read
	source <- 1
	source <- 2
	b.Close()

	assert.Equal(t, Stats{Received: 2, Skipped: 2}, b.Stats())
}

func TestClosedSource(t *testing.T) {
	source := make(chan int)
	b := NewBroadcastServer("test", source)
	ch := b.Subscribe()
	close(source)

	_, ok := <-ch
	assert.False(t, ok)
	_, ok = <-b.Subscribe()
	assert.False(t, ok, "subscribe after close returns closed channel")
	b.Close()
}
