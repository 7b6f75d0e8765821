package server

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerRunsInPostingOrder(t *testing.T) {
	t.Parallel()
	w := newWorker()
	go w.run()

	var (
		mu  sync.Mutex
		got []int
	)
	for i := range 100 {
		require.True(t, w.Post(func() {
			mu.Lock()
			got = append(got, i)
			mu.Unlock()
		}))
	}
	w.Stop(nil)
	<-w.Done()

	require.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestWorkerStopRunsFinalLast(t *testing.T) {
	t.Parallel()
	w := newWorker()
	var order []string
	w.Post(func() { order = append(order, "first") })
	w.Stop(func() { order = append(order, "final") })
	assert.False(t, w.Post(func() { order = append(order, "late") }))
	w.Stop(func() { order = append(order, "again") })

	go w.run()
	select {
	case <-w.Done():
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
	assert.Equal(t, []string{"first", "final"}, order)
}

func TestWorkersPostToEachOther(t *testing.T) {
	t.Parallel()
	a, b := newWorker(), newWorker()
	go a.run()
	go b.run()

	done := make(chan struct{})
	var ping func(n int, self, other *worker)
	ping = func(n int, self, other *worker) {
		if n == 0 {
			close(done)
			return
		}
		other.Post(func() { ping(n-1, other, self) })
	}
	a.Post(func() { ping(1000, a, b) })

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("workers deadlocked")
	}
	a.Stop(nil)
	b.Stop(nil)
	<-a.Done()
	<-b.Done()
}
