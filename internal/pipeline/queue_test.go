package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFOOrder(t *testing.T) {
	q := NewQueue(4)
	q.Put(Object{Value: 1})
	q.Put(Object{Value: 2})
	q.Put(Object{Value: 3})
	q.Close()

	var got []any
	for {
		obj, ok := q.Take()
		if !ok {
			break
		}
		got = append(got, obj.Value)
	}
	assert.Equal(t, []any{1, 2, 3}, got)
}

func TestQueueTakeReportsEndOfStreamAfterDrain(t *testing.T) {
	q := NewQueue(4)
	q.Put(Object{Value: "only"})
	q.Close()

	obj, ok := q.Take()
	require.True(t, ok)
	assert.Equal(t, "only", obj.Value)

	_, ok = q.Take()
	assert.False(t, ok)
}

func TestQueueCloseIsIdempotent(t *testing.T) {
	q := NewQueue(1)
	q.Close()
	assert.NotPanics(t, func() { q.Close() })
}

func TestQueuePutAfterCloseIsDroppedNotPanicked(t *testing.T) {
	q := NewQueue(4)
	q.Close()
	assert.NotPanics(t, func() { q.Put(Object{Value: "late"}) })

	_, ok := q.Take()
	assert.False(t, ok)
}

func TestQueueBlocksProducerWhenFull(t *testing.T) {
	q := NewQueue(1)
	q.Put(Object{Value: "a"})

	putDone := make(chan struct{})
	go func() {
		q.Put(Object{Value: "b"})
		close(putDone)
	}()

	select {
	case <-putDone:
		t.Fatal("Put should have blocked while queue is full")
	case <-time.After(30 * time.Millisecond):
	}

	q.Take()
	select {
	case <-putDone:
	case <-time.After(time.Second):
		t.Fatal("Put did not unblock after a slot freed")
	}
	q.Close()
}
