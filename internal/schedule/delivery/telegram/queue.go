package telegram

import (
	"context"
	"errors"
	"sync"
)

var errQueueClosed = errors.New("telegram handler: shutting down")

// chatQueue runs jobs one at a time per chat, in the order they were pushed.
// A chat's drain goroutine exits once its backlog is empty.
type chatQueue struct {
	mu      sync.Mutex
	pending map[int64][]func()
	closed  bool
	wg      sync.WaitGroup
}

func newChatQueue() *chatQueue {
	return &chatQueue{pending: make(map[int64][]func())}
}

// push must be called from the request goroutine so arrival order is kept.
func (q *chatQueue) push(chatID int64, job func()) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return errQueueClosed
	}

	backlog, running := q.pending[chatID]
	q.pending[chatID] = append(backlog, job)
	if !running {
		q.wg.Add(1)
		go q.drain(chatID)
	}
	return nil
}

func (q *chatQueue) drain(chatID int64) {
	defer q.wg.Done()
	for {
		q.mu.Lock()
		backlog := q.pending[chatID]
		if len(backlog) == 0 {
			delete(q.pending, chatID)
			q.mu.Unlock()
			return
		}
		job := backlog[0]
		backlog[0] = nil
		q.pending[chatID] = backlog[1:]
		q.mu.Unlock()

		job()
	}
}

// close stops accepting jobs and waits for queued ones until ctx is done.
func (q *chatQueue) close(ctx context.Context) error {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
