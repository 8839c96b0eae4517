package model

import (
	"sync"
	"time"
)

type QueuedFrame struct {
	Frame      InputFrame
	PlayerID   string
	ReceivedAt time.Time
}

// InputQueue buffers frames from connection goroutines until the tick loop
// drains them. Frames come out in arrival order.
type InputQueue struct {
	frames []QueuedFrame
	mu     sync.Mutex
}

func NewInputQueue() *InputQueue {
	return &InputQueue{
		frames: []QueuedFrame{},
	}
}

func (q *InputQueue) Push(playerID string, f InputFrame) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.frames = append(q.frames, QueuedFrame{
		Frame:      f,
		PlayerID:   playerID,
		ReceivedAt: time.Now(),
	})
}

// DrainAll removes and returns every queued frame.
func (q *InputQueue) DrainAll() []QueuedFrame {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.frames
	q.frames = []QueuedFrame{}
	return out
}

func (q *InputQueue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.frames)
}
