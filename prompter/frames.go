package prompter

// FrameID identifies a pending frame callback. Zero means none.
type FrameID uint64

// FrameScheduler runs a callback on the next display refresh.
type FrameScheduler interface {
	RequestFrame(fn func()) FrameID
	CancelFrame(id FrameID)
}

type pendingFrame struct {
	id FrameID
	fn func()
}

// FrameQueue is a FrameScheduler driven by calling RunFrame once per
// ebiten Update.
type FrameQueue struct {
	next    FrameID
	pending []pendingFrame
	running []pendingFrame
}

func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

func (q *FrameQueue) RequestFrame(fn func()) FrameID {
	if fn == nil {
		return 0
	}
	q.next++
	q.pending = append(q.pending, pendingFrame{id: q.next, fn: fn})
	return q.next
}

func (q *FrameQueue) CancelFrame(id FrameID) {
	if id == 0 {
		return
	}
	for i, p := range q.pending {
		if p.id == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return
		}
	}
	// a callback earlier in the current batch may cancel a later one
	for i := range q.running {
		if q.running[i].id == id {
			q.running[i].fn = nil
			return
		}
	}
}

// RunFrame runs the callbacks that were pending when it was called, in
// request order. Callbacks requested while running wait for the next call.
func (q *FrameQueue) RunFrame() {
	if len(q.pending) == 0 {
		return
	}
	q.running = q.pending
	q.pending = nil
	for i := range q.running {
		if fn := q.running[i].fn; fn != nil {
			q.running[i].fn = nil
			fn()
		}
	}
	q.running = nil
}

// Pending reports how many callbacks wait for the next RunFrame.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}
