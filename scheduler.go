package isolate

// Scheduler defers a task until the host finishes its current synchronous
// pass. The returned cancel func drops the task if it has not run yet;
// calling it after the task ran is a no-op.
type Scheduler interface {
	Schedule(task func()) (cancel func())
}

// -----------------------------------------------------------------------------
// Queue
// -----------------------------------------------------------------------------

// Queue is a FIFO of deferred tasks that the host drains between passes,
// the same role a "next tick" queue plays in an event loop.
//
// Usage:
//
//	q := isolate.NewQueue()
//	plugin := isolate.New(cfg, isolate.WithScheduler(q))
//	// ... host processes a batch of rules ...
//	q.Drain() // runs the coalesced write
//
// Queue is NOT thread-safe. Schedule and Drain must be called from the
// goroutine that drives the host.
type Queue struct {
	items []*queuedTask
}

type queuedTask struct {
	run       func()
	cancelled bool
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{
		items: make([]*queuedTask, 0, 8),
	}
}

// Schedule enqueues task.
func (q *Queue) Schedule(task func()) func() {
	item := &queuedTask{run: task}
	q.items = append(q.items, item)
	return func() { item.cancelled = true }
}

// Drain runs queued tasks in order until the queue is empty, including tasks
// scheduled by tasks that run during the drain. Cancelled tasks are skipped.
// Returns the number of tasks that ran.
func (q *Queue) Drain() int {
	ran := 0
	for len(q.items) > 0 {
		// Pop from front of queue
		item := q.items[0]
		q.items = q.items[1:]

		if item.cancelled {
			continue
		}
		item.cancelled = true
		item.run()
		ran++
	}
	return ran
}

// Len returns the number of live (not cancelled) tasks waiting to run.
func (q *Queue) Len() int {
	n := 0
	for _, item := range q.items {
		if !item.cancelled {
			n++
		}
	}
	return n
}

// -----------------------------------------------------------------------------
// Immediate
// -----------------------------------------------------------------------------

// Immediate runs every task as soon as it is scheduled. Writes are correct
// but not coalesced. It is the plugin's fallback when the host supplies no
// Scheduler.
type Immediate struct{}

// Schedule runs task synchronously.
func (Immediate) Schedule(task func()) func() {
	task()
	return func() {}
}

// Compile-time checks.
var (
	_ Scheduler = (*Queue)(nil)
	_ Scheduler = Immediate{}
)
