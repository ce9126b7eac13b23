package isolate

// Debouncer coalesces repeated write requests into one deferred write.
//
// At most one write is pending at a time. Trigger replaces a pending write
// with a fresh one (timer-reset semantics). The write func reads whatever
// state it needs when it runs, so the last Trigger before the write always
// wins. Flush runs a pending write synchronously; the host calls it at the
// end of a batch so the final write is never lost.
//
// Debouncer is NOT thread-safe.
type Debouncer struct {
	write     func(forced bool)
	scheduler Scheduler
	cancel    func()
	pending   bool
}

// NewDebouncer creates a Debouncer that schedules write on scheduler. A nil
// scheduler runs writes immediately. write receives true when it runs from
// Flush.
func NewDebouncer(scheduler Scheduler, write func(forced bool)) *Debouncer {
	if scheduler == nil {
		scheduler = Immediate{}
	}
	return &Debouncer{
		write:     write,
		scheduler: scheduler,
	}
}

// Trigger requests a write.
func (d *Debouncer) Trigger() {
	if d.pending && d.cancel != nil {
		d.cancel()
	}
	d.pending = true
	d.cancel = nil
	cancel := d.scheduler.Schedule(func() { d.run(false) })
	// An immediate scheduler has already run the write.
	if d.pending {
		d.cancel = cancel
	}
}

// Flush runs the pending write now. It reports whether a write was pending.
func (d *Debouncer) Flush() bool {
	if !d.pending {
		return false
	}
	if d.cancel != nil {
		d.cancel()
	}
	d.run(true)
	return true
}

// Pending reports whether a write is scheduled but has not run.
func (d *Debouncer) Pending() bool {
	return d.pending
}

func (d *Debouncer) run(forced bool) {
	d.pending = false
	d.cancel = nil
	d.write(forced)
}
