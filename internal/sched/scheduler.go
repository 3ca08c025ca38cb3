// Package sched provides the cooperative tick scheduler that wakes the UI
// to poll clocks and redraw. It runs as its own goroutine and interacts with
// the rest of the application only through channels: commands in, ticks out.
// It never inspects clock state; expiry logic lives with the consumer.
package sched

import "time"

// MinInterval is the floor applied to zero or negative tick intervals.
const MinInterval = 100 * time.Millisecond

type commandKind int

const (
	cmdStart commandKind = iota
	cmdStop
	cmdQuit
)

type command struct {
	interval time.Duration
	kind     commandKind
}

// Scheduler emits a tick on its output channel every interval while active.
// The tick channel has capacity one and sends never block: if the consumer
// has not drained the previous tick, the new one is coalesced into it.
// Ticks carry no time value; consumers read the clock themselves, so late or
// duplicate ticks are harmless.
type Scheduler struct {
	cmds  chan command
	ticks chan struct{}
	done  chan struct{}
}

// New creates a scheduler and starts its control loop. The scheduler is
// idle until Start is called.
func New() *Scheduler {
	s := &Scheduler{
		cmds:  make(chan command),
		ticks: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
	go s.run()
	return s
}

// Ticks returns the channel on which ticks are delivered.
func (s *Scheduler) Ticks() <-chan struct{} { return s.ticks }

// Start begins periodic tick emission, or updates the interval of an active
// scheduler for subsequent cycles. Intervals of zero or less are floored to
// MinInterval.
func (s *Scheduler) Start(interval time.Duration) {
	if interval <= 0 {
		interval = MinInterval
	}
	s.send(command{kind: cmdStart, interval: interval})
}

// Stop suspends tick emission. Any in-flight wait is abandoned without
// emitting. A tick already delivered may still be observed by the consumer
// afterwards; that is a documented no-op on their side.
func (s *Scheduler) Stop() {
	s.send(command{kind: cmdStop})
}

// Quit terminates the control loop permanently. Further commands are
// discarded.
func (s *Scheduler) Quit() {
	s.send(command{kind: cmdQuit})
}

// Done is closed when the control loop has exited.
func (s *Scheduler) Done() <-chan struct{} { return s.done }

func (s *Scheduler) send(c command) {
	select {
	case s.cmds <- c:
	case <-s.done:
	}
}

func (s *Scheduler) run() {
	timer := time.NewTimer(time.Hour)
	stopTimer(timer)
	defer stopTimer(timer)

	var interval time.Duration
	running := false

	for {
		if !running {
			// Idle: block on the next command, no polling.
			c := <-s.cmds
			switch c.kind {
			case cmdStart:
				interval = c.interval
				running = true
			case cmdStop:
				// already idle
			case cmdQuit:
				close(s.done)
				return
			}
			continue
		}

		timer.Reset(interval)
		waiting := true
		for waiting {
			select {
			case <-timer.C:
				select {
				case s.ticks <- struct{}{}:
				default: // consumer is behind; coalesce
				}
				waiting = false
			case c := <-s.cmds:
				switch c.kind {
				case cmdStart:
					// New interval takes effect on the next cycle; the
					// current wait completes at the old interval.
					interval = c.interval
				case cmdStop:
					stopTimer(timer)
					running = false
					waiting = false
				case cmdQuit:
					close(s.done)
					return
				}
			}
		}
	}
}

func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}
