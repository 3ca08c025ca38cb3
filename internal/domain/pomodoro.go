package domain

import "time"

// Phase is one of the three pomodoro phases.
type Phase int

const (
	PhaseWork Phase = iota
	PhaseShortBreak
	PhaseLongBreak
)

// String returns the string representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseWork:
		return "work"
	case PhaseShortBreak:
		return "short_break"
	case PhaseLongBreak:
		return "long_break"
	default:
		return "unknown"
	}
}

// Label returns a human-readable phase name for display.
func (p Phase) Label() string {
	switch p {
	case PhaseWork:
		return "Work"
	case PhaseShortBreak:
		return "Short Break"
	case PhaseLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}

// Alert messages returned by AdvancePhase, one per transition.
const (
	alertShortBreak = "Work done! Short break."
	alertLongBreak  = "Work done! Long break."
	alertBackToWork = "Break over! Time to work."
)

// Pomodoro cycles a countdown clock through work and break phases.
// AdvancePhase replaces the owned clock with a fresh countdown for the new
// phase; restarting it is the caller's policy.
type Pomodoro struct {
	Clock            Clock
	Phase            Phase
	WorkDuration     time.Duration
	ShortBreak       time.Duration
	LongBreak        time.Duration
	CyclesBeforeLong int
	CurrentCycle     int
	TotalCompleted   int
}

// NewPomodoro returns a pomodoro in the work phase using the given settings.
func NewPomodoro(s PomodoroSettings) Pomodoro {
	return Pomodoro{
		Clock:            NewCountdownClock(s.WorkDuration()),
		Phase:            PhaseWork,
		WorkDuration:     s.WorkDuration(),
		ShortBreak:       s.ShortBreakDuration(),
		LongBreak:        s.LongBreakDuration(),
		CyclesBeforeLong: s.CyclesBeforeLong,
	}
}

// AdvancePhase moves to the next phase and swaps in a fresh countdown for
// that phase's duration. It returns the alert message for the transition.
// Leaving work increments the cycle counters; a long break starts once the
// cycle count reaches CyclesBeforeLong, and leaving the long break resets
// the count to zero.
func (p *Pomodoro) AdvancePhase() string {
	switch p.Phase {
	case PhaseWork:
		p.CurrentCycle++
		p.TotalCompleted++
		if p.CurrentCycle >= p.CyclesBeforeLong {
			p.Phase = PhaseLongBreak
			p.Clock = NewCountdownClock(p.LongBreak)
			return alertLongBreak
		}
		p.Phase = PhaseShortBreak
		p.Clock = NewCountdownClock(p.ShortBreak)
		return alertShortBreak
	default:
		if p.Phase == PhaseLongBreak {
			p.CurrentCycle = 0
		}
		p.Phase = PhaseWork
		p.Clock = NewCountdownClock(p.WorkDuration)
		return alertBackToWork
	}
}

// Reset replaces the clock with a fresh countdown for the current phase.
// Phase and counters are untouched.
func (p *Pomodoro) Reset() {
	p.Clock = NewCountdownClock(p.PhaseDuration())
}

// PhaseDuration returns the configured duration of the current phase.
func (p *Pomodoro) PhaseDuration() time.Duration {
	switch p.Phase {
	case PhaseShortBreak:
		return p.ShortBreak
	case PhaseLongBreak:
		return p.LongBreak
	default:
		return p.WorkDuration
	}
}

// ProgressFraction returns how far through the current phase the clock is,
// in [0, 1].
func (p *Pomodoro) ProgressFraction(now time.Time) float64 {
	target := p.PhaseDuration()
	if target == 0 {
		return 1.0
	}
	frac := float64(p.Clock.Elapsed(now)) / float64(target)
	if frac > 1.0 {
		return 1.0
	}
	return frac
}

// SessionKindForPhase maps a phase to the history session kind recorded
// when that phase completes.
func SessionKindForPhase(p Phase) SessionKind {
	switch p {
	case PhaseShortBreak:
		return SessionShortBreak
	case PhaseLongBreak:
		return SessionLongBreak
	default:
		return SessionWork
	}
}
