package domain

import "time"

// MaxCountdowns bounds the countdown list.
const MaxCountdowns = 20

// MaxCountdownNameLen bounds entry names, in runes.
const MaxCountdownNameLen = 20

// CountdownEntry is a named duration in the countdown list.
type CountdownEntry struct {
	Name     string
	Duration time.Duration
}

// CountdownList is a capacity-bounded ordered list of named countdowns with
// a selection cursor and at most one active clock bound to an entry.
type CountdownList struct {
	Entries []CountdownEntry
	Cursor  int

	active      *Clock
	activeIndex int
}

// NewCountdownList returns an empty list.
func NewCountdownList() CountdownList {
	return CountdownList{activeIndex: -1}
}

// SetEntries replaces the list contents, e.g. from persisted state. Any
// active clock is dropped and the cursor is clamped.
func (c *CountdownList) SetEntries(entries []CountdownEntry) {
	c.Entries = entries
	c.active = nil
	c.activeIndex = -1
	c.clampCursor()
}

// Add appends an entry. Returns ErrCountdownLimit when the list is full,
// leaving it unchanged.
func (c *CountdownList) Add(name string, duration time.Duration) error {
	if len(c.Entries) >= MaxCountdowns {
		return ErrCountdownLimit
	}
	c.Entries = append(c.Entries, CountdownEntry{Name: name, Duration: duration})
	return nil
}

// DeleteSelected removes the entry under the cursor. Deleting the active
// entry stops its clock; deleting an entry before the active one shifts the
// active index down so it keeps referring to the same entry.
func (c *CountdownList) DeleteSelected() {
	if c.Cursor >= len(c.Entries) {
		return
	}
	switch {
	case c.activeIndex == c.Cursor:
		c.active = nil
		c.activeIndex = -1
	case c.activeIndex > c.Cursor:
		c.activeIndex--
	}
	c.Entries = append(c.Entries[:c.Cursor], c.Entries[c.Cursor+1:]...)
	c.clampCursor()
}

// StartSelected binds a fresh countdown clock to the entry under the cursor
// and starts it at now. A previous active clock is replaced.
func (c *CountdownList) StartSelected(now time.Time) {
	if c.Cursor >= len(c.Entries) {
		return
	}
	clock := NewCountdownClock(c.Entries[c.Cursor].Duration)
	clock.Start(now)
	c.active = &clock
	c.activeIndex = c.Cursor
}

// StopActive drops the active clock, if any.
func (c *CountdownList) StopActive() {
	c.active = nil
	c.activeIndex = -1
}

// Active returns the active clock, or nil when none is running.
func (c *CountdownList) Active() *Clock { return c.active }

// ActiveIndex returns the index of the entry the active clock is bound to.
func (c *CountdownList) ActiveIndex() (int, bool) {
	if c.activeIndex < 0 {
		return 0, false
	}
	return c.activeIndex, true
}

// ActiveEntry returns the entry the active clock is bound to.
func (c *CountdownList) ActiveEntry() (CountdownEntry, bool) {
	if c.activeIndex < 0 || c.activeIndex >= len(c.Entries) {
		return CountdownEntry{}, false
	}
	return c.Entries[c.activeIndex], true
}

// CursorUp moves the selection up one entry.
func (c *CountdownList) CursorUp() {
	if c.Cursor > 0 {
		c.Cursor--
	}
}

// CursorDown moves the selection down one entry.
func (c *CountdownList) CursorDown() {
	if len(c.Entries) > 0 && c.Cursor < len(c.Entries)-1 {
		c.Cursor++
	}
}

// ProgressFraction returns how far the active countdown has run, in [0, 1].
// Zero when no clock is active.
func (c *CountdownList) ProgressFraction(now time.Time) float64 {
	entry, ok := c.ActiveEntry()
	if !ok || c.active == nil {
		return 0
	}
	if entry.Duration == 0 {
		return 1.0
	}
	frac := float64(c.active.Elapsed(now)) / float64(entry.Duration)
	if frac > 1.0 {
		return 1.0
	}
	return frac
}

// clampCursor keeps the cursor on a valid entry, or at zero for an empty
// list.
func (c *CountdownList) clampCursor() {
	if len(c.Entries) == 0 {
		c.Cursor = 0
		return
	}
	if c.Cursor >= len(c.Entries) {
		c.Cursor = len(c.Entries) - 1
	}
}
