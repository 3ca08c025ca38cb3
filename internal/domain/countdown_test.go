package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountdownList_AddUpToCapacity(t *testing.T) {
	c := NewCountdownList()

	for i := 0; i < MaxCountdowns; i++ {
		err := c.Add(fmt.Sprintf("timer %d", i), time.Minute)
		require.NoError(t, err, "entry %d", i)
	}

	err := c.Add("one too many", time.Minute)
	assert.ErrorIs(t, err, ErrCountdownLimit)
	assert.Len(t, c.Entries, MaxCountdowns, "failed add leaves the list unchanged")
}

func TestCountdownList_StartSelected(t *testing.T) {
	c := NewCountdownList()
	require.NoError(t, c.Add("tea", 3*time.Minute))
	require.NoError(t, c.Add("eggs", 7*time.Minute))
	c.Cursor = 1

	c.StartSelected(at(0))

	require.NotNil(t, c.Active())
	assert.Equal(t, ClockRunning, c.Active().State())

	idx, ok := c.ActiveIndex()
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	entry, ok := c.ActiveEntry()
	require.True(t, ok)
	assert.Equal(t, "eggs", entry.Name)

	target, _ := c.Active().Target()
	assert.Equal(t, 7*time.Minute, target)
}

func TestCountdownList_StartSelectedOnEmptyList(t *testing.T) {
	c := NewCountdownList()
	c.StartSelected(at(0))
	assert.Nil(t, c.Active())
}

func TestCountdownList_DeleteActiveEntryStopsClock(t *testing.T) {
	c := NewCountdownList()
	require.NoError(t, c.Add("a", time.Minute))
	require.NoError(t, c.Add("b", time.Minute))
	c.Cursor = 1
	c.StartSelected(at(0))

	c.DeleteSelected()

	assert.Nil(t, c.Active())
	_, ok := c.ActiveIndex()
	assert.False(t, ok)
	assert.Len(t, c.Entries, 1)
}

func TestCountdownList_DeleteBeforeActiveShiftsIndex(t *testing.T) {
	c := NewCountdownList()
	require.NoError(t, c.Add("a", time.Minute))
	require.NoError(t, c.Add("b", time.Minute))
	require.NoError(t, c.Add("c", time.Minute))
	c.Cursor = 2
	c.StartSelected(at(0))

	c.Cursor = 0
	c.DeleteSelected()

	idx, ok := c.ActiveIndex()
	require.True(t, ok)
	assert.Equal(t, 1, idx, "active index follows its entry")

	entry, ok := c.ActiveEntry()
	require.True(t, ok)
	assert.Equal(t, "c", entry.Name)
}

func TestCountdownList_DeleteAfterActiveKeepsIndex(t *testing.T) {
	c := NewCountdownList()
	require.NoError(t, c.Add("a", time.Minute))
	require.NoError(t, c.Add("b", time.Minute))
	c.Cursor = 0
	c.StartSelected(at(0))

	c.Cursor = 1
	c.DeleteSelected()

	idx, ok := c.ActiveIndex()
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestCountdownList_DeleteClampsCursor(t *testing.T) {
	c := NewCountdownList()
	require.NoError(t, c.Add("a", time.Minute))
	require.NoError(t, c.Add("b", time.Minute))
	c.Cursor = 1

	c.DeleteSelected()
	assert.Equal(t, 0, c.Cursor, "cursor clamps to last valid index")

	c.DeleteSelected()
	assert.Equal(t, 0, c.Cursor, "cursor stays at zero for an empty list")
	assert.Empty(t, c.Entries)

	c.DeleteSelected() // no-op on empty list
	assert.Empty(t, c.Entries)
}

func TestCountdownList_CursorNavigation(t *testing.T) {
	c := NewCountdownList()
	require.NoError(t, c.Add("a", time.Minute))
	require.NoError(t, c.Add("b", time.Minute))

	c.CursorUp()
	assert.Equal(t, 0, c.Cursor, "cursor does not go above the first entry")

	c.CursorDown()
	assert.Equal(t, 1, c.Cursor)

	c.CursorDown()
	assert.Equal(t, 1, c.Cursor, "cursor does not go past the last entry")
}

func TestCountdownList_ProgressFraction(t *testing.T) {
	c := NewCountdownList()
	require.NoError(t, c.Add("a", 10*time.Second))

	assert.Zero(t, c.ProgressFraction(at(0)), "no active clock")

	c.StartSelected(at(0))
	assert.InDelta(t, 0.5, c.ProgressFraction(at(5000)), 1e-9)
	assert.InDelta(t, 1.0, c.ProgressFraction(at(60_000)), 1e-9)
}

func TestCountdownList_SetEntriesDropsActive(t *testing.T) {
	c := NewCountdownList()
	require.NoError(t, c.Add("a", time.Minute))
	c.StartSelected(at(0))
	c.Cursor = 5

	c.SetEntries([]CountdownEntry{{Name: "x", Duration: time.Second}})

	assert.Nil(t, c.Active())
	assert.Equal(t, 0, c.Cursor)
}
