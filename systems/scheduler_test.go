package systems

import (
	"testing"
	"time"

	"github.com/automoto/thornrun/archetypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestScheduler_RunsInDeadlineThenInsertionOrder(t *testing.T) {
	w := newTestWorld(t, nopServices())
	var order []string
	record := func(name string) func(donburi.World) {
		return func(donburi.World) { order = append(order, name) }
	}

	Schedule(w, nil, 30*time.Millisecond, record("late"))
	Schedule(w, nil, 10*time.Millisecond, record("first"))
	Schedule(w, nil, 10*time.Millisecond, record("second"))

	tick(w, 10*time.Millisecond)
	assert.Equal(t, []string{"first", "second"}, order)

	tick(w, 10*time.Millisecond)
	assert.Len(t, order, 2, "nothing is due at 20ms")

	tick(w, 10*time.Millisecond)
	assert.Equal(t, []string{"first", "second", "late"}, order)
}

func TestScheduler_Cancel(t *testing.T) {
	w := newTestWorld(t, nopServices())
	ran := false
	id := Schedule(w, nil, 10*time.Millisecond, func(donburi.World) { ran = true })

	require.True(t, Pending(w, id))
	assert.True(t, Cancel(w, id))
	assert.False(t, Cancel(w, id), "second cancel finds nothing")
	assert.False(t, Pending(w, id))

	tick(w, 20*time.Millisecond)
	assert.False(t, ran)
	assert.False(t, Cancel(w, 0))
}

func TestScheduler_DropsTasksOfRemovedOwners(t *testing.T) {
	w := newTestWorld(t, nopServices())
	owner := archetypes.Wall.Spawn(w)
	ran := false
	Schedule(w, owner, 10*time.Millisecond, func(donburi.World) { ran = true })

	w.Remove(owner.Entity())
	tick(w, 10*time.Millisecond)

	assert.False(t, ran)
}

func TestScheduler_TasksAddedDuringPassWaitForNextTick(t *testing.T) {
	w := newTestWorld(t, nopServices())
	var ticks []uint64
	Schedule(w, nil, 0, func(w donburi.World) {
		Schedule(w, nil, 0, func(donburi.World) {
			ticks = append(ticks, 2)
		})
		ticks = append(ticks, 1)
	})

	tick(w, time.Millisecond)
	assert.Equal(t, []uint64{1}, ticks)

	tick(w, time.Millisecond)
	assert.Equal(t, []uint64{1, 2}, ticks)
}

func TestScheduler_NegativeDelayRunsOnNextTick(t *testing.T) {
	w := newTestWorld(t, nopServices())
	ran := false
	Schedule(w, nil, -time.Second, func(donburi.World) { ran = true })

	tick(w, 0)
	assert.True(t, ran)
}
