package systems

import (
	"container/heap"
	"time"

	"github.com/automoto/thornrun/components"
	"github.com/yohamta/donburi"
)

func scheduler(w donburi.World) *components.SchedulerData {
	e, ok := components.Scheduler.First(w)
	if !ok {
		return nil
	}
	s := components.Scheduler.Get(e)
	if s.Live == nil {
		s.Live = map[components.TaskID]struct{}{}
	}
	return s
}

// Schedule resumes fn once delay has elapsed on the simulation clock. When
// owner is non-nil the task is dropped if the owner has been removed by then.
func Schedule(w donburi.World, owner *donburi.Entry, delay time.Duration, fn func(w donburi.World)) components.TaskID {
	s := scheduler(w)
	if s == nil {
		return 0
	}
	if delay < 0 {
		delay = 0
	}
	s.NextID++
	s.NextSeq++
	t := &components.Task{
		ID:       s.NextID,
		Deadline: Now(w) + delay,
		Seq:      s.NextSeq,
		Owner:    donburi.Null,
		Run:      fn,
	}
	if owner != nil {
		t.Owner = owner.Entity()
	}
	heap.Push(&s.Queue, t)
	s.Live[t.ID] = struct{}{}
	return t.ID
}

// Cancel stops a pending task. It reports whether the task was still pending.
func Cancel(w donburi.World, id components.TaskID) bool {
	if id == 0 {
		return false
	}
	s := scheduler(w)
	if s == nil {
		return false
	}
	if _, ok := s.Live[id]; !ok {
		return false
	}
	delete(s.Live, id)
	return true
}

// Pending reports whether a task is still waiting to run.
func Pending(w donburi.World, id components.TaskID) bool {
	s := scheduler(w)
	if s == nil || id == 0 {
		return false
	}
	_, ok := s.Live[id]
	return ok
}

// UpdateScheduler runs every task that is due, in deadline then insertion
// order. Tasks scheduled while this runs wait for the next tick.
func UpdateScheduler(w donburi.World) {
	s := scheduler(w)
	if s == nil {
		return
	}
	now := Now(w)
	limit := s.NextSeq
	for s.Queue.Len() > 0 {
		t := s.Queue[0]
		if t.Deadline > now || t.Seq > limit {
			break
		}
		heap.Pop(&s.Queue)
		if _, ok := s.Live[t.ID]; !ok {
			continue
		}
		delete(s.Live, t.ID)
		if t.Owner != donburi.Null && !w.Valid(t.Owner) {
			continue
		}
		t.Run(w)
	}
}
