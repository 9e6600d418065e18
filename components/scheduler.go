package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// TaskID identifies a scheduled continuation. The zero value is never issued.
type TaskID uint64

// Task is a continuation that resumes once the clock reaches Deadline.
type Task struct {
	ID       TaskID
	Deadline time.Duration
	Seq      uint64
	Owner    donburi.Entity // donburi.Null for world-owned tasks
	Run      func(w donburi.World)
}

// TaskQueue orders tasks by deadline, then by insertion. It implements
// heap.Interface.
type TaskQueue []*Task

func (q TaskQueue) Len() int { return len(q) }

func (q TaskQueue) Less(i, j int) bool {
	if q[i].Deadline != q[j].Deadline {
		return q[i].Deadline < q[j].Deadline
	}
	return q[i].Seq < q[j].Seq
}

func (q TaskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *TaskQueue) Push(x any) { *q = append(*q, x.(*Task)) }

func (q *TaskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

type SchedulerData struct {
	Queue   TaskQueue
	Live    map[TaskID]struct{}
	NextID  TaskID
	NextSeq uint64
}

var Scheduler = donburi.NewComponentType[SchedulerData]()
