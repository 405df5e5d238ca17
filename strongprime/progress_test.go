package strongprime

import "sync/atomic"

type TestFollower struct {
	count int64
	steps int64
}

func (t *TestFollower) StepStart(desc string, intermediates int) {
	atomic.AddInt64(&t.steps, 1)
}

func (t *TestFollower) Tick() {
	atomic.AddInt64(&t.count, 1)
}

func (t *TestFollower) StepDone() {}

func (t *TestFollower) reset() {
	atomic.StoreInt64(&t.count, 0)
	atomic.StoreInt64(&t.steps, 0)
}

func init() {
	Follower = &TestFollower{}
}
