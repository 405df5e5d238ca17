package strongprime

type (
	// ProgressFollower is notified of the progress of a prime search: StepStart once per
	// search, Tick for every candidate tested, StepDone when the search ends.
	ProgressFollower interface {
		StepStart(desc string, intermediates int)
		Tick()
		StepDone()
	}

	EmptyFollower struct{}
)

func (*EmptyFollower) StepStart(_ string, _ int) {}
func (*EmptyFollower) Tick()                     {}
func (*EmptyFollower) StepDone()                 {}

// Follower is shared by all searches, including concurrent ones, so implementations must be
// safe for concurrent use.
var Follower ProgressFollower = &EmptyFollower{}
