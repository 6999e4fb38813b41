package egcrypto

type (
	// ProgressFollower is told about the progress of batch operations.
	// Tick is called concurrently from worker goroutines.
	ProgressFollower interface {
		StepStart(desc string, items int)
		Tick()
		StepDone()
	}

	EmptyFollower struct{}
)

func (*EmptyFollower) StepStart(_ string, _ int) {}
func (*EmptyFollower) Tick()                     {}
func (*EmptyFollower) StepDone()                 {}

var Follower ProgressFollower = &EmptyFollower{}
