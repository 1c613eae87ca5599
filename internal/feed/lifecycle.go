package feed

// Lifecycle is the coarse state of one channel manager. It is exported for
// display in the console footer; nothing in the sync core branches on it.
type Lifecycle string

const (
	LifecycleIdle       Lifecycle = "idle"
	LifecycleConnecting Lifecycle = "connecting"
	LifecycleActive     Lifecycle = "active"
	LifecycleRetrying   Lifecycle = "retrying"
	LifecycleStopped    Lifecycle = "stopped"
)
