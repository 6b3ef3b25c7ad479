package search

import "time"

// DefaultWindow is the quiescence window used when none is configured
const DefaultWindow = 300 * time.Millisecond

// State holds the search input state
type State struct {
	Raw        string // value as typed, shown immediately
	Committed  string // last value that reached the query service
	Pending    bool   // a commit is scheduled
	Generation uint64 // bumped on every input, flush and dispose
}

// CommittedMsg carries a debounced search term into the update loop
type CommittedMsg struct {
	Term       string
	Generation uint64
}

// Timer is a cancellable pending callback
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d elapses
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
