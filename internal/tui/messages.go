package tui

import (
	"time"

	"github.com/steviee/svtrack/internal/tracker"
)

// tickMsg asks for the next poll. Ticks from an older schedule carry a
// stale generation and are dropped.
type tickMsg struct {
	gen int
}

// pollMsg carries the result of one directory poll
type pollMsg struct {
	res  tracker.Result
	wait time.Duration
}

// clearErrorMsg is sent to clear the error message
type clearErrorMsg struct{}
