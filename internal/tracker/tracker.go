package tracker

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/steviee/svtrack/internal/steam"
)

const (
	// DefaultQueryTimeout bounds a single directory request.
	DefaultQueryTimeout = 10 * time.Second

	// DefaultInterval is the wait between successful refreshes.
	DefaultInterval = 30 * time.Second

	// DefaultErrorCooldownFactor multiplies the query timeout after a
	// transport failure.
	DefaultErrorCooldownFactor = 2
)

// Fetcher retrieves the server listing.
type Fetcher interface {
	GetServerList(ctx context.Context, q steam.Query) ([]steam.Server, error)
}

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the real Sleeper.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Timing holds the loop delays.
type Timing struct {
	QueryTimeout        time.Duration
	Interval            time.Duration
	ErrorCooldownFactor int
}

// DefaultTiming returns the standard loop delays.
func DefaultTiming() Timing {
	return Timing{
		QueryTimeout:        DefaultQueryTimeout,
		Interval:            DefaultInterval,
		ErrorCooldownFactor: DefaultErrorCooldownFactor,
	}
}

// ErrorCooldown is the wait after a failed request.
func (t Timing) ErrorCooldown() time.Duration {
	return t.QueryTimeout * time.Duration(t.ErrorCooldownFactor)
}

// SoftFailureCooldown is the wait after a reply without a server list.
func (t Timing) SoftFailureCooldown() time.Duration {
	return t.QueryTimeout
}

// Outcome classifies a poll.
type Outcome int

const (
	// OutcomeOK means a server list was received.
	OutcomeOK Outcome = iota
	// OutcomeSoftFailure means the reply carried no server list.
	OutcomeSoftFailure
	// OutcomeError means the request or decoding failed.
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeSoftFailure:
		return "soft-failure"
	case OutcomeError:
		return "error"
	default:
		return "unknown"
	}
}

// Result is the product of one poll.
type Result struct {
	Outcome Outcome
	Err     error
	At      time.Time

	// Servers is the fetched listing ranked by player count.
	Servers []steam.Server

	// Added is the number of addresses seen for the first time.
	Added int
}

// Options configures a Tracker. Zero values fall back to defaults.
type Options struct {
	Query  steam.Query
	Timing Timing
	Cache  *Cache
	Sleep  Sleeper
	Now    func() time.Time
}

// Tracker polls the directory and keeps the address cache.
type Tracker struct {
	fetcher Fetcher
	display Display
	query   steam.Query
	timing  Timing
	cache   *Cache
	sleep   Sleeper
	now     func() time.Time
}

// New creates a tracker. display may be nil when only Poll is used; Cycle
// then logs the outcome without drawing.
func New(fetcher Fetcher, display Display, opts Options) *Tracker {
	if opts.Query.AppID == 0 {
		opts.Query = steam.DefaultQuery()
	}

	defaults := DefaultTiming()
	if opts.Timing.QueryTimeout <= 0 {
		opts.Timing.QueryTimeout = defaults.QueryTimeout
	}
	if opts.Timing.Interval <= 0 {
		opts.Timing.Interval = defaults.Interval
	}
	if opts.Timing.ErrorCooldownFactor <= 0 {
		opts.Timing.ErrorCooldownFactor = defaults.ErrorCooldownFactor
	}

	if opts.Cache == nil {
		opts.Cache = NewCache()
	}
	if opts.Sleep == nil {
		opts.Sleep = Sleep
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Tracker{
		fetcher: fetcher,
		display: display,
		query:   opts.Query,
		timing:  opts.Timing,
		cache:   opts.Cache,
		sleep:   opts.Sleep,
		now:     opts.Now,
	}
}

// Cache returns the tracker's address cache.
func (t *Tracker) Cache() *Cache {
	return t.cache
}

// Timing returns the loop delays in use.
func (t *Tracker) Timing() Timing {
	return t.timing
}

// Poll fetches the listing once, merges it into the cache and ranks it.
// The returned duration is how long to wait before polling again.
func (t *Tracker) Poll(ctx context.Context) (Result, time.Duration) {
	slog.Debug("querying server list", "filter", t.query.Filter())

	fetchCtx, cancel := context.WithTimeout(ctx, t.timing.QueryTimeout)
	servers, err := t.fetcher.GetServerList(fetchCtx, t.query)
	cancel()

	res := Result{At: t.now(), Err: err}

	switch {
	case err == nil:
		res.Outcome = OutcomeOK
	case steam.IsSoftFailure(err):
		res.Outcome = OutcomeSoftFailure
		return res, t.timing.SoftFailureCooldown()
	default:
		res.Outcome = OutcomeError
		return res, t.timing.ErrorCooldown()
	}

	res.Added = t.cache.Merge(servers, res.At)
	res.Servers = Rank(servers)

	slog.Debug("server list merged",
		"servers", len(servers),
		"added", res.Added,
		"tracked", t.cache.Len())

	return res, t.timing.Interval
}

// Cycle polls once and draws the result on the display.
func (t *Tracker) Cycle(ctx context.Context) (Result, time.Duration) {
	res, wait := t.Poll(ctx)

	switch res.Outcome {
	case OutcomeError:
		if ctx.Err() == nil {
			slog.Error("failed to query server list", "error", res.Err, "retry_in", wait)
		}
		return res, wait

	case OutcomeSoftFailure:
		t.clear()
		slog.Warn("failed to get server list", "error", res.Err, "retry_in", wait)
		return res, wait
	}

	if t.display == nil {
		return res, wait
	}

	t.clear()
	if err := Render(t.display, res.Servers); err != nil {
		slog.Error("failed to render server list", "error", err)
	}

	return res, wait
}

func (t *Tracker) clear() {
	if t.display == nil {
		return
	}
	if err := t.display.Clear(); err != nil {
		slog.Debug("failed to clear display", "error", err)
	}
}

// Run repeats Cycle until ctx is cancelled.
func (t *Tracker) Run(ctx context.Context) error {
	if t.display == nil {
		return errors.New("tracker has no display")
	}

	slog.Info("tracking servers",
		"filter", t.query.Filter(),
		"interval", t.timing.Interval,
		"query_timeout", t.timing.QueryTimeout)

	for {
		_, wait := t.Cycle(ctx)
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := t.sleep(ctx, wait); err != nil {
			return err
		}
	}
}
