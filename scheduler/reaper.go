// Package scheduler runs the registry reaper periodically.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"myregistry/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/reugn/go-quartz/job"
	quartzlogger "github.com/reugn/go-quartz/logger"
	"github.com/reugn/go-quartz/quartz"
	"go.uber.org/atomic"
)

const (
	reaperJobKey       = "registry-reaper"
	defaultStopTimeout = 5 * time.Second
)

// Reaper triggers registry sweeps every interval.
// The interval must be no coarser than the smallest TTL in use.
type Reaper struct {
	mu sync.Mutex
	// underlying scheduler
	quartzScheduler quartz.Scheduler
	started         *atomic.Bool
	runs            int

	registry    interfaces.Registry
	interval    time.Duration
	stopTimeout time.Duration
	logger      log.Logger
}

// NewReaper creates a stopped Reaper.
func NewReaper(registry interfaces.Registry, interval time.Duration, logger log.Logger) (*Reaper, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("reaper interval must be positive, got %s", interval)
	}

	quartzScheduler, err := newQuartzScheduler()
	if err != nil {
		return nil, err
	}

	return &Reaper{
		quartzScheduler: quartzScheduler,
		started:         atomic.NewBool(false),
		registry:        registry,
		interval:        interval,
		stopTimeout:     defaultStopTimeout,
		logger:          log.WithPrefix(logger, "component", "Reaper"),
	}, nil
}

// Start schedules the sweep job. Calling Start on a running Reaper does nothing.
func (x *Reaper) Start(ctx context.Context) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.started.Load() {
		return nil
	}

	// a stopped quartz scheduler keeps a goroutine that stops it again once its old context ends
	if x.runs > 0 {
		quartzScheduler, err := newQuartzScheduler()
		if err != nil {
			return err
		}
		x.quartzScheduler = quartzScheduler
	}
	x.runs++
	x.quartzScheduler.Start(ctx)

	sweepJob := job.NewFunctionJob[int](func(ctx context.Context) (int, error) {
		return x.Sweep(ctx)
	})
	detail := quartz.NewJobDetail(sweepJob, quartz.NewJobKey(reaperJobKey))
	if err := x.quartzScheduler.ScheduleJob(detail, quartz.NewSimpleTrigger(x.interval)); err != nil {
		x.quartzScheduler.Stop()
		return fmt.Errorf("can't schedule reaper job: %w", err)
	}

	x.started.Store(x.quartzScheduler.IsStarted())
	level.Info(x.logger).Log("msg", "Reaper started", "interval", x.interval)
	return nil
}

// Stop unschedules the job and waits for a running sweep to finish.
func (x *Reaper) Stop(ctx context.Context) {
	x.mu.Lock()
	defer x.mu.Unlock()
	if !x.started.Load() {
		return
	}

	_ = x.quartzScheduler.Clear()
	x.quartzScheduler.Stop()
	x.started.Store(false)

	ctx, cancel := context.WithTimeout(ctx, x.stopTimeout)
	defer cancel()
	x.quartzScheduler.Wait(ctx)

	level.Info(x.logger).Log("msg", "Reaper stopped")
}

// Sweep calls RunReaper until a batch comes back empty, so a backlog larger than one batch is caught up.
// It stops at the first error; RunReaper has already logged it.
func (x *Reaper) Sweep(ctx context.Context) (int, error) {
	total := 0
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		ids, err := x.registry.RunReaper(ctx)
		total += len(ids)
		if err != nil {
			return total, err
		}
		if len(ids) == 0 {
			break
		}
	}

	if total > 0 {
		level.Info(x.logger).Log("msg", "Reaped expired registrations", "count", total)
	}
	return total, nil
}

func newQuartzScheduler() (quartz.Scheduler, error) {
	// quartz logs nothing, sweep outcomes are logged here
	quartzScheduler, err := quartz.NewStdScheduler(quartz.WithLogger(quartzlogger.NewSimpleLogger(nil, quartzlogger.LevelOff)))
	if err != nil {
		return nil, fmt.Errorf("can't create quartz scheduler: %w", err)
	}
	return quartzScheduler, nil
}
