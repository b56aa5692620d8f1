package worker

import (
	"context"
	"time"

	"github.com/dhanushlnaik/mimisanv2/internal/logger"
	"github.com/dhanushlnaik/mimisanv2/internal/metrics"
	"github.com/dhanushlnaik/mimisanv2/internal/salary"
)

// SalaryService is the scheduler boundary of the salary payouts
type SalaryService interface {
	PayDaily(ctx context.Context) (*salary.DailyReport, error)
	PayWeekly(ctx context.Context) (int64, error)
}

type salaryJob struct {
	name string
	next func(after time.Time) time.Time
	run  func(ctx context.Context) error
}

// SalaryWorker pays the daily salary at 00:00 UTC and the weekly global
// salary on Sunday 00:00 UTC
type SalaryWorker struct {
	BaseWorker
	svc SalaryService
	now func() time.Time
}

// NewSalaryWorker creates a new SalaryWorker
func NewSalaryWorker(svc SalaryService) *SalaryWorker {
	w := &SalaryWorker{svc: svc, now: time.Now}
	w.init()
	return w
}

// Start schedules the next daily and weekly runs
func (w *SalaryWorker) Start() {
	now := w.now()
	for _, job := range w.jobs() {
		w.scheduleNext(job, now)
	}
}

func (w *SalaryWorker) jobs() []salaryJob {
	return []salaryJob{
		{
			name: JobDailySalary,
			next: NextDailyRun,
			run: func(ctx context.Context) error {
				report, err := w.svc.PayDaily(ctx)
				if err != nil {
					metrics.RecordSalaryRun(JobDailySalary, 0, err)
					return err
				}
				metrics.RecordSalaryRun(JobDailySalary, report.MembersPaid, nil)
				logger.FromContext(ctx).Info(LogMsgSalaryCompleted, "job", JobDailySalary, "members_paid", report.MembersPaid, "failed", len(report.Failed))
				return nil
			},
		},
		{
			name: JobWeeklySalary,
			next: NextWeeklyRun,
			run: func(ctx context.Context) error {
				paid, err := w.svc.PayWeekly(ctx)
				metrics.RecordSalaryRun(JobWeeklySalary, paid, err)
				if err != nil {
					return err
				}
				logger.FromContext(ctx).Info(LogMsgSalaryCompleted, "job", JobWeeklySalary, "profiles_paid", paid)
				return nil
			},
		},
	}
}

// scheduleNext arms the timer for the first run strictly after `after`.
// Rescheduling from the previous run time means an early timer can never
// run the same slot twice.
func (w *SalaryWorker) scheduleNext(job salaryJob, after time.Time) {
	if w.isShutdown() {
		return
	}
	log := logger.FromContext(context.Background())

	at := job.next(after)
	duration := at.Sub(w.now())

	if duration > StandbyThreshold {
		wait := duration - StandbyLead
		w.registerTimer(job.name, time.AfterFunc(wait, func() {
			w.scheduleNext(job, after)
		}))
		log.Info(LogMsgSalaryStandby, "job", job.name, "run_at", at)
		return
	}

	w.registerTimer(job.name, time.AfterFunc(duration, func() {
		if w.isShutdown() {
			return
		}
		if at.Sub(w.now()) > JitterTolerance {
			log.Debug(LogMsgSalaryEarlyFired, "job", job.name)
			w.scheduleNext(job, after)
			return
		}
		w.execute(job)
		w.scheduleNext(job, at)
	}))
	log.Info(LogMsgSalaryScheduled, "job", job.name, "run_at", at)
}

func (w *SalaryWorker) execute(job salaryJob) {
	w.track(func() {
		ctx, cancel := context.WithTimeout(context.Background(), SalaryRunTimeout)
		defer cancel()
		ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())

		log := logger.FromContext(ctx)
		log.Info(LogMsgSalaryStarting, "job", job.name)
		if err := job.run(ctx); err != nil {
			log.Error(LogMsgSalaryFailed, "job", job.name, "error", err)
		}
	})
}

// Shutdown cancels pending runs and waits for in-flight ones
func (w *SalaryWorker) Shutdown(ctx context.Context) error {
	return w.shutdownInternal(ctx, "salary worker")
}

// NextDailyRun returns the first 00:00 UTC strictly after t
func NextDailyRun(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
}

// NextWeeklyRun returns the first WeeklySalaryDay 00:00 UTC strictly after t
func NextWeeklyRun(t time.Time) time.Time {
	next := NextDailyRun(t)
	for next.Weekday() != WeeklySalaryDay {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
