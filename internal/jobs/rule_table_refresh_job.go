package jobs

import (
	"context"
	"log/slog"
	"time"

	"eligibility/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultRefreshSchedule runs every 30 seconds.
const DefaultRefreshSchedule = "*/30 * * * * *"

const refreshTimeout = 10 * time.Second

// RuleTableRefreshJob periodically reloads the cached rule table.
type RuleTableRefreshJob struct {
	refresher ports.RuleTableRefresher
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewRuleTableRefreshJob(refresher ports.RuleTableRefresher, schedule string, logger *slog.Logger) *RuleTableRefreshJob {
	if schedule == "" {
		schedule = DefaultRefreshSchedule
	}

	return &RuleTableRefreshJob{
		refresher: refresher,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:    logger.With("component", "rule_table_refresh_job"),
	}
}

// Start schedules the job. An invalid cron spec is returned as an error.
func (j *RuleTableRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rule table refresh job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running refresh to finish.
func (j *RuleTableRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Rule table refresh job stopped")
}

func (j *RuleTableRefreshJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if err := j.refresher.Refresh(ctx); err != nil {
		j.logger.ErrorContext(ctx, "Rule table refresh failed", "error", err)
	}
}
