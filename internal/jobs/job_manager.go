package jobs

import (
	"fmt"
	"log/slog"

	"eligibility/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	ruleTableRefreshJob *RuleTableRefreshJob
}

func NewJobManager(refresher ports.RuleTableRefresher, refreshSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		ruleTableRefreshJob: NewRuleTableRefreshJob(refresher, refreshSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.ruleTableRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start rule table refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.ruleTableRefreshJob.Stop()
}
