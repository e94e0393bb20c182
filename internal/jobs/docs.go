// Package jobs provides scheduled background tasks for the eligibility service.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// RuleTableRefreshJob reloads the cached rule table from PostgreSQL, so rule changes made by
// another replica (or directly in the database) reach this one without a restart.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(cache, cfg.RulesRefreshSchedule, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed refresh is logged and the previous snapshot stays in service until the next run.
package jobs
