// Package jobs provides scheduled background tasks of the dispatch service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-resolution
// schedules taken from configuration.
//
// # Available Jobs
//
//  1. RelayHeartbeatJob - pings every relay connection; connections whose ping
//     cannot be written are unregistered and closed
//  2. CenterIndexSyncJob - reloads active emergency centers into the Redis GEO
//     index used to narrow panic routing; runs once at start
//
// # Usage
//
//	jobManager := jobs.NewJobManager(registry, finder, jobs.Schedules{
//		RelayHeartbeat:  "*/30 * * * * *",
//		CenterIndexSync: "0 */5 * * * *",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - A failed sync is logged; the finder keeps serving from a full scan or
//     from the last good index
//   - Failed job starts will stop any already running jobs
package jobs
