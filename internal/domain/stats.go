package domain

import "time"

// StageStats holds statistics about a single stage run.
type StageStats struct {
	Stage      string
	Fetched    int
	New        int
	Cached     int
	Backfilled int
	Resolved   int
	Fallback   int
	Unresolved int
	Errors     int
	Published  int
	Persisted  bool
	Duration   time.Duration
}

// RunStats collects the stats of every stage of a pipeline run.
type RunStats struct {
	Stages   []StageStats
	Duration time.Duration
}
