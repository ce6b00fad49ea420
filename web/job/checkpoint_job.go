// Package job contains scheduled maintenance jobs for the readiness panel.
package job

import (
	"github.com/placementkit/readiness-panel/database"
	"github.com/placementkit/readiness-panel/logger"
)

// CheckpointJob flushes the SQLite WAL back into the main database file.
type CheckpointJob struct{}

func NewCheckpointJob() *CheckpointJob {
	return new(CheckpointJob)
}

func (j *CheckpointJob) Run() {
	if err := database.Checkpoint(); err != nil {
		logger.Warning("wal checkpoint failed:", err)
	}
}
