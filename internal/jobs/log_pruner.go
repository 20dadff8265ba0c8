package jobs

import (
	"context"
	"log"
	"time"

	"leadsearch/internal/db"
)

// LogPruner removes audit rows past the retention window in the background.
type LogPruner struct {
	db        *db.DB
	interval  time.Duration
	retention time.Duration
}

// NewLogPruner creates a new audit log pruner.
func NewLogPruner(database *db.DB, interval, retention time.Duration) *LogPruner {
	return &LogPruner{
		db:        database,
		interval:  interval,
		retention: retention,
	}
}

// Start begins the background pruning loop.
func (p *LogPruner) Start(ctx context.Context) {
	log.Printf("Log pruner started (interval: %v, retention: %v)", p.interval, p.retention)

	// Run immediately on start
	p.prune(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Log pruner stopped")
			return
		case <-ticker.C:
			p.prune(ctx)
		}
	}
}

func (p *LogPruner) prune(ctx context.Context) {
	cutoff := time.Now().Add(-p.retention)
	pruned, err := p.db.PruneSearchLogs(ctx, cutoff)
	if err != nil {
		log.Printf("Log pruner: failed to prune: %v", err)
		return
	}
	if pruned > 0 {
		log.Printf("Log pruner: removed %d audit rows older than %v", pruned, cutoff.Format(time.RFC3339))
	}
}
