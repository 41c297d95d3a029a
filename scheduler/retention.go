package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Pruner deletes saved schemes older than a cutoff.
type Pruner interface {
	PruneSchemes(ctx context.Context, cutoff time.Time) (int64, error)
}

// RetentionJob prunes saved schemes older than days. Zero days keeps
// everything.
func RetentionJob(p Pruner, days int, logger zerolog.Logger) Job {
	return func(ctx context.Context, now time.Time) error {
		if days <= 0 {
			return nil
		}
		cutoff := now.AddDate(0, 0, -days)
		n, err := p.PruneSchemes(ctx, cutoff)
		if err != nil {
			return fmt.Errorf("retention: %w", err)
		}
		logger.Info().Int64("removed", n).Time("cutoff", cutoff).Msg("pruned saved schemes")
		return nil
	}
}
