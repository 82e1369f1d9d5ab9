package daemons

import (
	"context"
	"log/slog"
	"time"

	"github.com/navikt/isarbeidsuforhet-sub000/monitoring"
)

const cronjobInterval = 1 * time.Minute

// Start runs the background jobs on a periodic schedule. Only the elected
// leader executes them, so each job runs at most once cluster-wide per round.
func (runner *DaemonRunner) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(cronjobInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !runner.leaderElector.IsLeader() {
					continue
				}
				runner.runJobs(ctx)
			}
		}
	}()
}

func (runner *DaemonRunner) runJobs(ctx context.Context) {
	start := time.Now()
	defer func() {
		monitoring.CronjobDuration.Observe(time.Since(start).Seconds())
	}()

	slog.Info("starting background jobs")

	succeeded, failed := runner.vurderingService.JournalforVurderinger(ctx)
	logJobResult("journalforing", succeeded, failed)

	succeeded, failed = runner.vurderingService.PublishUnpublishedVurderinger(ctx)
	logJobResult("vurdering publishing", succeeded, failed)

	// svarfrist expiry only changes at day boundaries, no need to check
	// more than once per hour
	if runner.shouldRun("cronjob.expiredVarsler", time.Hour) {
		succeeded, failed = runner.vurderingService.PublishExpiredForhandsvarsler(ctx)
		logJobResult("expired varsel publishing", succeeded, failed)

		if err := runner.markRan("cronjob.expiredVarsler"); err != nil {
			slog.Error("could not mark expired varsel cronjob as ran", "err", err)
		}
	}

	slog.Info("background jobs finished", "duration", time.Since(start))
}

func (runner *DaemonRunner) shouldRun(key string, interval time.Duration) bool {
	var lastRun struct {
		Time time.Time `json:"time"`
	}

	if err := runner.configService.GetJSONConfig(key, &lastRun); err != nil {
		// never ran before
		return true
	}

	return time.Since(lastRun.Time) > interval
}

func (runner *DaemonRunner) markRan(key string) error {
	return runner.configService.SetJSONConfig(key, struct {
		Time time.Time `json:"time"`
	}{
		Time: time.Now(),
	})
}

func logJobResult(job string, succeeded, failed int) {
	if succeeded == 0 && failed == 0 {
		return
	}
	if failed > 0 {
		slog.Error("cronjob finished with failures", "job", job, "succeeded", succeeded, "failed", failed)
		return
	}
	slog.Info("cronjob finished", "job", job, "succeeded", succeeded)
}
