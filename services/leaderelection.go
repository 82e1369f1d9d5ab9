package services

import (
	"context"
	"log/slog"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/navikt/isarbeidsuforhet-sub000/shared"
)

const (
	leaderElectionKey = "leaderElection"
	leaseTimeout      = 360 // seconds
)

type leaderElectionConfig struct {
	LeaderID string `json:"leaderId"`
	LastPing int64  `json:"lastPing"`
}

// databaseLeaderElector elects a single cronjob-running instance through a
// lease row in the config table. Only the leader executes batch jobs, so the
// jobs are serialized cluster-wide.
type databaseLeaderElector struct {
	leaderElectorID string
	configService   shared.ConfigService
	isLeader        atomic.Bool // updated by a background goroutine
}

func NewDatabaseLeaderElector(ctx context.Context, configService shared.ConfigService) *databaseLeaderElector {
	elector := &databaseLeaderElector{
		configService:   configService,
		leaderElectorID: uuid.New().String(),
	}
	go elector.run(ctx)
	return elector
}

func (e *databaseLeaderElector) IsLeader() bool {
	return e.isLeader.Load()
}

func (e *databaseLeaderElector) run(ctx context.Context) {
	for {
		isLeader, err := e.checkIfLeader()
		if err != nil {
			slog.Error("could not check if leader", "err", err)
		}
		e.isLeader.Store(isLeader)

		// jitter the heartbeat so electors do not stampede the lease row
		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(randomNumberBetween(60, 359)) * time.Second):
		}
	}
}

func (e *databaseLeaderElector) checkIfLeader() (bool, error) {
	var config leaderElectionConfig

	err := e.configService.GetJSONConfig(leaderElectionKey, &config)
	if err != nil {
		// no leader yet - take the lease
		return true, e.takeLease()
	}

	if time.Now().Unix()-config.LastPing > leaseTimeout {
		// the leader stopped pinging, probably dead - take over
		return true, e.takeLease()
	}

	if config.LeaderID == e.leaderElectorID {
		// refresh our own lease
		return true, e.takeLease()
	}

	return false, nil
}

func (e *databaseLeaderElector) takeLease() error {
	return e.configService.SetJSONConfig(leaderElectionKey, leaderElectionConfig{
		LeaderID: e.leaderElectorID,
		LastPing: time.Now().Unix(),
	})
}

func randomNumberBetween(min, max int) int {
	return rand.Intn(max-min) + min // #nosec
}
