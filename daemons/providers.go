package daemons

import (
	"github.com/navikt/isarbeidsuforhet-sub000/shared"
)

// DaemonRunner encapsulates cronjob dependencies and lifecycle
type DaemonRunner struct {
	vurderingService shared.VurderingService
	configService    shared.ConfigService
	leaderElector    shared.LeaderElector
}

// NewDaemonRunner creates a new daemon runner with injected dependencies
func NewDaemonRunner(
	vurderingService shared.VurderingService,
	configService shared.ConfigService,
	leaderElector shared.LeaderElector,
) *DaemonRunner {
	return &DaemonRunner{
		vurderingService: vurderingService,
		configService:    configService,
		leaderElector:    leaderElector,
	}
}
