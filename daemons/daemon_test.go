package daemons

import (
	"context"
	"testing"
	"time"

	"github.com/navikt/isarbeidsuforhet-sub000/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRunJobs(t *testing.T) {
	ctx := context.Background()

	t.Run("runs journalforing and publishing every round", func(t *testing.T) {
		vurderingService := mocks.NewVurderingService(t)
		configService := mocks.NewConfigService(t)
		leaderElector := mocks.NewLeaderElector(t)
		runner := NewDaemonRunner(vurderingService, configService, leaderElector)

		vurderingService.On("JournalforVurderinger", ctx).Return(1, 0)
		vurderingService.On("PublishUnpublishedVurderinger", ctx).Return(1, 0)
		// never ran before, so the hourly job runs too
		configService.On("GetJSONConfig", "cronjob.expiredVarsler", mock.Anything).Return(assert.AnError)
		vurderingService.On("PublishExpiredForhandsvarsler", ctx).Return(0, 0)
		configService.On("SetJSONConfig", "cronjob.expiredVarsler", mock.Anything).Return(nil)

		runner.runJobs(ctx)
	})

	t.Run("skips the expiry job inside the hourly interval", func(t *testing.T) {
		vurderingService := mocks.NewVurderingService(t)
		configService := mocks.NewConfigService(t)
		leaderElector := mocks.NewLeaderElector(t)
		runner := NewDaemonRunner(vurderingService, configService, leaderElector)

		vurderingService.On("JournalforVurderinger", ctx).Return(0, 0)
		vurderingService.On("PublishUnpublishedVurderinger", ctx).Return(0, 0)
		configService.On("GetJSONConfig", "cronjob.expiredVarsler", mock.Anything).Run(func(args mock.Arguments) {
			lastRun := args.Get(1).(*struct {
				Time time.Time `json:"time"`
			})
			lastRun.Time = time.Now().Add(-time.Minute)
		}).Return(nil)

		runner.runJobs(ctx)
		vurderingService.AssertNotCalled(t, "PublishExpiredForhandsvarsler", mock.Anything)
	})
}
