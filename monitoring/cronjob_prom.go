package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var JournalforingSucceeded = promauto.NewCounter(prometheus.CounterOpts{
	Name: "isarbeidsuforhet_cronjob_journalforing_succeeded_total",
	Help: "The total number of vurderinger archived by the journalforing cronjob",
})

var JournalforingFailed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "isarbeidsuforhet_cronjob_journalforing_failed_total",
	Help: "The total number of vurderinger the journalforing cronjob failed to archive",
})

var VurderingPublishSucceeded = promauto.NewCounter(prometheus.CounterOpts{
	Name: "isarbeidsuforhet_cronjob_vurdering_publish_succeeded_total",
	Help: "The total number of vurdering events published",
})

var VurderingPublishFailed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "isarbeidsuforhet_cronjob_vurdering_publish_failed_total",
	Help: "The total number of vurdering events that failed to publish",
})

var ExpiredVarselPublishSucceeded = promauto.NewCounter(prometheus.CounterOpts{
	Name: "isarbeidsuforhet_cronjob_expired_varsel_publish_succeeded_total",
	Help: "The total number of expired varsel events published",
})

var ExpiredVarselPublishFailed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "isarbeidsuforhet_cronjob_expired_varsel_publish_failed_total",
	Help: "The total number of expired varsel events that failed to publish",
})

var CronjobDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "isarbeidsuforhet_cronjob_duration_seconds",
	Help:    "Duration of one full cronjob round in seconds",
	Buckets: prometheus.DefBuckets,
})

var IdenthendelseUpdated = promauto.NewCounter(prometheus.CounterOpts{
	Name: "isarbeidsuforhet_identhendelse_updated_total",
	Help: "The total number of vurdering rows reassigned to a new personident",
})

var IdenthendelseSkipped = promauto.NewCounter(prometheus.CounterOpts{
	Name: "isarbeidsuforhet_identhendelse_skipped_total",
	Help: "The total number of identhendelser skipped because they can never be applied",
})
