package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/navikt/isarbeidsuforhet-sub000/database/models"
	"github.com/navikt/isarbeidsuforhet-sub000/monitoring"
	"github.com/navikt/isarbeidsuforhet-sub000/shared"
	"github.com/navikt/isarbeidsuforhet-sub000/utils"
	"github.com/pkg/errors"
	"github.com/twmb/franz-go/pkg/kgo"
)

const (
	IdenthendelseTopic = "teamsykefravr.identhendelse"
	consumerGroup      = "isarbeidsuforhet"
)

// Identhendelse announces that a person's identifiers were merged: every row
// stored under one of the inactive idents belongs to the active ident now.
type Identhendelse struct {
	ActiveIdent     string   `json:"activeIdent"`
	InactiveIdenter []string `json:"inactiveIdenter"`
}

type identhendelseConsumer struct {
	client     *kgo.Client
	repository shared.VurderingRepository
}

func NewIdenthendelseConsumer(cfg KafkaConfig, repository shared.VurderingRepository) (*identhendelseConsumer, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ConsumeTopics(IdenthendelseTopic),
		kgo.ConsumerGroup(consumerGroup),
		// offsets are committed per handled record, a failed record stays
		// uncommitted and gets redelivered
		kgo.DisableAutoCommit(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "could not create identhendelse consumer")
	}

	return &identhendelseConsumer{
		client:     client,
		repository: repository,
	}, nil
}

// Start runs the poll loop until the context is cancelled.
func (c *identhendelseConsumer) Start(ctx context.Context) {
	go func() {
		defer c.client.Close()

		for {
			fetches := c.client.PollFetches(ctx)
			if fetches.IsClientClosed() || ctx.Err() != nil {
				return
			}
			fetches.EachError(func(topic string, partition int32, err error) {
				slog.Error("identhendelse fetch error", "topic", topic, "partition", partition, "err", err)
			})
			fetches.EachRecord(func(record *kgo.Record) {
				if err := c.handle(record); err != nil {
					monitoring.Alert("could not handle identhendelse", err)
					return
				}
				if err := c.client.CommitRecords(ctx, record); err != nil {
					slog.Error("could not commit identhendelse offset", "offset", record.Offset, "err", err)
				}
			})
		}
	}()
}

func (c *identhendelseConsumer) handle(record *kgo.Record) error {
	var hendelse Identhendelse
	if err := json.Unmarshal(record.Value, &hendelse); err != nil {
		// a malformed event can never succeed, skip it
		slog.Warn("skipping malformed identhendelse", "err", err)
		monitoring.IdenthendelseSkipped.Inc()
		return nil
	}

	if hendelse.ActiveIdent == "" {
		slog.Warn("skipping identhendelse without active ident")
		monitoring.IdenthendelseSkipped.Inc()
		return nil
	}

	active, err := models.NewPersonident(hendelse.ActiveIdent)
	if err != nil {
		monitoring.IdenthendelseSkipped.Inc()
		return nil
	}

	inactive := utils.Map(hendelse.InactiveIdenter, func(ident string) models.Personident {
		return models.Personident(ident)
	})

	rows, err := c.repository.UpdatePersonident(active, inactive)
	if err != nil {
		return errors.Wrap(err, "could not update personident")
	}
	if rows > 0 {
		slog.Info("reassigned vurderinger to new personident", "rows", rows)
		monitoring.IdenthendelseUpdated.Add(float64(rows))
	}

	return nil
}
