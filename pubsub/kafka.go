package pubsub

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/twmb/franz-go/pkg/kgo"
)

type KafkaConfig struct {
	Brokers []string
}

func KafkaConfigFromEnv() KafkaConfig {
	return KafkaConfig{
		Brokers: strings.Split(os.Getenv("KAFKA_BROKERS"), ","),
	}
}

// Producer wraps the franz-go client with a synchronous, acked produce. A
// record only counts as delivered once all in-sync replicas acknowledged it.
type Producer struct {
	client *kgo.Client
}

func NewProducer(cfg KafkaConfig) (*Producer, error) {
	if len(cfg.Brokers) == 0 || cfg.Brokers[0] == "" {
		return nil, errors.New("kafka brokers not configured")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerLinger(5*time.Millisecond),
		kgo.RecordDeliveryTimeout(30*time.Second),
		kgo.AllowAutoTopicCreation(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "could not create kafka producer")
	}

	return &Producer{client: client}, nil
}

func (p *Producer) Produce(ctx context.Context, record *kgo.Record) error {
	results := p.client.ProduceSync(ctx, record)
	return results.FirstErr()
}

func (p *Producer) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := p.client.Flush(ctx); err != nil {
		slog.Warn("kafka producer closed with unflushed records", "err", err)
	}
	p.client.Close()
}
