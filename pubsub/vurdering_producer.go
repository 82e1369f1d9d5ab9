package pubsub

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/navikt/isarbeidsuforhet-sub000/database/models"
	"github.com/pkg/errors"
	"github.com/twmb/franz-go/pkg/kgo"
)

const (
	VurderingTopic     = "teamsykefravr.arbeidsuforhet-vurdering"
	VarselTopic        = "teamsykefravr.arbeidsuforhet-varsel"
	ExpiredVarselTopic = "teamsykefravr.arbeidsuforhet-expired-varsel"
)

// VurderingRecord is the flat projection published for every vurdering. It
// is the external contract of this service, decoupled from the database
// representation.
type VurderingRecord struct {
	UUID          string     `json:"uuid"`
	Personident   string     `json:"personident"`
	CreatedAt     time.Time  `json:"createdAt"`
	Veilederident string     `json:"veilederident"`
	Type          string     `json:"type"`
	Arsak         string     `json:"arsak,omitempty"`
	Begrunnelse   string     `json:"begrunnelse"`
	GjelderFom    *time.Time `json:"gjelderFom,omitempty"`
	IsFinal       bool       `json:"isFinal"`
}

type VarselRecord struct {
	UUID          string    `json:"uuid"`
	Personident   string    `json:"personident"`
	VurderingUUID string    `json:"vurderingUuid"`
	CreatedAt     time.Time `json:"createdAt"`
	Svarfrist     time.Time `json:"svarfrist"`
}

type ExpiredVarselRecord struct {
	UUID          string    `json:"uuid"`
	Personident   string    `json:"personident"`
	VurderingUUID string    `json:"vurderingUuid"`
	Svarfrist     time.Time `json:"svarfrist"`
}

type vurderingProducer struct {
	producer *Producer
}

func NewVurderingProducer(producer *Producer) *vurderingProducer {
	return &vurderingProducer{producer: producer}
}

func (p *vurderingProducer) SendVurdering(ctx context.Context, vurdering models.Vurdering) error {
	return p.send(ctx, VurderingTopic, vurdering.Personident, NewVurderingRecord(vurdering))
}

func (p *vurderingProducer) SendVarsel(ctx context.Context, vurdering models.Vurdering, varsel models.Varsel) error {
	return p.send(ctx, VarselTopic, vurdering.Personident, VarselRecord{
		UUID:          varsel.UUID.String(),
		Personident:   vurdering.Personident.String(),
		VurderingUUID: vurdering.UUID.String(),
		CreatedAt:     varsel.CreatedAt,
		Svarfrist:     varsel.Svarfrist,
	})
}

func (p *vurderingProducer) SendExpiredVarsel(ctx context.Context, vurdering models.Vurdering, varsel models.Varsel) error {
	return p.send(ctx, ExpiredVarselTopic, vurdering.Personident, ExpiredVarselRecord{
		UUID:          varsel.UUID.String(),
		Personident:   vurdering.Personident.String(),
		VurderingUUID: vurdering.UUID.String(),
		Svarfrist:     varsel.Svarfrist,
	})
}

func (p *vurderingProducer) send(ctx context.Context, topic string, personident models.Personident, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "could not serialize kafka record")
	}

	return p.producer.Produce(ctx, &kgo.Record{
		Topic: topic,
		Key:   RecordKey(personident),
		Value: value,
	})
}

func NewVurderingRecord(vurdering models.Vurdering) VurderingRecord {
	return VurderingRecord{
		UUID:          vurdering.UUID.String(),
		Personident:   vurdering.Personident.String(),
		CreatedAt:     vurdering.CreatedAt,
		Veilederident: vurdering.Veilederident,
		Type:          string(vurdering.Type),
		Arsak:         vurdering.ArsakOrEmpty(),
		Begrunnelse:   vurdering.Begrunnelse,
		GjelderFom:    vurdering.GjelderFom,
		IsFinal:       vurdering.Type.IsFinal(),
	}
}

// RecordKey derives the partition key deterministically from the
// personident, so every event for one person lands on the same partition,
// without putting the raw ident into the key.
func RecordKey(personident models.Personident) []byte {
	key := uuid.NewSHA1(uuid.NameSpaceOID, []byte(personident))
	return []byte(key.String())
}
