package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/navikt/isarbeidsuforhet-sub000/database/models"
)

type VurderingRepository interface {
	CreateVurdering(vurdering models.Vurdering, pdf []byte) (models.Vurdering, error)
	GetVurderinger(personident models.Personident) ([]models.Vurdering, error)
	GetVurdering(id uuid.UUID) (models.Vurdering, error)
	GetLatestVurdering(personident models.Personident) (*models.Vurdering, error)
	GetPdf(vurderingID uuid.UUID) (models.VurderingPdf, error)
	GetNotJournalforteVurderinger() ([]models.Vurdering, error)
	GetUnpublishedVurderinger() ([]models.Vurdering, error)
	GetUnpublishedExpiredVarsler() ([]models.Varsel, error)
	SetJournalpostID(vurdering models.Vurdering) error
	SetPublished(vurdering models.Vurdering) error
	UpdateVarsel(varsel models.Varsel) error
	UpdatePersonident(active models.Personident, inactive []models.Personident) (int64, error)
}

type VurderingService interface {
	CreateVurdering(ctx context.Context, callID string, input models.NewVurderingInput) (models.Vurdering, error)
	GetVurderinger(personident models.Personident) ([]models.Vurdering, error)
	GetVurdering(id uuid.UUID) (models.Vurdering, error)
	GetLatestVurderinger(personidenter []models.Personident) (map[models.Personident]models.Vurdering, error)
	JournalforVurderinger(ctx context.Context) (succeeded int, failed int)
	PublishUnpublishedVurderinger(ctx context.Context) (succeeded int, failed int)
	PublishExpiredForhandsvarsler(ctx context.Context) (succeeded int, failed int)
}

// PdfGenClient renders the letter for a vurdering. The renderer itself is an
// external service and treated as opaque.
type PdfGenClient interface {
	CreateVurderingPdf(ctx context.Context, callID string, vurdering models.Vurdering, personName string) ([]byte, error)
}

// DokarkivClient submits a rendered document to the records archive. A
// conflict on the external reference key is reported as success with the
// already-existing journalpostId.
type DokarkivClient interface {
	Journalfor(ctx context.Context, callID string, vurdering models.Vurdering, pdf []byte) (models.JournalpostID, error)
}

// PdlClient resolves a personident to the citizen's display name.
type PdlClient interface {
	GetPersonName(ctx context.Context, callID string, personident models.Personident) (string, error)
}

// VeilederTilgangClient asks the access-control gateway whether the
// authenticated caseworker may see a person.
type VeilederTilgangClient interface {
	HasAccess(ctx context.Context, callID string, token string, personident models.Personident) (bool, error)
	FilterAccessible(ctx context.Context, callID string, token string, personidenter []models.Personident) ([]models.Personident, error)
}

// VurderingProducer emits lifecycle events to the message broker. A send
// only counts as delivered once the broker acknowledges it.
type VurderingProducer interface {
	SendVurdering(ctx context.Context, vurdering models.Vurdering) error
	SendVarsel(ctx context.Context, vurdering models.Vurdering, varsel models.Varsel) error
	SendExpiredVarsel(ctx context.Context, vurdering models.Vurdering, varsel models.Varsel) error
}

type LeaderElector interface {
	IsLeader() bool
}

type ConfigService interface {
	GetJSONConfig(key string, v any) error
	SetJSONConfig(key string, v any) error
}
