package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/navikt/isarbeidsuforhet-sub000/database/models"
	"github.com/navikt/isarbeidsuforhet-sub000/monitoring"
	"github.com/navikt/isarbeidsuforhet-sub000/shared"
	"github.com/navikt/isarbeidsuforhet-sub000/utils"
	"github.com/pkg/errors"
)

type vurderingService struct {
	repository     shared.VurderingRepository
	pdfGenClient   shared.PdfGenClient
	pdlClient      shared.PdlClient
	dokarkivClient shared.DokarkivClient
	producer       shared.VurderingProducer
}

func NewVurderingService(
	repository shared.VurderingRepository,
	pdfGenClient shared.PdfGenClient,
	pdlClient shared.PdlClient,
	dokarkivClient shared.DokarkivClient,
	producer shared.VurderingProducer,
) *vurderingService {
	return &vurderingService{
		repository:     repository,
		pdfGenClient:   pdfGenClient,
		pdlClient:      pdlClient,
		dokarkivClient: dokarkivClient,
		producer:       producer,
	}
}

// CreateVurdering validates the requested type against the person's current
// state, renders the letter and persists everything atomically. The letter
// render and the database write are the only fallible steps; a failure in
// either leaves nothing behind.
func (s *vurderingService) CreateVurdering(ctx context.Context, callID string, input models.NewVurderingInput) (models.Vurdering, error) {
	vurderinger, err := s.repository.GetVurderinger(input.Personident)
	if err != nil {
		return models.Vurdering{}, errors.Wrap(err, "could not read vurderinger")
	}
	if err := models.ValidateTransition(input.Type, vurderinger); err != nil {
		return models.Vurdering{}, err
	}

	vurdering, err := models.NewVurdering(input)
	if err != nil {
		return models.Vurdering{}, err
	}

	personName, err := s.pdlClient.GetPersonName(ctx, callID, input.Personident)
	if err != nil {
		return models.Vurdering{}, errors.Wrap(err, "could not resolve person name")
	}

	pdf, err := s.pdfGenClient.CreateVurderingPdf(ctx, callID, vurdering, personName)
	if err != nil {
		return models.Vurdering{}, errors.Wrap(err, "could not render vurdering pdf")
	}

	return s.repository.CreateVurdering(vurdering, pdf)
}

func (s *vurderingService) GetVurderinger(personident models.Personident) ([]models.Vurdering, error) {
	return s.repository.GetVurderinger(personident)
}

func (s *vurderingService) GetVurdering(id uuid.UUID) (models.Vurdering, error) {
	return s.repository.GetVurdering(id)
}

// GetLatestVurderinger fetches the newest vurdering per person concurrently.
func (s *vurderingService) GetLatestVurderinger(personidenter []models.Personident) (map[models.Personident]models.Vurdering, error) {
	group := utils.ErrGroup[*models.Vurdering](10)
	for _, personident := range personidenter {
		group.Go(func() (*models.Vurdering, error) {
			return s.repository.GetLatestVurdering(personident)
		})
	}

	results, err := group.WaitAndCollect()
	if err != nil {
		return nil, err
	}

	latest := make(map[models.Personident]models.Vurdering, len(results))
	for _, vurdering := range results {
		if vurdering != nil {
			latest[vurdering.Personident] = *vurdering
		}
	}
	return latest, nil
}

// JournalforVurderinger archives every vurdering that has no journalpostId
// yet. Items fail independently: the failed ones stay selectable and get
// retried on the next run.
func (s *vurderingService) JournalforVurderinger(ctx context.Context) (succeeded int, failed int) {
	vurderinger, err := s.repository.GetNotJournalforteVurderinger()
	if err != nil {
		slog.Error("could not load not-journalforte vurderinger", "err", err)
		return 0, 0
	}

	for _, vurdering := range vurderinger {
		if err := s.journalforVurdering(ctx, vurdering); err != nil {
			slog.Error("could not journalfore vurdering", "uuid", vurdering.UUID, "err", err)
			failed++
			continue
		}
		succeeded++
	}

	monitoring.JournalforingSucceeded.Add(float64(succeeded))
	monitoring.JournalforingFailed.Add(float64(failed))
	return succeeded, failed
}

func (s *vurderingService) journalforVurdering(ctx context.Context, vurdering models.Vurdering) error {
	pdf, err := s.repository.GetPdf(vurdering.UUID)
	if err != nil {
		return errors.Wrap(err, "could not load vurdering pdf")
	}

	journalpostID, err := s.dokarkivClient.Journalfor(ctx, uuid.New().String(), vurdering, pdf.Pdf)
	if err != nil {
		return err
	}

	journalfort, err := vurdering.Journalfor(journalpostID)
	if err != nil {
		return err
	}

	return s.repository.SetJournalpostID(journalfort)
}

// PublishUnpublishedVurderinger emits one event per archived-but-unpublished
// vurdering. A vurdering is only marked published after the broker
// acknowledged the event, so a failed send is retried on the next run.
func (s *vurderingService) PublishUnpublishedVurderinger(ctx context.Context) (succeeded int, failed int) {
	vurderinger, err := s.repository.GetUnpublishedVurderinger()
	if err != nil {
		slog.Error("could not load unpublished vurderinger", "err", err)
		return 0, 0
	}

	for _, vurdering := range vurderinger {
		if err := s.publishVurdering(ctx, vurdering); err != nil {
			slog.Error("could not publish vurdering", "uuid", vurdering.UUID, "err", err)
			failed++
			continue
		}
		succeeded++
	}

	monitoring.VurderingPublishSucceeded.Add(float64(succeeded))
	monitoring.VurderingPublishFailed.Add(float64(failed))
	return succeeded, failed
}

func (s *vurderingService) publishVurdering(ctx context.Context, vurdering models.Vurdering) error {
	if err := s.producer.SendVurdering(ctx, vurdering); err != nil {
		return errors.Wrap(err, "could not send vurdering event")
	}

	if vurdering.Type == models.VurderingTypeForhandsvarsel && vurdering.Varsel != nil {
		published, err := vurdering.Varsel.Publish()
		if err != nil {
			return err
		}
		if err := s.producer.SendVarsel(ctx, vurdering, published); err != nil {
			return errors.Wrap(err, "could not send varsel event")
		}
		vurdering.Varsel = &published
	}

	// one repository write stamps vurdering and varsel together, so a failure
	// leaves the item selectable for the next run
	now := time.Now()
	vurdering.PublishedAt = &now
	if err := s.repository.SetPublished(vurdering); err != nil {
		return errors.Wrap(err, "could not mark vurdering published")
	}

	return nil
}

// PublishExpiredForhandsvarsler emits one expiry event per varsel whose
// svarfrist has passed without the expiry having been announced yet.
func (s *vurderingService) PublishExpiredForhandsvarsler(ctx context.Context) (succeeded int, failed int) {
	varsler, err := s.repository.GetUnpublishedExpiredVarsler()
	if err != nil {
		slog.Error("could not load expired varsler", "err", err)
		return 0, 0
	}

	for _, varsel := range varsler {
		if err := s.publishExpiredVarsel(ctx, varsel); err != nil {
			slog.Error("could not publish expired varsel", "uuid", varsel.UUID, "err", err)
			failed++
			continue
		}
		succeeded++
	}

	monitoring.ExpiredVarselPublishSucceeded.Add(float64(succeeded))
	monitoring.ExpiredVarselPublishFailed.Add(float64(failed))
	return succeeded, failed
}

func (s *vurderingService) publishExpiredVarsel(ctx context.Context, varsel models.Varsel) error {
	vurdering, err := s.repository.GetVurdering(varsel.VurderingID)
	if err != nil {
		return errors.Wrap(err, "could not load vurdering for varsel")
	}

	expired, err := varsel.PublishSvarfristExpired()
	if err != nil {
		return err
	}

	if err := s.producer.SendExpiredVarsel(ctx, vurdering, expired); err != nil {
		return errors.Wrap(err, "could not send expired varsel event")
	}

	return s.repository.UpdateVarsel(expired)
}
