package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/navikt/isarbeidsuforhet-sub000/database/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type vurderingRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Vurdering]
}

func NewVurderingRepository(db *gorm.DB) *vurderingRepository {
	return &vurderingRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Vurdering](db),
	}
}

// CreateVurdering persists the vurdering, its varsel (if any) and the
// rendered pdf in one transaction. A failure on any row rolls back the whole
// unit, so no vurdering exists without its document.
func (r *vurderingRepository) CreateVurdering(vurdering models.Vurdering, pdf []byte) (models.Vurdering, error) {
	pdfRow := models.NewVurderingPdf(vurdering, pdf)

	err := r.Transaction(func(tx *gorm.DB) error {
		// serialize concurrent creations for the same person and re-check
		// the state machine under the lock
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", vurdering.Personident.String()).Error; err != nil {
			return err
		}

		var existing []models.Vurdering
		err := tx.Preload("Varsel").
			Where("personident = ?", vurdering.Personident).
			Order("created_at DESC").
			Find(&existing).Error
		if err != nil {
			return err
		}
		if err := models.ValidateTransition(vurdering.Type, existing); err != nil {
			return err
		}

		if err := tx.Create(&vurdering).Error; err != nil {
			if isUniqueViolation(err) {
				return models.NewValidationError("vurdering %s already exists", vurdering.UUID)
			}
			return errors.Wrap(err, "could not create vurdering")
		}
		if err := tx.Create(&pdfRow).Error; err != nil {
			return errors.Wrap(err, "could not create vurdering pdf")
		}
		return nil
	})
	if err != nil {
		return models.Vurdering{}, err
	}

	return r.GetVurdering(vurdering.UUID)
}

func (r *vurderingRepository) GetVurdering(id uuid.UUID) (models.Vurdering, error) {
	var vurdering models.Vurdering
	err := r.db.Preload("Varsel").First(&vurdering, "uuid = ?", id).Error
	return vurdering, err
}

func (r *vurderingRepository) GetVurderinger(personident models.Personident) ([]models.Vurdering, error) {
	var vurderinger []models.Vurdering
	err := r.db.Preload("Varsel").
		Where("personident = ?", personident).
		Order("created_at DESC").
		Find(&vurderinger).Error
	return vurderinger, err
}

func (r *vurderingRepository) GetLatestVurdering(personident models.Personident) (*models.Vurdering, error) {
	var vurdering models.Vurdering
	err := r.db.Preload("Varsel").
		Where("personident = ?", personident).
		Order("created_at DESC").
		First(&vurdering).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vurdering, nil
}

func (r *vurderingRepository) GetPdf(vurderingID uuid.UUID) (models.VurderingPdf, error) {
	var pdf models.VurderingPdf
	err := r.db.First(&pdf, "vurdering_id = ?", vurderingID).Error
	return pdf, err
}

func (r *vurderingRepository) GetNotJournalforteVurderinger() ([]models.Vurdering, error) {
	var vurderinger []models.Vurdering
	err := r.db.Preload("Varsel").
		Where("journalpost_id IS NULL").
		Order("created_at ASC").
		Find(&vurderinger).Error
	return vurderinger, err
}

func (r *vurderingRepository) GetUnpublishedVurderinger() ([]models.Vurdering, error) {
	var vurderinger []models.Vurdering
	err := r.db.Preload("Varsel").
		Where("journalpost_id IS NOT NULL AND published_at IS NULL").
		Order("created_at ASC").
		Find(&vurderinger).Error
	return vurderinger, err
}

func (r *vurderingRepository) GetUnpublishedExpiredVarsler() ([]models.Varsel, error) {
	var varsler []models.Varsel
	err := r.db.
		Where("svarfrist < ? AND svarfrist_expired_published_at IS NULL", startOfToday()).
		Order("svarfrist ASC").
		Find(&varsler).Error
	return varsler, err
}

// SetJournalpostID persists the archival reference. The guard on a NULL
// journalpost_id makes archival at-most-once per vurdering: a second write
// affects zero rows and fails with ErrAlreadyJournalfort.
func (r *vurderingRepository) SetJournalpostID(vurdering models.Vurdering) error {
	result := r.db.Model(&models.Vurdering{}).
		Where("uuid = ? AND journalpost_id IS NULL", vurdering.UUID).
		Update("journalpost_id", vurdering.JournalpostID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrAlreadyJournalfort
	}
	return nil
}

// SetPublished stamps the vurdering and, for a forhandsvarsel, its varsel in
// one transaction. Either both rows advance or neither does, so a vurdering
// never leaves the unpublished selection with an unstamped varsel.
func (r *vurderingRepository) SetPublished(vurdering models.Vurdering) error {
	return r.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Vurdering{}).
			Where("uuid = ? AND published_at IS NULL", vurdering.UUID).
			Update("published_at", vurdering.PublishedAt)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.Errorf("vurdering %s is already published", vurdering.UUID)
		}
		if vurdering.Varsel != nil {
			if err := tx.Save(vurdering.Varsel).Error; err != nil {
				return errors.Wrap(err, "could not update varsel")
			}
		}
		return nil
	})
}

func (r *vurderingRepository) UpdateVarsel(varsel models.Varsel) error {
	return r.db.Save(&varsel).Error
}

// UpdatePersonident reassigns every row of the inactive identifiers to the
// active one in a single statement. Zero affected rows is a no-op, not an
// error.
func (r *vurderingRepository) UpdatePersonident(active models.Personident, inactive []models.Personident) (int64, error) {
	if len(inactive) == 0 {
		return 0, nil
	}
	result := r.db.Model(&models.Vurdering{}).
		Where("personident IN ?", inactive).
		Update("personident", active)
	return result.RowsAffected, result.Error
}

func startOfToday() time.Time {
	year, month, day := time.Now().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}
