package repositories_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/navikt/isarbeidsuforhet-sub000/database/models"
	"github.com/navikt/isarbeidsuforhet-sub000/database/repositories"
	"github.com/navikt/isarbeidsuforhet-sub000/integrationtestutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument() models.DocumentComponents {
	return models.DocumentComponents{
		{
			Type:  models.DocumentComponentTypeParagraph,
			Texts: []string{"Vi vurderer at du fortsatt er arbeidsufør."},
		},
	}
}

func newForhandsvarsel(t *testing.T, personident models.Personident) models.Vurdering {
	t.Helper()
	svarfrist := time.Now().AddDate(0, 0, 30)
	vurdering, err := models.NewVurdering(models.NewVurderingInput{
		Personident:   personident,
		Veilederident: "Z999999",
		Type:          models.VurderingTypeForhandsvarsel,
		Begrunnelse:   "varsel om avslag",
		Document:      validDocument(),
		Svarfrist:     &svarfrist,
	})
	require.NoError(t, err)
	return vurdering
}

func newOppfylt(t *testing.T, personident models.Personident) models.Vurdering {
	t.Helper()
	vurdering, err := models.NewVurdering(models.NewVurderingInput{
		Personident:   personident,
		Veilederident: "Z999999",
		Type:          models.VurderingTypeOppfylt,
		Begrunnelse:   "fortsatt arbeidsufør",
		Document:      validDocument(),
	})
	require.NoError(t, err)
	return vurdering
}

// expiredForhandsvarsel builds a forhandsvarsel whose svarfrist already
// passed, bypassing the creation-time window check.
func expiredForhandsvarsel(personident models.Personident) models.Vurdering {
	id := uuid.New()
	return models.Vurdering{
		UUID:          id,
		CreatedAt:     time.Now().AddDate(0, 0, -60),
		Personident:   personident,
		Veilederident: "Z999999",
		Type:          models.VurderingTypeForhandsvarsel,
		Begrunnelse:   "varsel om avslag",
		Document:      validDocument(),
		Varsel: &models.Varsel{
			UUID:        uuid.New(),
			CreatedAt:   time.Now().AddDate(0, 0, -60),
			VurderingID: id,
			Svarfrist:   time.Now().AddDate(0, 0, -1),
		},
	}
}

func TestVurderingRepository(t *testing.T) {
	db, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	repository := repositories.NewVurderingRepository(db)

	t.Run("persists vurdering, varsel and pdf together", func(t *testing.T) {
		personident := models.Personident("10000000001")
		vurdering := newForhandsvarsel(t, personident)

		created, err := repository.CreateVurdering(vurdering, []byte("%PDF"))
		require.NoError(t, err)
		require.NotNil(t, created.Varsel)
		assert.Equal(t, vurdering.UUID, created.Varsel.VurderingID)

		pdf, err := repository.GetPdf(created.UUID)
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF"), pdf.Pdf)
	})

	t.Run("rejects a second forhandsvarsel while one is unexpired", func(t *testing.T) {
		personident := models.Personident("10000000002")

		_, err := repository.CreateVurdering(newForhandsvarsel(t, personident), []byte("%PDF"))
		require.NoError(t, err)

		_, err = repository.CreateVurdering(newForhandsvarsel(t, personident), []byte("%PDF"))
		require.Error(t, err)
		assert.True(t, models.IsValidationError(err))
	})

	t.Run("rejects avslag while the forhandsvarsel is unexpired", func(t *testing.T) {
		personident := models.Personident("10000000003")

		_, err := repository.CreateVurdering(newForhandsvarsel(t, personident), []byte("%PDF"))
		require.NoError(t, err)

		gjelderFom := time.Now()
		avslag, err := models.NewVurdering(models.NewVurderingInput{
			Personident:   personident,
			Veilederident: "Z999999",
			Type:          models.VurderingTypeAvslag,
			Begrunnelse:   "vilkåret er ikke oppfylt",
			Document:      validDocument(),
			GjelderFom:    &gjelderFom,
		})
		require.NoError(t, err)

		_, err = repository.CreateVurdering(avslag, []byte("%PDF"))
		require.Error(t, err)
		assert.True(t, models.IsValidationError(err))
	})

	t.Run("allows avslag after the forhandsvarsel expired", func(t *testing.T) {
		personident := models.Personident("10000000004")

		_, err := repository.CreateVurdering(expiredForhandsvarsel(personident), []byte("%PDF"))
		require.NoError(t, err)

		gjelderFom := time.Now()
		avslag, err := models.NewVurdering(models.NewVurderingInput{
			Personident:   personident,
			Veilederident: "Z999999",
			Type:          models.VurderingTypeAvslag,
			Begrunnelse:   "vilkåret er ikke oppfylt",
			Document:      validDocument(),
			GjelderFom:    &gjelderFom,
		})
		require.NoError(t, err)

		created, err := repository.CreateVurdering(avslag, []byte("%PDF"))
		require.NoError(t, err)
		assert.Equal(t, models.VurderingTypeAvslag, created.Type)
	})

	t.Run("returns the newest vurdering first", func(t *testing.T) {
		personident := models.Personident("10000000005")

		older := newOppfylt(t, personident)
		older.CreatedAt = time.Now().AddDate(0, 0, -10)
		_, err := repository.CreateVurdering(older, []byte("%PDF"))
		require.NoError(t, err)

		newer := newOppfylt(t, personident)
		_, err = repository.CreateVurdering(newer, []byte("%PDF"))
		require.NoError(t, err)

		latest, err := repository.GetLatestVurdering(personident)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, newer.UUID, latest.UUID)

		vurderinger, err := repository.GetVurderinger(personident)
		require.NoError(t, err)
		require.Len(t, vurderinger, 2)
		assert.Equal(t, newer.UUID, vurderinger[0].UUID)
		assert.Equal(t, older.UUID, vurderinger[1].UUID)
	})

	t.Run("returns nil for a person without vurderinger", func(t *testing.T) {
		latest, err := repository.GetLatestVurdering(models.Personident("10000000099"))
		require.NoError(t, err)
		assert.Nil(t, latest)
	})

	t.Run("journalpost reference can be set exactly once", func(t *testing.T) {
		personident := models.Personident("10000000006")

		created, err := repository.CreateVurdering(newOppfylt(t, personident), []byte("%PDF"))
		require.NoError(t, err)

		journalfort, err := created.Journalfor("42")
		require.NoError(t, err)
		require.NoError(t, repository.SetJournalpostID(journalfort))

		err = repository.SetJournalpostID(journalfort)
		assert.ErrorIs(t, err, models.ErrAlreadyJournalfort)

		notJournalforte, err := repository.GetNotJournalforteVurderinger()
		require.NoError(t, err)
		for _, vurdering := range notJournalforte {
			assert.NotEqual(t, created.UUID, vurdering.UUID)
		}
	})

	t.Run("unpublished selection requires an archived vurdering", func(t *testing.T) {
		personident := models.Personident("10000000007")

		created, err := repository.CreateVurdering(newOppfylt(t, personident), []byte("%PDF"))
		require.NoError(t, err)

		unpublished, err := repository.GetUnpublishedVurderinger()
		require.NoError(t, err)
		for _, vurdering := range unpublished {
			assert.NotEqual(t, created.UUID, vurdering.UUID)
		}

		journalfort, err := created.Journalfor("43")
		require.NoError(t, err)
		require.NoError(t, repository.SetJournalpostID(journalfort))

		unpublished, err = repository.GetUnpublishedVurderinger()
		require.NoError(t, err)
		found := false
		for _, vurdering := range unpublished {
			if vurdering.UUID == created.UUID {
				found = true
			}
		}
		assert.True(t, found)

		now := time.Now()
		journalfort.PublishedAt = &now
		require.NoError(t, repository.SetPublished(journalfort))

		unpublished, err = repository.GetUnpublishedVurderinger()
		require.NoError(t, err)
		for _, vurdering := range unpublished {
			assert.NotEqual(t, created.UUID, vurdering.UUID)
		}
	})

	t.Run("publishing a forhandsvarsel stamps vurdering and varsel together", func(t *testing.T) {
		personident := models.Personident("10000000011")

		created, err := repository.CreateVurdering(newForhandsvarsel(t, personident), []byte("%PDF"))
		require.NoError(t, err)
		require.NotNil(t, created.Varsel)

		journalfort, err := created.Journalfor("44")
		require.NoError(t, err)
		require.NoError(t, repository.SetJournalpostID(journalfort))

		publishedVarsel, err := created.Varsel.Publish()
		require.NoError(t, err)
		now := time.Now()
		journalfort.PublishedAt = &now
		journalfort.Varsel = &publishedVarsel
		require.NoError(t, repository.SetPublished(journalfort))

		reloaded, err := repository.GetVurdering(created.UUID)
		require.NoError(t, err)
		assert.NotNil(t, reloaded.PublishedAt)
		require.NotNil(t, reloaded.Varsel)
		assert.NotNil(t, reloaded.Varsel.PublishedAt)
	})

	t.Run("rejects a forhandsvarsel when an unexpired one is buried in the history", func(t *testing.T) {
		personident := models.Personident("10000000012")

		_, err := repository.CreateVurdering(newForhandsvarsel(t, personident), []byte("%PDF"))
		require.NoError(t, err)

		oppfylt := newOppfylt(t, personident)
		oppfylt.CreatedAt = time.Now().Add(time.Minute)
		_, err = repository.CreateVurdering(oppfylt, []byte("%PDF"))
		require.NoError(t, err)

		_, err = repository.CreateVurdering(newForhandsvarsel(t, personident), []byte("%PDF"))
		require.Error(t, err)
		assert.True(t, models.IsValidationError(err))
	})

	t.Run("expired varsel selection skips stamped varsler", func(t *testing.T) {
		personident := models.Personident("10000000008")

		created, err := repository.CreateVurdering(expiredForhandsvarsel(personident), []byte("%PDF"))
		require.NoError(t, err)
		require.NotNil(t, created.Varsel)

		varsler, err := repository.GetUnpublishedExpiredVarsler()
		require.NoError(t, err)
		found := false
		for _, varsel := range varsler {
			if varsel.UUID == created.Varsel.UUID {
				found = true
			}
		}
		assert.True(t, found)

		stamped, err := created.Varsel.PublishSvarfristExpired()
		require.NoError(t, err)
		require.NoError(t, repository.UpdateVarsel(stamped))

		varsler, err = repository.GetUnpublishedExpiredVarsler()
		require.NoError(t, err)
		for _, varsel := range varsler {
			assert.NotEqual(t, created.Varsel.UUID, varsel.UUID)
		}
	})

	t.Run("moves vurderinger to the active personident", func(t *testing.T) {
		inactive := models.Personident("10000000009")
		active := models.Personident("10000000010")

		_, err := repository.CreateVurdering(newOppfylt(t, inactive), []byte("%PDF"))
		require.NoError(t, err)

		rows, err := repository.UpdatePersonident(active, []models.Personident{inactive})
		require.NoError(t, err)
		assert.Equal(t, int64(1), rows)

		vurderinger, err := repository.GetVurderinger(inactive)
		require.NoError(t, err)
		assert.Empty(t, vurderinger)

		vurderinger, err = repository.GetVurderinger(active)
		require.NoError(t, err)
		assert.Len(t, vurderinger, 1)

		rows, err = repository.UpdatePersonident(active, nil)
		require.NoError(t, err)
		assert.Zero(t, rows)
	})
}
