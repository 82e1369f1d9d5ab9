package models_test

import (
	"testing"
	"time"

	"github.com/navikt/isarbeidsuforhet-sub000/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVarsel(t *testing.T) {
	t.Run("accepts both ends of the svarfrist window", func(t *testing.T) {
		_, err := models.NewVarsel(time.Now().AddDate(0, 0, 21))
		require.NoError(t, err)

		_, err = models.NewVarsel(time.Now().AddDate(0, 0, 42))
		require.NoError(t, err)
	})

	t.Run("rejects a svarfrist outside the window", func(t *testing.T) {
		_, err := models.NewVarsel(time.Now().AddDate(0, 0, 20))
		assert.True(t, models.IsValidationError(err))

		_, err = models.NewVarsel(time.Now().AddDate(0, 0, 43))
		assert.True(t, models.IsValidationError(err))
	})

	t.Run("accepts a utc midnight svarfrist in any local zone", func(t *testing.T) {
		// a svarfrist from an RFC3339 body carries Z, while the window is
		// measured against local now; only the calendar dates may count
		year, month, day := time.Now().AddDate(0, 0, 21).Date()
		svarfrist := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

		_, err := models.NewVarsel(svarfrist)
		require.NoError(t, err)
	})
}

func TestVarselIsExpired(t *testing.T) {
	t.Run("a same-day utc svarfrist is not expired", func(t *testing.T) {
		year, month, day := time.Now().Date()
		varsel := models.Varsel{Svarfrist: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}

		assert.False(t, varsel.IsExpired())
	})

	t.Run("yesterday is expired", func(t *testing.T) {
		varsel := models.Varsel{Svarfrist: time.Now().AddDate(0, 0, -1)}

		assert.True(t, varsel.IsExpired())
	})
}

func TestVarselPublish(t *testing.T) {
	t.Run("should stamp publishedAt on a copy", func(t *testing.T) {
		varsel, err := models.NewVarsel(time.Now().AddDate(0, 0, 30))
		require.NoError(t, err)

		published, err := varsel.Publish()
		require.NoError(t, err)
		assert.NotNil(t, published.PublishedAt)
		assert.Nil(t, varsel.PublishedAt)
	})

	t.Run("should fail when already published", func(t *testing.T) {
		varsel, err := models.NewVarsel(time.Now().AddDate(0, 0, 30))
		require.NoError(t, err)

		published, err := varsel.Publish()
		require.NoError(t, err)

		_, err = published.Publish()
		assert.ErrorIs(t, err, models.ErrVarselAlreadyPublished)
	})
}

func TestVarselPublishSvarfristExpired(t *testing.T) {
	t.Run("should fail while the svarfrist has not passed", func(t *testing.T) {
		varsel, err := models.NewVarsel(time.Now().AddDate(0, 0, 30))
		require.NoError(t, err)

		_, err = varsel.PublishSvarfristExpired()
		assert.True(t, models.IsValidationError(err))
	})

	t.Run("should stamp the expiry publication once the svarfrist has passed", func(t *testing.T) {
		varsel, err := models.NewVarsel(time.Now().AddDate(0, 0, 30))
		require.NoError(t, err)
		varsel.Svarfrist = time.Now().AddDate(0, 0, -1)

		expired, err := varsel.PublishSvarfristExpired()
		require.NoError(t, err)
		assert.NotNil(t, expired.SvarfristExpiredPublishedAt)
		assert.Nil(t, varsel.SvarfristExpiredPublishedAt)

		_, err = expired.PublishSvarfristExpired()
		assert.ErrorIs(t, err, models.ErrVarselAlreadyPublished)
	})
}
