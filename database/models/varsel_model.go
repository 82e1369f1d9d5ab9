package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	svarfristMinDays = 21
	svarfristMaxDays = 42
)

// Varsel is the advance notice nested inside a FORHANDSVARSEL vurdering. The
// citizen gets until Svarfrist to respond before a denial can be created.
type Varsel struct {
	UUID                        uuid.UUID  `json:"uuid" gorm:"type:uuid;primaryKey"`
	CreatedAt                   time.Time  `json:"createdAt"`
	UpdatedAt                   time.Time  `json:"updatedAt"`
	VurderingID                 uuid.UUID  `json:"-" gorm:"type:uuid;index"`
	Svarfrist                   time.Time  `json:"svarfrist" gorm:"type:date"`
	PublishedAt                 *time.Time `json:"publishedAt"`
	SvarfristExpiredPublishedAt *time.Time `json:"svarfristExpiredPublishedAt"`
}

func (v Varsel) TableName() string {
	return "varsel"
}

// NewVarsel validates that the response deadline lands inside the allowed
// window of 21 to 42 days from today.
func NewVarsel(svarfrist time.Time) (Varsel, error) {
	days := daysUntil(time.Now(), svarfrist)
	if days < svarfristMinDays || days > svarfristMaxDays {
		return Varsel{}, NewValidationError(
			"svarfrist must be between %d and %d days from now, got %d days",
			svarfristMinDays, svarfristMaxDays, days,
		)
	}
	return Varsel{
		UUID:      uuid.New(),
		CreatedAt: time.Now(),
		Svarfrist: svarfrist,
	}, nil
}

// IsExpired reports whether the response deadline has passed. The deadline
// day itself still counts as unexpired.
func (v Varsel) IsExpired() bool {
	return toDate(v.Svarfrist).Before(toDate(time.Now()))
}

// Publish returns a copy stamped with the publication time of the
// varsel-created event. Publishing twice is an error.
func (v Varsel) Publish() (Varsel, error) {
	if v.PublishedAt != nil {
		return Varsel{}, ErrVarselAlreadyPublished
	}
	now := time.Now()
	v.PublishedAt = &now
	return v, nil
}

// PublishSvarfristExpired returns a copy stamped with the publication time of
// the deadline-expiry event. It requires the deadline to actually have passed
// and can only happen once.
func (v Varsel) PublishSvarfristExpired() (Varsel, error) {
	if v.SvarfristExpiredPublishedAt != nil {
		return Varsel{}, ErrVarselAlreadyPublished
	}
	if !v.IsExpired() {
		return Varsel{}, NewValidationError("svarfrist %s has not passed yet", v.Svarfrist.Format(time.DateOnly))
	}
	now := time.Now()
	v.SvarfristExpiredPublishedAt = &now
	return v, nil
}

// toDate keeps the operand's own calendar date but anchors it at UTC, so two
// dates from different locations always differ by whole days.
func toDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysUntil(from, to time.Time) int {
	return int(toDate(to).Sub(toDate(from)).Hours() / 24)
}
