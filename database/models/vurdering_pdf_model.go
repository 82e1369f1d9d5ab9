package models

import (
	"time"

	"github.com/google/uuid"
)

// VurderingPdf holds the rendered letter for a vurdering. It is written in
// the same transaction as the vurdering row, so no vurdering exists without
// its document.
type VurderingPdf struct {
	UUID        uuid.UUID `json:"uuid" gorm:"type:uuid;primaryKey"`
	CreatedAt   time.Time `json:"createdAt"`
	VurderingID uuid.UUID `json:"-" gorm:"type:uuid;index"`
	Pdf         []byte    `json:"-" gorm:"type:bytea"`
}

func (p VurderingPdf) TableName() string {
	return "vurdering_pdf"
}

func NewVurderingPdf(vurdering Vurdering, pdf []byte) VurderingPdf {
	return VurderingPdf{
		UUID:        uuid.New(),
		CreatedAt:   time.Now(),
		VurderingID: vurdering.UUID,
		Pdf:         pdf,
	}
}
