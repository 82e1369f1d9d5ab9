package dtos

import (
	"time"

	"github.com/navikt/isarbeidsuforhet-sub000/database/models"
)

type CreateVurderingRequest struct {
	Type                models.VurderingType        `json:"type" validate:"required,oneof=FORHANDSVARSEL OPPFYLT OPPFYLT_UTEN_FORHANDSVARSEL AVSLAG AVSLAG_UTEN_FORHANDSVARSEL IKKE_AKTUELL"`
	Begrunnelse         string                      `json:"begrunnelse"`
	Document            models.DocumentComponents   `json:"document"`
	VarselSvarfrist     *time.Time                  `json:"varselSvarfrist"`
	GjelderFom          *time.Time                  `json:"gjelderFom"`
	Arsak               *models.VurderingArsak      `json:"arsak" validate:"omitempty,oneof=FRISKMELDT FRISKMELDING_TIL_ARBEIDSFORMIDLING"`
	VurderingInitiertAv *models.VurderingInitiertAv `json:"vurderingInitiertAv" validate:"omitempty,oneof=NAV_KONTOR NAY"`
	OppgaveFraNayDato   *time.Time                  `json:"oppgaveFraNayDato"`
}

// ToInput combines the request body with the identities carried by headers
// and session into the domain construction input.
func (r CreateVurderingRequest) ToInput(personident models.Personident, veilederident string) models.NewVurderingInput {
	return models.NewVurderingInput{
		Personident:         personident,
		Veilederident:       veilederident,
		Type:                r.Type,
		Arsak:               r.Arsak,
		Begrunnelse:         r.Begrunnelse,
		Document:            r.Document,
		GjelderFom:          r.GjelderFom,
		VurderingInitiertAv: r.VurderingInitiertAv,
		OppgaveFraNayDato:   r.OppgaveFraNayDato,
		Svarfrist:           r.VarselSvarfrist,
	}
}

type GetVurderingerRequest struct {
	Personidenter []string `json:"personidenter" validate:"required,min=1"`
}
