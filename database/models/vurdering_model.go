package models

import (
	"time"

	"github.com/google/uuid"
)

type VurderingType string

const (
	VurderingTypeForhandsvarsel            VurderingType = "FORHANDSVARSEL"
	VurderingTypeOppfylt                   VurderingType = "OPPFYLT"
	VurderingTypeOppfyltUtenForhandsvarsel VurderingType = "OPPFYLT_UTEN_FORHANDSVARSEL"
	VurderingTypeAvslag                    VurderingType = "AVSLAG"
	VurderingTypeAvslagUtenForhandsvarsel  VurderingType = "AVSLAG_UTEN_FORHANDSVARSEL"
	VurderingTypeIkkeAktuell               VurderingType = "IKKE_AKTUELL"
)

// IsFinal reports whether the vurdering concludes the assessment, as opposed
// to the advance notice which only opens a response window.
func (t VurderingType) IsFinal() bool {
	return t != VurderingTypeForhandsvarsel
}

type VurderingArsak string

const (
	VurderingArsakFriskmeldt                       VurderingArsak = "FRISKMELDT"
	VurderingArsakFriskmeldingTilArbeidsformidling VurderingArsak = "FRISKMELDING_TIL_ARBEIDSFORMIDLING"
)

func (a VurderingArsak) Valid() bool {
	switch a {
	case VurderingArsakFriskmeldt, VurderingArsakFriskmeldingTilArbeidsformidling:
		return true
	}
	return false
}

type VurderingInitiertAv string

const (
	VurderingInitiertAvNavKontor VurderingInitiertAv = "NAV_KONTOR"
	VurderingInitiertAvNay       VurderingInitiertAv = "NAY"
)

func (i VurderingInitiertAv) Valid() bool {
	switch i {
	case VurderingInitiertAvNavKontor, VurderingInitiertAvNay:
		return true
	}
	return false
}

// Vurdering is a caseworker's assessment of a citizen's work incapacity. The
// type is immutable after creation; only the archival reference and the
// publish timestamp change afterwards.
type Vurdering struct {
	UUID                uuid.UUID            `json:"uuid" gorm:"type:uuid;primaryKey"`
	CreatedAt           time.Time            `json:"createdAt"`
	Personident         Personident          `json:"personident" gorm:"type:varchar(11);index"`
	Veilederident       string               `json:"veilederident"`
	Type                VurderingType        `json:"type" gorm:"type:text"`
	Arsak               *VurderingArsak      `json:"arsak" gorm:"type:text"`
	Begrunnelse         string               `json:"begrunnelse"`
	Document            DocumentComponents   `json:"document" gorm:"type:jsonb"`
	JournalpostID       *JournalpostID       `json:"journalpostId" gorm:"type:text"`
	PublishedAt         *time.Time           `json:"publishedAt"`
	GjelderFom          *time.Time           `json:"gjelderFom" gorm:"type:date"`
	VurderingInitiertAv *VurderingInitiertAv `json:"vurderingInitiertAv" gorm:"type:text"`
	OppgaveFraNayDato   *time.Time           `json:"oppgaveFraNayDato" gorm:"type:date"`

	Varsel *Varsel `json:"varsel" gorm:"foreignKey:VurderingID;constraint:OnDelete:CASCADE;"`
}

func (v Vurdering) TableName() string {
	return "vurdering"
}

type NewVurderingInput struct {
	Personident         Personident
	Veilederident       string
	Type                VurderingType
	Arsak               *VurderingArsak
	Begrunnelse         string
	Document            DocumentComponents
	GjelderFom          *time.Time
	VurderingInitiertAv *VurderingInitiertAv
	OppgaveFraNayDato   *time.Time
	Svarfrist           *time.Time
}

// NewVurdering constructs a vurdering of the requested type, enforcing the
// type-specific required fields. A FORHANDSVARSEL gets its nested varsel
// created here so that both always persist together.
func NewVurdering(input NewVurderingInput) (Vurdering, error) {
	if err := input.Personident.Validate(); err != nil {
		return Vurdering{}, err
	}
	if input.Veilederident == "" {
		return Vurdering{}, NewValidationError("veilederident is required")
	}

	vurdering := Vurdering{
		UUID:          uuid.New(),
		CreatedAt:     time.Now(),
		Personident:   input.Personident,
		Veilederident: input.Veilederident,
		Type:          input.Type,
		Arsak:         input.Arsak,
		Begrunnelse:   input.Begrunnelse,
		Document:      input.Document,
	}

	switch input.Type {
	case VurderingTypeForhandsvarsel:
		if input.Svarfrist == nil {
			return Vurdering{}, NewValidationError("varselSvarfrist is required for %s", input.Type)
		}
		varsel, err := NewVarsel(*input.Svarfrist)
		if err != nil {
			return Vurdering{}, err
		}
		varsel.VurderingID = vurdering.UUID
		vurdering.Varsel = &varsel
	case VurderingTypeAvslag:
		if input.GjelderFom == nil {
			return Vurdering{}, NewValidationError("gjelderFom is required for %s", input.Type)
		}
		vurdering.GjelderFom = input.GjelderFom
	case VurderingTypeAvslagUtenForhandsvarsel:
		if input.GjelderFom == nil {
			return Vurdering{}, NewValidationError("gjelderFom is required for %s", input.Type)
		}
		if input.VurderingInitiertAv == nil {
			return Vurdering{}, NewValidationError("vurderingInitiertAv is required for %s", input.Type)
		}
		if !input.VurderingInitiertAv.Valid() {
			return Vurdering{}, NewValidationError("unknown vurderingInitiertAv %q", *input.VurderingInitiertAv)
		}
		if input.OppgaveFraNayDato == nil {
			return Vurdering{}, NewValidationError("oppgaveFraNayDato is required for %s", input.Type)
		}
		vurdering.GjelderFom = input.GjelderFom
		vurdering.VurderingInitiertAv = input.VurderingInitiertAv
		vurdering.OppgaveFraNayDato = input.OppgaveFraNayDato
	case VurderingTypeIkkeAktuell:
		if input.Arsak == nil {
			return Vurdering{}, NewValidationError("arsak is required for %s", input.Type)
		}
		if !input.Arsak.Valid() {
			return Vurdering{}, NewValidationError("unknown arsak %q", *input.Arsak)
		}
	case VurderingTypeOppfylt, VurderingTypeOppfyltUtenForhandsvarsel:
		// no extra fields
	default:
		return Vurdering{}, NewValidationError("unknown vurdering type %q", input.Type)
	}

	if input.Type != VurderingTypeIkkeAktuell {
		if input.Arsak != nil {
			return Vurdering{}, NewValidationError("arsak is not allowed for %s", input.Type)
		}
		if input.Begrunnelse == "" {
			return Vurdering{}, NewValidationError("begrunnelse is required for %s", input.Type)
		}
		if len(input.Document) == 0 {
			return Vurdering{}, NewValidationError("document is required for %s", input.Type)
		}
	}

	return vurdering, nil
}

// IsExpiredForhandsvarsel reports whether this is an advance notice whose
// response deadline has passed.
func (v Vurdering) IsExpiredForhandsvarsel() bool {
	return v.Type == VurderingTypeForhandsvarsel && v.Varsel != nil && v.Varsel.IsExpired()
}

// Journalfor returns a copy with the archival reference set. A vurdering is
// archived at most once.
func (v Vurdering) Journalfor(journalpostID JournalpostID) (Vurdering, error) {
	if v.JournalpostID != nil {
		return Vurdering{}, ErrAlreadyJournalfort
	}
	v.JournalpostID = &journalpostID
	return v, nil
}

// ArsakOrEmpty returns the type-specific reason code, or the empty string for
// types that do not carry one.
func (v Vurdering) ArsakOrEmpty() string {
	if v.Arsak == nil {
		return ""
	}
	return string(*v.Arsak)
}
