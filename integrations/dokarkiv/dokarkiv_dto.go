package dokarkiv

import (
	"github.com/navikt/isarbeidsuforhet-sub000/database/models"
)

type JournalpostType string

const (
	JournalpostTypeUtgaaende JournalpostType = "UTGAAENDE"
	JournalpostTypeNotat     JournalpostType = "NOTAT"
)

type Brevkode string

const (
	BrevkodeForhandsvarsel Brevkode = "OPPF_ARBEIDSUFORHET_FORHANDSVARSEL"
	BrevkodeVurdering      Brevkode = "OPPF_ARBEIDSUFORHET_VURDERING"
	BrevkodeAvslag         Brevkode = "OPPF_ARBEIDSUFORHET_AVSLAG"
)

type AvsenderMottaker struct {
	ID     string `json:"id"`
	IDType string `json:"idType"`
	Navn   string `json:"navn,omitempty"`
}

type Bruker struct {
	ID     string `json:"id"`
	IDType string `json:"idType"`
}

type Sak struct {
	Sakstype string `json:"sakstype"`
}

type Dokumentvariant struct {
	Filtype        string `json:"filtype"`
	Fysiskdokument []byte `json:"fysiskDokument"`
	Variantformat  string `json:"variantformat"`
}

type Dokument struct {
	Brevkode          Brevkode          `json:"brevkode"`
	Tittel            string            `json:"tittel"`
	Dokumentvarianter []Dokumentvariant `json:"dokumentvarianter"`
}

type JournalpostRequest struct {
	AvsenderMottaker   *AvsenderMottaker `json:"avsenderMottaker,omitempty"`
	Bruker             Bruker            `json:"bruker"`
	Tittel             string            `json:"tittel"`
	JournalpostType    JournalpostType   `json:"journalpostType"`
	Tema               string            `json:"tema"`
	Sak                Sak               `json:"sak"`
	Dokumenter         []Dokument        `json:"dokumenter"`
	EksternReferanseID string            `json:"eksternReferanseId"`
}

type JournalpostResponse struct {
	JournalpostID          int  `json:"journalpostId"`
	JournalpostFerdigstilt bool `json:"journalpostferdigstilt"`
}

// NewJournalpostRequest builds the archive submission for a vurdering. The
// vurdering uuid becomes the external reference key, which is what makes a
// retried submission a detectable duplicate on the archive side. Citizen
// letters are archived as outgoing mail, decisions as internal memos.
func NewJournalpostRequest(vurdering models.Vurdering, pdf []byte) JournalpostRequest {
	journalpostType := journalpostTypeFor(vurdering.Type)
	request := JournalpostRequest{
		Bruker: Bruker{
			ID:     vurdering.Personident.String(),
			IDType: "FNR",
		},
		Tittel:          tittelFor(vurdering.Type),
		JournalpostType: journalpostType,
		Tema:            "SYK",
		Sak: Sak{
			Sakstype: "GENERELL_SAK",
		},
		Dokumenter: []Dokument{
			{
				Brevkode: brevkodeFor(vurdering.Type),
				Tittel:   tittelFor(vurdering.Type),
				Dokumentvarianter: []Dokumentvariant{
					{
						Filtype:        "PDFA",
						Fysiskdokument: pdf,
						Variantformat:  "ARKIV",
					},
				},
			},
		},
		EksternReferanseID: vurdering.UUID.String(),
	}

	if journalpostType == JournalpostTypeUtgaaende {
		request.AvsenderMottaker = &AvsenderMottaker{
			ID:     vurdering.Personident.String(),
			IDType: "FNR",
		}
	}

	return request
}

func journalpostTypeFor(vurderingType models.VurderingType) JournalpostType {
	switch vurderingType {
	case models.VurderingTypeForhandsvarsel, models.VurderingTypeOppfylt, models.VurderingTypeOppfyltUtenForhandsvarsel:
		return JournalpostTypeUtgaaende
	default:
		return JournalpostTypeNotat
	}
}

func brevkodeFor(vurderingType models.VurderingType) Brevkode {
	switch vurderingType {
	case models.VurderingTypeForhandsvarsel:
		return BrevkodeForhandsvarsel
	case models.VurderingTypeAvslag, models.VurderingTypeAvslagUtenForhandsvarsel:
		return BrevkodeAvslag
	default:
		return BrevkodeVurdering
	}
}

func tittelFor(vurderingType models.VurderingType) string {
	switch vurderingType {
	case models.VurderingTypeForhandsvarsel:
		return "Forhåndsvarsel om avslag på sykepenger"
	case models.VurderingTypeAvslag, models.VurderingTypeAvslagUtenForhandsvarsel:
		return "Innstilling om avslag på sykepenger"
	case models.VurderingTypeIkkeAktuell:
		return "Vurdering av § 8-4 arbeidsuførhet - ikke aktuell"
	default:
		return "Vurdering av § 8-4 arbeidsuførhet"
	}
}
