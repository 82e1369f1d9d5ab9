package pdfgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/navikt/isarbeidsuforhet-sub000/database/models"
	"github.com/pkg/errors"
)

const (
	templateForhandsvarsel = "forhandsvarsel"
	templateVurdering      = "vurdering"
	templateAvslag         = "avslag"
)

type pdfGenClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewPdfGenClient(baseURL string) *pdfGenClient {
	return &pdfGenClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type pdfPayload struct {
	MottakerNavn          string                    `json:"mottakerNavn"`
	MottakerFodselsnummer string                    `json:"mottakerFodselsnummer"`
	DatoSendt             string                    `json:"datoSendt"`
	DocumentComponents    models.DocumentComponents `json:"documentComponents"`
}

// CreateVurderingPdf renders the letter for a vurdering with the template
// matching its type. A non-2xx response from the renderer is an error.
func (c *pdfGenClient) CreateVurderingPdf(ctx context.Context, callID string, vurdering models.Vurdering, personName string) ([]byte, error) {
	payload := pdfPayload{
		MottakerNavn:          personName,
		MottakerFodselsnummer: vurdering.Personident.String(),
		DatoSendt:             vurdering.CreatedAt.Format(time.DateOnly),
		DocumentComponents:    vurdering.Document,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/v1/genpdf/isarbeidsuforhet/%s", c.baseURL, templateFor(vurdering.Type))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Call-Id", callID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "pdfgen request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("pdfgen responded with status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func templateFor(vurderingType models.VurderingType) string {
	switch vurderingType {
	case models.VurderingTypeForhandsvarsel:
		return templateForhandsvarsel
	case models.VurderingTypeAvslag, models.VurderingTypeAvslagUtenForhandsvarsel:
		return templateAvslag
	default:
		return templateVurdering
	}
}
