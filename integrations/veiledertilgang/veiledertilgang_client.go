package veiledertilgang

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/navikt/isarbeidsuforhet-sub000/database/models"
	"github.com/navikt/isarbeidsuforhet-sub000/utils"
	"github.com/pkg/errors"
)

const (
	personPath  = "/api/tilgang/navident/person"
	brukerePath = "/api/tilgang/navident/brukere"
)

// veilederTilgangClient asks the access-control gateway whether the
// caseworker behind the forwarded bearer token may see a person.
type veilederTilgangClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewVeilederTilgangClient(baseURL string) *veilederTilgangClient {
	return &veilederTilgangClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *veilederTilgangClient) HasAccess(ctx context.Context, callID string, token string, personident models.Personident) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+personPath, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("nav-personident", personident.String())
	req.Header.Set("X-Call-Id", callID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, errors.Wrap(err, "veiledertilgang request failed")
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusForbidden:
		return false, nil
	default:
		return false, errors.Errorf("veiledertilgang responded with status %d", resp.StatusCode)
	}
}

// FilterAccessible returns the subset of personidenter the caseworker may
// see. Idents the gateway does not return are silently excluded.
func (c *veilederTilgangClient) FilterAccessible(ctx context.Context, callID string, token string, personidenter []models.Personident) ([]models.Personident, error) {
	body, err := json.Marshal(utils.Map(personidenter, models.Personident.String))
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+brukerePath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Call-Id", callID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "veiledertilgang request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("veiledertilgang responded with status %d", resp.StatusCode)
	}

	var accessible []string
	if err := json.NewDecoder(resp.Body).Decode(&accessible); err != nil {
		return nil, errors.Wrap(err, "could not decode veiledertilgang response")
	}

	return utils.Map(accessible, func(ident string) models.Personident {
		return models.Personident(ident)
	}), nil
}
