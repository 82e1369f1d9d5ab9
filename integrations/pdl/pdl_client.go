package pdl

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/navikt/isarbeidsuforhet-sub000/database/models"
	"github.com/pkg/errors"
)

const hentNavnQuery = `query($ident: ID!) {
	hentPerson(ident: $ident) {
		navn(historikk: false) {
			fornavn
			mellomnavn
			etternavn
		}
	}
}`

type TokenProvider func(ctx context.Context) (string, error)

type pdlClient struct {
	baseURL       string
	tokenProvider TokenProvider
	httpClient    *http.Client
}

func NewPdlClient(baseURL string, tokenProvider TokenProvider) *pdlClient {
	return &pdlClient{
		baseURL:       baseURL,
		tokenProvider: tokenProvider,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type navn struct {
	Fornavn    string `json:"fornavn"`
	Mellomnavn string `json:"mellomnavn"`
	Etternavn  string `json:"etternavn"`
}

type hentPersonResponse struct {
	Data struct {
		HentPerson *struct {
			Navn []navn `json:"navn"`
		} `json:"hentPerson"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// GetPersonName resolves the citizen's display name. Any failure is fatal to
// the calling operation; a vurdering letter is never rendered without a name.
func (c *pdlClient) GetPersonName(ctx context.Context, callID string, personident models.Personident) (string, error) {
	body, err := json.Marshal(graphqlRequest{
		Query: hentNavnQuery,
		Variables: map[string]any{
			"ident": personident.String(),
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/graphql", bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	token, err := c.tokenProvider(ctx)
	if err != nil {
		return "", errors.Wrap(err, "could not get pdl token")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Call-Id", callID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "pdl request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("pdl responded with status %d", resp.StatusCode)
	}

	var response hentPersonResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", errors.Wrap(err, "could not decode pdl response")
	}
	if len(response.Errors) > 0 {
		return "", errors.Errorf("pdl returned error: %s", response.Errors[0].Message)
	}
	if response.Data.HentPerson == nil || len(response.Data.HentPerson.Navn) == 0 {
		return "", errors.New("pdl returned no name for person")
	}

	return response.Data.HentPerson.Navn[0].FullName(), nil
}

func (n navn) FullName() string {
	parts := []string{n.Fornavn}
	if n.Mellomnavn != "" {
		parts = append(parts, n.Mellomnavn)
	}
	parts = append(parts, n.Etternavn)
	return strings.Join(parts, " ")
}
