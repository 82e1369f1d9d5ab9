package dokarkiv

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/navikt/isarbeidsuforhet-sub000/database/models"
	"github.com/pkg/errors"
)

const journalpostPath = "/rest/journalpostapi/v1/journalpost?forsoekFerdigstill=true"

// retry delays for transient archive failures
var retryDelays = []time.Duration{1 * time.Second, 5 * time.Second, 10 * time.Second}

type TokenProvider func(ctx context.Context) (string, error)

type dokarkivClient struct {
	baseURL       string
	tokenProvider TokenProvider
	retry         bool
	httpClient    *http.Client
}

type ClientOption func(*dokarkivClient)

// WithRetry enables bounded retries on transient failures. Batch jobs enable
// it; request-scoped callers fail fast.
func WithRetry() ClientOption {
	return func(c *dokarkivClient) {
		c.retry = true
	}
}

func NewDokarkivClient(baseURL string, tokenProvider TokenProvider, opts ...ClientOption) *dokarkivClient {
	client := &dokarkivClient{
		baseURL:       baseURL,
		tokenProvider: tokenProvider,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Journalfor submits the rendered document to the records archive. The
// archive deduplicates on the external reference key (the vurdering uuid): a
// 409 means the document is already archived, and the existing journalpostId
// is reused as a success.
func (c *dokarkivClient) Journalfor(ctx context.Context, callID string, vurdering models.Vurdering, pdf []byte) (models.JournalpostID, error) {
	request := NewJournalpostRequest(vurdering, pdf)
	body, err := json.Marshal(request)
	if err != nil {
		return "", err
	}

	attempts := 1
	if c.retry {
		attempts = len(retryDelays) + 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(retryDelays[attempt-1]):
			}
		}

		journalpostID, retryable, err := c.submit(ctx, callID, body)
		if err == nil {
			return journalpostID, nil
		}
		if !retryable {
			return "", err
		}
		lastErr = err
	}

	return "", errors.Wrap(lastErr, "journalforing failed after retries")
}

func (c *dokarkivClient) submit(ctx context.Context, callID string, body []byte) (models.JournalpostID, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+journalpostPath, bytes.NewReader(body))
	if err != nil {
		return "", false, err
	}

	token, err := c.tokenProvider(ctx)
	if err != nil {
		return "", false, errors.Wrap(err, "could not get dokarkiv token")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Call-Id", callID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", true, errors.Wrap(err, "dokarkiv request failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300, resp.StatusCode == http.StatusConflict:
		// 409 carries the journalpostId of the already archived document
		var response JournalpostResponse
		if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
			return "", false, errors.Wrap(err, "could not decode dokarkiv response")
		}
		journalpostID, err := models.NewJournalpostID(strconv.Itoa(response.JournalpostID))
		if err != nil {
			return "", false, err
		}
		return journalpostID, false, nil
	case resp.StatusCode >= 500:
		return "", true, fmt.Errorf("dokarkiv responded with status %d", resp.StatusCode)
	default:
		return "", false, fmt.Errorf("dokarkiv responded with status %d", resp.StatusCode)
	}
}
