package azuread

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Client fetches machine-to-machine tokens with the client credentials flow
// and caches them per scope until shortly before expiry.
type Client struct {
	tokenURL     string
	clientID     string
	clientSecret string
	httpClient   *http.Client

	mu     sync.Mutex
	tokens map[string]cachedToken
}

type cachedToken struct {
	accessToken string
	expiresAt   time.Time
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

func NewClient(tokenURL, clientID, clientSecret string) *Client {
	return &Client{
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens: make(map[string]cachedToken),
	}
}

// TokenProviderFor returns a provider bound to a single downstream scope,
// matching the hook the integration clients expect.
func (c *Client) TokenProviderFor(scope string) func(ctx context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		return c.getToken(ctx, scope)
	}
}

func (c *Client) getToken(ctx context.Context, scope string) (string, error) {
	c.mu.Lock()
	cached, ok := c.tokens[scope]
	c.mu.Unlock()
	if ok && time.Now().Before(cached.expiresAt) {
		return cached.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("scope", scope)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "could not build token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "token request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", errors.Wrap(err, "could not decode token response")
	}

	c.mu.Lock()
	c.tokens[scope] = cachedToken{
		accessToken: token.AccessToken,
		// renew a minute early to avoid using a token that expires in flight
		expiresAt: time.Now().Add(time.Duration(token.ExpiresIn)*time.Second - time.Minute),
	}
	c.mu.Unlock()

	return token.AccessToken, nil
}
