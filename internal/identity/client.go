package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/zenbase/gateway/internal/domain"
)

const userEndpoint = "/auth/v1/user"

var (
	ErrMissingToken = errors.New("missing access token")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Client verifies bearer tokens by introspection against the identity
// provider. The provider is the source of truth: no token content is
// parsed locally and nothing is cached. Safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

type userResponse struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
}

func (c *Client) Verify(ctx context.Context, token string) (*domain.Principal, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+userEndpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create introspection request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token introspection failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read introspection response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, ErrInvalidToken
	}

	var user userResponse
	if err := json.Unmarshal(respBody, &user); err != nil {
		return nil, fmt.Errorf("unmarshal introspection response: %w", err)
	}

	if user.ID == "" {
		return nil, ErrInvalidToken
	}

	return &domain.Principal{
		ID:       user.ID,
		Email:    user.Email,
		Metadata: user.UserMetadata,
	}, nil
}
