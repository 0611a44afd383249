// Package mailcheck provides email deliverability checking via an external
// mail-validation API.
package mailcheck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Config holds mail-validation client configuration.
type Config struct {
	Enabled bool
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Verifier checks email deliverability against a remote validation API.
// When disabled, every address is accepted and only the handler-level
// syntactic validation applies.
type Verifier struct {
	config Config
	client *http.Client
}

// NewVerifier creates a new mail-validation client.
// Returns an error if enabled but required config is missing.
func NewVerifier(config Config) (*Verifier, error) {
	if config.Enabled {
		if config.BaseURL == "" {
			return nil, errors.New("mailcheck: base url is required when enabled")
		}
		if _, err := url.Parse(config.BaseURL); err != nil {
			return nil, fmt.Errorf("mailcheck: invalid base url: %w", err)
		}
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	slog.Info("mail-validation client configured",
		"enabled", config.Enabled,
		"base_url", config.BaseURL,
	)

	return &Verifier{
		config: config,
		client: &http.Client{Timeout: timeout},
	}, nil
}

// checkResponse is the validation API response shape.
type checkResponse struct {
	Deliverable bool `json:"deliverable"`
}

// VerifyEmail reports whether the address is deliverable according to the
// remote API. Transport and decoding failures are returned as errors and left
// to the caller's policy; they do not imply an invalid address.
func (v *Verifier) VerifyEmail(ctx context.Context, email string) (bool, error) {
	if !v.config.Enabled {
		slog.Debug("mail-validation disabled, accepting address", "email", email)
		return true, nil
	}

	endpoint := fmt.Sprintf("%s/check?email=%s", v.config.BaseURL, url.QueryEscape(email))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("build validation request: %w", err)
	}
	if v.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+v.config.APIKey)
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("call validation api: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("validation api returned status %d", resp.StatusCode)
	}

	var result checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("decode validation response: %w", err)
	}

	return result.Deliverable, nil
}
