// ABOUTME: DeepL translation client posting form-encoded requests to the v2 API
// ABOUTME: Selects the free or pro endpoint and reshapes the first translation result

package deepl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"profile-translate-api/core/domain"
	coreerrors "profile-translate-api/core/errors"
	"profile-translate-api/core/interfaces"
)

const (
	// FreeEndpoint serves accounts on the free tier
	FreeEndpoint = "https://api-free.deepl.com/v2/translate"

	// ProEndpoint serves paid accounts
	ProEndpoint = "https://api.deepl.com/v2/translate"

	apiName = "deepl"

	// maxErrorBody bounds how much of a failed response ends up in the error
	maxErrorBody = 512
)

// Config holds endpoint overrides; empty fields use the public DeepL endpoints
type Config struct {
	FreeEndpoint string
	ProEndpoint  string
}

// Client implements interfaces.TranslationProvider against DeepL
type Client struct {
	httpClient   interfaces.HTTPClient
	freeEndpoint string
	proEndpoint  string
}

// translateResponse is the v2 /translate reply
type translateResponse struct {
	Translations []struct {
		DetectedSourceLanguage string `json:"detected_source_language"`
		Text                   string `json:"text"`
	} `json:"translations"`
}

// NewClient creates a DeepL client
func NewClient(httpClient interfaces.HTTPClient, cfg Config) *Client {
	c := &Client{
		httpClient:   httpClient,
		freeEndpoint: FreeEndpoint,
		proEndpoint:  ProEndpoint,
	}
	if cfg.FreeEndpoint != "" {
		c.freeEndpoint = cfg.FreeEndpoint
	}
	if cfg.ProEndpoint != "" {
		c.proEndpoint = cfg.ProEndpoint
	}
	return c
}

// Endpoint returns the URL used for the given tier
func (c *Client) Endpoint(pro bool) string {
	if pro {
		return c.proEndpoint
	}
	return c.freeEndpoint
}

// Translate sends one translation request
func (c *Client) Translate(ctx context.Context, req interfaces.TranslationRequest) (*domain.Translation, error) {
	resp, err := c.httpClient.Post(ctx, c.Endpoint(req.Pro), strings.NewReader(encodeForm(req)), map[string]string{
		"Content-Type": "application/x-www-form-urlencoded",
		"Accept":       "application/json, */*",
	})
	if err != nil {
		return nil, coreerrors.WrapError(err, "deepl request failed")
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body(), maxErrorBody))
		return nil, &coreerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    strings.TrimSpace(string(body)),
			API:        apiName,
		}
	}

	var decoded translateResponse
	if err := json.NewDecoder(resp.Body()).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode deepl response: %w", err)
	}
	if len(decoded.Translations) == 0 {
		return nil, fmt.Errorf("deepl response contained no translations")
	}

	first := decoded.Translations[0]
	return &domain.Translation{
		SourceLang: first.DetectedSourceLanguage,
		Text:       first.Text,
	}, nil
}

func encodeForm(req interfaces.TranslationRequest) string {
	params := url.Values{}
	params.Set("auth_key", req.AuthKey)
	params.Set("text", req.Text)
	params.Set("target_lang", req.TargetLang)
	return params.Encode()
}
