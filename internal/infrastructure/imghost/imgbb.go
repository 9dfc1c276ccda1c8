// Package imghost relays staged image files to the imgBB hosting API and
// returns durable public URLs. Once hosted, images are never deleted by this
// service; only the local staging copies are cleaned up.
package imghost

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/devport/portfolio-api/internal/core/domain"
)

const defaultBaseURL = "https://api.imgbb.com"

// Client talks to the imgBB upload endpoint. BaseURL is overridable for tests.
type Client struct {
	BaseURL string

	apiKey string
	http   *http.Client
	log    zerolog.Logger
}

func NewClient(apiKey string, log zerolog.Logger) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     log,
	}
}

type uploadResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

// UploadImage reads a staged file, submits it base64-encoded, and returns
// the hosted URL. The API key travels in the query string, the image in an
// urlencoded "image" form field, per the imgBB contract.
func (c *Client) UploadImage(ctx context.Context, path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: read staged file: %v", domain.ErrUploadFailed, err)
	}

	form := url.Values{}
	form.Set("image", base64.StdEncoding.EncodeToString(raw))

	endpoint := c.BaseURL + "/1/upload?key=" + url.QueryEscape(c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", domain.ErrUploadFailed, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	var body uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrUploadFailed, err)
	}

	if resp.StatusCode != http.StatusOK || !body.Success || body.Data.URL == "" {
		c.log.Error().Int("status", resp.StatusCode).Msg("image host rejected upload")
		return "", fmt.Errorf("%w: image host returned status %d", domain.ErrUploadFailed, resp.StatusCode)
	}

	return body.Data.URL, nil
}
