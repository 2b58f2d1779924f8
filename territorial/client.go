package territorial

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public territorial-division service of the Dominican
// Republic. No credentials required.
const DefaultBaseURL = "https://api.digital.gob.do/v1/territories"

type Province struct {
	Name       string `json:"name"`
	Code       string `json:"code"`
	Identifier string `json:"identifier"`
}

type Municipality struct {
	Name         string `json:"name"`
	Code         string `json:"code"`
	Identifier   string `json:"identifier"`
	ProvinceCode string `json:"provinceCode"`
}

// Client is a thin HTTP wrapper over the territories API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetProvinces fetches the full province list.
func (c *Client) GetProvinces(ctx context.Context) ([]Province, error) {
	var envelope struct {
		Data []Province `json:"data"`
	}
	if err := c.get(ctx, "/provinces", &envelope); err != nil {
		return nil, err
	}
	return envelope.Data, nil
}

// GetProvinceMunicipalities fetches the municipalities of one province. The
// service answers with an array normally but with a bare object when the
// province has a single municipality, so the payload is normalized here.
func (c *Client) GetProvinceMunicipalities(ctx context.Context, provinceCode string) ([]Municipality, error) {
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	path := "/municipalities?provinceCode=" + url.QueryEscape(provinceCode)
	if err := c.get(ctx, path, &envelope); err != nil {
		return nil, err
	}

	var municipalities []Municipality
	if err := json.Unmarshal(envelope.Data, &municipalities); err == nil {
		return municipalities, nil
	}

	var single Municipality
	if err := json.Unmarshal(envelope.Data, &single); err != nil {
		return nil, fmt.Errorf("unexpected municipalities payload: %w", err)
	}
	return []Municipality{single}, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("territories request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("territories api error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode territories response: %w", err)
	}
	return nil
}
