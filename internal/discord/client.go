package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/tillerlane/CroftBot_Go/internal/domain"
	"github.com/tillerlane/CroftBot_Go/internal/handler"
)

// APIClient handles communication with the CroftBot Core API
type APIClient struct {
	BaseURL string
	Client  *http.Client
	APIKey  string
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		APIKey: apiKey,
	}
}

// doRequest performs an HTTP request with retry logic
func (c *APIClient) doRequest(method, path string, body interface{}) (*http.Response, error) {
	var reqBody []byte
	var err error

	if body != nil {
		reqBody, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
	}

	url := fmt.Sprintf("%s%s", c.BaseURL, path)

	maxRetries := 3
	retryDelay := 500 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff with jitter
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := retryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			time.Sleep(delay)
			slog.Info("Retrying API request", "attempt", attempt, "path", path, "delay", delay)
		}

		req, err := http.NewRequest(method, url, bytes.NewBuffer(reqBody))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.APIKey != "" {
			req.Header.Set("X-API-Key", c.APIKey)
		}

		resp, err := c.Client.Do(req)
		if err != nil {
			lastErr = err
			slog.Warn("API request failed", "error", err, "attempt", attempt)
			continue
		}

		// Success or non-retryable error
		if resp.StatusCode < 500 {
			return resp, nil
		}

		// Server error - retry
		resp.Body.Close()
		lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
		slog.Warn("Server error, will retry", "status", resp.StatusCode, "attempt", attempt)
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// apiError extracts the error message from a non-OK response body.
func apiError(resp *http.Response) error {
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
		return fmt.Errorf("API error: %s", errResp.Error)
	}
	return fmt.Errorf("API returned status: %d", resp.StatusCode)
}

// Plant sows a crop on one of the user's plots
func (c *APIClient) Plant(platform, platformID, username, cropType string, plotIndex int) (*domain.PlantResponse, error) {
	req := map[string]interface{}{
		"platform":    platform,
		"platform_id": platformID,
		"username":    username,
		"crop_type":   cropType,
		"plot_index":  plotIndex,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/farm/plant", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var plantResp domain.PlantResponse
	if err := json.NewDecoder(resp.Body).Decode(&plantResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &plantResp, nil
}

// Harvest collects a ready plot
func (c *APIClient) Harvest(platform, platformID, username string, plotIndex int) (*domain.HarvestResponse, error) {
	req := map[string]interface{}{
		"platform":    platform,
		"platform_id": platformID,
		"username":    username,
		"plot_index":  plotIndex,
	}

	resp, err := c.doRequest(http.MethodPost, "/api/v1/farm/harvest", req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var harvestResp domain.HarvestResponse
	if err := json.NewDecoder(resp.Body).Decode(&harvestResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &harvestResp, nil
}

// Status retrieves the user's farm status
func (c *APIClient) Status(platform, platformID, username string) (*domain.FarmStatusResponse, error) {
	params := url.Values{}
	params.Set("platform", platform)
	params.Set("platform_id", platformID)
	if username != "" {
		params.Set("username", username)
	}

	path := fmt.Sprintf("/api/v1/farm/status?%s", params.Encode())
	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var statusResp domain.FarmStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&statusResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &statusResp, nil
}

// Ledger retrieves the user's most recent ledger entries
func (c *APIClient) Ledger(platform, platformID, username string, limit int) ([]domain.LedgerEntry, error) {
	params := url.Values{}
	params.Set("platform", platform)
	params.Set("platform_id", platformID)
	if username != "" {
		params.Set("username", username)
	}
	if limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", limit))
	}

	path := fmt.Sprintf("/api/v1/farm/ledger?%s", params.Encode())
	resp, err := c.doRequest(http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var entries []domain.LedgerEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return entries, nil
}

// GetCrops retrieves the plantable crop catalog
func (c *APIClient) GetCrops() ([]handler.CropListItem, error) {
	resp, err := c.doRequest(http.MethodGet, "/api/v1/farm/crops", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var cropsResp handler.CropListResponse
	if err := json.NewDecoder(resp.Body).Decode(&cropsResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return cropsResp.Crops, nil
}
