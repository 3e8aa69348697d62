package travel

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"quickserve/config"
	"quickserve/models"
)

// distanceMatrixResponse mirrors the relevant parts of the routing provider's
// distance matrix payload.
type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int `json:"value"` // metres
			} `json:"distance"`
			Duration struct {
				Value int `json:"value"` // seconds
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// RoutingClient performs live distance-matrix lookups with a bounded timeout.
type RoutingClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRoutingClient builds a client from the routing configuration.
func NewRoutingClient() *RoutingClient {
	timeout := time.Duration(config.AppConfig.RoutingTimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 2500 * time.Millisecond
	}
	return &RoutingClient{
		BaseURL: config.AppConfig.RoutingBaseURL,
		APIKey:  config.AppConfig.RoutingAPIKey,
		Client:  &http.Client{Timeout: timeout},
	}
}

// Lookup queries the live routing provider. The caller's context bounds the
// request; on timeout or cancellation the caller falls back rather than block.
func (rc *RoutingClient) Lookup(ctx context.Context, origin, dest models.GeoPoint) (models.TravelEstimate, error) {
	if rc.APIKey == "" {
		return models.TravelEstimate{}, fmt.Errorf("routing API key not configured")
	}

	url := fmt.Sprintf(
		"%s?origins=%f,%f&destinations=%f,%f&key=%s",
		rc.BaseURL,
		origin.Coordinates[1], origin.Coordinates[0],
		dest.Coordinates[1], dest.Coordinates[0],
		rc.APIKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.TravelEstimate{}, fmt.Errorf("failed to build routing request: %w", err)
	}
	resp, err := rc.Client.Do(req)
	if err != nil {
		return models.TravelEstimate{}, fmt.Errorf("routing request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.TravelEstimate{}, fmt.Errorf("routing API returned status %d", resp.StatusCode)
	}

	var matrix distanceMatrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&matrix); err != nil {
		return models.TravelEstimate{}, fmt.Errorf("failed to decode routing response: %w", err)
	}
	if matrix.Status != "OK" || len(matrix.Rows) == 0 || len(matrix.Rows[0].Elements) == 0 {
		return models.TravelEstimate{}, fmt.Errorf("routing API returned no route")
	}
	el := matrix.Rows[0].Elements[0]
	if el.Status != "OK" {
		return models.TravelEstimate{}, fmt.Errorf("routing element status %s", el.Status)
	}

	return models.TravelEstimate{
		DistanceKm:      math.Round(float64(el.Distance.Value)/100) / 10,
		DurationMinutes: int(math.Ceil(float64(el.Duration.Value) / 60)),
		Source:          models.TravelSourceLive,
		Confidence:      1.0,
	}, nil
}
