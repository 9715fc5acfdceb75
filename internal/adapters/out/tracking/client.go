// Package tracking provides the HTTP client for the carrier tracking feed.
package tracking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"shiplabel/internal/core/domain/model/expedition"
	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// trackingDocument is the wire format of the carrier tracking endpoint.
type trackingDocument struct {
	Status string `json:"status"`
}

// Client polls the carrier tracking feed for shipment statuses.
// It implements ports.TrackingProvider.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the tracking feed at baseURL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// Track returns the current carrier status for the shipment code.
func (c *Client) Track(ctx context.Context, code kernel.ExpeditionCode) (expedition.Status, error) {
	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+"/tracking/"+code.String(), nil)
	if err != nil {
		return expedition.StatusUnknown, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return expedition.StatusUnknown, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return expedition.StatusUnknown, errs.NewObjectNotFoundError("code", code.String())
	}
	if resp.StatusCode != http.StatusOK {
		return expedition.StatusUnknown, fmt.Errorf(
			"tracking feed answered %d for %s", resp.StatusCode, code)
	}

	var doc trackingDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return expedition.StatusUnknown, fmt.Errorf("decoding tracking answer for %s: %w", code, err)
	}

	status, ok := parseStatus(doc.Status)
	if !ok {
		return expedition.StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("carrier reported unknown status %q", doc.Status))
	}

	return status, nil
}

func parseStatus(name string) (expedition.Status, bool) {
	for _, status := range []expedition.Status{
		expedition.Pending,
		expedition.InTransit,
		expedition.OutForDelivery,
		expedition.Delivered,
		expedition.Incident,
		expedition.Cancelled,
	} {
		if status.String() == name {
			return status, true
		}
	}
	return expedition.StatusUnknown, false
}
