// Package storefront provides the read-only HTTP client for the shop backend
// that owns the orders labels are generated for.
package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"shiplabel/internal/core/ports"
	"shiplabel/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// orderDocument is the wire format of the storefront order endpoint.
type orderDocument struct {
	ID            string   `json:"id"`
	CustomerName  string   `json:"customerName"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	PostalCode    string   `json:"postalCode"`
	Country       string   `json:"country"`
	Total         string   `json:"total"`
	ServiceCode   string   `json:"serviceCode"`
	Parcels       int      `json:"parcels"`
	Observations  []string `json:"observations"`
	Instructions  []string `json:"instructions"`
	Contents      string   `json:"contents"`
	DeclaredValue string   `json:"declaredValue"`
}

// Client fetches orders from the storefront REST API.
// It implements ports.OrderProvider.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the storefront at baseURL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// GetOrder retrieves an order by its storefront identifier.
func (c *Client) GetOrder(ctx context.Context, id string) (ports.Order, error) {
	if id == "" {
		return ports.Order{}, errs.NewValueIsRequiredError("id")
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+"/orders/"+id, nil)
	if err != nil {
		return ports.Order{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ports.Order{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ports.Order{}, errs.NewObjectNotFoundError("id", id)
	}
	if resp.StatusCode != http.StatusOK {
		return ports.Order{}, fmt.Errorf("storefront answered %d for order %q", resp.StatusCode, id)
	}

	var doc orderDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return ports.Order{}, fmt.Errorf("decoding storefront order %q: %w", id, err)
	}

	return ports.Order{
		ID:            doc.ID,
		CustomerName:  doc.CustomerName,
		Email:         doc.Email,
		Phone:         doc.Phone,
		Address:       doc.Address,
		City:          doc.City,
		PostalCode:    doc.PostalCode,
		Country:       doc.Country,
		Total:         doc.Total,
		ServiceCode:   doc.ServiceCode,
		Parcels:       doc.Parcels,
		Observations:  doc.Observations,
		Instructions:  doc.Instructions,
		Contents:      doc.Contents,
		DeclaredValue: doc.DeclaredValue,
	}, nil
}
