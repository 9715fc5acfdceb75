// Package raster provides the HTTP client for the external barcode encoding
// collaborator. The collaborator exposes a single /encode endpoint that takes
// a code and a symbology and answers with PNG bytes.
package raster

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"shiplabel/internal/core/domain/model/kernel"
	"shiplabel/internal/core/domain/services"
	"shiplabel/internal/pkg/errs"
)

const defaultTimeout = 5 * time.Second

// encodeRequest is the wire format of the /encode endpoint.
type encodeRequest struct {
	Code      string `json:"code"`
	Symbology string `json:"symbology"`
}

// Client calls the barcode encoding collaborator over HTTP.
// It implements ports.RasterEncoder.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the collaborator at baseURL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// Encode renders the expedition code in the given symbology and returns the
// PNG bytes produced by the collaborator. The code-128 band carries the 841
// companion code, not the primary 840 code.
func (c *Client) Encode(
	ctx context.Context, code kernel.ExpeditionCode, symbology services.Symbology,
) ([]byte, error) {
	value := code.String()
	if symbology == services.Code128 {
		value = code.Secondary()
	}

	payload, err := json.Marshal(encodeRequest{
		Code:      value,
		Symbology: symbology.String(),
	})
	if err != nil {
		return nil, errs.NewRenderFailedErrorWithCause(symbology.String(), err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/encode", bytes.NewReader(payload))
	if err != nil {
		return nil, errs.NewRenderFailedErrorWithCause(symbology.String(), err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "image/png")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewRenderFailedErrorWithCause(symbology.String(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, errs.NewRenderFailedErrorWithCause(
			symbology.String(), fmt.Errorf("encoder answered %d", resp.StatusCode))
	}

	png, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.NewRenderFailedErrorWithCause(symbology.String(), err)
	}
	if len(png) == 0 {
		return nil, errs.NewRenderFailedError(symbology.String())
	}

	return png, nil
}
