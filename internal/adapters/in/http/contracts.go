package http

import "shiplabel/internal/core/application/usecases/commands"

// Error is the JSON body of every non-2xx answer.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LabelOptionsRequest carries the option values of a label form. Every field
// is optional: anything absent or not accepted by the chosen service resolves
// to that service's default.
type LabelOptionsRequest struct {
	Packaging           string   `json:"packaging,omitempty"`
	Payer               string   `json:"payer,omitempty"`
	CashOnDelivery      string   `json:"cashOnDelivery,omitempty"`
	CashAmount          string   `json:"cashAmount,omitempty"`
	Prealert            string   `json:"prealert,omitempty"`
	PrealertMode        string   `json:"prealertMode,omitempty"`
	PrealertDestination string   `json:"prealertDestination,omitempty"`
	PrealertMessage     string   `json:"prealertMessage,omitempty"`
	Return              string   `json:"return,omitempty"`
	Insurance           string   `json:"insurance,omitempty"`
	InsuranceAmount     string   `json:"insuranceAmount,omitempty"`
	Parcels             int      `json:"parcels,omitempty"`
	Observations        []string `json:"observations,omitempty"`
	Instructions        []string `json:"instructions,omitempty"`
	Contents            string   `json:"contents,omitempty"`
	DeclaredValue       string   `json:"declaredValue,omitempty"`
}

func (r LabelOptionsRequest) toLabelOptions() commands.LabelOptions {
	return commands.LabelOptions{
		Packaging:           r.Packaging,
		Payer:               r.Payer,
		CashOnDelivery:      r.CashOnDelivery,
		CashAmount:          r.CashAmount,
		Prealert:            r.Prealert,
		PrealertMode:        r.PrealertMode,
		PrealertDestination: r.PrealertDestination,
		PrealertMessage:     r.PrealertMessage,
		Return:              r.Return,
		Insurance:           r.Insurance,
		InsuranceAmount:     r.InsuranceAmount,
		Parcels:             r.Parcels,
		Observations:        r.Observations,
		Instructions:        r.Instructions,
		Contents:            r.Contents,
		DeclaredValue:       r.DeclaredValue,
	}
}

// GenerateLabelsRequest is the body of POST /api/v1/labels. Either orderId or
// orderIds must be present.
type GenerateLabelsRequest struct {
	OrderID  string              `json:"orderId,omitempty"`
	OrderIDs []string            `json:"orderIds,omitempty"`
	Service  string              `json:"service,omitempty"`
	Options  LabelOptionsRequest `json:"options"`
}

// OrderRefRequest is the body of the reprint and cancel endpoints. The
// reprint endpoint also accepts a carrier code instead of an order reference.
type OrderRefRequest struct {
	OrderRef string `json:"orderRef,omitempty"`
	Code     string `json:"code,omitempty"`
}

// LabelResponse describes the outcome of one label generation. The image
// fields are base64-encoded PNG bytes and null when the encoding collaborator
// failed; the markup keeps the code as text in that case.
type LabelResponse struct {
	Success      bool   `json:"success"`
	OrderID      string `json:"orderId"`
	Code         string `json:"code,omitempty"`
	RouteID      string `json:"routeId,omitempty"`
	RouteColor   string `json:"routeColor,omitempty"`
	BarcodePNG   []byte `json:"barcodePng"`
	SecondaryPNG []byte `json:"secondaryPng"`
	LabelHTML    string `json:"labelHtml,omitempty"`
	LabelZPL     string `json:"labelZpl,omitempty"`
	Error        string `json:"error,omitempty"`
}

// BatchResponse describes the outcome of a batch generation, one entry per
// submitted order in submission order.
type BatchResponse struct {
	Results   []LabelResponse `json:"results"`
	Generated int             `json:"generated"`
	Failed    int             `json:"failed"`
}

// ServiceResponse describes one catalog service.
type ServiceResponse struct {
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	LabelName     string   `json:"labelName"`
	Family        string   `json:"family"`
	Zones         []string `json:"zones,omitempty"`
	DeliveryLimit string   `json:"deliveryLimit,omitempty"`
}

func toLabelResponse(result commands.LabelResult) LabelResponse {
	resp := LabelResponse{
		Success:      result.Success,
		OrderID:      result.OrderID,
		Code:         result.Code,
		RouteID:      result.RouteID,
		RouteColor:   result.RouteColor,
		BarcodePNG:   result.BarcodePNG,
		SecondaryPNG: result.SecondaryPNG,
		LabelHTML:    result.LabelHTML,
		LabelZPL:     result.LabelZPL,
	}
	if result.Err != nil {
		resp.Error = result.Err.Error()
	}
	return resp
}

func toBatchResponse(batch commands.BatchResult) BatchResponse {
	results := make([]LabelResponse, len(batch.Results))
	for i, result := range batch.Results {
		results[i] = toLabelResponse(result)
	}

	return BatchResponse{
		Results:   results,
		Generated: batch.Generated,
		Failed:    batch.Failed,
	}
}
