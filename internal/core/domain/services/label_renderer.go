package services

import (
	"encoding/base64"
	"html/template"
	"strings"

	"shiplabel/internal/core/domain/model/catalog"
	"shiplabel/internal/core/domain/model/expedition"
)

// labelTemplate is the fixed-zone print-preview layout: carrier header,
// service name with route badge, recipient block, shipment detail line,
// optional observation lines, barcode zone and footer. The barcode zone falls
// back to a monospace rendering of the code when no raster image is available.
const labelTemplate = `<div class="carrier-label" style="width:400px; border:2px solid #000; padding:10px; font-family:Arial,sans-serif; font-size:12px; page-break-after:always; background:#fff;">
  <div style="display:flex; justify-content:space-between; align-items:center; border-bottom:2px solid #000; padding-bottom:8px; margin-bottom:8px;">
    <div style="font-size:18px; font-weight:bold; color:#FF5000;">NACEX</div>
    <div style="text-align:right;">
      <div style="font-size:10px;">Fecha: {{.Date}}</div>
      <div style="font-size:10px;">Ref: {{.CustomerRef}}</div>
    </div>
  </div>
  <div style="display:flex; justify-content:space-between; margin-bottom:8px;">
    <div style="background:#f0f0f0; padding:4px 8px; border-radius:3px; font-weight:bold;">{{.ServiceName}}</div>
    <div style="display:flex; align-items:center; gap:5px;">
      <span style="display:inline-block; width:20px; height:20px; background:{{.RouteColor}}; border-radius:3px;"></span>
      <span style="font-weight:bold;">{{.RouteID}}</span>
    </div>
  </div>
  <div style="border:1px solid #ccc; padding:8px; margin-bottom:8px; border-radius:3px;">
    <div style="font-weight:bold; font-size:13px; margin-bottom:4px;">{{.Recipient.Name}}</div>
    <div>{{.Recipient.Address}}</div>
    <div>{{.Recipient.PostalCode}} {{.Recipient.City}}</div>
    <div>{{.Recipient.Country}}</div>
    <div style="margin-top:4px; font-size:11px;">Tel: {{.Recipient.Phone}}</div>
    <div style="font-size:11px;">Email: {{.Recipient.Email}}</div>
  </div>
  <div style="display:flex; justify-content:space-between; margin-bottom:8px; font-size:11px;">
    <div><strong>Bultos:</strong> {{.Parcels}}</div>
    <div><strong>Portes:</strong> {{.Payer}}</div>
    <div><strong>Envase:</strong> {{.Packaging}}</div>
    {{if .CashAmount}}<div><strong>Reemb:</strong> {{.CashAmount}}&euro;</div>{{end}}
  </div>
  {{range .Observations}}<div style="font-size:11px; color:#666; margin-bottom:4px;">Obs: {{.}}</div>
  {{end}}<div style="text-align:center; padding:10px 0; border-top:1px solid #ccc;">
    {{if .BarcodeURI}}<img src="{{.BarcodeURI}}" alt="Barcode {{.Code}}" style="max-width:100%; height:auto;" />{{else}}<div style="font-family:monospace; font-size:16px; letter-spacing:2px;">{{.Code}}</div>{{end}}
  </div>
  <div style="display:flex; justify-content:space-between; font-size:10px; color:#666; border-top:1px solid #ccc; padding-top:4px;">
    <div>Exp: {{.Code}}</div>
    <div>Pedido: #{{.OrderRef}}</div>
    <div>Ag: {{.Agency}}</div>
  </div>
</div>`

// labelView is the view model the template is executed against.
type labelView struct {
	Date         string
	CustomerRef  string
	ServiceName  string
	RouteID      string
	RouteColor   template.CSS
	Recipient    expedition.Recipient
	Parcels      int
	Payer        string
	Packaging    string
	CashAmount   string
	Observations []string
	BarcodeURI   template.URL
	Code         string
	OrderRef     string
	Agency       string
}

// LabelRenderer projects an expedition plus its barcode artifact into the
// finished print-preview markup. Rendering is pure: it never mutates the
// expedition and equal inputs produce identical output.
type LabelRenderer struct {
	tmpl *template.Template
}

// NewLabelRenderer creates a renderer with the label template parsed once.
func NewLabelRenderer() *LabelRenderer {
	return &LabelRenderer{
		tmpl: template.Must(template.New("label").Parse(labelTemplate)),
	}
}

// Render produces the label markup for an expedition. barcodePNG is the raster
// artifact returned by the encoding collaborator; when it is empty (rendering
// failed or was skipped) the barcode zone degrades to a monospace textual
// rendering of the code — the code is never omitted.
func (r *LabelRenderer) Render(e *expedition.Expedition, barcodePNG []byte) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}

	opts := e.Options()
	view := labelView{
		Date:         e.ShipmentDate().Format("02/01/2006"),
		CustomerRef:  e.CustomerRef(),
		ServiceName:  e.Service().Name,
		RouteID:      e.Route().ID,
		RouteColor:   template.CSS(e.Route().Color),
		Recipient:    e.Recipient(),
		Parcels:      e.Parcels(),
		Payer:        optionName(catalog.PayerNames, opts.Payer),
		Packaging:    packagingName(opts.Packaging),
		Observations: nonEmpty(opts.Observations),
		Code:         e.Code().String(),
		OrderRef:     e.OrderRef(),
		Agency:       e.Agency().String(),
	}
	if opts.CashOnDelivery != "" && opts.CashOnDelivery != "N" {
		view.CashAmount = opts.CashAmount
	}
	if len(barcodePNG) > 0 {
		view.BarcodeURI = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(barcodePNG))
	}

	var b strings.Builder
	if err := r.tmpl.Execute(&b, view); err != nil {
		return "", err
	}
	return b.String(), nil
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
