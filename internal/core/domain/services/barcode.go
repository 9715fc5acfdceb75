package services

import (
	"fmt"
	"strings"

	"shiplabel/internal/core/domain/model/catalog"
	"shiplabel/internal/core/domain/model/expedition"
	"shiplabel/internal/core/domain/model/kernel"
)

// Symbology is a barcode encoding scheme understood by the raster collaborator.
type Symbology string

const (
	// Interleaved2of5 is the symbology of the primary carrier label band.
	Interleaved2of5 Symbology = "interleaved2of5"

	// Code128 is the symbology of the secondary label band.
	Code128 Symbology = "code128"
)

// String returns the collaborator wire name of the symbology.
func (s Symbology) String() string {
	return string(s)
}

// PrinterLanguage is a text protocol understood by a label printer.
type PrinterLanguage string

const (
	// ZPL is the field-based command set of the Zebra thermal printer family.
	ZPL PrinterLanguage = "ZPL"

	// TPCL is the line-mode command set of the TSC thermal printer family.
	TPCL PrinterLanguage = "TPCL"

	// Laser is not a printer protocol: the rendered label markup is passed
	// through unchanged for browser/OS print dialogs.
	Laser PrinterLanguage = "LASER"
)

// ParsePrinterLanguage normalizes a caller-supplied printer language name.
// Unrecognized names fall back to Laser, mirroring the legacy behavior of
// treating anything unknown as a pass-through target.
func ParsePrinterLanguage(s string) PrinterLanguage {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(ZPL):
		return ZPL
	case string(TPCL):
		return TPCL
	default:
		return Laser
	}
}

// BarcodeCommands generates the printer command stream that renders an
// expedition code as a standalone barcode. Deterministic: equal inputs yield
// byte-identical output, and a well-formed code cannot fail.
//
// For ZPL the interleaved-2-of-5 band (^B2) is emitted; for TPCL a code-128
// line; Laser returns the bare code for direct embedding.
func BarcodeCommands(code kernel.ExpeditionCode, lang PrinterLanguage) string {
	switch lang {
	case ZPL:
		return strings.Join([]string{
			"^XA",
			"^FO50,50",
			"^BY3",
			"^B2N,100,Y,N,N",
			fmt.Sprintf("^FD%s^FS", code.String()),
			"^XZ",
		}, "\n")
	case TPCL:
		return strings.Join([]string{
			"SIZE 100 mm, 80 mm",
			"GAP 3 mm, 0 mm",
			"CLS",
			fmt.Sprintf(`BARCODE 50,50,"128",100,1,0,2,2,"%s"`, code.String()),
			"PRINT 1",
			"END",
		}, "\n")
	default:
		return code.String()
	}
}

// LabelZPL renders the complete fixed-zone thermal label for an expedition as
// a ZPL command stream: carrier header, agency and date line, recipient block,
// shipment detail line, route box, optional observation line, barcode band and
// footer. Purely assembled from the expedition and fixed layout constants.
func LabelZPL(e *expedition.Expedition) string {
	opts := e.Options()
	rec := e.Recipient()
	route := e.Route()

	var b strings.Builder
	w := func(format string, args ...any) {
		fmt.Fprintf(&b, format+"\n", args...)
	}

	w("^XA")
	w("^CF0,50")
	w("^FO30,30^FDNACEX^FS")
	w("^CF0,20")
	w("^FO230,35^FDe-Commerce^FS")
	w("^FO30,80^GB750,3,3^FS")

	w("^CFA,20")
	w("^FO30,100^FDAbonado: %s^FS", e.Agency().String())
	w("^FO400,100^FDFecha: %s^FS", e.ShipmentDate().Format("02/01/2006"))
	w("^FO30,130^FDServicio: %s (%s)^FS", e.Service().Name, e.Service().Code)
	w("^FO400,130^FDRef: %s^FS", e.CustomerRef())
	w("^FO30,160^GB750,3,3^FS")

	w("^CF0,35")
	w("^FO30,180^FDDestinatario:^FS")
	w("^CF0,30")
	w("^FO30,225^FD%s^FS", rec.Name)
	w("^CFA,24")
	w("^FO30,265^FD%s^FS", rec.Address)
	w("^FO30,295^FD%s %s^FS", rec.PostalCode, rec.City)
	w("^FO30,325^FD%s^FS", rec.Country)
	w("^FO30,360^FDTel: %s^FS", rec.Phone)
	w("^FO30,385^FDEmail: %s^FS", rec.Email)
	w("^FO30,415^GB750,3,3^FS")

	w("^CFA,22")
	w("^FO30,435^FDBultos: %d^FS", e.Parcels())
	w("^FO200,435^FDPortes: %s^FS", optionName(catalog.PayerNames, opts.Payer))
	w("^FO450,435^FDEnvase: %s^FS", packagingName(opts.Packaging))
	w("^FO30,465^FDSeguro: %s^FS", optionName(catalog.InsuranceNames, opts.Insurance))

	w("^FO30,500^GB750,3,3^FS")
	w("^FO30,515^GB120,80,120^FS")
	w("^FR")
	w("^CF0,50")
	w("^FO45,530^FD%s^FS", route.ID)
	w("^FR")
	w("^CF0,28")
	w("^FO170,525^FDZona: %s^FS", route.Zone)

	if len(opts.Observations) > 0 && opts.Observations[0] != "" {
		w("^FO30,610^GB750,3,3^FS")
		w("^CFA,20")
		w("^FO30,625^FDObs: %s^FS", opts.Observations[0])
	}

	w("^FO30,665^GB750,3,3^FS")
	w("^BY3,2,150")
	w("^FO120,690^BC^FD%s^FS", e.Code().String())

	w("^FO30,880^GB750,3,3^FS")
	w("^CFA,18")
	w("^FO30,895^FDExp: %s^FS", e.Code().String())
	w("^FO300,895^FDPedido: #%s^FS", e.OrderRef())
	w("^FO550,895^FDAg: %s^FS", e.Agency().String())
	w("^XZ")

	return b.String()
}

func optionName(names map[string]string, code string) string {
	if n, ok := names[code]; ok {
		return n
	}
	return code
}

func packagingName(code string) string {
	if n, ok := catalog.PackagingNames[code]; ok {
		return n
	}
	if n, ok := catalog.PackagingNamesInternational[code]; ok {
		return n
	}
	return code
}
