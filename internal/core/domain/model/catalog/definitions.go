package catalog

// Option value dictionaries shared by the label form and the renderers.
// Keys are the carrier wire values; values the human-readable names.
var (
	// PackagingNames maps domestic packaging codes to their display names.
	PackagingNames = map[string]string{
		"0": "DOCS",
		"1": "BAG",
		"2": "PAQ",
	}

	// PackagingNamesInternational maps the extra packaging codes accepted by
	// international services only.
	PackagingNamesInternational = map[string]string{
		"M": "MUESTRA",
		"D": "DOCUMENTO",
	}

	// PayerNames maps charge-payer codes to their display names.
	PayerNames = map[string]string{
		"O": "O - Origen",
		"D": "D - Destino",
		"T": "T - Tercera",
	}

	// CashOnDeliveryNames maps cash-on-delivery mode codes to their display
	// names, including the advance mode only seen on stored expeditions.
	CashOnDeliveryNames = map[string]string{
		"N": "No",
		"O": "O - Origen",
		"D": "D - Destino",
		"A": "A - Adelanto",
	}

	// PrealertChannelNames maps pre-alert channel codes to their display names.
	PrealertChannelNames = map[string]string{
		"S": "S - SMS",
		"E": "E - Email",
	}

	// PrealertModeNames maps pre-alert mode codes to their display names.
	PrealertModeNames = map[string]string{
		"S": "S - Standard",
		"R": "R - Reparto",
	}

	// InsuranceNames maps insurance kind codes to their display names.
	InsuranceNames = map[string]string{
		"N": "Sin seguro",
		"S": "Seguro estándar",
		"P": "Seguro premium",
	}
)

// Defaults holds the global defaults table applied before a service is
// resolved, for example when rendering an empty label form. Once a service is
// known, its per-service defaults always take precedence.
type Defaults struct {
	Payer          string
	Packaging      string
	Prealert       string
	CashOnDelivery string
	Parcels        int
	Service        string
}

const (
	domesticZonePeninsular = "NCX - España y Portugal Peninsular"
	domesticZoneBaleares   = "NCX - Baleares"
	domesticZoneIslands    = "NCX - Islas Portugal"
	domesticZoneCeuta      = "NCX - Ceuta y Melilla"
	domesticZoneGibraltar  = "NCX - Gibraltar"
	shopZonePeninsular     = "NCX - España Peninsular"
	intZoneEurope          = "Europa"
	intZoneWorld           = "Mundial"
)

// domesticValidations is the validation table shared by the standard domestic
// services.
func domesticValidations() map[string]FieldRule {
	return map[string]FieldRule{
		FieldPackaging:      {Accepted: []string{"0", "1", "2"}, Default: "2"},
		FieldPayer:          {Accepted: []string{"O", "D", "T"}, Default: "O"},
		FieldCashOnDelivery: {Accepted: []string{"N", "O", "D"}, Default: "N"},
		FieldPrealert:       {Accepted: []string{"N", "S", "E"}, Default: "E"},
		FieldReturn:         {Accepted: []string{"S", "N"}, Default: "N"},
		FieldInsurance:      {Accepted: []string{"N", "S", "P"}, Default: "N"},
	}
}

// shopValidations is the validation table for the pick-up point and locker
// services: charges are always prepaid at origin, no cash on delivery and no
// returns.
func shopValidations() map[string]FieldRule {
	return map[string]FieldRule{
		FieldPackaging:      {Accepted: []string{"0", "1", "2"}, Default: "2"},
		FieldPayer:          {Accepted: []string{"O"}, Default: "O"},
		FieldCashOnDelivery: {Accepted: []string{"N"}, Default: "N"},
		FieldPrealert:       {Accepted: []string{"N", "S", "E"}, Default: "E"},
		FieldReturn:         {Accepted: []string{"N"}, Default: "N"},
		FieldInsurance:      {Accepted: []string{"N", "S", "P"}, Default: "N"},
	}
}

// internationalValidations is the validation table for cross-border services:
// two extra packaging kinds, no cash on delivery and no returns.
func internationalValidations() map[string]FieldRule {
	return map[string]FieldRule{
		FieldPackaging:      {Accepted: []string{"0", "1", "2", "M", "D"}, Default: "2"},
		FieldPayer:          {Accepted: []string{"O", "D", "T"}, Default: "O"},
		FieldCashOnDelivery: {Accepted: []string{"N"}, Default: "N"},
		FieldPrealert:       {Accepted: []string{"N", "S", "E"}, Default: "E"},
		FieldReturn:         {Accepted: []string{"N"}, Default: "N"},
		FieldInsurance:      {Accepted: []string{"N", "S", "P"}, Default: "N"},
	}
}

// builtinDefinitions returns the full carrier service registry in catalog
// order: standard services first, then shop, then international.
func builtinDefinitions() []ServiceDefinition {
	return []ServiceDefinition{
		{
			Code:      "01",
			Name:      "NACEX 10:00H o ISLAS AZORES Y MADEIRA",
			LabelName: "NACEX 10:00H",
			Family:    FamilyStandard,
			Zones: []string{
				domesticZonePeninsular, domesticZoneBaleares, domesticZoneIslands,
				domesticZoneCeuta, domesticZoneGibraltar,
			},
			DeliveryLimit: "10:00",
			Validations:   domesticValidations(),
		},
		{
			Code:          "02",
			Name:          "NACEX 12:00H",
			LabelName:     "NACEX 12:00H",
			Family:        FamilyStandard,
			Zones:         []string{domesticZonePeninsular, domesticZoneBaleares},
			DeliveryLimit: "12:00",
			Validations:   domesticValidations(),
		},
		{
			Code:          "04",
			Name:          "NACEX 19:00H",
			LabelName:     "NACEX 19:00H",
			Family:        FamilyStandard,
			Zones:         []string{domesticZonePeninsular, domesticZoneBaleares},
			DeliveryLimit: "19:00",
			Validations:   domesticValidations(),
		},
		{
			Code:          "08",
			Name:          "NACEX ECOMMERCE",
			LabelName:     "NACEX ECOMMERCE",
			Family:        FamilyStandard,
			Zones:         []string{domesticZonePeninsular, domesticZoneBaleares},
			DeliveryLimit: "19:00",
			Validations:   domesticValidations(),
		},
		{
			Code:          "09",
			Name:          "NACEX PLUS",
			LabelName:     "NACEX PLUS",
			Family:        FamilyStandard,
			Zones:         []string{domesticZonePeninsular},
			DeliveryLimit: "14:00",
			Validations:   domesticValidations(),
		},
		{
			Code:          "31",
			Name:          "NACEX SHOP e-COMMERCE",
			LabelName:     "NACEX SHOP eCOMM",
			Family:        FamilyShop,
			Zones:         []string{shopZonePeninsular},
			DeliveryLimit: "19:00",
			Validations:   shopValidations(),
		},
		{
			Code:          "37",
			Name:          "NACEX SHOP LOCKER",
			LabelName:     "NACEX SHOP LOCKER",
			Family:        FamilyShop,
			Zones:         []string{shopZonePeninsular},
			DeliveryLimit: "19:00",
			Validations:   shopValidations(),
		},
		{
			Code:        "A",
			Name:        "NACEX INTERNACIONAL EUROPA",
			LabelName:   "NCX INT EUROPA",
			Family:      FamilyInternational,
			Zones:       []string{intZoneEurope},
			Validations: internationalValidations(),
		},
		{
			Code:        "B",
			Name:        "NACEX INTERNACIONAL WORLD",
			LabelName:   "NCX INT WORLD",
			Family:      FamilyInternational,
			Zones:       []string{intZoneWorld},
			Validations: internationalValidations(),
		},
	}
}

// builtinDefaults is the global defaults table used before a service is known.
func builtinDefaults() Defaults {
	return Defaults{
		Payer:          "O",
		Packaging:      "2",
		Prealert:       "E",
		CashOnDelivery: "O",
		Parcels:        1,
		Service:        "08",
	}
}
