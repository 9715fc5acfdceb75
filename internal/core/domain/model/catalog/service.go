package catalog

import (
	"fmt"

	"shiplabel/internal/pkg/errs"
)

// Family represents the product family a shipping service belongs to.
// The family decides which option dictionaries apply (for example the extra
// international packaging kinds) and how routes are resolved.
type Family int

const (
	// FamilyUnknown represents an invalid or undefined family.
	// This value (0) helps catch uninitialized Family values.
	FamilyUnknown Family = iota

	// FamilyStandard covers the domestic courier products (timed deliveries,
	// e-commerce, plus).
	FamilyStandard

	// FamilyShop covers the pick-up point and locker products.
	FamilyShop

	// FamilyInternational covers the cross-border products.
	FamilyInternational
)

func getFamilyStrings() map[Family]string {
	return map[Family]string{
		FamilyUnknown:       "Unknown",
		FamilyStandard:      "Standard",
		FamilyShop:          "Shop",
		FamilyInternational: "International",
	}
}

// Validate checks if the Family value is valid.
// FamilyUnknown (0) and any other values are invalid.
func (f Family) Validate() error {
	if f != FamilyStandard && f != FamilyShop && f != FamilyInternational {
		return errs.NewValueIsInvalidErrorWithCause("family is invalid", fmt.Errorf("%d is not a valid family", f))
	}
	return nil
}

// String returns the human-readable name of the family.
// It implements the fmt.Stringer interface and is safe to call on any Family
// value, including invalid ones.
func (f Family) String() string {
	if s, ok := getFamilyStrings()[f]; ok {
		return s
	}
	return "Unknown"
}

// Option field names used as keys of a service's validation table.
const (
	// FieldPackaging selects the packaging type (documents, bag, parcel, and
	// the international-only sample/document kinds).
	FieldPackaging = "packaging"

	// FieldPayer selects who pays the shipping charges: origin, destination
	// or a third party.
	FieldPayer = "payer"

	// FieldCashOnDelivery selects the cash-on-delivery mode.
	FieldCashOnDelivery = "cod"

	// FieldPrealert selects the pre-alert channel used to notify the
	// recipient (none, SMS, email).
	FieldPrealert = "prealert"

	// FieldReturn selects whether a return shipment is requested.
	FieldReturn = "return"

	// FieldInsurance selects the insurance kind (none, standard, premium).
	FieldInsurance = "insurance"
)

// FieldRule holds the validation rule for one option field of one service:
// the set of accepted values and the default substituted when a candidate
// value is outside that set.
type FieldRule struct {
	Accepted []string
	Default  string
}

// Accepts reports whether v is a member of the rule's accepted set.
func (r FieldRule) Accepts(v string) bool {
	for _, a := range r.Accepted {
		if a == v {
			return true
		}
	}
	return false
}

// ServiceDefinition describes one shipping service: its identity, labeling
// names, family, delivery zones, optional delivery-time cutoff, and the
// validation table for its configurable option fields.
//
// Definitions are static registry data loaded once at startup and treated as
// read-only; callers must not mutate the Zones slice or Validations map.
type ServiceDefinition struct {
	// Code is the unique service key ("01", "31", "A", ...).
	Code string

	// Name is the full display name of the service.
	Name string

	// LabelName is the short name printed on labels.
	LabelName string

	// Family is the product family of the service.
	Family Family

	// Zones lists the delivery zones the service covers.
	Zones []string

	// DeliveryLimit is the optional delivery-time cutoff ("10:00"); empty
	// when the service has none.
	DeliveryLimit string

	// Validations maps option field names to their validation rule.
	Validations map[string]FieldRule
}

// Rule returns the validation rule for a field and whether the service
// defines one.
func (d ServiceDefinition) Rule(field string) (FieldRule, bool) {
	r, ok := d.Validations[field]
	return r, ok
}
